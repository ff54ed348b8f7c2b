// Command terminal runs the fireworks show in a terminal window.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/fireworks/fireworks"
)

func loadConfig() (fireworks.Config, error) {
	c, err := fireworks.LoadConfig(os.DirFS("."), "data/config.yaml")
	if errors.Is(err, fs.ErrNotExist) {
		return fireworks.DefaultConfig(), nil
	}
	return c, err
}

func run() error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal is the screen, so the log goes to a file.
	level, err := fireworks.ParseLogLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logFile, err := os.Create(filepath.Join(os.TempDir(), "fireworks-terminal.log"))
	if err != nil {
		return err
	}
	defer logFile.Close()
	fireworks.SetLogger(slog.New(slog.NewTextHandler(logFile,
		&slog.HandlerOptions{Level: level})))

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	NewApp(c, screen, fireworks.SystemClock{}).Run()
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fireworks: %v\n", err)
		os.Exit(1)
	}
}
