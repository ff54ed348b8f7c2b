package main

import (
	"log/slog"
	"os"

	"github.com/marisvali/fireworks/fireworks"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	var err error
	g.Config, err = fireworks.LoadConfig(g.FSys, "data/config.yaml")
	Check(err)

	level, err := fireworks.ParseLogLevel(g.LogLevel)
	Check(err)
	fireworks.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))

	// Load the Go Regular font.
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}
