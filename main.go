package main

import (
	"embed"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/fireworks/fireworks"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone,
// either as a desktop executable or a .wasm on the browser. It is meant as a
// unique label for what a user is presented with, and it must change every
// time a new executable is built and sent to someone.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type Gui struct {
	fireworks.Config
	FSys            FS
	show            *fireworks.Show
	canvas          *Canvas
	autoPlay        fireworks.AutoPlay
	defaultFont     font.Face
	sessionId       uuid.UUID
	nScreenshots    int64
	frameIdx        int64
	justPressedKeys []ebiten.Key // keys pressed in this frame
	touchIds        []ebiten.TouchID
}

func main() {
	var g Gui
	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
	}
	g.LoadGuiData()

	// The session id only has to tell screenshots of different runs apart.
	g.sessionId = uuid.New()
	fireworks.Logger().Info("starting",
		"release", ReleaseVersion,
		"session", g.sessionId.String())

	// Nothing about the show needs to be reproducible, so the seed is just
	// the current time.
	g.show = fireworks.NewShow(fireworks.SystemClock{}, time.Now().UnixNano())
	g.show.Stagger = g.LaunchStagger()
	g.autoPlay = fireworks.NewAutoPlay(g.Config)
	if g.AutoPlay {
		g.autoPlay.Toggle(time.Now())
	}

	width, height := ebiten.ScreenSizeInFullscreen()
	ebiten.SetWindowSize(width*8/10, height*8/10)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Fireworks")

	err := ebiten.RunGame(&g)
	Check(err)
	fireworks.Logger().Info("done", slog.Any("show", g.show))
}
