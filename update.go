package main

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Update runs one frame of the show. Ebiten calls it 60 times per second,
// which is the rate at which the fireworks animation is meant to run. All the
// drawing of the show also happens here, on the canvas. Draw only copies the
// canvas to the screen, because ebiten may call Draw more or fewer times than
// Update.
func (g *Gui) Update() error {
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.JustPressed(ebiten.KeyEscape) {
		g.show.Stop()
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.show.LaunchAt(float64(x), float64(y))
	}
	g.touchIds = inpututil.AppendJustPressedTouchIDs(g.touchIds[:0])
	for _, id := range g.touchIds {
		x, y := ebiten.TouchPosition(id)
		g.show.LaunchAt(float64(x), float64(y))
	}

	if g.JustPressed(ebiten.KeySpace) || g.JustPressed(ebiten.KeyEnter) {
		g.show.Launch(int(g.IgniteCount))
	}
	now := time.Now()
	if g.JustPressed(ebiten.KeyA) {
		g.autoPlay.Toggle(now)
	}
	g.autoPlay.Step(now, g.show, &g.show.World.Rand)

	g.show.Frame()

	// Take the screenshot after the frame is drawn, so that it shows what
	// the player is about to see.
	if g.JustPressed(ebiten.KeyS) {
		g.SaveScreenshot()
	}

	g.frameIdx++
	return nil
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}
