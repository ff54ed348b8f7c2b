package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var hintColor = color.NRGBA{
	R: 160,
	G: 160,
	B: 160,
	A: 255,
}

func (g *Gui) Draw(screen *ebiten.Image) {
	// The canvas is mostly transparent, because the fade erases it, so it
	// needs a black background behind it.
	screen.Fill(color.Black)
	if img := g.canvas.Image(); img != nil {
		DrawSpriteXY(screen, img, 0, 0)
	}

	if g.ShowHint {
		g.DrawHint(screen, g.Hint(), hintColor)
	}
}

func (g *Gui) Hint() string {
	autoPlay := "off"
	if g.autoPlay.Enabled {
		autoPlay = "on"
	}
	return fmt.Sprintf("click: launch   space: ignite   A: auto play (%s)"+
		"   S: screenshot   esc: quit", autoPlay)
}

func DrawSpriteXY(screen *ebiten.Image, img *ebiten.Image,
	x float64, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Min.X)+x, float64(screen.Bounds().Min.Y)+y)
	screen.DrawImage(img, op)
}

// DrawHint writes message in the bottom-left corner of screen.
func (g *Gui) DrawHint(screen *ebiten.Image, message string, color color.Color) {
	x, y := HintOrigin(screen.Bounds(), text.BoundString(g.defaultFont, message))
	text.Draw(screen, message, g.defaultFont, x, y, color)
}

// HintOrigin returns where text.Draw must start so that text with the given
// bounds ends up hintMargin pixels away from the bottom-left corner of
// screen. The origin of a text is roughly the lower-left corner of its
// bounds, and the bounds of glyphs that go below the baseline, like 'p', have
// a positive Max.Y. So the baseline is lifted by Max.Y to keep every pixel
// above the margin.
func HintOrigin(screen image.Rectangle, textBounds image.Rectangle) (x int, y int) {
	x = screen.Min.X + hintMargin
	y = screen.Max.Y - hintMargin - textBounds.Max.Y
	return
}
