package main

// hintMargin is the distance in pixels between the hint and the bottom-left
// corner of the window.
const hintMargin = 10

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window.
	//
	// For fireworks there is no fixed game area. Rockets are launched from
	// the bottom center of whatever the window is, so the screen bitmap is
	// simply the window, one pixel for one pixel, and the canvas follows it.
	//
	// Layout is called by ebiten before the first Update, so this is also
	// the place where the show gets its surface.
	if g.canvas == nil {
		g.canvas = NewCanvas(outsideWidth, outsideHeight)
		g.show.Start(g.canvas)
	} else {
		g.show.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
