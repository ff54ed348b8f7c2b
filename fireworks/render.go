package fireworks

import (
	"image/color"
)

// FadeAlpha is how much of the previous frame is erased before drawing the
// current one. What is left over shows up as a glowing trail.
const FadeAlpha = 0.5

// fadeColor is black with an alpha of FadeAlpha.
var fadeColor = color.NRGBA64{A: 0x8000}

// DrawWorld paints the current state of w on s. It does not change w.
// The drawing happens in two layers:
// - Fade what is already on the surface, by erasing part of it.
// - Draw all rockets and fragments additively, so where they overlap they
// get brighter instead of hiding each other.
// The rockets and fragments are drawn in the same order in which Step
// processes them, from the end of each collection to the start.
func DrawWorld(s Surface, w *World) {
	width, height := s.Size()
	s.SetCompositeMode(CompositeDestinationOut)
	s.FillRect(0, 0, float64(width), float64(height), fadeColor)

	s.SetCompositeMode(CompositeLighter)
	for i := len(w.Rockets) - 1; i >= 0; i-- {
		DrawRocket(s, &w.Rockets[i])
	}
	for i := len(w.Fragments) - 1; i >= 0; i-- {
		DrawFragment(s, &w.Fragments[i])
	}
}

func DrawRocket(s Surface, r *Rocket) {
	c := HSLA(r.Hue, 100, r.Brightness, 1)
	s.StrokeLine(r.Trail.Oldest(), r.Pos, c)
	s.StrokeCircle(r.Target, r.TargetRadius, c)
}

func DrawFragment(s Surface, f *Fragment) {
	c := HSLA(f.Hue, 100, f.Brightness, f.Alpha)
	s.StrokeLine(f.Trail.Oldest(), f.Pos, c)
}
