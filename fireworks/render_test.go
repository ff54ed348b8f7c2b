package fireworks

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type surfaceOp struct {
	Kind   string
	Mode   CompositeMode
	From   Pt
	To     Pt
	Size   Pt
	Radius float64
	Color  color.NRGBA
}

// recordingSurface remembers every call made to it.
type recordingSurface struct {
	width  int
	height int
	ops    []surfaceOp
}

func (s *recordingSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *recordingSurface) Resize(width int, height int) {
	s.width, s.height = width, height
	s.ops = append(s.ops, surfaceOp{Kind: "resize"})
}

func (s *recordingSurface) SetCompositeMode(m CompositeMode) {
	s.ops = append(s.ops, surfaceOp{Kind: "mode", Mode: m})
}

func (s *recordingSurface) FillRect(x, y, width, height float64, c color.Color) {
	s.ops = append(s.ops, surfaceOp{Kind: "fill", From: Pt{x, y},
		Size: Pt{width, height}, Color: toNRGBA(c)})
}

func (s *recordingSurface) StrokeLine(from Pt, to Pt, c color.Color) {
	s.ops = append(s.ops, surfaceOp{Kind: "line", From: from, To: to,
		Color: toNRGBA(c)})
}

func (s *recordingSurface) StrokeCircle(center Pt, radius float64, c color.Color) {
	s.ops = append(s.ops, surfaceOp{Kind: "circle", From: center,
		Radius: radius, Color: toNRGBA(c)})
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func TestDrawWorld_Protocol(t *testing.T) {
	w := NewWorld(0)
	w.Rockets = append(w.Rockets,
		NewRocket(Pt{0, 0}, Pt{10, 10}, 0, 50),
		NewRocket(Pt{1, 1}, Pt{20, 20}, 120, 50))
	f := NewFragment(Pt{5, 5}, 0, 1, 240, 50, 0.02)
	f.Alpha = 0.5
	w.Fragments = append(w.Fragments, f)
	before := w

	s := &recordingSurface{width: 64, height: 48}
	DrawWorld(s, &w)

	red := color.NRGBA{R: 255, A: 255}
	green := color.NRGBA{G: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 128}
	expected := []surfaceOp{
		{Kind: "mode", Mode: CompositeDestinationOut},
		{Kind: "fill", From: Pt{0, 0}, Size: Pt{64, 48}, Color: toNRGBA(fadeColor)},
		{Kind: "mode", Mode: CompositeLighter},
		// The last rocket is drawn first.
		{Kind: "line", From: Pt{1, 1}, To: Pt{1, 1}, Color: green},
		{Kind: "circle", From: Pt{20, 20}, Radius: TargetRadiusMin, Color: green},
		{Kind: "line", From: Pt{0, 0}, To: Pt{0, 0}, Color: red},
		{Kind: "circle", From: Pt{10, 10}, Radius: TargetRadiusMin, Color: red},
		{Kind: "line", From: Pt{5, 5}, To: Pt{5, 5}, Color: blue},
	}
	assert.Equal(t, expected, s.ops)
	assert.Equal(t, before, w)
}

func TestDrawWorld_FadeIsHalf(t *testing.T) {
	c := toNRGBA(fadeColor)
	assert.Equal(t, uint8(0), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.InDelta(t, FadeAlpha*255, float64(c.A), 1)
}

func TestDrawWorld_TrailStartsAtOldestPosition(t *testing.T) {
	w := NewWorld(0)
	w.SpawnRocket(Pt{0, 100}, Pt{0, -1e6})
	for range 5 {
		w.Step()
	}
	r := w.Rockets[0]
	s := &recordingSurface{width: 10, height: 10}
	DrawWorld(s, &w)
	line := s.ops[3]
	assert.Equal(t, "line", line.Kind)
	assert.Equal(t, r.Trail.At(RocketTrailLen-1), line.From)
	assert.Equal(t, r.Pos, line.To)
}

func TestShow_PaintsAndFades(t *testing.T) {
	show, clock, raster := newTestShow(100, 100)
	show.LaunchAt(50, 20)
	for range 10 {
		clock.Advance(time.Second / 60)
		show.Frame()
	}
	assert.Greater(t, maxAlpha(raster), 0.5)

	// With nothing left to draw, every frame erases half of what is there.
	for range 200 {
		show.Frame()
	}
	require.Empty(t, show.World.Rockets)
	require.Empty(t, show.World.Fragments)
	assert.Less(t, maxAlpha(raster), 1e-6)
}

func maxAlpha(r *Raster) float64 {
	w, h := r.Size()
	m := 0.0
	for y := range h {
		for x := range w {
			_, _, _, a := r.At(x, y)
			m = max(m, a)
		}
	}
	return m
}
