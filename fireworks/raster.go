package fireworks

import (
	"image"
	"image/color"
	"math"
)

// maxCirclePoints limits how finely StrokeCircle samples a circle.
const maxCirclePoints = 4096

// Raster is a Surface drawn in software, into an in-memory pixel buffer.
// Pixels are stored as premultiplied RGBA floats in [0, 1].
// The pixel (x, y) covers the area [x, x+1) x [y, y+1) of the surface.
type Raster struct {
	width  int
	height int
	pix    []float64
	mode   CompositeMode
	pts    []image.Point
	seen   map[image.Point]struct{}
}

func NewRaster(width int, height int) *Raster {
	r := &Raster{seen: map[image.Point]struct{}{}}
	r.Resize(width, height)
	return r
}

func (r *Raster) Size() (width int, height int) {
	return r.width, r.height
}

func (r *Raster) Resize(width int, height int) {
	r.width = max(width, 0)
	r.height = max(height, 0)
	r.pix = make([]float64, r.width*r.height*4)
}

func (r *Raster) SetCompositeMode(m CompositeMode) {
	r.mode = m
}

func (r *Raster) CompositeMode() CompositeMode {
	return r.mode
}

// At returns the premultiplied color of a pixel. Pixels outside the raster
// are transparent black.
func (r *Raster) At(x int, y int) (red, green, blue, alpha float64) {
	if !r.inBounds(x, y) {
		return
	}
	i := (y*r.width + x) * 4
	return r.pix[i], r.pix[i+1], r.pix[i+2], r.pix[i+3]
}

// Image converts the pixels into an image that can be encoded or displayed.
func (r *Raster) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for y := range r.height {
		for x := range r.width {
			red, green, blue, alpha := r.At(x, y)
			c := color.NRGBA{}
			if alpha > 0 {
				c.R = to8(red / alpha)
				c.G = to8(green / alpha)
				c.B = to8(blue / alpha)
				c.A = to8(alpha)
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func (r *Raster) FillRect(x, y, width, height float64, c color.Color) {
	corner := Pt{x, y}
	size := Pt{width, height}
	if !corner.IsFinite() || !size.IsFinite() {
		return
	}
	minX := max(int(math.Floor(x)), 0)
	minY := max(int(math.Floor(y)), 0)
	maxX := min(int(math.Ceil(x+width)), r.width)
	maxY := min(int(math.Ceil(y+height)), r.height)
	src := premultiplied(c)
	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			r.blend(px, py, src)
		}
	}
}

func (r *Raster) StrokeLine(from Pt, to Pt, c color.Color) {
	from, to, ok := r.clipLine(from, to)
	if !ok {
		return
	}
	src := premultiplied(c)
	r.pts = AppendLinePoints(r.pts[:0], pixelOf(from), pixelOf(to))
	for _, p := range r.pts {
		r.blend(p.X, p.Y, src)
	}
}

func (r *Raster) StrokeCircle(center Pt, radius float64, c color.Color) {
	if !center.IsFinite() || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return
	}
	src := premultiplied(c)
	n := int(math.Ceil(4 * math.Pi * radius))
	n = min(max(n, 8), maxCirclePoints)

	// Sampling the circumference hits the same pixel more than once. With
	// CompositeLighter every extra visit makes the pixel brighter, so each
	// pixel must be blended exactly once.
	clear(r.seen)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		p := pixelOf(Pt{center.X + radius*math.Cos(a), center.Y + radius*math.Sin(a)})
		if _, ok := r.seen[p]; ok {
			continue
		}
		r.seen[p] = struct{}{}
		r.blend(p.X, p.Y, src)
	}
}

func (r *Raster) inBounds(x int, y int) bool {
	return x >= 0 && y >= 0 && x < r.width && y < r.height
}

func (r *Raster) blend(x int, y int, src [4]float64) {
	if !r.inBounds(x, y) {
		return
	}
	dst := r.pix[(y*r.width+x)*4:][:4]
	switch r.mode {
	case CompositeSourceOver:
		for k := range 4 {
			dst[k] = src[k] + dst[k]*(1-src[3])
		}
	case CompositeDestinationOut:
		for k := range 4 {
			dst[k] *= 1 - src[3]
		}
	case CompositeLighter:
		for k := range 4 {
			dst[k] = min(dst[k]+src[k], 1)
		}
	}
}

// clipLine cuts the segment from-to down to the part that can touch the
// raster (Liang-Barsky). Without this, a rocket aimed very far away would
// make StrokeLine walk through millions of invisible pixels.
func (r *Raster) clipLine(from Pt, to Pt) (Pt, Pt, bool) {
	if !from.IsFinite() || !to.IsFinite() {
		return from, to, false
	}
	minX, minY := -1.0, -1.0
	maxX, maxY := float64(r.width)+1, float64(r.height)+1
	d := from.To(to)
	t0, t1 := 0.0, 1.0
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{from.X - minX, maxX - from.X, from.Y - minY, maxY - from.Y}
	for i := range 4 {
		if p[i] == 0 {
			if q[i] < 0 {
				return from, to, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
	}
	if t0 > t1 {
		return from, to, false
	}
	return from.Plus(d.Times(t0)), from.Plus(d.Times(t1)), true
}

func pixelOf(p Pt) image.Point {
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

func premultiplied(c color.Color) (src [4]float64) {
	r, g, b, a := c.RGBA()
	src[0] = float64(r) / 0xffff
	src[1] = float64(g) / 0xffff
	src[2] = float64(b) / 0xffff
	src[3] = float64(a) / 0xffff
	return
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}
