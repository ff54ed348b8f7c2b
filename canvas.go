package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/marisvali/fireworks/fireworks"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	// whiteSubImage is the source image for every fill and stroke. Using the
	// center pixel of a bigger image avoids sampling the transparent border
	// at the edges of triangles.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas is the Surface the show is drawn on, when running with ebiten.
// The fireworks effect depends on what was drawn in previous frames, so the
// drawing happens on an offscreen image that survives between frames, not on
// the screen image that ebiten gives to Draw.
type Canvas struct {
	img      *ebiten.Image
	width    int
	height   int
	blend    ebiten.Blend
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewCanvas(width int, height int) *Canvas {
	c := &Canvas{blend: ebiten.BlendSourceOver}
	c.Resize(width, height)
	return c
}

// Image returns the offscreen image, or nil if the canvas has no pixels.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

func (c *Canvas) Size() (width int, height int) {
	return c.width, c.height
}

func (c *Canvas) Resize(width int, height int) {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.width = max(width, 0)
	c.height = max(height, 0)
	// Ebiten doesn't allow empty images.
	if c.width > 0 && c.height > 0 {
		c.img = ebiten.NewImage(c.width, c.height)
	}
}

func (c *Canvas) SetCompositeMode(m fireworks.CompositeMode) {
	c.blend = BlendFor(m)
}

// BlendFor returns the ebiten blend that combines pixels the way m does.
// Unknown modes draw normally.
func BlendFor(m fireworks.CompositeMode) ebiten.Blend {
	switch m {
	case fireworks.CompositeDestinationOut:
		return ebiten.BlendDestinationOut
	case fireworks.CompositeLighter:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

func (c *Canvas) FillRect(x, y, width, height float64, col color.Color) {
	if c.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.Blend = c.blend
	c.img.DrawImage(whiteSubImage, op)
}

func (c *Canvas) StrokeLine(from fireworks.Pt, to fireworks.Pt, col color.Color) {
	var path vector.Path
	path.MoveTo(float32(from.X), float32(from.Y))
	path.LineTo(float32(to.X), float32(to.Y))
	c.stroke(&path, col)
}

func (c *Canvas) StrokeCircle(center fireworks.Pt, radius float64, col color.Color) {
	var path vector.Path
	path.Arc(float32(center.X), float32(center.Y), float32(radius), 0,
		2*math.Pi, vector.Clockwise)
	path.Close()
	c.stroke(&path, col)
}

func (c *Canvas) stroke(path *vector.Path, col color.Color) {
	if c.img == nil {
		return
	}
	op := &vector.StrokeOptions{Width: 1}
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(
		c.vertices[:0], c.indices[:0], op)

	// Vertex colors are not premultiplied, which is ebiten's default
	// ColorScaleMode for DrawTriangles.
	nc := color.NRGBAModel.Convert(col).(color.NRGBA)
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = float32(nc.R) / 0xff
		v.ColorG = float32(nc.G) / 0xff
		v.ColorB = float32(nc.B) / 0xff
		v.ColorA = float32(nc.A) / 0xff
	}
	top := &ebiten.DrawTrianglesOptions{}
	top.AntiAlias = true
	top.Blend = c.blend
	c.img.DrawTriangles(c.vertices, c.indices, whiteSubImage, top)
}

// Screenshot copies the pixels of the canvas into an image that can be
// encoded.
func (c *Canvas) Screenshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	if c.img != nil {
		c.img.ReadPixels(img.Pix)
	}
	return img
}
