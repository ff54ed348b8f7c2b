package fireworks

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLA converts a color given as hue in degrees, saturation and lightness
// in percent and alpha in [0, 1] into a non-premultiplied RGBA color.
// Any hue is accepted, it is wrapped around the hue circle.
func HSLA(hue, saturation, lightness, alpha float64) color.NRGBA {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, clamp01(saturation/100), clamp01(lightness/100)).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
