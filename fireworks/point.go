package fireworks

import "math"

// Pt is a position on the drawing surface, in pixels. The origin is the
// top-left corner and Y grows downwards.
type Pt struct {
	X float64
	Y float64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p Pt) Times(multiply float64) Pt {
	return Pt{p.X * multiply, p.Y * multiply}
}

func (p Pt) To(other Pt) Pt {
	return Pt{other.X - p.X, other.Y - p.Y}
}

func (p Pt) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Pt) DistTo(other Pt) float64 {
	return p.To(other).Len()
}

// IsFinite is false if any of the coordinates is NaN or infinite.
func (p Pt) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
