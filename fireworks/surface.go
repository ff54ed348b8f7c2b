package fireworks

import "image/color"

// CompositeMode says how new pixels are combined with the pixels already on
// a Surface.
type CompositeMode int64

const (
	// CompositeSourceOver draws new pixels over the existing ones.
	CompositeSourceOver CompositeMode = iota
	// CompositeDestinationOut erases existing pixels in proportion to the alpha
	// of the new pixels. The color of the new pixels is irrelevant.
	CompositeDestinationOut
	// CompositeLighter adds new pixels to existing ones, so overlapping strokes
	// get brighter.
	CompositeLighter
)

func (m CompositeMode) String() string {
	switch m {
	case CompositeSourceOver:
		return "source-over"
	case CompositeDestinationOut:
		return "destination-out"
	case CompositeLighter:
		return "lighter"
	default:
		return "unknown"
	}
}

// Surface is an immediate-mode 2D drawing target that keeps its pixels
// between frames. Strokes are 1 pixel wide.
type Surface interface {
	// Size returns the current size in pixels.
	Size() (width int, height int)
	// Resize changes the size. The previous contents are lost.
	Resize(width int, height int)
	SetCompositeMode(m CompositeMode)
	FillRect(x, y, width, height float64, c color.Color)
	StrokeLine(from Pt, to Pt, c color.Color)
	StrokeCircle(center Pt, radius float64, c color.Color)
}
