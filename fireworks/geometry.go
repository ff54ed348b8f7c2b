package fireworks

import "image"

func Abs(x int) int {
	if x < 0 {
		return -x
	} else {
		return x
	}
}

// AppendLinePoints appends to pts the list of pixels that lie between the
// start and end of a line, and returns the extended slice. The points all
// have integer coordinates and they are continuous (pixel k touches pixel
// k-1). Mathematically speaking, there is an infinite number of points on a
// line, and their coordinates are almost always not integers. So we need to
// decide which pixels best approximate the actual line. This does the
// standard approximation that you might see in something like Windows Paint.
// Important: the points are ordered and go from line start to line end, and
// both ends are included.
func AppendLinePoints(pts []image.Point, start image.Point, end image.Point) []image.Point {
	x1 := start.X
	y1 := start.Y
	x2 := end.X
	y2 := end.Y

	dx := x2 - x1
	dy := y2 - y1
	// Check if dx or dy are zero, to avoid division by zero further down the
	// line.
	if dx == 0 && dy == 0 {
		// If start and end are the same, return a single point.
		return append(pts, start)
	}

	if Abs(dx) > Abs(dy) {
		// The line is longer on X than on Y. Then we need exactly one pixel for
		// each X coordinate. What's left is to compute the corresponding Y for
		// each X.
		inc := dx / Abs(dx) // I use inc, which might be +1 or -1, because it is
		// important for me to go from start to end, not just from min to max.
		x2 += inc // We want the end point to be part of the line. The
		// condition for x must be x != x2 because we don't know if inc is 1 or
		// -1 so we cannot do x <= x2 or x >= x2. So, just increase x2 by inc.
		for x := x1; x != x2; x += inc {
			y := y1 + (x-x1)*dy/dx
			pts = append(pts, image.Pt(x, y))
		}
	} else {
		// The comments for X apply here as well, with X and Y interchanged.
		inc := dy / Abs(dy)
		y2 += inc
		for y := y1; y != y2; y += inc {
			x := x1 + (y-y1)*dx/dy
			pts = append(pts, image.Pt(x, y))
		}
	}
	return pts
}
