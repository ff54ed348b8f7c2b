package fireworks

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendLinePoints(t *testing.T) {
	pts := AppendLinePoints(nil, image.Pt(0, 0), image.Pt(3, 1))
	assert.Equal(t, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}}, pts)

	// Going the other way gives different pixels, because the division
	// rounds towards zero.
	pts = AppendLinePoints(nil, image.Pt(3, 1), image.Pt(0, 0))
	assert.Equal(t, []image.Point{{3, 1}, {2, 1}, {1, 1}, {0, 0}}, pts)

	pts = AppendLinePoints(nil, image.Pt(2, 5), image.Pt(2, 2))
	assert.Equal(t, []image.Point{{2, 5}, {2, 4}, {2, 3}, {2, 2}}, pts)

	pts = AppendLinePoints(nil, image.Pt(7, 7), image.Pt(7, 7))
	assert.Equal(t, []image.Point{{7, 7}}, pts)
}

func TestAppendLinePoints_KeepsPrefix(t *testing.T) {
	pts := []image.Point{{-1, -1}}
	pts = AppendLinePoints(pts, image.Pt(0, 0), image.Pt(1, 1))
	assert.Equal(t, []image.Point{{-1, -1}, {0, 0}, {1, 1}}, pts)
}

func TestAppendLinePoints_Continuous(t *testing.T) {
	pts := AppendLinePoints(nil, image.Pt(-13, 40), image.Pt(29, -7))
	assert.Equal(t, image.Pt(-13, 40), pts[0])
	assert.Equal(t, image.Pt(29, -7), pts[len(pts)-1])
	for i := 1; i < len(pts); i++ {
		assert.LessOrEqual(t, Abs(pts[i].X-pts[i-1].X), 1)
		assert.LessOrEqual(t, Abs(pts[i].Y-pts[i-1].Y), 1)
	}
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 0, Abs(0))
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
}
