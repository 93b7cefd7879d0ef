package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const distanceTolerance = 1e-6

func TestPointToLinePerpendicular(t *testing.T) {
	assert.InDelta(t, 0.5, PointToLinePerpendicular(XY(0.5, 0.5), XY(0, 0), XY(1, 0)), distanceTolerance)
	// Past the end of the segment, but the line goes on
	assert.InDelta(t, 0.5, PointToLinePerpendicular(XY(3.5, 0.5), XY(0, 0), XY(1, 0)), distanceTolerance)
	assert.InDelta(t, 0.707106, PointToLinePerpendicular(XY(1, 0), XY(0, 0), XY(1, 1)), distanceTolerance)

	assert.InDelta(t, -0.5, PointToLinePerpendicularSigned(XY(0.5, 0.5), XY(0, 0), XY(1, 0)), distanceTolerance)
	assert.InDelta(t, 0.5, PointToLinePerpendicularSigned(XY(0.5, -0.5), XY(0, 0), XY(1, 0)), distanceTolerance)
}

func TestPointToSegment(t *testing.T) {
	assert.InDelta(t, 0.5, PointToSegment(XY(0.5, 0.5), XY(0, 0), XY(1, 0)), distanceTolerance)
	assert.InDelta(t, 1.0, PointToSegment(XY(2, 0), XY(0, 0), XY(1, 0)), distanceTolerance)
	assert.InDelta(t, 5.0, PointToSegment(XY(-3, 4), XY(0, 0), XY(1, 0)), distanceTolerance)
	assert.InDelta(t, 5.0, PointToSegment(XY(3, 4), XY(0, 0), XY(0, 0)), distanceTolerance)
}

func TestPointToSegmentString(t *testing.T) {
	line := ring(0, 0, 10, 0, 10, 10)
	assert.InDelta(t, 2.0, PointToSegmentString(XY(5, 2), line), distanceTolerance)
	assert.InDelta(t, 1.0, PointToSegmentString(XY(11, 5), line), distanceTolerance)
	assert.InDelta(t, 0.0, PointToSegmentString(XY(10, 3), line), distanceTolerance)
	assert.InDelta(t, 5.0, PointToSegmentString(XY(3, 4), ring(0, 0)), distanceTolerance)
	assert.True(t, math.IsNaN(PointToSegmentString(XY(3, 4), ring())))
}

func TestSegmentToSegment(t *testing.T) {
	t.Run("disjoint collinear", func(t *testing.T) {
		d := SegmentToSegment(XY(0, 0), XY(9.9, 1.4), XY(11.88, 1.68), XY(21.78, 3.08))
		assert.InDelta(t, 1.999699, d, distanceTolerance)
	})

	t.Run("crossing", func(t *testing.T) {
		assert.Equal(t, 0.0, SegmentToSegment(XY(0, 0), XY(10, 10), XY(0, 10), XY(10, 0)))
	})

	t.Run("parallel", func(t *testing.T) {
		assert.InDelta(t, 3.0, SegmentToSegment(XY(0, 0), XY(10, 0), XY(2, 3), XY(8, 3)), distanceTolerance)
	})

	t.Run("degenerate", func(t *testing.T) {
		assert.InDelta(t, 3.0, SegmentToSegment(XY(5, 3), XY(5, 3), XY(0, 0), XY(10, 0)), distanceTolerance)
		assert.InDelta(t, 3.0, SegmentToSegment(XY(0, 0), XY(10, 0), XY(5, 3), XY(5, 3)), distanceTolerance)
	})
}
