package advanced

import (
	"math"

	"github.com/osuushi/predicates/dd"
)

// Intersect the infinite lines through p1-p2 and q1-q2, using homogeneous
// coordinates evaluated in double-double. This stays accurate for lines that
// are nearly parallel and far from the origin, where the float64 form loses
// most of its digits.
//
// ok is false when the lines are parallel or coincident, or the intersection
// is too far away to represent.
func LineIntersection(p1, p2, q1, q2 Coordinate) (Coordinate, bool) {
	// Line through p1-p2 as (px, py, pw)
	px := dd.New(p1.Y).SubFloat(p2.Y)
	py := dd.New(p2.X).SubFloat(p1.X)
	pw := dd.New(p1.X).MulFloat(p2.Y).Sub(dd.New(p2.X).MulFloat(p1.Y))

	qx := dd.New(q1.Y).SubFloat(q2.Y)
	qy := dd.New(q2.X).SubFloat(q1.X)
	qw := dd.New(q1.X).MulFloat(q2.Y).Sub(dd.New(q2.X).MulFloat(q1.Y))

	// The cross product of the two lines is their common point
	x := dd.Determinant(py, pw, qy, qw)
	y := dd.Determinant(qx, qw, px, pw)
	w := dd.Determinant(px, py, qx, qy)

	return finitePoint(x.Div(w).Float64(), y.Div(w).Float64())
}

// Like LineIntersection, but in float64. The inputs are first translated so the
// middle of the overlap of the segment envelopes is at the origin, which
// recovers much of the precision lost to large coordinates.
func LineIntersectionFP(p1, p2, q1, q2 Coordinate) (Coordinate, bool) {
	mid := envelopeOverlapCenter(p1, p2, q1, q2)
	shift := func(c Coordinate) Coordinate {
		return XY(c.X-mid.X, c.Y-mid.Y)
	}
	pt, ok := HCoordinateIntersection(shift(p1), shift(p2), shift(q1), shift(q2))
	if !ok {
		return pt, false
	}
	return XY(pt.X+mid.X, pt.Y+mid.Y), true
}

// The plain homogeneous coordinate line intersection in float64, without any
// conditioning. Not numerically stable: the result can land well outside the
// segments for nearly parallel lines.
func HCoordinateIntersection(p1, p2, q1, q2 Coordinate) (Coordinate, bool) {
	px := p1.Y - p2.Y
	py := p2.X - p1.X
	pw := p1.X*p2.Y - p2.X*p1.Y

	qx := q1.Y - q2.Y
	qy := q2.X - q1.X
	qw := q1.X*q2.Y - q2.X*q1.Y

	x := py*qw - qy*pw
	y := qx*pw - px*qw
	w := px*qy - qx*py

	return finitePoint(x/w, y/w)
}

func finitePoint(x, y float64) (Coordinate, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return noPoint, false
	}
	return XY(x, y), true
}

// Intersect the infinite line through line1-line2 with the segment seg1-seg2.
//
// An endpoint of the segment lying on the line is returned as is. ok is false
// when the whole segment is strictly on one side of the line. When the segment
// crosses the line but the point can't be computed, the segment endpoint
// nearest the line stands in for it.
func LineSegmentIntersection(line1, line2, seg1, seg2 Coordinate) (Coordinate, bool) {
	orientS1 := OrientationIndex(line1, line2, seg1)
	if orientS1 == Collinear {
		return seg1, true
	}
	orientS2 := OrientationIndex(line1, line2, seg2)
	if orientS2 == Collinear {
		return seg2, true
	}
	if orientS1 == orientS2 {
		return noPoint, false
	}

	if pt, ok := LineIntersection(line1, line2, seg1, seg2); ok {
		return pt, true
	}

	dist1 := PointToLinePerpendicular(seg1, line1, line2)
	dist2 := PointToLinePerpendicular(seg2, line1, line2)
	if dist1 < dist2 {
		return seg1, true
	}
	return seg2, true
}
