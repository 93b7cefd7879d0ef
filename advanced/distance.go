package advanced

import "math"

// Distance from p to the closed segment a-b.
//
// With r the projection parameter of p along AB,
//
//	r = AP.AB / |AB|^2
//
// the nearest point is A when r <= 0, B when r >= 1, and the foot of the
// perpendicular otherwise. (comp.graphics.algorithms FAQ)
func PointToSegment(p, a, b Coordinate) float64 {
	if a.Equals2D(b) {
		return p.Distance(a)
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	len2 := dx*dx + dy*dy
	r := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / len2
	if r <= 0 {
		return p.Distance(a)
	}
	if r >= 1 {
		return p.Distance(b)
	}
	return math.Abs(PointToLinePerpendicularSigned(p, a, b))
}

// Distance from p to the infinite line through a and b.
func PointToLinePerpendicular(p, a, b Coordinate) float64 {
	return math.Abs(PointToLinePerpendicularSigned(p, a, b))
}

// Like PointToLinePerpendicular, but positive when p is to the right of a->b
// and negative to the left.
func PointToLinePerpendicularSigned(p, a, b Coordinate) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	len2 := dx*dx + dy*dy
	s := ((a.Y-p.Y)*dx - (a.X-p.X)*dy) / len2
	return s * math.Sqrt(len2)
}

// Distance from p to the nearest point of a line. NaN for an empty line.
func PointToSegmentString(p Coordinate, line Sequence) float64 {
	n := line.Len()
	if n == 0 {
		return math.NaN()
	}
	minDistance := p.Distance(line.At(0))
	for i := 0; i < n-1; i++ {
		minDistance = math.Min(minDistance, PointToSegment(p, line.At(i), line.At(i+1)))
	}
	return minDistance
}

// Distance between the segments a-b and c-d. Zero if they intersect.
func SegmentToSegment(a, b, c, d Coordinate) float64 {
	if a.Equals2D(b) {
		return PointToSegment(a, c, d)
	}
	if c.Equals2D(d) {
		return PointToSegment(d, a, b)
	}

	// The segments cross iff the parameters r along AB and s along CD of the
	// intersection of their lines both lie in [0, 1].
	intersects := false
	if envelopesIntersect(a, b, c, d) {
		denom := (b.X-a.X)*(d.Y-c.Y) - (b.Y-a.Y)*(d.X-c.X)
		if denom != 0 {
			rNum := (a.Y-c.Y)*(d.X-c.X) - (a.X-c.X)*(d.Y-c.Y)
			sNum := (a.Y-c.Y)*(b.X-a.X) - (a.X-c.X)*(b.Y-a.Y)
			r, s := rNum/denom, sNum/denom
			intersects = r >= 0 && r <= 1 && s >= 0 && s <= 1
		}
	}
	if intersects {
		return 0
	}
	return math.Min(
		math.Min(PointToSegment(a, c, d), PointToSegment(b, c, d)),
		math.Min(PointToSegment(c, a, b), PointToSegment(d, a, b)),
	)
}
