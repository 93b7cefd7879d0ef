package advanced

import "github.com/golang/geo/r2"

// Often we want to treat a ring as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values
func circularIndex(i, n int) int {
	return (i%n + n) % n
}

// The closed bounding box of the segment p1-p2.
func envelope(p1, p2 Coordinate) r2.Rect {
	return r2.RectFromPoints(r2.Point{X: p1.X, Y: p1.Y}, r2.Point{X: p2.X, Y: p2.Y})
}

// Check if q lies in the bounding box of p1-p2, boundary included.
func envelopeContains(p1, p2, q Coordinate) bool {
	return envelope(p1, p2).ContainsPoint(r2.Point{X: q.X, Y: q.Y})
}

// Check if the bounding boxes of p1-p2 and q1-q2 share at least one point.
func envelopesIntersect(p1, p2, q1, q2 Coordinate) bool {
	return envelope(p1, p2).Intersects(envelope(q1, q2))
}

// Midpoint of the overlap of two segment envelopes. The overlap may be empty,
// in which case this is still the midpoint between the two facing sides.
func envelopeOverlapCenter(p1, p2, q1, q2 Coordinate) r2.Point {
	pEnv, qEnv := envelope(p1, p2), envelope(q1, q2)
	return r2.Point{
		X: pEnv.X.Intersection(qEnv.X).Center(),
		Y: pEnv.Y.Intersection(qEnv.Y).Center(),
	}
}
