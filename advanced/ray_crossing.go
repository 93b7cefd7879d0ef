package advanced

// Counts the crossings of a horizontal ray, running from a point towards +X,
// with the segments of a ring fed to it one at a time. The point is in the
// ring if the count is odd. Points lying on a segment are detected separately
// and reported as on the boundary.
//
// Feeding stops mattering once IsOnSegment is true, so callers should stop
// early then. A counter is cheap working state for a single query, and is not
// safe to share between goroutines.
type RayCrossingCounter struct {
	point            Coordinate
	crossingCount    int
	isPointOnSegment bool
}

func NewRayCrossingCounter(p Coordinate) *RayCrossingCounter {
	return &RayCrossingCounter{point: p}
}

// Account for one segment of the ring.
func (c *RayCrossingCounter) CountSegment(p1, p2 Coordinate) {
	p := c.point

	// Segments strictly to the left can't cross the ray or contain the point
	if p1.X < p.X && p2.X < p.X {
		return
	}

	if p.Equals2D(p2) {
		c.isPointOnSegment = true
		return
	}

	// Horizontal segments never change the parity. They only matter if the
	// point is on one.
	if p1.Y == p.Y && p2.Y == p.Y {
		minX, maxX := p1.X, p2.X
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		if p.X >= minX && p.X <= maxX {
			c.isPointOnSegment = true
		}
		return
	}

	// The segment straddles the ray. An endpoint exactly at the ray's height
	// counts as below it, so a vertex on the ray is charged to exactly one of
	// its two edges.
	if (p1.Y > p.Y && p2.Y <= p.Y) || (p2.Y > p.Y && p1.Y <= p.Y) {
		orient := OrientationIndex(p1, p2, p)
		if orient == Collinear {
			c.isPointOnSegment = true
			return
		}
		// Treat the segment as pointing upwards
		if p2.Y < p1.Y {
			orient = orient.Reverse()
		}
		// An upward segment crosses the rightward ray iff the point is to its
		// left
		if orient == Left {
			c.crossingCount++
		}
	}
}

func (c *RayCrossingCounter) Count() int {
	return c.crossingCount
}

func (c *RayCrossingCounter) IsOnSegment() bool {
	return c.isPointOnSegment
}

// The location of the point with respect to the segments counted so far.
func (c *RayCrossingCounter) Location() Location {
	if c.isPointOnSegment {
		return Boundary
	}
	if c.crossingCount%2 == 1 {
		return Interior
	}
	return Exterior
}

// True for points in the interior or on the boundary.
func (c *RayCrossingCounter) IsPointInPolygon() bool {
	return c.Location() != Exterior
}

// Locate p relative to a closed ring, whose first point is repeated at the
// end. The ring may be in either orientation and need not be simple, in which
// case the even-odd rule applies.
func LocateInRing(p Coordinate, ring Sequence) Location {
	counter := NewRayCrossingCounter(p)
	for i := 1; i < ring.Len(); i++ {
		counter.CountSegment(ring.At(i), ring.At(i-1))
		if counter.IsOnSegment() {
			break
		}
	}
	return counter.Location()
}

func LocateInRingCoords(p Coordinate, ring []Coordinate) Location {
	return LocateInRing(p, Coordinates(ring))
}
