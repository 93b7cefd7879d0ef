package advanced

// Check if p lies on the closed segment p0-p1. Zero length segments are
// handled.
func IsOnSegment(p, p0, p1 Coordinate) bool {
	// The envelope test is cheap and rules out most points
	if !envelopeContains(p0, p1, p) {
		return false
	}
	if p.Equals2D(p0) {
		return true
	}
	return OrientationIndex(p0, p1, p) == Collinear
}

// Check if p lies on any segment of a line.
func IsOnLine(p Coordinate, line Sequence) bool {
	for i := 1; i < line.Len(); i++ {
		if IsOnSegment(p, line.At(i-1), line.At(i)) {
			return true
		}
	}
	return false
}

// Check if p is in the interior or on the boundary of a closed ring.
func IsInRing(p Coordinate, ring Sequence) bool {
	return LocateInRing(p, ring) != Exterior
}
