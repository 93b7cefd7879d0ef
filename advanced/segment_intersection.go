package advanced

import (
	"fmt"
	"math"
	"strings"
)

// How two segments meet.
type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	// The segments share exactly one point.
	PointIntersection
	// The segments are collinear and overlap along a sub-segment.
	CollinearIntersection
)

func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "none"
	case PointIntersection:
		return "point"
	case CollinearIntersection:
		return "collinear"
	}
	return "invalid"
}

// The result of intersecting two segments. It is an immutable value, and the
// points can only be read through accessors that check the kind first.
type SegmentIntersection struct {
	kind   IntersectionKind
	proper bool
	pts    [2]Coordinate
	// The segments that were intersected
	input [2][2]Coordinate
}

func (si SegmentIntersection) Kind() IntersectionKind { return si.kind }

func (si SegmentIntersection) HasIntersection() bool { return si.kind != NoIntersection }

func (si SegmentIntersection) IsCollinear() bool { return si.kind == CollinearIntersection }

// A proper intersection is a single point that is in the interior of both
// segments. Whenever the point coincides with an endpoint the intersection is
// improper, and the point is a bit-for-bit copy of that endpoint.
func (si SegmentIntersection) IsProper() bool { return si.proper }

// 0, 1 or 2.
func (si SegmentIntersection) NumPoints() int {
	return int(si.kind)
}

// The single intersection point, if that's what the segments have.
func (si SegmentIntersection) Point() (Coordinate, bool) {
	if si.kind != PointIntersection {
		return noPoint, false
	}
	return si.pts[0], true
}

// The ends of the shared sub-segment of collinear segments.
func (si SegmentIntersection) Overlap() (start, end Coordinate, ok bool) {
	if si.kind != CollinearIntersection {
		return noPoint, noPoint, false
	}
	return si.pts[0], si.pts[1], true
}

// A fresh slice of the NumPoints intersection points.
func (si SegmentIntersection) Points() []Coordinate {
	return append([]Coordinate(nil), si.pts[:si.NumPoints()]...)
}

// Check if p is one of the intersection points.
func (si SegmentIntersection) IsIntersection(p Coordinate) bool {
	for _, pt := range si.pts[:si.NumPoints()] {
		if pt.Equals2D(p) {
			return true
		}
	}
	return false
}

// Check if any intersection point is in the interior of either input segment,
// meaning it is not one of that segment's endpoints.
func (si SegmentIntersection) IsInteriorIntersection() bool {
	return si.IsInteriorIntersectionOf(0) || si.IsInteriorIntersectionOf(1)
}

// Like IsInteriorIntersection, but only for the first (0) or second (1)
// segment.
func (si SegmentIntersection) IsInteriorIntersectionOf(segmentIndex int) bool {
	seg := si.input[segmentIndex]
	for _, pt := range si.pts[:si.NumPoints()] {
		if !pt.Equals2D(seg[0]) && !pt.Equals2D(seg[1]) {
			return true
		}
	}
	return false
}

func (si SegmentIntersection) String() string {
	var b strings.Builder
	b.WriteString(si.kind.String())
	for _, pt := range si.pts[:si.NumPoints()] {
		fmt.Fprintf(&b, " %v", pt)
	}
	if si.proper {
		b.WriteString(" proper")
	}
	return b.String()
}

// Intersect the segments p1-p2 and q1-q2. The answer is exact in its
// classification. A computed point for a proper crossing is as accurate as the
// double-double line intersection allows, and is always inside both segment
// envelopes.
//
// Z values are carried through: an endpoint's Z for an endpoint, otherwise Z
// interpolated along the segments that have it.
func IntersectSegments(p1, p2, q1, q2 Coordinate) SegmentIntersection {
	result := SegmentIntersection{input: [2][2]Coordinate{{p1, p2}, {q1, q2}}}

	if !envelopesIntersect(p1, p2, q1, q2) {
		return result
	}

	// Each segment's endpoints against the other's line. Both endpoints
	// strictly on one side means no intersection.
	pq1 := OrientationIndex(p1, p2, q1)
	pq2 := OrientationIndex(p1, p2, q2)
	if pq1*pq2 > 0 {
		return result
	}
	qp1 := OrientationIndex(q1, q2, p1)
	qp2 := OrientationIndex(q1, q2, p2)
	if qp1*qp2 > 0 {
		return result
	}

	if pq1 == Collinear && pq2 == Collinear && qp1 == Collinear && qp2 == Collinear {
		return collinearIntersection(result, p1, p2, q1, q2)
	}

	result.kind = PointIntersection

	// At least one endpoint is on the other segment's line, so the point is
	// that endpoint. Copying it keeps it bit-exact, which callers rely on for
	// topology.
	if pq1 == Collinear || pq2 == Collinear || qp1 == Collinear || qp2 == Collinear {
		var pt Coordinate
		switch {
		case p1.Equals2D(q1):
			pt = p1.WithZ(zOf(p1, q1))
		case p1.Equals2D(q2):
			pt = p1.WithZ(zOf(p1, q2))
		case p2.Equals2D(q1):
			pt = p2.WithZ(zOf(p2, q1))
		case p2.Equals2D(q2):
			pt = p2.WithZ(zOf(p2, q2))
		case pq1 == Collinear:
			pt = q1.WithZ(zOrInterpolate(q1, p1, p2))
		case pq2 == Collinear:
			pt = q2.WithZ(zOrInterpolate(q2, p1, p2))
		case qp1 == Collinear:
			pt = p1.WithZ(zOrInterpolate(p1, q1, q2))
		case qp2 == Collinear:
			pt = p2.WithZ(zOrInterpolate(p2, q1, q2))
		}
		result.pts[0] = pt
		return result
	}

	result.proper = true
	result.pts[0] = properIntersection(p1, p2, q1, q2)
	return result
}

// Check whether p lies on the segment p1-p2. The intersection is proper unless
// p is an endpoint.
func IntersectPointSegment(p, p1, p2 Coordinate) SegmentIntersection {
	result := SegmentIntersection{input: [2][2]Coordinate{{p1, p2}, {p, p}}}
	if !envelopeContains(p1, p2, p) {
		return result
	}
	if OrientationIndex(p1, p2, p) != Collinear || OrientationIndex(p2, p1, p) != Collinear {
		return result
	}
	result.kind = PointIntersection
	result.proper = !p.Equals2D(p1) && !p.Equals2D(p2)
	result.pts[0] = p.WithZ(zOrInterpolate(p, p1, p2))
	return result
}

// All four endpoints are on one line. Work out which endpoints lie within the
// other segment's span.
func collinearIntersection(result SegmentIntersection, p1, p2, q1, q2 Coordinate) SegmentIntersection {
	q1InP := envelopeContains(p1, p2, q1)
	q2InP := envelopeContains(p1, p2, q2)
	p1InQ := envelopeContains(q1, q2, p1)
	p2InQ := envelopeContains(q1, q2, p2)

	overlap := func(a, b Coordinate) SegmentIntersection {
		result.kind = CollinearIntersection
		result.pts = [2]Coordinate{a, b}
		return result
	}
	// Segments that only touch end to end meet at a single point
	touch := func(a, b Coordinate, onlyTouching bool) SegmentIntersection {
		result = overlap(a, b)
		if onlyTouching {
			result.kind = PointIntersection
		}
		return result
	}

	switch {
	case q1InP && q2InP:
		return overlap(q1.WithZ(zOrInterpolate(q1, p1, p2)), q2.WithZ(zOrInterpolate(q2, p1, p2)))
	case p1InQ && p2InQ:
		return overlap(p1.WithZ(zOrInterpolate(p1, q1, q2)), p2.WithZ(zOrInterpolate(p2, q1, q2)))
	case q1InP && p1InQ:
		return touch(q1.WithZ(zOrInterpolate(q1, p1, p2)), p1.WithZ(zOrInterpolate(p1, q1, q2)),
			q1.Equals2D(p1) && !q2InP && !p2InQ)
	case q1InP && p2InQ:
		return touch(q1.WithZ(zOrInterpolate(q1, p1, p2)), p2.WithZ(zOrInterpolate(p2, q1, q2)),
			q1.Equals2D(p2) && !q2InP && !p1InQ)
	case q2InP && p1InQ:
		return touch(q2.WithZ(zOrInterpolate(q2, p1, p2)), p1.WithZ(zOrInterpolate(p1, q1, q2)),
			q2.Equals2D(p1) && !q1InP && !p2InQ)
	case q2InP && p2InQ:
		return touch(q2.WithZ(zOrInterpolate(q2, p1, p2)), p2.WithZ(zOrInterpolate(p2, q1, q2)),
			q2.Equals2D(p2) && !q1InP && !p1InQ)
	}
	return result
}

// The crossing point of two segments known to cross in both interiors.
func properIntersection(p1, p2, q1, q2 Coordinate) Coordinate {
	pt, ok := LineIntersection(p1, p2, q1, q2)
	// Round-off for nearly parallel segments can put the point outside the
	// segments, or lose it entirely. An endpoint is the best answer then.
	if !ok || !envelopeContains(p1, p2, pt) || !envelopeContains(q1, q2, pt) {
		pt = nearestEndpoint(p1, p2, q1, q2)
		pt.M = math.NaN()
	}
	pt.Z = zInterpolateBoth(pt, p1, p2, q1, q2)
	return pt
}

// The endpoint closest to the other segment's line.
func nearestEndpoint(p1, p2, q1, q2 Coordinate) Coordinate {
	nearest := p1
	minDist := PointToLinePerpendicular(p1, q1, q2)
	candidates := []struct {
		pt   Coordinate
		a, b Coordinate
	}{
		{p2, q1, q2},
		{q1, p1, p2},
		{q2, p1, p2},
	}
	for _, c := range candidates {
		if dist := PointToLinePerpendicular(c.pt, c.a, c.b); dist < minDist {
			minDist = dist
			nearest = c.pt
		}
	}
	return nearest
}

// p's Z, or q's when p has none.
func zOf(p, q Coordinate) float64 {
	if p.HasZ() {
		return p.Z
	}
	return q.Z
}

// p's own Z if it has one, otherwise interpolated along p1-p2.
func zOrInterpolate(p, p1, p2 Coordinate) float64 {
	if p.HasZ() {
		return p.Z
	}
	return zInterpolate(p, p1, p2)
}

// The Z of p, which lies on the segment p1-p2, interpolated from the
// endpoints. With only one endpoint Z, that Z is used as is.
func zInterpolate(p, p1, p2 Coordinate) float64 {
	if !p1.HasZ() {
		return p2.Z
	}
	if !p2.HasZ() {
		return p1.Z
	}
	if p.Equals2D(p1) {
		return p1.Z
	}
	if p.Equals2D(p2) {
		return p2.Z
	}
	dz := p2.Z - p1.Z
	if dz == 0 {
		return p1.Z
	}
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	segLen := dx*dx + dy*dy
	xOff, yOff := p.X-p1.X, p.Y-p1.Y
	pLen := xOff*xOff + yOff*yOff
	return p1.Z + dz*math.Sqrt(pLen/segLen)
}

// Z interpolated along both segments, averaged when both have one.
func zInterpolateBoth(p, p1, p2, q1, q2 Coordinate) float64 {
	zp := zInterpolate(p, p1, p2)
	zq := zInterpolate(p, q1, q2)
	if math.IsNaN(zp) {
		return zq
	}
	if math.IsNaN(zq) {
		return zp
	}
	return (zp + zq) / 2
}
