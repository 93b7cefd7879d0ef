package advanced

import "github.com/osuushi/predicates/dd"

// The side of a directed line on which a point lies.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1

	Right    = Clockwise
	Straight = Collinear
	Left     = CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "right"
	case Collinear:
		return "collinear"
	case CounterClockwise:
		return "left"
	}
	return "invalid"
}

// The orientation seen along the reversed line.
func (o Orientation) Reverse() Orientation {
	return -o
}

func orientationOf(sign int) Orientation {
	switch {
	case sign > 0:
		return CounterClockwise
	case sign < 0:
		return Clockwise
	}
	return Collinear
}

// Calibrates the floating point filter in front of the exact orientation test.
// The bound must never certify a wrong sign.
const DPSafeEpsilon = 1e-15

// Report which side of the directed line p1->p2 the point q lies on. The
// answer is exact for all finite inputs.
func OrientationIndex(p1, p2, q Coordinate) Orientation {
	return OrientationIndexXY(p1.X, p1.Y, p2.X, p2.Y, q.X, q.Y)
}

func OrientationIndexXY(p1x, p1y, p2x, p2y, qx, qy float64) Orientation {
	if index, ok := orientationIndexFilter(p1x, p1y, p2x, p2y, qx, qy); ok {
		return index
	}
	return orientationIndexDD(p1x, p1y, p2x, p2y, qx, qy)
}

// A fast float64 evaluation of the orientation determinant, with the error
// bound from Shewchuk's orient2d filter. When the sign can't be certified, ok
// is false and the caller must fall back to exact arithmetic.
func orientationIndexFilter(pax, pay, pbx, pby, pcx, pcy float64) (index Orientation, ok bool) {
	var detsum float64
	detleft := (pax - pcx) * (pby - pcy)
	detright := (pay - pcy) * (pbx - pcx)
	det := detleft - detright

	switch {
	case detleft > 0:
		if detright <= 0 {
			return signOf(det), true
		}
		detsum = detleft + detright
	case detleft < 0:
		if detright >= 0 {
			return signOf(det), true
		}
		detsum = -detleft - detright
	default:
		return signOf(det), true
	}

	errbound := DPSafeEpsilon * detsum
	if det >= errbound || -det >= errbound {
		return signOf(det), true
	}
	return Collinear, false
}

func signOf(x float64) Orientation {
	switch {
	case x > 0:
		return CounterClockwise
	case x < 0:
		return Clockwise
	}
	return Collinear
}

// The orientation determinant evaluated in double-double. The differences and
// products of float64 inputs are exact at this precision, so the sign is too.
func orientationIndexDD(p1x, p1y, p2x, p2y, qx, qy float64) Orientation {
	dx1 := dd.New(p2x).AddFloat(-p1x)
	dy1 := dd.New(p2y).AddFloat(-p1y)
	dx2 := dd.New(qx).AddFloat(-p2x)
	dy2 := dd.New(qy).AddFloat(-p2y)
	return orientationOf(dd.Determinant(dx1, dy1, dx2, dy2).Signum())
}

// The sign of the determinant x1*y2 - y1*x2, computed exactly.
func SignOfDet2x2(x1, y1, x2, y2 float64) int {
	return dd.DeterminantFloat(x1, y1, x2, y2).Signum()
}

func SignOfDet2x2DD(x1, y1, x2, y2 dd.DD) int {
	return dd.Determinant(x1, y1, x2, y2).Signum()
}

// Check if a closed ring is oriented counter-clockwise, robustly. The ring must
// repeat its first point at the end. Rings with fewer than three distinct
// points, including completely flat ones, are reported as not CCW.
//
// The test looks at the highest point of the ring. If it is a single vertex,
// the turn through that vertex gives the orientation. If the top is a flat
// run, the direction the run is traversed in does.
func IsCCW(ring Sequence) bool {
	nPts := ring.Len() - 1
	if nPts < 3 {
		return false
	}

	// Find the highest point reached by an upward step, and the point before it
	upHiPt := ring.At(0)
	prevY := upHiPt.Y
	var upLowPt Coordinate
	iUpHi := 0
	for i := 1; i <= nPts; i++ {
		pt := ring.At(i)
		// Only an upward step counts, so on a flat top this is the vertex
		// the ring climbs onto.
		if pt.Y > prevY && pt.Y >= upHiPt.Y {
			iUpHi = i
			upHiPt = pt
			upLowPt = ring.At(i - 1)
		}
		prevY = pt.Y
	}

	// The ring is flat
	if iUpHi == 0 {
		return false
	}

	// Walk forward along any flat top to find where the ring goes back down
	iDownLow := iUpHi
	for {
		iDownLow = (iDownLow + 1) % nPts
		if ring.At(iDownLow).Y != upHiPt.Y || iDownLow == iUpHi {
			break
		}
	}
	downLowPt := ring.At(iDownLow)
	downHiPt := ring.At(circularIndex(iDownLow-1, nPts))

	if upHiPt.Equals2D(downHiPt) {
		// A spike or a collapsed vertex has no orientation
		if upLowPt.Equals2D(upHiPt) || downLowPt.Equals2D(upHiPt) || upLowPt.Equals2D(downLowPt) {
			return false
		}
		return OrientationIndex(upLowPt, upHiPt, downLowPt) == CounterClockwise
	}

	// Flat top. Traversed right to left means CCW.
	return downHiPt.X-upHiPt.X < 0
}

func IsCCWCoords(ring []Coordinate) bool {
	return IsCCW(Coordinates(ring))
}

// Orientation from the sign of the shoelace area. Cheaper than IsCCW but not
// robust for nearly degenerate rings.
func IsCCWArea(ring Sequence) bool {
	return SignedRingArea(ring) < 0
}
