package advanced

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy/orientation"

	"github.com/osuushi/predicates/dd"
)

// Exact orientation with rational arithmetic, for checking against.
func exactOrientation(p1, p2, q Coordinate) Orientation {
	rat := func(x float64) *big.Rat { return new(big.Rat).SetFloat64(x) }
	sub := func(a, b float64) *big.Rat { return new(big.Rat).Sub(rat(a), rat(b)) }
	dx1, dy1 := sub(p2.X, p1.X), sub(p2.Y, p1.Y)
	dx2, dy2 := sub(q.X, p2.X), sub(q.Y, p2.Y)
	det := new(big.Rat).Sub(new(big.Rat).Mul(dx1, dy2), new(big.Rat).Mul(dy1, dx2))
	return Orientation(det.Sign())
}

func fromGeomOrientation(o orientation.Type) Orientation {
	switch o {
	case orientation.Clockwise:
		return Clockwise
	case orientation.CounterClockwise:
		return CounterClockwise
	}
	return Collinear
}

func TestOrientationIndex(t *testing.T) {
	assert.Equal(t, Left, OrientationIndex(XY(0, 0), XY(10, 0), XY(5, 5)))
	assert.Equal(t, Right, OrientationIndex(XY(0, 0), XY(10, 0), XY(5, -5)))
	assert.Equal(t, Collinear, OrientationIndex(XY(0, 0), XY(10, 0), XY(5, 0)))

	// Beyond the ends of the segment is still on the line
	assert.Equal(t, Collinear, OrientationIndex(XY(0, 0), XY(10, 0), XY(-5, 0)))
	assert.Equal(t, Collinear, OrientationIndex(XY(0, 0), XY(10, 10), XY(30, 30)))

	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "collinear", Collinear.String())
	assert.Equal(t, Right, Left.Reverse())
	assert.Equal(t, Collinear, Collinear.Reverse())
}

func TestOrientationIndexReversal(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		p1 := XY(r.Float64()*200-100, r.Float64()*200-100)
		p2 := XY(r.Float64()*200-100, r.Float64()*200-100)
		q := XY(r.Float64()*200-100, r.Float64()*200-100)
		if p1.Equals2D(p2) {
			continue
		}
		assert.Equal(t, OrientationIndex(p1, p2, q), OrientationIndex(p2, p1, q).Reverse())
		assert.Equal(t, exactOrientation(p1, p2, q), OrientationIndex(p1, p2, q))
	}
}

func TestOrientationIndexAgreesWithBigxy(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		// Small integers keep the comparison well inside what bigxy handles
		c := make([]float64, 6)
		for j := range c {
			c[j] = float64(r.Intn(21) - 10)
		}
		expected := fromGeomOrientation(bigxy.OrientationIndex(
			geom.Coord{c[0], c[1]}, geom.Coord{c[2], c[3]}, geom.Coord{c[4], c[5]}))
		actual := OrientationIndexXY(c[0], c[1], c[2], c[3], c[4], c[5])
		assert.Equal(t, expected, actual, "%v", c)
	}
}

// Near collinear triples at a range of magnitudes. Whenever the filter is
// confident it must agree with double-double, and double-double must be
// exact.
func TestOrientationFilterAgreesWithDD(t *testing.T) {
	uncertain := 0
	for e := 0; e <= 60; e += 10 {
		m := math.Ldexp(1, e)
		p1 := XY(m, 3*m)
		p2 := XY(7*m, 21*m)
		base := XY(4*m, 12*m)

		for k := -3; k <= 3; k++ {
			for _, q := range []Coordinate{
				XY(base.X, nudge(base.Y, k)),
				XY(nudge(base.X, k), base.Y),
			} {
				t.Run(fmt.Sprintf("2^%d/%d/%v", e, k, q), func(t *testing.T) {
					exact := exactOrientation(p1, p2, q)
					ddIndex := orientationIndexDD(p1.X, p1.Y, p2.X, p2.Y, q.X, q.Y)
					assert.Equal(t, exact, ddIndex)

					index, ok := orientationIndexFilter(p1.X, p1.Y, p2.X, p2.Y, q.X, q.Y)
					if ok {
						assert.Equal(t, exact, index)
					} else {
						uncertain++
					}
					assert.Equal(t, exact, OrientationIndex(p1, p2, q))
				})
			}
		}
	}
	// The exactly collinear cases can never be certified by the filter
	assert.NotZero(t, uncertain)
}

// Move x by k ulps
func nudge(x float64, k int) float64 {
	for ; k > 0; k-- {
		x = math.Nextafter(x, math.Inf(1))
	}
	for ; k < 0; k++ {
		x = math.Nextafter(x, math.Inf(-1))
	}
	return x
}

func TestSignOfDet2x2(t *testing.T) {
	assert.Equal(t, 0, SignOfDet2x2(1, 1, 2, 2))
	assert.Equal(t, 1, SignOfDet2x2(1, 1, 2, 3))
	assert.Equal(t, -1, SignOfDet2x2(1, 1, 3, 2))

	assert.Equal(t, 1, SignOfDet2x2DD(dd.New(1), dd.New(1), dd.New(2), dd.New(3)))
	// 1e9*(1e9-2) - (1e9-1)^2 = -1, which float64 can't see
	assert.Equal(t, -1, SignOfDet2x2(1e9, 1e9-1, 1e9-1, 1e9-2))
}

func ring(coords ...float64) Coordinates {
	var pts Coordinates
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, XY(coords[i], coords[i+1]))
	}
	return pts
}

func reversed(cs Coordinates) Coordinates {
	out := make(Coordinates, len(cs))
	for i, c := range cs {
		out[len(cs)-1-i] = c
	}
	return out
}

func TestIsCCW(t *testing.T) {
	cases := []struct {
		name     string
		ring     Coordinates
		expected bool
	}{
		{"square ccw", ring(0, 0, 4, 0, 4, 4, 0, 4, 0, 0), true},
		{"square cw", ring(0, 0, 0, 4, 4, 4, 4, 0, 0, 0), false},
		{"triangle ccw", ring(0, 0, 10, 0, 5, 10, 0, 0), true},
		{"triangle cw", ring(0, 0, 5, 10, 10, 0, 0, 0), false},
		{"repeated apex", ring(60, 180, 140, 240, 140, 240, 140, 240, 200, 180, 120, 120, 60, 180), false},
		{"apex at start", ring(5, 10, 0, 0, 10, 0, 5, 10), true},
		{"concave ccw", ring(60, 180, 140, 120, 100, 180, 140, 240, 60, 180), true},
		{"flat top wrapping start", ring(4, 4, 0, 4, 0, 0, 4, 0, 4, 4), true},
		{"spike", ring(0, 0, 10, 0, 5, 10, 10, 0, 0, 0), false},
		{"flat", ring(0, 0, 1, 0, 2, 0, 0, 0), false},
		{"too few points", ring(0, 0, 1, 1, 0, 0), false},
		{"empty", ring(), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, IsCCW(c.ring))
			assert.Equal(t, c.expected, IsCCWCoords(c.ring))
		})
	}

	t.Run("agrees with area on simple rings", func(t *testing.T) {
		for _, c := range cases[:8] {
			assert.Equal(t, IsCCW(c.ring), IsCCWArea(c.ring), c.name)
			assert.Equal(t, !IsCCW(c.ring), IsCCW(reversed(c.ring)), c.name)
		}
	})
}
