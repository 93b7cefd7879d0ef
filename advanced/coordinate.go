package advanced

import (
	"fmt"
	"math"
)

// A planar coordinate with optional elevation (Z) and measure (M). An unset
// ordinate is NaN, so build coordinates with XY, XYZ, XYM or XYZM rather than
// a bare struct literal, whose zero Z and M would count as set.
//
// Coordinates are values. Nothing in this package holds on to a coordinate or
// a sequence after returning.
type Coordinate struct {
	X, Y, Z, M float64
}

func XY(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: math.NaN(), M: math.NaN()}
}

// Returned alongside ok == false. Every ordinate is unset.
var noPoint = XY(math.NaN(), math.NaN())

func XYZ(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z, M: math.NaN()}
}

func XYM(x, y, m float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: math.NaN(), M: m}
}

func XYZM(x, y, z, m float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z, M: m}
}

func (c Coordinate) HasZ() bool { return !math.IsNaN(c.Z) }
func (c Coordinate) HasM() bool { return !math.IsNaN(c.M) }

// Only coordinates with finite X and Y give meaningful predicate results.
func (c Coordinate) IsValid() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) && !math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}

// Exact comparison of X and Y, ignoring Z and M.
func (c Coordinate) Equals2D(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// Exact comparison of X, Y and Z, where two unset Zs are equal.
func (c Coordinate) Equals3D(other Coordinate) bool {
	if !c.Equals2D(other) {
		return false
	}
	return c.Z == other.Z || (math.IsNaN(c.Z) && math.IsNaN(other.Z))
}

// Euclidean distance in the plane.
func (c Coordinate) Distance(other Coordinate) float64 {
	return math.Hypot(c.X-other.X, c.Y-other.Y)
}

// A copy of c with the given Z. A NaN z leaves the existing Z alone.
func (c Coordinate) WithZ(z float64) Coordinate {
	if !math.IsNaN(z) {
		c.Z = z
	}
	return c
}

func (c Coordinate) String() string {
	s := fmt.Sprintf("(%v, %v", c.X, c.Y)
	if c.HasZ() {
		s += fmt.Sprintf(", z=%v", c.Z)
	}
	if c.HasM() {
		s += fmt.Sprintf(", m=%v", c.M)
	}
	return s + ")"
}

// An ordered run of coordinates, such as a line or a closed ring. Only X and Y
// are read by the predicates, so implementations may store them however they
// like.
type Sequence interface {
	Len() int
	At(i int) Coordinate
}

// A Sequence backed by a slice of coordinates.
type Coordinates []Coordinate

func (cs Coordinates) Len() int            { return len(cs) }
func (cs Coordinates) At(i int) Coordinate { return cs[i] }

// A Sequence backed by a flat slice of ordinates, laid out as
// x, y[, z][, m...] for each coordinate in turn. This is the layout go-geom
// uses for its flat coordinates.
type Packed struct {
	Flat []float64
	// Number of ordinates per coordinate, at least 2.
	Dimension int
	// How many of the trailing ordinates are measures.
	Measures int
}

// Panics if the layout cannot hold an x and a y.
func NewPacked(flat []float64, dimension, measures int) Packed {
	if dimension < 2 || measures < 0 || dimension-measures < 2 {
		panic(fmt.Sprintf("invalid packed layout: dimension %d with %d measures", dimension, measures))
	}
	return Packed{Flat: flat, Dimension: dimension, Measures: measures}
}

func (p Packed) Len() int {
	return len(p.Flat) / p.Dimension
}

func (p Packed) At(i int) Coordinate {
	base := i * p.Dimension
	c := XY(p.Flat[base], p.Flat[base+1])
	if p.Dimension-p.Measures > 2 {
		c.Z = p.Flat[base+2]
	}
	if p.Measures > 0 {
		c.M = p.Flat[base+p.Dimension-p.Measures]
	}
	return c
}
