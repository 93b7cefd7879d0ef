// Package geomconv adapts go-geom geometries to the coordinate sequences the
// predicates in advanced work on, and turns results back into geometries.
package geomconv

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/osuushi/predicates/advanced"
	"github.com/osuushi/predicates/internal"
)

// Read a single coordinate. Ordinates missing from the layout are left unset.
func Coord(c geom.Coord, layout geom.Layout) advanced.Coordinate {
	result := advanced.XY(c.X(), c.Y())
	if i := layout.ZIndex(); i != -1 && i < len(c) {
		result.Z = c[i]
	}
	if i := layout.MIndex(); i != -1 && i < len(c) {
		result.M = c[i]
	}
	return result
}

// A view of go-geom flat coordinates as a sequence. The ordinates are not
// copied.
func Sequence(flat []float64, layout geom.Layout) (seq advanced.Packed, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return packed(flat, layout), nil
}

// The ring as a sequence. It must be closed.
func Ring(ring *geom.LinearRing) (seq advanced.Packed, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return closedRing(ring.FlatCoords(), ring.Layout()), nil
}

func Parse(s string) (geom.T, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %q", s)
	}
	return g, nil
}

// The coordinate of a non-empty point.
func Point(g geom.T) (c advanced.Coordinate, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	point, ok := g.(*geom.Point)
	if !ok {
		internal.Fatalf("expected a point, got %T", g)
	}
	if point.Empty() {
		internal.Fatalf("point is empty")
	}
	return packed(point.FlatCoords(), point.Layout()).At(0), nil
}

// The endpoints of a line string with exactly two coordinates.
func Segment(g geom.T) (p1, p2 advanced.Coordinate, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	line, ok := g.(*geom.LineString)
	if !ok {
		internal.Fatalf("expected a line string, got %T", g)
	}
	seq := packed(line.FlatCoords(), line.Layout())
	if seq.Len() != 2 {
		internal.Fatalf("a segment needs exactly 2 coordinates, got %d", seq.Len())
	}
	return seq.At(0), seq.At(1), nil
}

// A closed ring from a linear ring, a closed line string, or the shell of a
// polygon.
func RingOf(g geom.T) (seq advanced.Packed, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	switch g := g.(type) {
	case *geom.LinearRing:
		return closedRing(g.FlatCoords(), g.Layout()), nil
	case *geom.LineString:
		return closedRing(g.FlatCoords(), g.Layout()), nil
	case *geom.Polygon:
		if g.NumLinearRings() == 0 {
			internal.Fatalf("polygon is empty")
		}
		shell := g.LinearRing(0)
		return closedRing(shell.FlatCoords(), shell.Layout()), nil
	}
	internal.Fatalf("expected a ring, got %T", g)
	return advanced.Packed{}, nil
}

// Locate p in a polygon with holes. Holes are assumed to lie inside the shell
// and not to overlap each other.
func LocateInPolygon(p advanced.Coordinate, poly *geom.Polygon) (location advanced.Location, err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	if poly.NumLinearRings() == 0 {
		return advanced.Exterior, nil
	}

	location = advanced.LocateInRing(p, ring(poly, 0))
	if location != advanced.Interior {
		return location, nil
	}
	for i := 1; i < poly.NumLinearRings(); i++ {
		switch advanced.LocateInRing(p, ring(poly, i)) {
		case advanced.Boundary:
			return advanced.Boundary, nil
		case advanced.Interior:
			return advanced.Exterior, nil
		}
	}
	return advanced.Interior, nil
}

func ring(poly *geom.Polygon, i int) advanced.Packed {
	r := poly.LinearRing(i)
	return closedRing(r.FlatCoords(), r.Layout())
}

// Panics unless the layout is one of the standard ones and the ordinates fill
// a whole number of coordinates.
func packed(flat []float64, layout geom.Layout) advanced.Packed {
	measures := 0
	switch layout {
	case geom.XY, geom.XYZ:
	case geom.XYM, geom.XYZM:
		measures = 1
	default:
		internal.Fatalf("unsupported layout %v", layout)
	}
	stride := layout.Stride()
	if len(flat)%stride != 0 {
		internal.Fatalf("%d ordinates is not a whole number of %v coordinates", len(flat), layout)
	}
	return advanced.NewPacked(flat, stride, measures)
}

func closedRing(flat []float64, layout geom.Layout) advanced.Packed {
	seq := packed(flat, layout)
	n := seq.Len()
	if n == 0 {
		return seq
	}
	if n < 4 {
		internal.Fatalf("a ring needs at least 4 coordinates, got %d", n)
	}
	if !seq.At(0).Equals2D(seq.At(n - 1)) {
		internal.Fatalf("ring is not closed: %v != %v", seq.At(0), seq.At(n-1))
	}
	return seq
}
