// Robust geometric predicates for Go.
//
// This package answers the questions that geometry code keeps asking about
// points and segments in plain float64 coordinates: which way three points
// turn, whether and where two segments meet, and whether a point is inside a
// ring. The answers stay consistent when the inputs are nearly collinear or
// nearly parallel, which is exactly where naive formulas start contradicting
// each other.
//
// The building blocks, including the double-double arithmetic underneath, are
// in the advanced and dd packages.
package predicates

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/osuushi/predicates/advanced"
	"github.com/osuushi/predicates/geomconv"
)

type Coordinate = advanced.Coordinate
type Orientation = advanced.Orientation
type Location = advanced.Location
type SegmentIntersection = advanced.SegmentIntersection

const (
	Left      = advanced.Left
	Right     = advanced.Right
	Collinear = advanced.Collinear

	Interior = advanced.Interior
	Boundary = advanced.Boundary
	Exterior = advanced.Exterior
)

func XY(x, y float64) Coordinate { return advanced.XY(x, y) }

// Which side of the directed line p1->p2 the point q is on. Exact for all
// finite inputs.
func Orient(p1, p2, q Coordinate) Orientation {
	return advanced.OrientationIndex(p1, p2, q)
}

// Check if a closed ring winds counterclockwise.
func IsCCW(ring []Coordinate) bool {
	return advanced.IsCCWCoords(ring)
}

// Intersect the segments p1-p2 and q1-q2.
func Intersect(p1, p2, q1, q2 Coordinate) SegmentIntersection {
	return advanced.IntersectSegments(p1, p2, q1, q2)
}

// Where the infinite lines through p1-p2 and q1-q2 cross. False for parallel
// lines.
func LineIntersection(p1, p2, q1, q2 Coordinate) (Coordinate, bool) {
	return advanced.LineIntersection(p1, p2, q1, q2)
}

// Locate p relative to a closed ring, by the even-odd rule.
func Locate(p Coordinate, ring []Coordinate) Location {
	return advanced.LocateInRingCoords(p, ring)
}

// Locate a WKT point in a WKT polygon, holes included.
func LocateWKT(point, polygon string) (Location, error) {
	pointGeom, err := geomconv.Parse(point)
	if err != nil {
		return advanced.Exterior, err
	}
	p, err := geomconv.Point(pointGeom)
	if err != nil {
		return advanced.Exterior, err
	}
	polygonGeom, err := geomconv.Parse(polygon)
	if err != nil {
		return advanced.Exterior, err
	}
	poly, ok := polygonGeom.(*geom.Polygon)
	if !ok {
		return advanced.Exterior, errors.Errorf("expected a polygon, got %T", polygonGeom)
	}
	return geomconv.LocateInPolygon(p, poly)
}
