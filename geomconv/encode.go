package geomconv

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/osuushi/predicates/advanced"
)

// A point carrying whichever of Z and M the coordinate has.
func FromCoordinate(c advanced.Coordinate) *geom.Point {
	switch {
	case c.HasZ() && c.HasM():
		return geom.NewPointFlat(geom.XYZM, []float64{c.X, c.Y, c.Z, c.M})
	case c.HasZ():
		return geom.NewPointFlat(geom.XYZ, []float64{c.X, c.Y, c.Z})
	case c.HasM():
		return geom.NewPointFlat(geom.XYM, []float64{c.X, c.Y, c.M})
	}
	return geom.NewPointFlat(geom.XY, []float64{c.X, c.Y})
}

// The intersection as a geometry: an empty geometry collection, a point, or
// the overlapping line string.
func FromIntersection(si advanced.SegmentIntersection) geom.T {
	if pt, ok := si.Point(); ok {
		return FromCoordinate(pt)
	}
	if start, end, ok := si.Overlap(); ok {
		if start.HasZ() && end.HasZ() {
			return geom.NewLineStringFlat(geom.XYZ, []float64{start.X, start.Y, start.Z, end.X, end.Y, end.Z})
		}
		return geom.NewLineStringFlat(geom.XY, []float64{start.X, start.Y, end.X, end.Y})
	}
	return geom.NewGeometryCollection()
}

func MarshalWKT(g geom.T) (string, error) {
	return wkt.Marshal(g)
}
