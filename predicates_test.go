package predicates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestPredicates(t *testing.T) {
	assert.Equal(t, Left, Orient(XY(0, 0), XY(10, 0), XY(5, 5)))

	square := []Coordinate{XY(0, 0), XY(4, 0), XY(4, 4), XY(0, 4), XY(0, 0)}
	assert.True(t, IsCCW(square))
	assert.Equal(t, Interior, Locate(XY(1, 1), square))
	assert.Equal(t, Boundary, Locate(XY(0, 2), square))
	assert.Equal(t, Exterior, Locate(XY(5, 5), square))

	si := Intersect(XY(0, 0), XY(10, 10), XY(0, 10), XY(10, 0))
	assert.True(t, si.IsProper())

	pt, ok := LineIntersection(XY(0, 0), XY(10, 10), XY(0, 10), XY(10, 0))
	require.True(t, ok)
	assert.True(t, pt.Equals2D(XY(5, 5)))
}

func TestLocateWKT(t *testing.T) {
	const donut = "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (4 4, 6 4, 6 6, 4 6, 4 4))"

	location, err := LocateWKT("POINT (2 2)", donut)
	require.NoError(t, err)
	assert.Equal(t, Interior, location)

	location, err = LocateWKT("POINT (5 5)", donut)
	require.NoError(t, err)
	assert.Equal(t, Exterior, location)

	_, err = LocateWKT("POINT (5 5)", "LINESTRING (0 0, 1 1)")
	assert.EqualError(t, err, "expected a polygon, got *geom.LineString")

	_, err = LocateWKT("POINT (5", donut)
	assert.Error(t, err)
}
