package advanced

import "github.com/osuushi/predicates/dd"

// The centre of the circle through a, b and c. Undefined (non-finite) for
// collinear points.
func Circumcentre(a, b, c Coordinate) Coordinate {
	cx, cy := c.X, c.Y
	ax, ay := a.X-cx, a.Y-cy
	bx, by := b.X-cx, b.Y-cy

	denom := 2 * det(ax, ay, bx, by)
	numx := det(ay, ax*ax+ay*ay, by, bx*bx+by*by)
	numy := det(ax, ax*ax+ay*ay, bx, bx*bx+by*by)
	return XY(cx-numx/denom, cy+numy/denom)
}

// Circumcentre, with every intermediate kept in double-double. The result
// only gets rounded to float64 at the very end, so equal circles give equal
// centres even for long thin triangles far from the origin.
func CircumcentreDD(a, b, c Coordinate) Coordinate {
	ax := dd.New(a.X).SubFloat(c.X)
	ay := dd.New(a.Y).SubFloat(c.Y)
	bx := dd.New(b.X).SubFloat(c.X)
	by := dd.New(b.Y).SubFloat(c.Y)

	denom := dd.Determinant(ax, ay, bx, by).MulFloat(2)
	asqr := ax.Sqr().Add(ay.Sqr())
	bsqr := bx.Sqr().Add(by.Sqr())
	numx := dd.Determinant(ay, asqr, by, bsqr)
	numy := dd.Determinant(ax, asqr, bx, bsqr)

	ccx := dd.New(c.X).Sub(numx.Div(denom)).Float64()
	ccy := dd.New(c.Y).Add(numy.Div(denom)).Float64()
	return XY(ccx, ccy)
}

func det(m00, m01, m10, m11 float64) float64 {
	return m00*m11 - m01*m10
}
