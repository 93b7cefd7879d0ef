package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, circularIndex(5, 5))
	assert.Equal(t, 4, circularIndex(-1, 5))
	assert.Equal(t, 2, circularIndex(-8, 5))
}

func TestEnvelope(t *testing.T) {
	// Endpoint order must not matter
	for _, env := range []struct{ p1, p2 Coordinate }{
		{XY(1, 5), XY(4, 2)},
		{XY(4, 2), XY(1, 5)},
	} {
		rect := envelope(env.p1, env.p2)
		assert.Equal(t, 1.0, rect.X.Lo)
		assert.Equal(t, 4.0, rect.X.Hi)
		assert.Equal(t, 2.0, rect.Y.Lo)
		assert.Equal(t, 5.0, rect.Y.Hi)

		assert.True(t, envelopeContains(env.p1, env.p2, XY(1, 2)))
		assert.True(t, envelopeContains(env.p1, env.p2, XY(2, 3)))
		assert.False(t, envelopeContains(env.p1, env.p2, XY(0.5, 3)))
	}

	t.Run("degenerate segment", func(t *testing.T) {
		assert.True(t, envelopeContains(XY(3, 3), XY(3, 3), XY(3, 3)))
		assert.False(t, envelopeContains(XY(3, 3), XY(3, 3), XY(3, 3.5)))
	})

	t.Run("intersect", func(t *testing.T) {
		assert.True(t, envelopesIntersect(XY(0, 0), XY(2, 2), XY(2, 2), XY(5, 3)))
		assert.True(t, envelopesIntersect(XY(0, 0), XY(10, 0), XY(5, -5), XY(5, 5)))
		assert.False(t, envelopesIntersect(XY(0, 0), XY(2, 2), XY(3, 0), XY(5, 3)))
	})

	t.Run("overlap centre", func(t *testing.T) {
		center := envelopeOverlapCenter(XY(0, 0), XY(4, 4), XY(2, 6), XY(6, 2))
		assert.Equal(t, 3.0, center.X)
		assert.Equal(t, 3.0, center.Y)
	})
}
