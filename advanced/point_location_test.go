package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOnSegment(t *testing.T) {
	cases := []struct {
		name     string
		p        Coordinate
		expected bool
	}{
		{"middle", XY(5, 5), true},
		{"start", XY(0, 0), true},
		{"inside near end", XY(9, 9), true},
		{"off the line", XY(5, 6), false},
		{"past the end", XY(10, 10), false},
		{"just off the line", XY(9, 9.00001), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, IsOnSegment(c.p, XY(0, 0), XY(9, 9)))
		})
	}

	t.Run("zero length", func(t *testing.T) {
		assert.True(t, IsOnSegment(XY(1, 1), XY(1, 1), XY(1, 1)))
		assert.False(t, IsOnSegment(XY(1, 2), XY(1, 1), XY(1, 1)))
	})
}

func TestIsOnLine(t *testing.T) {
	line := ring(0, 0, 10, 0, 10, 10, 20, 10)
	assert.True(t, IsOnLine(XY(0, 0), line))
	assert.True(t, IsOnLine(XY(10, 5), line))
	assert.True(t, IsOnLine(XY(15, 10), line))
	assert.True(t, IsOnLine(XY(20, 10), line))
	assert.False(t, IsOnLine(XY(5, 5), line))
	assert.False(t, IsOnLine(XY(25, 10), line))

	packed := NewPacked([]float64{
		0, 0, 1, 7,
		10, 0, 2, 7,
		10, 10, 3, 7,
	}, 4, 1)
	assert.True(t, IsOnLine(XY(5, 0), packed))
	assert.False(t, IsOnLine(XY(5, 1), packed))

	assert.False(t, IsOnLine(XY(0, 0), Coordinates{}))
}

func TestIsInRing(t *testing.T) {
	square := ring(0, 0, 4, 0, 4, 4, 0, 4, 0, 0)
	assert.True(t, IsInRing(XY(1, 1), square))
	assert.True(t, IsInRing(XY(4, 4), square))
	assert.False(t, IsInRing(XY(5, 5), square))
}
