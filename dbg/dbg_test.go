package dbg

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/predicates/advanced"
)

func TestName(t *testing.T) {
	var nilPtr *advanced.RayCrossingCounter
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(nilPtr))

	counter := advanced.NewRayCrossingCounter(advanced.XY(0, 0))
	assert.Equal(t, Name(counter), Name(counter))
	assert.NotEqual(t, Name(counter), Name(advanced.NewRayCrossingCounter(advanced.XY(0, 0))))

	// Unset Z and M are NaN, which would defeat a plain map lookup
	segment := [2]advanced.Coordinate{advanced.XY(0, 0), advanced.XY(1, 1)}
	assert.Equal(t, Name(segment), Name([2]advanced.Coordinate{advanced.XY(0, 0), advanced.XY(1, 1)}))
	assert.NotEmpty(t, Name([]int{1, 2}))
}

func TestColors(t *testing.T) {
	assert.Contains(t, ColorLocation(advanced.Interior).String(), "interior")
	assert.Contains(t, ColorLocation(advanced.Exterior).String(), "exterior")
	assert.Contains(t, ColorOrientation(advanced.Left).String(), "left")

	si := advanced.IntersectSegments(advanced.XY(0, 0), advanced.XY(2, 2), advanced.XY(0, 2), advanced.XY(2, 0))
	assert.Contains(t, ColorIntersection(si).String(), "point (1, 1) proper")
}

func TestDraw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	scene := Scene{
		Rings:    []advanced.Sequence{advanced.Coordinates{advanced.XY(0, 0), advanced.XY(10, 0), advanced.XY(5, 10), advanced.XY(0, 0)}},
		Segments: [][2]advanced.Coordinate{{advanced.XY(-2, 5), advanced.XY(12, 5)}},
		Points:   []advanced.Coordinate{advanced.XY(5, 2)},
	}
	require.NoError(t, scene.Draw(path, 10))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	config, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, int(math.Round(14*10))+2*drawPadding, config.Width)
	assert.Equal(t, 100+2*drawPadding, config.Height)

	assert.Error(t, Scene{}.Draw(path, 10))
}
