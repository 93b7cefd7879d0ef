package dbg

import (
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/predicates/advanced"
)

// This is for debugging purposes only

const drawPadding = 20

// Things to draw. Rings are filled by the even-odd rule, which is the rule
// the ray crossing locator follows, so a point that lands in a filled area
// should locate as interior.
type Scene struct {
	Rings    []advanced.Sequence
	Segments [][2]advanced.Coordinate
	Points   []advanced.Coordinate
}

func (s Scene) bounds() r2.Rect {
	bounds := r2.EmptyRect()
	add := func(c advanced.Coordinate) {
		bounds = bounds.AddPoint(r2.Point{X: c.X, Y: c.Y})
	}
	for _, ring := range s.Rings {
		for i := 0; i < ring.Len(); i++ {
			add(ring.At(i))
		}
	}
	for _, seg := range s.Segments {
		add(seg[0])
		add(seg[1])
	}
	for _, p := range s.Points {
		add(p)
	}
	return bounds
}

// Render the scene to a PNG at path. Scale is pixels per unit.
func (s Scene) Draw(path string, scale float64) error {
	bounds := s.bounds()
	if bounds.IsEmpty() {
		return errors.New("nothing to draw")
	}

	// Set up the context
	width := int(scale*bounds.X.Length()) + drawPadding*2
	height := int(scale*bounds.Y.Length()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.X.Lo, -bounds.Y.Lo)

	c.SetLineWidth(2)
	for _, ring := range s.Rings {
		if ring.Len() == 0 {
			continue
		}
		first := ring.At(0)
		c.MoveTo(first.X, first.Y)
		for i := 1; i < ring.Len(); i++ {
			p := ring.At(i)
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 1, 0)
	for _, seg := range s.Segments {
		c.DrawLine(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
		c.Stroke()
	}

	c.SetRGB(1, 0, 0)
	for _, p := range s.Points {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "could not save %s", path)
}

// Print the image inline, for terminals that support it.
func Show(path string) {
	imgcat.CatFile(path, os.Stdout)
}
