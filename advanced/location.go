package advanced

// Where a point lies relative to an area.
type Location int

const (
	Interior Location = iota
	Boundary
	Exterior
)

// The single letter used for the location in DE-9IM style matrices.
func (l Location) Symbol() rune {
	switch l {
	case Interior:
		return 'i'
	case Boundary:
		return 'b'
	case Exterior:
		return 'e'
	}
	return '?'
}

func (l Location) String() string {
	switch l {
	case Interior:
		return "interior"
	case Boundary:
		return "boundary"
	case Exterior:
		return "exterior"
	}
	return "invalid"
}
