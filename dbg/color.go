package dbg

import (
	"github.com/logrusorgru/aurora"

	"github.com/osuushi/predicates/advanced"
)

func ColorLocation(l advanced.Location) aurora.Value {
	switch l {
	case advanced.Interior:
		return aurora.Green(l)
	case advanced.Boundary:
		return aurora.Yellow(l)
	}
	return aurora.Red(l)
}

func ColorOrientation(o advanced.Orientation) aurora.Value {
	switch o {
	case advanced.Left:
		return aurora.Green(o)
	case advanced.Right:
		return aurora.Red(o)
	}
	return aurora.Yellow(o)
}

// Proper crossings are cyan, touches and overlaps yellow.
func ColorIntersection(si advanced.SegmentIntersection) aurora.Value {
	switch {
	case si.IsProper():
		return aurora.Cyan(si)
	case si.HasIntersection():
		return aurora.Yellow(si)
	}
	return aurora.Red(si)
}
