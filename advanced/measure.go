package advanced

import "math"

// The signed area of a closed ring by the shoelace formula: positive when the
// ring runs clockwise, negative when counter-clockwise. X is taken relative to
// the first point to keep the products small.
func SignedRingArea(ring Sequence) float64 {
	n := ring.Len()
	if n < 3 {
		return 0
	}
	x0 := ring.At(0).X
	sum := 0.0
	prev, cur := ring.At(0), ring.At(1)
	for i := 1; i < n-1; i++ {
		next := ring.At(i + 1)
		sum += (cur.X - x0) * (prev.Y - next.Y)
		prev, cur = cur, next
	}
	return sum / 2
}

func RingArea(ring Sequence) float64 {
	return math.Abs(SignedRingArea(ring))
}

// The total length of a line.
func LineLength(line Sequence) float64 {
	n := line.Len()
	if n <= 1 {
		return 0
	}
	length := 0.0
	prev := line.At(0)
	for i := 1; i < n; i++ {
		cur := line.At(i)
		length += prev.Distance(cur)
		prev = cur
	}
	return length
}
