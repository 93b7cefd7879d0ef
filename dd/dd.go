// Package dd implements double-double arithmetic: values represented as the
// unevaluated sum of two float64s, giving about 106 bits of mantissa.
//
// A DD is a plain value. Every operation returns a fresh, renormalized value
// and never modifies its receiver, so DDs can be shared freely between
// goroutines.
//
// The algorithms are the classic error-free transformations of Dekker and
// Knuth, as popularized by the QD library of Hida, Li and Bailey.
package dd

import (
	"fmt"
	"math"
)

const (
	// Eps is the relative precision of a DD (2^-106).
	Eps = 1.23259516440783e-32
	// Split is the Dekker splitting constant for IEEE doubles (2^27 + 1).
	Split = 134217729.0
)

// DD is a double-double value. The represented number is hi + lo, with
// |lo| <= ulp(hi)/2.
type DD struct {
	hi, lo float64
}

// New returns the DD with the value x.
func New(x float64) DD {
	return DD{hi: x}
}

// NewHiLo returns a DD from its two components. The caller is responsible for
// them already being normalized.
func NewHiLo(hi, lo float64) DD {
	return DD{hi: hi, lo: lo}
}

// The value nearest to Pi.
func Pi() DD {
	return DD{3.141592653589793116e+00, 1.224646799147353207e-16}
}

// The value nearest to 2*Pi.
func TwoPi() DD {
	return DD{6.283185307179586232e+00, 2.449293598294706414e-16}
}

// The value nearest to Pi/2.
func HalfPi() DD {
	return DD{1.570796326794896558e+00, 6.123233995736766036e-17}
}

// The value nearest to e.
func E() DD {
	return DD{2.718281828459045091e+00, 1.445646891729250158e-16}
}

// NaN is the result of an operation with no valid numeric answer.
func NaN() DD {
	return DD{math.NaN(), math.NaN()}
}

func (x DD) Hi() float64 { return x.hi }
func (x DD) Lo() float64 { return x.lo }

// Add returns x + y.
func (x DD) Add(y DD) DD {
	return x.addHiLo(y.hi, y.lo)
}

// AddFloat returns x + y. This is cheaper than Add(New(y)).
func (x DD) AddFloat(y float64) DD {
	ss := x.hi + y
	e := ss - x.hi
	s := ss - e
	s = (y - e) + (x.hi - s)
	f := s + x.lo
	hh := ss + f
	h := f + (ss - hh)
	hi := hh + h
	return DD{hi, h + (hh - hi)}
}

func (x DD) addHiLo(yhi, ylo float64) DD {
	ss := x.hi + yhi
	tt := x.lo + ylo
	e := ss - x.hi
	f := tt - x.lo
	s := ss - e
	t := tt - f
	s = (yhi - e) + (x.hi - s)
	t = (ylo - f) + (x.lo - t)
	e = s + tt
	hh := ss + e
	h := e + (ss - hh)
	e = t + h

	hi := hh + e
	return DD{hi, e + (hh - hi)}
}

// Sub returns x - y.
func (x DD) Sub(y DD) DD {
	if x.IsNaN() {
		return x
	}
	return x.addHiLo(-y.hi, -y.lo)
}

// SubFloat returns x - y.
func (x DD) SubFloat(y float64) DD {
	if x.IsNaN() {
		return x
	}
	return x.addHiLo(-y, 0)
}

// Neg returns -x.
func (x DD) Neg() DD {
	if x.IsNaN() {
		return x
	}
	return DD{-x.hi, -x.lo}
}

// Mul returns x * y.
func (x DD) Mul(y DD) DD {
	if y.IsNaN() {
		return NaN()
	}
	return x.mulHiLo(y.hi, y.lo)
}

// MulFloat returns x * y.
func (x DD) MulFloat(y float64) DD {
	if math.IsNaN(y) {
		return NaN()
	}
	return x.mulHiLo(y, 0)
}

func (x DD) mulHiLo(yhi, ylo float64) DD {
	cc := Split * x.hi
	hx := cc - x.hi
	c := Split * yhi
	hx = cc - hx
	tx := x.hi - hx
	hy := c - yhi
	cc = x.hi * yhi
	hy = c - hy
	ty := yhi - hy
	c = ((((hx*hy - cc) + hx*ty) + tx*hy) + tx*ty) + (x.hi*ylo + x.lo*yhi)
	hi := cc + c
	hx = cc - hi
	return DD{hi, c + hx}
}

// Div returns x / y. Dividing by a DD whose high word is zero yields NaN.
func (x DD) Div(y DD) DD {
	return x.divHiLo(y.hi, y.lo)
}

// DivFloat returns x / y.
func (x DD) DivFloat(y float64) DD {
	if math.IsNaN(y) {
		return NaN()
	}
	return x.divHiLo(y, 0)
}

func (x DD) divHiLo(yhi, ylo float64) DD {
	cc := x.hi / yhi
	c := Split * cc
	hc := c - cc
	u := Split * yhi
	hc = c - hc
	tc := cc - hc
	hy := u - yhi
	uu := cc * yhi
	hy = u - hy
	ty := yhi - hy
	u = (((hc*hy - uu) + hc*ty) + tc*hy) + tc*ty
	c = ((((x.hi - uu) - u) + x.lo) - cc*ylo) / yhi
	u = cc + c
	return DD{u, (cc - u) + c}
}

// Reciprocal returns 1 / x.
func (x DD) Reciprocal() DD {
	cc := 1.0 / x.hi
	c := Split * cc
	hc := c - cc
	u := Split * x.hi
	hc = c - hc
	tc := cc - hc
	hy := u - x.hi
	uu := cc * x.hi
	hy = u - hy
	ty := x.hi - hy
	u = (((hc*hy - uu) + hc*ty) + tc*hy) + tc*ty
	c = (((1.0 - uu) - u) - cc*x.lo) / x.hi
	hi := cc + c
	return DD{hi, (cc - hi) + c}
}

// Floor returns the largest integral value not greater than x.
func (x DD) Floor() DD {
	if x.IsNaN() {
		return NaN()
	}
	fhi := math.Floor(x.hi)
	flo := 0.0
	// hi is already integral, so the fraction lives in lo
	if fhi == x.hi {
		flo = math.Floor(x.lo)
	}
	return DD{fhi, flo}
}

// Ceil returns the smallest integral value not less than x.
func (x DD) Ceil() DD {
	if x.IsNaN() {
		return NaN()
	}
	fhi := math.Ceil(x.hi)
	flo := 0.0
	if fhi == x.hi {
		flo = math.Ceil(x.lo)
	}
	return DD{fhi, flo}
}

// Rint rounds x to the nearest integer, with halves rounding up.
func (x DD) Rint() DD {
	if x.IsNaN() {
		return x
	}
	return x.AddFloat(0.5).Floor()
}

// Trunc rounds x towards zero.
func (x DD) Trunc() DD {
	if x.IsNaN() {
		return NaN()
	}
	if x.IsPositive() {
		return x.Floor()
	}
	return x.Ceil()
}

// Signum returns 1, -1 or 0 according to the sign of x.
func (x DD) Signum() int {
	switch {
	case x.hi > 0:
		return 1
	case x.hi < 0:
		return -1
	case x.lo > 0:
		return 1
	case x.lo < 0:
		return -1
	}
	return 0
}

func (x DD) Abs() DD {
	if x.IsNaN() {
		return NaN()
	}
	if x.IsNegative() {
		return x.Neg()
	}
	return x
}

func (x DD) Sqr() DD {
	return x.Mul(x)
}

// Sqrt returns the square root of x, or NaN if x is negative.
//
// Uses Karp's trick: if r approximates 1/sqrt(x), then
//
//	sqrt(x) = x*r + [x - (x*r)^2] * r/2
//
// which doubles the accuracy of the approximation.
func (x DD) Sqrt() DD {
	if x.IsZero() {
		return New(0)
	}
	if x.IsNegative() {
		return NaN()
	}
	r := 1.0 / math.Sqrt(x.hi)
	ax := New(x.hi * r)
	diff := x.Sub(ax.Sqr())
	return ax.AddFloat(diff.hi * (r * 0.5))
}

// Pow returns x raised to the integer power exp, using binary exponentiation.
func (x DD) Pow(exp int) DD {
	if exp == 0 {
		return New(1)
	}
	r := x
	s := New(1)
	n := exp
	if n < 0 {
		n = -n
	}
	if n > 1 {
		for n > 0 {
			if n%2 == 1 {
				s = s.Mul(r)
			}
			n /= 2
			if n > 0 {
				r = r.Sqr()
			}
		}
	} else {
		s = r
	}
	if exp < 0 {
		return s.Reciprocal()
	}
	return s
}

func (x DD) Min(y DD) DD {
	if x.Le(y) {
		return x
	}
	return y
}

func (x DD) Max(y DD) DD {
	if x.Ge(y) {
		return x
	}
	return y
}

// Float64 returns the nearest float64 to x.
func (x DD) Float64() float64 {
	return x.hi + x.lo
}

// Int truncates the high word to an int.
func (x DD) Int() int {
	return int(x.hi)
}

func (x DD) IsZero() bool {
	return x.hi == 0 && x.lo == 0
}

func (x DD) IsNegative() bool {
	return x.hi < 0 || (x.hi == 0 && x.lo < 0)
}

func (x DD) IsPositive() bool {
	return x.hi > 0 || (x.hi == 0 && x.lo > 0)
}

func (x DD) IsNaN() bool {
	return math.IsNaN(x.hi)
}

// Equal reports whether both words of x and y are identical.
func (x DD) Equal(y DD) bool {
	return x.hi == y.hi && x.lo == y.lo
}

func (x DD) Gt(y DD) bool {
	return x.hi > y.hi || (x.hi == y.hi && x.lo > y.lo)
}

func (x DD) Ge(y DD) bool {
	return x.hi > y.hi || (x.hi == y.hi && x.lo >= y.lo)
}

func (x DD) Lt(y DD) bool {
	return x.hi < y.hi || (x.hi == y.hi && x.lo < y.lo)
}

func (x DD) Le(y DD) bool {
	return x.hi < y.hi || (x.hi == y.hi && x.lo <= y.lo)
}

// Cmp returns -1, 0 or 1 as x is less than, equal to or greater than y.
func (x DD) Cmp(y DD) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// Dump shows both words, for debugging.
func (x DD) Dump() string {
	return fmt.Sprintf("DD<%v, %v>", x.hi, x.lo)
}

// Determinant computes x1*y2 - y1*x2 in double-double precision.
func Determinant(x1, y1, x2, y2 DD) DD {
	return x1.Mul(y2).Sub(y1.Mul(x2))
}

// DeterminantFloat computes x1*y2 - y1*x2 in double-double precision.
func DeterminantFloat(x1, y1, x2, y2 float64) DD {
	return Determinant(New(x1), New(y1), New(x2), New(y2))
}

// Sqr returns x*x exactly.
func Sqr(x float64) DD {
	return New(x).MulFloat(x)
}

// Sqrt returns the double-double square root of x.
func Sqrt(x float64) DD {
	return New(x).Sqrt()
}
