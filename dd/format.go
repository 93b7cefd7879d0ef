package dd

import (
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// A DD holds at most 2*53 significant bits plus the gap between its words, so
// 2048 bits is comfortably enough to hold hi+lo exactly for every finite pair.
const exactPrec = 2048

// printDigits is the number of significant decimal digits a DD can hold.
const printDigits = 32

// String formats x with up to 32 significant digits.
func (x DD) String() string {
	switch {
	case x.IsNaN():
		return "NaN"
	case math.IsInf(x.hi, 1):
		return "+Inf"
	case math.IsInf(x.hi, -1):
		return "-Inf"
	}
	return x.bigFloat().Text('g', printDigits)
}

func (x DD) bigFloat() *big.Float {
	f := new(big.Float).SetPrec(exactPrec).SetFloat64(x.hi)
	return f.Add(f, new(big.Float).SetPrec(exactPrec).SetFloat64(x.lo))
}

// Parse reads a decimal number, optionally in scientific notation, into the
// nearest DD. "NaN" is accepted in any case.
func Parse(s string) (DD, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") {
		return NaN(), nil
	}
	f, _, err := big.ParseFloat(s, 10, exactPrec, big.ToNearestEven)
	if err != nil {
		return DD{}, errors.Wrapf(err, "invalid number %q", s)
	}
	if f.IsInf() {
		return DD{}, errors.Errorf("number %q is out of range", s)
	}

	hi, _ := f.Float64()
	if math.IsInf(hi, 0) {
		return DD{}, errors.Errorf("number %q overflows a double", s)
	}
	rest := new(big.Float).SetPrec(exactPrec).Sub(f, new(big.Float).SetFloat64(hi))
	lo, _ := rest.Float64()

	// hi is already the nearest double, but renormalize in case lo rounded up
	// to half an ulp.
	sum := hi + lo
	return DD{sum, lo - (sum - hi)}, nil
}

// MustParse is like Parse but panics on malformed input. Useful for constants
// in tests and tables.
func MustParse(s string) DD {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}
