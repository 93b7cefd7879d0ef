package internal

import "github.com/pkg/errors"

// Checking every ordinate of every geometry while converting it would mean
// threading errors through a pile of small helpers. Instead, the helpers
// panic, and the exported functions recover and convert to an error.

type ConversionError struct {
	error
}

// Panic with a ConversionError.
func Fatalf(format string, args ...interface{}) {
	panic(ConversionError{errors.Errorf(format, args...)})
}

// Call with the result of recover(). Panics that didn't come from Fatalf are
// passed on.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if conversionError, ok := r.(ConversionError); ok {
			return conversionError
		}
		panic(r)
	}
	return nil
}
