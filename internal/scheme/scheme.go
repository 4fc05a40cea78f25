// Package scheme holds the two-point linear transforms behind the
// interpolation engine.
//
// A scheme maps an index x in [x0, x1] to a value in [f0, f1] (Forward) and
// back (Inverse). Integer value domains are computed on 128-bit intermediates;
// float64 values are lifted to a 64-bit-mantissa extended float so that
// indices above 2^53 keep every bit.
package scheme

import (
	"github.com/tphakala/go-xinterp/internal/divop"
	"github.com/tphakala/go-xinterp/internal/extended"
)

// Value is the type constraint for supported value domains.
type Value interface {
	uint64 | int64 | float64
}

// Scheme implements linear interpolation between two knots (x0, f0) and
// (x1, f1) for value type F.
//
// Callers must guarantee x0 < x1 and x0 <= x <= x1 for Forward, and
// f0 < f1 and f0 <= f <= f1 for Inverse. Violations panic.
type Scheme[F Value] interface {
	// Forward returns the value at index x, rounded to nearest for integers.
	Forward(x, x0, x1 uint64, f0, f1 F) F

	// Inverse returns the index whose value is f, resolved with m.
	// It reports false only for divop.Exact when no integer index maps to f.
	Inverse(f F, x0, x1 uint64, f0, f1 F, m divop.Method) (uint64, bool)

	// Distance returns |a - b|. It is exact for the integer domains, where
	// the difference can exceed the range of F.
	Distance(a, b F) extended.F80

	// Extend returns v as an extended float, exactly.
	Extend(v F) extended.F80
}

var (
	unsignedScheme Scheme[uint64]  = Unsigned{}
	signedScheme   Scheme[int64]   = Signed{}
	floatScheme    Scheme[float64] = Float{}
)

// For returns the Scheme for type F.
// The type switch happens once per engine, not per query.
func For[F Value]() Scheme[F] {
	var zero F
	switch any(zero).(type) {
	case uint64:
		s, ok := unsignedScheme.(Scheme[F])
		if !ok {
			panic("scheme: type assertion failed for uint64")
		}
		return s
	case int64:
		s, ok := signedScheme.(Scheme[F])
		if !ok {
			panic("scheme: type assertion failed for int64")
		}
		return s
	case float64:
		s, ok := floatScheme.(Scheme[F])
		if !ok {
			panic("scheme: type assertion failed for float64")
		}
		return s
	default:
		panic("scheme: unsupported value type")
	}
}

func checkForward(x, x0, x1 uint64) {
	if x0 >= x1 {
		panic("scheme: x1 must be greater than x0")
	}
	if x < x0 || x > x1 {
		panic("scheme: x must be in [x0, x1]")
	}
}

func checkInverse[F Value](f, f0, f1 F) {
	if f0 >= f1 {
		panic("scheme: f1 must be greater than f0")
	}
	if f < f0 || f > f1 {
		panic("scheme: f must be in [f0, f1]")
	}
}
