// Package divop implements integer division with selectable rounding.
//
// All divisions are carried out on 128-bit intermediates so that the products
// formed by the interpolation schemes from 64-bit operands never overflow.
package divop

import "fmt"

// Method selects how an inexact quotient is resolved to an integer.
type Method uint8

const (
	// Exact accepts only quotients with a zero remainder.
	Exact Method = iota

	// Nearest rounds to the closer integer, ties to even.
	Nearest

	// ForwardFill rounds towards negative infinity (floor).
	ForwardFill

	// BackwardFill rounds towards positive infinity (ceiling).
	BackwardFill
)

// Valid reports whether m is one of the four defined methods.
func (m Method) Valid() bool {
	return m <= BackwardFill
}

// String returns the canonical lower-case name of the method.
func (m Method) String() string {
	switch m {
	case Exact:
		return "exact"
	case Nearest:
		return "nearest"
	case ForwardFill:
		return "ffill"
	case BackwardFill:
		return "bfill"
	default:
		return fmt.Sprintf("method(%d)", uint8(m))
	}
}
