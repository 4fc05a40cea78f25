package divop

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Uint128 divides n by d and resolves the quotient with m.
//
// The boolean result is false only for Exact when the remainder is non-zero,
// in which case the returned quotient is zero. Uint128 panics if d is zero or
// if m is not a valid method.
func Uint128(n, d uint128.Uint128, m Method) (uint128.Uint128, bool) {
	if d.IsZero() {
		panic("divop: division by zero")
	}

	q, r := n.QuoRem(d)

	switch m {
	case Exact:
		if !r.IsZero() {
			return uint128.Zero, false
		}
		return q, true

	case Nearest:
		// Compare r against d-r instead of 2r against d: 2r may not fit.
		switch r.Cmp(d.Sub(r)) {
		case -1:
			return q, true
		case 1:
			return q.Add64(1), true
		default:
			if q.Lo&1 == 0 {
				return q, true
			}
			return q.Add64(1), true
		}

	case ForwardFill:
		return q, true

	case BackwardFill:
		if r.IsZero() {
			return q, true
		}
		return q.Add64(1), true

	default:
		panic(fmt.Sprintf("divop: unknown method %d", uint8(m)))
	}
}

var bigOne = big.NewInt(1)

// Big divides a non-negative n by a positive d of any width and resolves the
// quotient with m. The operands are not modified.
//
// The boolean result is false only for Exact when the remainder is non-zero.
// Big panics if n < 0, d <= 0 or m is not a valid method.
func Big(n, d *big.Int, m Method) (*big.Int, bool) {
	if d.Sign() <= 0 {
		panic("divop: divisor must be positive")
	}
	if n.Sign() < 0 {
		panic("divop: dividend must be non-negative")
	}

	q, r := new(big.Int).QuoRem(n, d, new(big.Int))

	switch m {
	case Exact:
		if r.Sign() != 0 {
			return nil, false
		}
		return q, true

	case Nearest:
		switch r.Cmp(new(big.Int).Sub(d, r)) {
		case -1:
			return q, true
		case 1:
			return q.Add(q, bigOne), true
		default:
			if q.Bit(0) == 0 {
				return q, true
			}
			return q.Add(q, bigOne), true
		}

	case ForwardFill:
		return q, true

	case BackwardFill:
		if r.Sign() != 0 {
			q.Add(q, bigOne)
		}
		return q, true

	default:
		panic(fmt.Sprintf("divop: unknown method %d", uint8(m)))
	}
}

// Divide divides n by a positive d and resolves the quotient with m.
//
// The magnitude of n is widened to 128 bits before dividing. For negative
// dividends Nearest rounds the magnitude (ties to even, symmetric around zero),
// ForwardFill floors and BackwardFill takes the ceiling, so ForwardFill and
// BackwardFill always bracket the true quotient. Divide panics if d <= 0.
func Divide[T constraints.Integer](n, d T, m Method) (T, bool) {
	if d <= 0 {
		panic("divop: divisor must be positive")
	}

	neg := n < 0
	mag := uint64(n)
	if neg {
		// two's complement negation of the sign-extended value
		mag = -mag
	}

	// A negative dividend flips the direction of the directed roundings.
	dm := m
	if neg {
		switch m {
		case ForwardFill:
			dm = BackwardFill
		case BackwardFill:
			dm = ForwardFill
		}
	}

	q, ok := Uint128(uint128.From64(mag), uint128.From64(uint64(d)), dm)
	if !ok {
		return 0, false
	}

	// |quotient| <= |n|, so the low word always holds it.
	if neg {
		return T(-q.Lo), true
	}
	return T(q.Lo), true
}
