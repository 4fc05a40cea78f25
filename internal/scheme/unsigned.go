package scheme

import (
	"github.com/tphakala/go-xinterp/internal/divop"
	"github.com/tphakala/go-xinterp/internal/extended"
	"lukechampine.com/uint128"
)

// Unsigned interpolates uint64 values.
type Unsigned struct{}

// Forward computes round(f0*(x1-x) + f1*(x-x0), x1-x0).
func (Unsigned) Forward(x, x0, x1 uint64, f0, f1 uint64) uint64 {
	checkForward(x, x0, x1)
	return lerp(x, x0, x1, f0, f1, divop.Nearest)
}

// Inverse computes x0*(f1-f) + x1*(f-f0) over f1-f0, resolved with m.
func (Unsigned) Inverse(f, x0, x1, f0, f1 uint64, m divop.Method) (uint64, bool) {
	checkInverse(f, f0, f1)
	return solve(f, x0, x1, f0, f1, m)
}

// Distance returns |a - b|.
func (Unsigned) Distance(a, b uint64) extended.F80 {
	return extended.FromUint64(absDiff(a, b))
}

// Extend returns v exactly.
func (Unsigned) Extend(v uint64) extended.F80 {
	return extended.FromUint64(v)
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// lerp evaluates the forward formula on unsigned operands. The weighted sum
// is a convex combination of f0 and f1, so the quotient fits in 64 bits.
func lerp(x, x0, x1, f0, f1 uint64, m divop.Method) uint64 {
	num := uint128.From64(f0).Mul64(x1 - x).Add(uint128.From64(f1).Mul64(x - x0))
	q, _ := divop.Uint128(num, uint128.From64(x1-x0), m)
	return q.Lo
}

func solve(f, x0, x1, f0, f1 uint64, m divop.Method) (uint64, bool) {
	num := uint128.From64(x0).Mul64(f1 - f).Add(uint128.From64(x1).Mul64(f - f0))
	q, ok := divop.Uint128(num, uint128.From64(f1-f0), m)
	if !ok {
		return 0, false
	}
	return q.Lo, true
}
