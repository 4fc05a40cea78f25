package scheme

import (
	"github.com/tphakala/go-xinterp/internal/divop"
	"github.com/tphakala/go-xinterp/internal/extended"
)

// Signed interpolates int64 values by shifting them onto uint64, where
// MaxInt64 - MinInt64 does not overflow.
type Signed struct{}

// Forward computes the unsigned forward on biased values.
func (Signed) Forward(x, x0, x1 uint64, f0, f1 int64) int64 {
	checkForward(x, x0, x1)
	return toSigned(lerp(x, x0, x1, toUnsigned(f0), toUnsigned(f1), divop.Nearest))
}

// Inverse computes the unsigned inverse on biased values.
func (Signed) Inverse(f int64, x0, x1 uint64, f0, f1 int64, m divop.Method) (uint64, bool) {
	checkInverse(f, f0, f1)
	return solve(toUnsigned(f), x0, x1, toUnsigned(f0), toUnsigned(f1), m)
}

// Distance returns |a - b|, which reaches 2^64-1 between MinInt64 and
// MaxInt64.
func (Signed) Distance(a, b int64) extended.F80 {
	return extended.FromUint64(absDiff(toUnsigned(a), toUnsigned(b)))
}

// Extend returns v exactly.
func (Signed) Extend(v int64) extended.F80 {
	return extended.FromInt64(v)
}

// toUnsigned maps v to v - MinInt64. Order is preserved.
func toUnsigned(v int64) uint64 {
	return uint64(v) ^ 1<<63
}

// toSigned is the inverse of toUnsigned.
func toSigned(u uint64) int64 {
	return int64(u ^ 1<<63)
}
