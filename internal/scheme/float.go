package scheme

import (
	"math/big"

	"github.com/tphakala/go-xinterp/internal/divop"
	"github.com/tphakala/go-xinterp/internal/extended"
)

// Float interpolates float64 values in extended precision.
type Float struct{}

// Forward returns (f0*(x1-x) + f1*(x-x0)) / (x1-x0) evaluated in extended
// precision and rounded once to the nearest float64. No integer rounding is
// applied.
func (Float) Forward(x, x0, x1 uint64, f0, f1 float64) float64 {
	checkForward(x, x0, x1)
	ex, ex0, ex1 := extended.FromUint64(x), extended.FromUint64(x0), extended.FromUint64(x1)
	ef0, ef1 := extended.FromFloat64(f0), extended.FromFloat64(f1)

	num := ef0.Mul(ex1.Sub(ex)).Add(ef1.Mul(ex.Sub(ex0)))
	return num.Quo(ex1.Sub(ex0)).Float64()
}

// Inverse solves x = x0 + (x1-x0)*(f-f0)/(f1-f0) in exact rational
// arithmetic and reduces it with m. Every float64 is a rational, so the
// solution never leaves [x0, x1] and Exact succeeds only for a true integer
// pre-image.
func (Float) Inverse(f float64, x0, x1 uint64, f0, f1 float64, m divop.Method) (uint64, bool) {
	checkInverse(f, f0, f1)
	rf, rf0, rf1 := ratOf(f), ratOf(f0), ratOf(f1)

	offset := new(big.Rat).Sub(rf, rf0)
	offset.Quo(offset, new(big.Rat).Sub(rf1, rf0))
	offset.Mul(offset, new(big.Rat).SetUint64(x1-x0))
	x := offset.Add(offset, new(big.Rat).SetUint64(x0))

	q, ok := divop.Big(x.Num(), x.Denom(), m)
	if !ok {
		return 0, false
	}
	return q.Uint64(), true
}

func ratOf(v float64) *big.Rat {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		panic("scheme: value must be finite")
	}
	return r
}

// Distance returns |a - b| rounded to the extended precision.
func (Float) Distance(a, b float64) extended.F80 {
	return extended.FromFloat64(a).Sub(extended.FromFloat64(b)).Abs()
}

// Extend returns v exactly.
func (Float) Extend(v float64) extended.F80 {
	return extended.FromFloat64(v)
}
