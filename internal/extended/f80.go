// Package extended provides F80, a finite floating-point value with a 64-bit
// mantissa.
//
// A 64-bit mantissa represents every uint64 and int64 exactly, which float64
// cannot do above 2^53. Interpolating nanosecond timestamps or large sample
// indices in float64 silently corrupts the low bits; F80 keeps them.
//
// F80 values are immutable: every operation returns a new value.
package extended

import (
	"math"
	"math/big"
)

// Precision is the mantissa width in bits.
const Precision = 64

var (
	half = FromFloat64(0.5)
	one  = FromUint64(1)
)

// F80 is a finite extended-precision float. The zero value is 0.
type F80 struct {
	v *big.Float
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(Precision).SetMode(big.ToNearestEven)
}

func (a F80) val() *big.Float {
	if a.v == nil {
		return newFloat()
	}
	return a.v
}

// Zero returns 0.
func Zero() F80 {
	return F80{v: newFloat()}
}

// FromUint64 returns u exactly.
func FromUint64(u uint64) F80 {
	return F80{v: newFloat().SetUint64(u)}
}

// FromInt64 returns i exactly.
func FromInt64(i int64) F80 {
	return F80{v: newFloat().SetInt64(i)}
}

// FromFloat64 returns f exactly. It panics if f is NaN or infinite.
func FromFloat64(f float64) F80 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("extended: value must be finite")
	}
	return F80{v: newFloat().SetFloat64(f)}
}

// Add returns a+b rounded to nearest even.
func (a F80) Add(b F80) F80 {
	return F80{v: newFloat().Add(a.val(), b.val())}
}

// Sub returns a-b rounded to nearest even.
func (a F80) Sub(b F80) F80 {
	return F80{v: newFloat().Sub(a.val(), b.val())}
}

// Mul returns a*b rounded to nearest even.
func (a F80) Mul(b F80) F80 {
	return F80{v: newFloat().Mul(a.val(), b.val())}
}

// Quo returns a/b rounded to nearest even. It panics if b is zero.
func (a F80) Quo(b F80) F80 {
	if b.val().Sign() == 0 {
		panic("extended: division by zero")
	}
	return F80{v: newFloat().Quo(a.val(), b.val())}
}

// Abs returns |a|.
func (a F80) Abs() F80 {
	return F80{v: newFloat().Abs(a.val())}
}

// Rem returns a - trunc(a/b)*b. The quotient is truncated exactly before
// rounding the remainder, so the result carries the sign of a.
// It panics if b is zero.
func (a F80) Rem(b F80) F80 {
	if b.val().Sign() == 0 {
		panic("extended: division by zero")
	}
	ra, _ := a.val().Rat(nil)
	rb, _ := b.val().Rat(nil)

	q := new(big.Rat).Quo(ra, rb)
	t := new(big.Int).Quo(q.Num(), q.Denom())

	r := new(big.Rat).Mul(new(big.Rat).SetInt(t), rb)
	r.Sub(ra, r)
	return F80{v: newFloat().SetRat(r)}
}

// Floor returns the greatest integer value <= a.
func (a F80) Floor() F80 {
	x := a.val()
	if x.IsInt() {
		return F80{v: newFloat().Set(x)}
	}
	i, _ := x.Int(nil)
	if x.Sign() < 0 {
		i.Sub(i, big.NewInt(1))
	}
	return F80{v: newFloat().SetInt(i)}
}

// Ceil returns the least integer value >= a.
func (a F80) Ceil() F80 {
	x := a.val()
	if x.IsInt() {
		return F80{v: newFloat().Set(x)}
	}
	i, _ := x.Int(nil)
	if x.Sign() > 0 {
		i.Add(i, big.NewInt(1))
	}
	return F80{v: newFloat().SetInt(i)}
}

// Round returns the nearest integer value, rounding half to even.
func (a F80) Round() F80 {
	floor := a.Floor()
	switch a.Sub(floor).Cmp(half) {
	case -1:
		return floor
	case 1:
		return floor.Add(one)
	default:
		if floor.isEven() {
			return floor
		}
		return floor.Add(one)
	}
}

// isEven reports whether the integer value a is even.
func (a F80) isEven() bool {
	i, _ := a.val().Int(nil)
	return i.Bit(0) == 0
}

// IsInt reports whether a has no fractional part.
func (a F80) IsInt() bool {
	return a.val().IsInt()
}

// Sign returns -1, 0 or +1 depending on the sign of a.
func (a F80) Sign() int {
	return a.val().Sign()
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a F80) Cmp(b F80) int {
	return a.val().Cmp(b.val())
}

// Uint64 truncates a towards zero, saturating at 0 and math.MaxUint64.
func (a F80) Uint64() uint64 {
	u, _ := a.val().Uint64()
	return u
}

// Float64 returns the float64 nearest to a.
func (a F80) Float64() float64 {
	f, _ := a.val().Float64()
	return f
}

// String formats a with enough digits to identify it uniquely.
func (a F80) String() string {
	return a.val().Text('g', -1)
}
