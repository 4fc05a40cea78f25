// Package testutil provides reusable test helpers for interpolation tests.
package testutil

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/interp"
)

// Default tolerances for float comparisons.
const (
	DefaultTolerance = 1e-9
	RelTolerance     = 1e-12
)

// AssertMonotonic verifies that a slice is non-decreasing.
func AssertMonotonic[T constraints.Ordered](t testing.TB, s []T, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t,
				fmt.Sprintf("not monotonic: s[%d]=%v < s[%d]=%v", i, s[i], i-1, s[i-1]),
				msgAndArgs...)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element exceeds its
// predecessor.
func AssertStrictlyIncreasing[T constraints.Ordered](t testing.TB, s []T, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t,
				fmt.Sprintf("not strictly increasing: s[%d]=%v <= s[%d]=%v", i, s[i], i-1, s[i-1]),
				msgAndArgs...)
		}
	}
	return true
}

// AssertSubset verifies that every element of sub appears in super.
func AssertSubset[T comparable](t testing.TB, super, sub []T, msgAndArgs ...any) bool {
	t.Helper()
	for _, v := range sub {
		if !slices.Contains(super, v) {
			return assert.Fail(t,
				fmt.Sprintf("not a subset: %v is missing from %v", v, super),
				msgAndArgs...)
		}
	}
	return true
}

// AssertNoDiff verifies that want and got are equal under go-cmp and prints
// a (-want +got) diff otherwise. time.Time values compare with Equal.
func AssertNoDiff(t testing.TB, want, got any, opts ...cmp.Option) bool {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		return assert.Fail(t, "unexpected difference", "(-want +got):\n%s", diff)
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance.
func AssertRelativeError(t testing.TB, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t,
			fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
				relError, tolerance, expected, actual),
			msgAndArgs...)
	}
	return true
}

// Reference returns a float64 piecewise-linear evaluator over the knots,
// backed by gonum. It serves as an independent oracle for small indices,
// where float64 represents every index exactly.
func Reference(t *testing.T, xp []uint64, fp []float64) func(x uint64) float64 {
	t.Helper()
	require.GreaterOrEqual(t, len(xp), 2, "reference needs at least two knots")

	xs := make([]float64, len(xp))
	for i, x := range xp {
		xs[i] = float64(x)
	}
	var pl interp.PiecewiseLinear
	require.NoError(t, pl.Fit(xs, fp))

	return func(x uint64) float64 {
		return pl.Predict(float64(x))
	}
}

// RandomKnots returns n knots with strictly increasing indices and values.
// Index gaps are drawn from [1, maxStep] and value gaps from [1, maxRise].
func RandomKnots(rng *rand.Rand, n int, maxStep uint64, maxRise int64) ([]uint64, []int64) {
	xp := make([]uint64, n)
	fp := make([]int64, n)
	var x uint64
	f := -rng.Int64N(maxRise * int64(n))
	for i := range n {
		xp[i] = x
		fp[i] = f
		x += rng.Uint64N(maxStep) + 1
		f += rng.Int64N(maxRise) + 1
	}
	return xp, fp
}

// NewRand returns a deterministic generator for reproducible tests.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
