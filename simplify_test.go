package xinterp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-xinterp/internal/testutil"
)

func assertKnots[F Value](t *testing.T, ip *Interp[F], wantX []uint64, wantF []F) {
	t.Helper()
	xp, fp := ip.Knots()
	testutil.AssertNoDiff(t, wantX, xp)
	testutil.AssertNoDiff(t, wantF, fp)
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name    string
		xp      []uint64
		fp      []int64
		epsilon int64
		wantX   []uint64
		wantF   []int64
	}{
		{
			name: "single knot", xp: []uint64{0}, fp: []int64{42}, epsilon: 0,
			wantX: []uint64{0}, wantF: []int64{42},
		},
		{
			name: "two knots", xp: []uint64{0, 1}, fp: []int64{10, 20}, epsilon: 0,
			wantX: []uint64{0, 1}, wantF: []int64{10, 20},
		},
		{
			name: "collinear", xp: []uint64{0, 5, 10}, fp: []int64{20, 22, 24}, epsilon: 0,
			wantX: []uint64{0, 10}, wantF: []int64{20, 24},
		},
		{
			name: "deviation above epsilon", xp: []uint64{0, 5, 10}, fp: []int64{20, 36, 40}, epsilon: 4,
			wantX: []uint64{0, 5, 10}, wantF: []int64{20, 36, 40},
		},
		{
			name: "deviation equal to epsilon", xp: []uint64{0, 5, 10}, fp: []int64{20, 36, 40}, epsilon: 6,
			wantX: []uint64{0, 10}, wantF: []int64{20, 40},
		},
		{
			name: "peak kept", xp: []uint64{0, 2, 4, 6, 8}, fp: []int64{0, 1, 10, 16, 20}, epsilon: 2,
			wantX: []uint64{0, 2, 4, 8}, wantF: []int64{0, 1, 10, 20},
		},
		{
			name: "endpoints only", xp: []uint64{0, 2, 4, 6, 8}, fp: []int64{0, 1, 10, 16, 20}, epsilon: 10,
			wantX: []uint64{0, 8}, wantF: []int64{0, 20},
		},
		{
			name: "non-monotonic values", xp: []uint64{0, 10, 20}, fp: []int64{0, 100, 0}, epsilon: 50,
			wantX: []uint64{0, 10, 20}, wantF: []int64{0, 100, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := mustNew(t, tt.xp, tt.fp)
			got, err := ip.Simplify(tt.epsilon)
			require.NoError(t, err)
			assertKnots(t, got, tt.wantX, tt.wantF)

			// The source is left intact.
			assertKnots(t, ip, tt.xp, tt.fp)
		})
	}
}

func TestSimplify_Float(t *testing.T) {
	ip := mustNew(t, []uint64{0, 1, 2, 3}, []float64{0, 0.1, 0.2, 0.3})
	got, err := ip.Simplify(1e-6)
	require.NoError(t, err)
	assertKnots(t, got, []uint64{0, 3}, []float64{0, 0.3})
}

func TestSimplify_Unsigned(t *testing.T) {
	ip := mustNew(t, []uint64{0, 1, 2, 3, 4}, []uint64{0, 10, 20, 30, 0})
	got, err := ip.Simplify(0)
	require.NoError(t, err)
	assertKnots(t, got, []uint64{0, 3, 4}, []uint64{0, 30, 0})
	assert.False(t, got.Inversable())
}

func TestSimplify_RecomputesMonotonicity(t *testing.T) {
	ip := mustNew(t, []uint64{0, 5, 10}, []int64{0, -1, 10})
	require.False(t, ip.Inversable())

	got, err := ip.Simplify(100)
	require.NoError(t, err)
	assert.True(t, got.Inversable())
}

// TestSimplify_DeviationBeyondInt64 covers signed deviations larger than
// math.MaxInt64, which must neither be capped against epsilon nor tie with
// each other.
func TestSimplify_DeviationBeyondInt64(t *testing.T) {
	ip := mustNew(t, []uint64{0, 1, 2}, []int64{math.MinInt64, math.MaxInt64, math.MinInt64})
	simplified, err := ip.Simplify(math.MaxInt64)
	require.NoError(t, err)
	assertKnots(t, simplified, []uint64{0, 1, 2}, []int64{math.MinInt64, math.MaxInt64, math.MinInt64})

	// Deviations 2^64-2 at x=1 and 2^64-1 at x=2: the larger one is kept, and
	// the segment through it leaves x=1 within epsilon.
	ip = mustNew(t, []uint64{0, 1, 2, 3}, []int64{math.MinInt64, math.MaxInt64 - 1, math.MaxInt64, math.MinInt64})
	simplified, err = ip.Simplify(math.MaxInt64)
	require.NoError(t, err)
	assertKnots(t, simplified, []uint64{0, 2, 3}, []int64{math.MinInt64, math.MaxInt64, math.MinInt64})
}

func TestSimplify_Errors(t *testing.T) {
	ip := mustNew(t, []uint64{0, 0, 1}, []int64{0, 1, 2})
	_, err := ip.Simplify(0)
	assert.ErrorIs(t, err, ErrNotStrictlyIncreasing)

	ip = mustNew(t, []uint64{0, 1, 2}, []int64{0, 1, 2})
	_, err = ip.Simplify(-1)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

// TestSimplify_Superset checks that a smaller epsilon never drops a knot a
// larger epsilon keeps.
func TestSimplify_Superset(t *testing.T) {
	rng := testutil.NewRand(3)
	for range 20 {
		xp := make([]uint64, 200)
		fp := make([]int64, 200)
		var x uint64
		for i := range xp {
			x += rng.Uint64N(10) + 1
			xp[i] = x
			fp[i] = rng.Int64N(1000) - 500
		}
		ip := mustNew(t, xp, fp)

		var prev []uint64
		for _, eps := range []int64{0, 10, 50, 100, 250, 1000} {
			s, err := ip.Simplify(eps)
			require.NoError(t, err)
			kept, _ := s.Knots()

			testutil.AssertStrictlyIncreasing(t, kept)
			assert.Equal(t, xp[0], kept[0])
			assert.Equal(t, xp[len(xp)-1], kept[len(kept)-1])
			if prev != nil {
				testutil.AssertSubset(t, prev, kept, "eps=%d", eps)
			}
			prev = kept
		}
	}
}

func BenchmarkSimplify(b *testing.B) {
	rng := testutil.NewRand(5)
	xp := make([]uint64, 10000)
	fp := make([]int64, 10000)
	for i := range xp {
		xp[i] = uint64(i) * 100
		fp[i] = rng.Int64N(1 << 20)
	}
	ip, err := New(xp, fp)
	require.NoError(b, err)
	for b.Loop() {
		_, _ = ip.Simplify(1 << 10)
	}
}
