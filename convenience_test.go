package xinterp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	got, err := Eval([]uint64{0, 10}, []int64{20, 25}, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(22), got)

	_, err = Eval([]uint64{0, 10}, []int64{20, 25}, 11)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Eval([]uint64{0, 10}, []float64{20}, 3)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSolve(t *testing.T) {
	xp := []uint64{0, 5}
	fp := []uint64{20, 30}

	got, err := Solve(xp, fp, 23, Nearest)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got)

	_, err = Solve(xp, fp, 21, Exact)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Solve(xp, fp, 19, Exact)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Solve(nil, []uint64{}, 1, Exact)
	assert.ErrorIs(t, err, ErrEmpty)
}
