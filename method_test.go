package xinterp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"exact", Exact},
		{"none", Exact},
		{"nearest", Nearest},
		{"Round", Nearest},
		{"ffill", ForwardFill},
		{"forward-fill", ForwardFill},
		{"pad", ForwardFill},
		{" bfill ", BackwardFill},
		{"backward-fill", BackwardFill},
		{"BACKFILL", BackwardFill},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "linear", "floor"} {
		_, err := ParseMethod(bad)
		assert.ErrorIs(t, err, ErrInvalidMethod, "%q", bad)
	}
}

func TestParseMethod_RoundTripsString(t *testing.T) {
	for _, m := range []Method{Exact, Nearest, ForwardFill, BackwardFill} {
		got, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}
