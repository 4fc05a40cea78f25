package xinterp

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-xinterp/internal/divop"
)

// Method selects how an inexact inverse query resolves to an index.
type Method = divop.Method

const (
	// Exact accepts only indices whose value is exactly the query.
	Exact = divop.Exact

	// Nearest rounds to the closest index, ties to even.
	Nearest = divop.Nearest

	// ForwardFill rounds down to the previous index.
	ForwardFill = divop.ForwardFill

	// BackwardFill rounds up to the next index.
	BackwardFill = divop.BackwardFill
)

// ParseMethod converts a method name to a Method. Matching is case
// insensitive; the empty string is rejected.
func ParseMethod(s string) (Method, error) {
	m, ok := methodNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Exact, fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
	return m, nil
}
