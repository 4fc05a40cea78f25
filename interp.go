package xinterp

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-xinterp/internal/scheme"
)

// Value is the type constraint for supported value domains.
type Value interface {
	uint64 | int64 | float64
}

// Errors returned by Interp. Messages are stable: "x out of bounds",
// "f not found", "xp must be strictly increasing" and so on.
var (
	// ErrOutOfBounds indicates a query outside the range covered by the knots.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrNotFound indicates an inverse query under Exact with no integer
	// pre-image.
	ErrNotFound = errors.New("not found")

	// ErrNotStrictlyIncreasing indicates the array searched by a query is
	// not strictly increasing.
	ErrNotStrictlyIncreasing = errors.New("must be strictly increasing")

	// ErrLengthMismatch indicates xp and fp have different lengths.
	ErrLengthMismatch = errors.New("xp and fp must have the same length")

	// ErrEmpty indicates no knots were given.
	ErrEmpty = errors.New("at least one knot is required")

	// ErrInvalidValue indicates a NaN, infinite or otherwise unusable value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidMethod indicates an unknown rounding method.
	ErrInvalidMethod = errors.New("invalid rounding method")
)

// Interp is a piecewise-linear function defined by knots (xp[i], fp[i]).
//
// Forward queries require xp to be strictly increasing and inverse queries
// require fp to be strictly increasing. Each direction is checked on its own,
// so a table usable in only one direction can still be built and queried.
//
// An Interp is immutable and safe for concurrent use.
type Interp[F Value] struct {
	xp []uint64
	fp []F

	forwardable bool
	inversable  bool

	scheme scheme.Scheme[F]
}

// New builds an Interp from copies of xp and fp.
func New[F Value](xp []uint64, fp []F) (*Interp[F], error) {
	if len(xp) != len(fp) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(xp), len(fp))
	}
	if len(xp) == 0 {
		return nil, ErrEmpty
	}
	for i, f := range fp {
		if !isFinite(f) {
			return nil, fmt.Errorf("%w: fp[%d] = %v", ErrInvalidValue, i, f)
		}
	}

	return newInterp(slices.Clone(xp), slices.Clone(fp)), nil
}

// newInterp takes ownership of xp and fp, which must be valid.
func newInterp[F Value](xp []uint64, fp []F) *Interp[F] {
	return &Interp[F]{
		xp:          xp,
		fp:          fp,
		forwardable: strictlyIncreasing(xp),
		inversable:  strictlyIncreasing(fp),
		scheme:      scheme.For[F](),
	}
}

// Forward returns the value at index x.
//
// Knot indices return their value unchanged. Between knots, integer values
// are rounded to nearest (ties to even) and float values are returned
// unrounded.
func (ip *Interp[F]) Forward(x uint64) (F, error) {
	var zero F
	if !ip.forwardable {
		return zero, fmt.Errorf("xp %w", ErrNotStrictlyIncreasing)
	}

	i, found := slices.BinarySearch(ip.xp, x)
	switch {
	case found:
		return ip.fp[i], nil
	case i == 0, i == len(ip.xp):
		return zero, fmt.Errorf("x %w", ErrOutOfBounds)
	}
	return ip.scheme.Forward(x, ip.xp[i-1], ip.xp[i], ip.fp[i-1], ip.fp[i]), nil
}

// Inverse returns the index whose value is f, resolved with m.
//
// Outside the knot range, Nearest and BackwardFill clamp to the first index
// below the range, Nearest and ForwardFill clamp to the last index above it.
// Every other combination returns ErrOutOfBounds. Between knots, Exact
// returns ErrNotFound unless f has an integer pre-image.
func (ip *Interp[F]) Inverse(f F, m Method) (uint64, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidMethod, m)
	}
	if !isFinite(f) {
		return 0, fmt.Errorf("%w: f = %v", ErrInvalidValue, f)
	}
	if !ip.inversable {
		return 0, fmt.Errorf("fp %w", ErrNotStrictlyIncreasing)
	}

	n := len(ip.fp)
	i, found := slices.BinarySearch(ip.fp, f)
	switch {
	case found:
		return ip.xp[i], nil

	case i == 0:
		if m == Nearest || m == BackwardFill {
			return ip.xp[0], nil
		}
		return 0, fmt.Errorf("f %w", ErrOutOfBounds)

	case i == n:
		if m == Nearest || m == ForwardFill {
			return ip.xp[n-1], nil
		}
		return 0, fmt.Errorf("f %w", ErrOutOfBounds)
	}

	x, ok := ip.scheme.Inverse(f, ip.xp[i-1], ip.xp[i], ip.fp[i-1], ip.fp[i], m)
	if !ok {
		return 0, fmt.Errorf("f %w", ErrNotFound)
	}
	return x, nil
}

// Len returns the number of knots.
func (ip *Interp[F]) Len() int {
	return len(ip.xp)
}

// Knots returns copies of the knot arrays.
func (ip *Interp[F]) Knots() (xp []uint64, fp []F) {
	return slices.Clone(ip.xp), slices.Clone(ip.fp)
}

// Forwardable reports whether xp is strictly increasing.
func (ip *Interp[F]) Forwardable() bool {
	return ip.forwardable
}

// Inversable reports whether fp is strictly increasing.
func (ip *Interp[F]) Inversable() bool {
	return ip.inversable
}

func strictlyIncreasing[T Value](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

func isFinite[F Value](f F) bool {
	if v, ok := any(f).(float64); ok {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	return true
}
