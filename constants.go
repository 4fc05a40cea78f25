package xinterp

import (
	"math"
	"time"
)

// Simplification
const (
	minSimplifyKnots = 3 // Fewer knots leave no interior knot to drop
)

// Accepted method names, including the pandas-style aliases
var methodNames = map[string]Method{
	"exact":         Exact,
	"none":          Exact,
	"nearest":       Nearest,
	"round":         Nearest,
	"ffill":         ForwardFill,
	"forward-fill":  ForwardFill,
	"pad":           ForwardFill,
	"bfill":         BackwardFill,
	"backward-fill": BackwardFill,
	"backfill":      BackwardFill,
}

// Instants representable as int64 Unix nanoseconds
var (
	minTime = time.Unix(0, math.MinInt64)
	maxTime = time.Unix(0, math.MaxInt64)
)
