// Package xinterp provides exact piecewise-linear interpolation over integer
// indices.
//
// A table of knots (xp[i], fp[i]) defines a function from uint64 indices to
// uint64, int64 or float64 values. Forward evaluation maps an index to a
// value; inverse evaluation maps a value back to an index under a selectable
// rounding method. All integer arithmetic runs on 128-bit intermediates and
// float64 values are evaluated with a 64-bit mantissa, so tables spanning the
// full uint64 range, or nanosecond timestamps, interpolate without overflow
// or silent precision loss.
//
// # Quick Start
//
// For a single evaluation:
//
//	v, err := xinterp.Eval([]uint64{0, 10}, []int64{20, 25}, 3) // 22
//
// For repeated queries, build an Interp once:
//
//	ip, err := xinterp.New([]uint64{0, 5}, []uint64{20, 30})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	x, err := ip.Inverse(23, xinterp.Nearest) // 2 (1.5 rounds to even)
//
// # Rounding Methods
//
// Forward evaluation of integer values always rounds to nearest, ties to
// even. Inverse evaluation takes a [Method]:
//
//   - [Exact]: only indices whose value is exactly f; otherwise [ErrNotFound].
//   - [Nearest]: the closest index, ties to even.
//   - [ForwardFill]: the last index at or before f.
//   - [BackwardFill]: the first index at or after f.
//
// Queries beyond the last knot clamp under Nearest and ForwardFill, and
// queries before the first knot clamp under Nearest and BackwardFill. Other
// combinations return [ErrOutOfBounds].
//
// # Monotonicity
//
// Forward queries need strictly increasing xp; inverse queries need strictly
// increasing fp. Each requirement is checked per direction, so a table whose
// values rise and fall can still be evaluated forward.
//
// # Simplification
//
// [Interp.Simplify] removes knots that deviate from the straight line
// between their neighbours by at most a tolerance (Douglas-Peucker), which
// keeps drift tables small.
//
// # Timestamps
//
// [Timeline] wraps an int64 table of Unix nanoseconds behind [time.Time].
//
// # Concurrency
//
// An Interp is immutable after construction and safe for concurrent use.
package xinterp
