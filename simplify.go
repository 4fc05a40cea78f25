package xinterp

import (
	"fmt"

	"github.com/tphakala/go-xinterp/internal/extended"
)

// span is a range of knot indices [start, end] awaiting inspection.
type span struct {
	start, end int
}

// Simplify returns a new Interp that drops knots whose removal moves the
// curve by at most epsilon (Douglas-Peucker).
//
// The first and last knots are always kept. Deviation is measured along the
// value axis: for every interior knot of a span, the distance between its
// value and the straight segment joining the span's endpoints, evaluated at
// its index. Integer deviations are compared exactly, including those beyond
// the range of F. A smaller epsilon keeps a superset of the knots kept by a
// larger one.
//
// Simplify requires xp to be strictly increasing and epsilon to be
// non-negative. The receiver is not modified.
func (ip *Interp[F]) Simplify(epsilon F) (*Interp[F], error) {
	if !ip.forwardable {
		return nil, fmt.Errorf("xp %w", ErrNotStrictlyIncreasing)
	}
	var zero F
	if !isFinite(epsilon) || epsilon < zero {
		return nil, fmt.Errorf("%w: epsilon = %v", ErrInvalidValue, epsilon)
	}

	n := len(ip.xp)
	if n < minSimplifyKnots {
		xp, fp := ip.Knots()
		return newInterp(xp, fp), nil
	}

	eps := ip.scheme.Extend(epsilon)
	keep := make([]bool, n)
	keep[0], keep[n-1] = true, true

	stack := []span{{0, n - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x0, x1 := ip.xp[s.start], ip.xp[s.end]
		f0, f1 := ip.fp[s.start], ip.fp[s.end]

		maxDist, index := extended.Zero(), 0
		for i := s.start + 1; i < s.end; i++ {
			approx := ip.scheme.Forward(ip.xp[i], x0, x1, f0, f1)
			if d := ip.scheme.Distance(approx, ip.fp[i]); d.Cmp(maxDist) > 0 {
				maxDist, index = d, i
			}
		}

		if maxDist.Cmp(eps) > 0 {
			keep[index] = true
			stack = append(stack, span{s.start, index}, span{index, s.end})
		}
	}

	kept := 0
	for _, k := range keep {
		if k {
			kept++
		}
	}
	xp := make([]uint64, 0, kept)
	fp := make([]F, 0, kept)
	for i, k := range keep {
		if k {
			xp = append(xp, ip.xp[i])
			fp = append(fp, ip.fp[i])
		}
	}
	return newInterp(xp, fp), nil
}
