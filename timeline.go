package xinterp

import (
	"fmt"
	"time"
)

// Timeline maps sample indices to wall-clock instants.
//
// Instants are interpolated as int64 Unix nanoseconds, so a Timeline covers
// 1677-09-21 to 2262-04-11 at full nanosecond resolution. Results are
// reported in the location of the first knot.
type Timeline struct {
	ip  *Interp[int64]
	loc *time.Location
}

// NewTimeline builds a Timeline from index knots and their instants.
func NewTimeline(xp []uint64, times []time.Time) (*Timeline, error) {
	if len(xp) != len(times) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(xp), len(times))
	}
	if len(times) == 0 {
		return nil, ErrEmpty
	}

	ns := make([]int64, len(times))
	for i, t := range times {
		if !representable(t) {
			return nil, fmt.Errorf("%w: times[%d] = %s", ErrInvalidValue, i, t)
		}
		ns[i] = t.UnixNano()
	}

	ip, err := New(xp, ns)
	if err != nil {
		return nil, err
	}
	return &Timeline{ip: ip, loc: times[0].Location()}, nil
}

// Time returns the instant at index x, rounded to the nearest nanosecond.
func (tl *Timeline) Time(x uint64) (time.Time, error) {
	ns, err := tl.ip.Forward(x)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, ns).In(tl.loc), nil
}

// Index returns the index at instant t, resolved with m.
func (tl *Timeline) Index(t time.Time, m Method) (uint64, error) {
	if !representable(t) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidValue, t)
	}
	return tl.ip.Inverse(t.UnixNano(), m)
}

// Simplify drops knots that move no instant by more than tol.
func (tl *Timeline) Simplify(tol time.Duration) (*Timeline, error) {
	ip, err := tl.ip.Simplify(int64(tol))
	if err != nil {
		return nil, err
	}
	return &Timeline{ip: ip, loc: tl.loc}, nil
}

// Len returns the number of knots.
func (tl *Timeline) Len() int {
	return tl.ip.Len()
}

// Knots returns copies of the knot indices and instants.
func (tl *Timeline) Knots() ([]uint64, []time.Time) {
	xp, ns := tl.ip.Knots()
	times := make([]time.Time, len(ns))
	for i, v := range ns {
		times[i] = time.Unix(0, v).In(tl.loc)
	}
	return xp, times
}

func representable(t time.Time) bool {
	return !t.Before(minTime) && !t.After(maxTime)
}
