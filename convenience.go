package xinterp

// Eval evaluates the curve through (xp, fp) at x without keeping the Interp.
// Build an Interp with New when querying the same knots repeatedly.
func Eval[F Value](xp []uint64, fp []F, x uint64) (F, error) {
	ip, err := New(xp, fp)
	if err != nil {
		var zero F
		return zero, err
	}
	return ip.Forward(x)
}

// Solve returns the index at which the curve through (xp, fp) reaches f,
// resolved with m.
func Solve[F Value](xp []uint64, fp []F, f F, m Method) (uint64, error) {
	ip, err := New(xp, fp)
	if err != nil {
		return 0, err
	}
	return ip.Inverse(f, m)
}
