package stat

import (
	"gocausal/domain/core"
)

// Clamp bounds every value of xs into the closed interval [lo, hi].
// The input slice is never mutated; a new slice of the same length is returned.
// An empty input yields an empty output. lo > hi is a precondition violation
// and reported as an error rather than silently swapping the bounds.
func Clamp(xs []float64, lo, hi float64) ([]float64, error) {
	if lo > hi {
		return nil, core.NewBoundsError(lo, hi)
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		switch {
		case x < lo:
			out[i] = lo
		case x > hi:
			out[i] = hi
		default:
			out[i] = x
		}
	}
	return out, nil
}
