package stat

import (
	"math"

	"github.com/montanaflynn/stats"

	"gocausal/domain/core"
)

// StdErr returns the standard error of the sample mean: the sample standard
// deviation (n-1 denominator) divided by sqrt(n). Samples of size 0 or 1 are
// rejected because the unbiased variance is undefined for them.
func StdErr(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, core.ErrEmptySample
	}
	if len(xs) < 2 {
		return 0, core.ErrSampleTooSmall
	}

	sd, err := stats.StandardDeviationSample(xs)
	if err != nil {
		return 0, err
	}
	return sd / math.Sqrt(float64(len(xs))), nil
}

// Mean returns the arithmetic mean of xs, rejecting empty input
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, core.ErrEmptySample
	}
	return stats.Mean(xs)
}

// Variance returns the unbiased sample variance (n-1 denominator)
func Variance(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, core.ErrSampleTooSmall
	}
	return stats.SampleVariance(xs)
}

// Summary holds descriptive statistics for a single numeric column
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	StdErr float64 `json:"std_err"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Summarize computes descriptive statistics for xs. Requires at least two
// observations so the spread measures are defined.
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, core.ErrEmptySample
	}
	if len(xs) < 2 {
		return Summary{}, core.ErrSampleTooSmall
	}

	mean, _ := stats.Mean(xs)
	sd, _ := stats.StandardDeviationSample(xs)
	min, _ := stats.Min(xs)
	max, _ := stats.Max(xs)
	median, _ := stats.Median(xs)

	return Summary{
		N:      len(xs),
		Mean:   mean,
		StdDev: sd,
		StdErr: sd / math.Sqrt(float64(len(xs))),
		Min:    min,
		Max:    max,
		Median: median,
	}, nil
}
