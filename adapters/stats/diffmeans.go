package stats

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"gocausal/domain/core"
	domstats "gocausal/domain/stats"
	"gocausal/internal/stat"
)

// DifferenceOfMeans estimates the ATE as mean(treated) - mean(control).
//
// Inference uses the independent two-sample t-test with pooled variance:
// df = n1 + n2 - 2, so unequal group sizes are fine. The confidence interval
// uses the Student's t quantile at that df; for large samples this converges
// to the familiar estimate +/- 1.96 * SE (see ZInterval).
func (e *Engine) DifferenceOfMeans(ctx context.Context, treated, control []float64) (*domstats.ATEEstimate, error) {
	if len(treated) == 0 || len(control) == 0 {
		return nil, core.ErrEmptySample
	}
	if len(treated) < 2 || len(control) < 2 {
		return nil, core.ErrSampleTooSmall
	}

	meanT, err := stat.Mean(treated)
	if err != nil {
		return nil, err
	}
	meanC, err := stat.Mean(control)
	if err != nil {
		return nil, err
	}
	varT, err := stat.Variance(treated)
	if err != nil {
		return nil, err
	}
	varC, err := stat.Variance(control)
	if err != nil {
		return nil, err
	}

	n1 := float64(len(treated))
	n2 := float64(len(control))
	df := n1 + n2 - 2

	pooled := ((n1-1)*varT + (n2-1)*varC) / df
	se := math.Sqrt(pooled * (1/n1 + 1/n2))
	diff := meanT - meanC

	if se == 0 {
		return nil, core.ErrZeroVariance
	}

	tStat := diff / se
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue := 2 * tDist.Survival(math.Abs(tStat))
	quantile := tDist.Quantile(1 - (1-e.ConfidenceLevel)/2)

	return &domstats.ATEEstimate{
		Estimate:    diff,
		StdErr:      se,
		TStatistic:  tStat,
		PValue:      pValue,
		DF:          df,
		CI: domstats.Interval{
			Lower: diff - quantile*se,
			Upper: diff + quantile*se,
			Level: e.ConfidenceLevel,
		},
		TreatedN:    len(treated),
		ControlN:    len(control),
		TreatedMean: meanT,
		ControlMean: meanC,
	}, nil
}

// ZInterval is the large-sample normal-quantile interval for an estimate.
// It is slightly narrower than the t interval at small df; both are
// acceptable readings of "95% CI" and the difference vanishes as n grows.
func ZInterval(estimate, se float64) domstats.Interval {
	const z = 1.959963984540054
	return domstats.Interval{
		Lower: estimate - z*se,
		Upper: estimate + z*se,
		Level: 0.95,
	}
}
