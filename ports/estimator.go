package ports

import (
	"context"

	"gocausal/domain/stats"
)

// EstimatorPort computes average treatment effects. Both strategies must
// agree on the full, unconfounded population; they differ only in what can
// be adjusted for.
type EstimatorPort interface {
	// DifferenceOfMeans estimates the ATE as mean(treated) - mean(control)
	// with a pooled-variance two-sample t-test and confidence interval.
	DifferenceOfMeans(ctx context.Context, treated, control []float64) (*stats.ATEEstimate, error)

	// FitOLS fits ordinary least squares of outcome on the given design
	// columns. Adding covariates means passing a wider design; the
	// interface does not change. A rank-deficient design is an error.
	FitOLS(ctx context.Context, outcome []float64, design []stats.DesignColumn) (*stats.RegressionFit, error)
}
