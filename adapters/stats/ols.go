package stats

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"gocausal/domain/core"
	domstats "gocausal/domain/stats"
)

// FitOLS fits ordinary least squares of outcome on the design columns via
// the normal equations with a Cholesky factorization of X'X. A design whose
// Gram matrix is not positive definite (collinear or constant-zero-variance
// columns) is reported as ErrSingularDesign, never silently regularized.
func (e *Engine) FitOLS(ctx context.Context, outcome []float64, design []domstats.DesignColumn) (*domstats.RegressionFit, error) {
	n := len(outcome)
	p := len(design)
	if n == 0 {
		return nil, core.ErrEmptySample
	}
	if p == 0 {
		return nil, core.NewValidationError("design", "no regressor columns")
	}
	for _, col := range design {
		if len(col.Values) != n {
			return nil, fmt.Errorf("%w: column %q has %d rows, outcome has %d",
				core.ErrDimensionMismatch, col.Name, len(col.Values), n)
		}
	}
	if n <= p {
		return nil, fmt.Errorf("%w: %d observations for %d regressors", core.ErrSampleTooSmall, n, p)
	}

	// Gram matrix X'X and moment vector X'y
	xtx := mat.NewSymDense(p, nil)
	xty := mat.NewVecDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			var s float64
			for k := 0; k < n; k++ {
				s += design[i].Values[k] * design[j].Values[k]
			}
			xtx.SetSym(i, j, s)
		}
		var s float64
		for k := 0; k < n; k++ {
			s += design[i].Values[k] * outcome[k]
		}
		xty.SetVec(i, s)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(xtx); !ok {
		return nil, fmt.Errorf("%w: X'X is not positive definite", core.ErrSingularDesign)
	}

	beta := mat.NewVecDense(p, nil)
	if err := chol.SolveVecTo(beta, xty); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSingularDesign, err)
	}

	// Residual variance
	var rss float64
	for k := 0; k < n; k++ {
		fitted := 0.0
		for j := 0; j < p; j++ {
			fitted += beta.AtVec(j) * design[j].Values[k]
		}
		r := outcome[k] - fitted
		rss += r * r
	}
	df := n - p
	sigma2 := rss / float64(df)

	var xtxInv mat.SymDense
	if err := chol.InverseTo(&xtxInv); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSingularDesign, err)
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	coefs := make([]domstats.Coefficient, p)
	for j := 0; j < p; j++ {
		se := math.Sqrt(sigma2 * xtxInv.At(j, j))
		c := domstats.Coefficient{
			Name:   design[j].Name,
			Value:  beta.AtVec(j),
			StdErr: se,
		}
		if se > 0 {
			c.TStatistic = c.Value / se
			c.PValue = 2 * tDist.Survival(math.Abs(c.TStatistic))
		}
		coefs[j] = c
	}

	return &domstats.RegressionFit{
		Coefficients: coefs,
		Residual:     math.Sqrt(sigma2),
		DF:           df,
		N:            n,
	}, nil
}
