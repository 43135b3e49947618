package population

import (
	"fmt"

	"gocausal/domain/core"
)

// Builder assembles a population from named columns. All derived state
// (observed outcome, unit effect) is computed from these fields, never
// attached as ad-hoc columns later.
type Builder struct {
	y0          []float64
	y1          []float64
	covariates  []float64
	confounders []float64
	err         error
}

// NewBuilder starts a population definition
func NewBuilder() *Builder {
	return &Builder{}
}

// PotentialOutcomes sets both potential-outcome columns. The two slices must
// have equal length and define the population size.
func (b *Builder) PotentialOutcomes(y0, y1 []float64) *Builder {
	if b.err != nil {
		return b
	}
	if len(y0) == 0 {
		b.err = core.ErrPopulationEmpty
		return b
	}
	if len(y0) != len(y1) {
		b.err = fmt.Errorf("%w: y0 has %d rows, y1 has %d", core.ErrDimensionMismatch, len(y0), len(y1))
		return b
	}
	b.y0 = y0
	b.y1 = y1
	return b
}

// Covariates sets the observable covariate column
func (b *Builder) Covariates(c []float64) *Builder {
	if b.err != nil {
		return b
	}
	b.covariates = c
	return b
}

// Confounders sets the unobserved confounder column
func (b *Builder) Confounders(u []float64) *Builder {
	if b.err != nil {
		return b
	}
	b.confounders = u
	return b
}

// Build validates column lengths and materializes the population
func (b *Builder) Build() (Population, error) {
	if b.err != nil {
		return Population{}, b.err
	}
	if len(b.y0) == 0 {
		return Population{}, core.ErrPopulationEmpty
	}
	n := len(b.y0)
	if b.covariates != nil && len(b.covariates) != n {
		return Population{}, fmt.Errorf("%w: covariate column has %d rows, population has %d",
			core.ErrDimensionMismatch, len(b.covariates), n)
	}
	if b.confounders != nil && len(b.confounders) != n {
		return Population{}, fmt.Errorf("%w: confounder column has %d rows, population has %d",
			core.ErrDimensionMismatch, len(b.confounders), n)
	}

	individuals := make([]Individual, n)
	for i := range individuals {
		individuals[i] = Individual{
			Index: i,
			Y0:    b.y0[i],
			Y1:    b.y1[i],
		}
		if b.covariates != nil {
			individuals[i].Covariate = b.covariates[i]
		}
		if b.confounders != nil {
			individuals[i].Confounder = b.confounders[i]
		}
	}
	return Population{individuals: individuals}, nil
}
