package population

import (
	"gocausal/domain/core"
)

// Group labels a disjoint selection of individuals (e.g. "survey", "treatment").
// The zero value marks individuals left out of every requested group.
type Group string

// Unselected is the implicit remainder group of any partition
const Unselected Group = ""

// Individual is one unit of the population with both potential outcomes.
// Y0 is the outcome absent treatment, Y1 the outcome under treatment; in any
// realistic sampling scheme only one of them is ever observed, selected by
// the treatment indicator. Both are carried here because the synthetic
// setting needs ground truth for comparison.
type Individual struct {
	Index      int     `json:"index"`
	Y0         float64 `json:"y0"`
	Y1         float64 `json:"y1"`
	Covariate  float64 `json:"covariate"`
	Confounder float64 `json:"confounder"`
	Treated    bool    `json:"treated"`
	Group      Group   `json:"group"`
}

// UnitEffect is the individual-level treatment effect Y1 - Y0
func (ind Individual) UnitEffect() float64 {
	return ind.Y1 - ind.Y0
}

// Observed realizes the outcome selected by the treatment indicator
func (ind Individual) Observed() float64 {
	if ind.Treated {
		return ind.Y1
	}
	return ind.Y0
}

// Population is an ordered, immutable collection of individuals. Derivations
// (treatment assignment, group labels) return fresh copies so no step aliases
// another's data.
type Population struct {
	individuals []Individual
}

// Size returns the number of individuals
func (p Population) Size() int {
	return len(p.individuals)
}

// Individuals returns a defensive copy of the underlying records
func (p Population) Individuals() []Individual {
	out := make([]Individual, len(p.individuals))
	copy(out, p.individuals)
	return out
}

// At returns the individual at index i
func (p Population) At(i int) Individual {
	return p.individuals[i]
}

// Y0s returns the untreated potential outcomes in order
func (p Population) Y0s() []float64 {
	return p.column(func(ind Individual) float64 { return ind.Y0 })
}

// Y1s returns the treated potential outcomes in order
func (p Population) Y1s() []float64 {
	return p.column(func(ind Individual) float64 { return ind.Y1 })
}

// Covariates returns the observable covariate column
func (p Population) Covariates() []float64 {
	return p.column(func(ind Individual) float64 { return ind.Covariate })
}

// Confounders returns the unobserved confounder column. Only generators and
// ground-truth checks may touch this; estimators never see it.
func (p Population) Confounders() []float64 {
	return p.column(func(ind Individual) float64 { return ind.Confounder })
}

// UnitEffects returns the individual-level effects Y1 - Y0
func (p Population) UnitEffects() []float64 {
	return p.column(Individual.UnitEffect)
}

// ObservedOutcomes realizes Y = D*Y1 + (1-D)*Y0 for every individual
func (p Population) ObservedOutcomes() []float64 {
	return p.column(Individual.Observed)
}

// TreatmentIndicators returns the treatment column as 0/1 values
func (p Population) TreatmentIndicators() []float64 {
	return p.column(func(ind Individual) float64 {
		if ind.Treated {
			return 1
		}
		return 0
	})
}

func (p Population) column(f func(Individual) float64) []float64 {
	out := make([]float64, len(p.individuals))
	for i, ind := range p.individuals {
		out[i] = f(ind)
	}
	return out
}

// WithTreatment returns a copy with the treatment indicator set per individual.
// The slice length must match the population size.
func (p Population) WithTreatment(treated []bool) (Population, error) {
	if len(treated) != len(p.individuals) {
		return Population{}, core.ErrDimensionMismatch
	}
	next := p.Individuals()
	for i := range next {
		next[i].Treated = treated[i]
	}
	return Population{individuals: next}, nil
}

// WithGroups returns a copy with the selection label set per individual.
// The slice length must match the population size.
func (p Population) WithGroups(groups []Group) (Population, error) {
	if len(groups) != len(p.individuals) {
		return Population{}, core.ErrDimensionMismatch
	}
	next := p.Individuals()
	for i := range next {
		next[i].Group = groups[i]
	}
	return Population{individuals: next}, nil
}

// SelectGroup returns the sub-population carrying the given label, preserving
// order. The result is a fresh copy.
func (p Population) SelectGroup(g Group) Population {
	selected := make([]Individual, 0)
	for _, ind := range p.individuals {
		if ind.Group == g {
			selected = append(selected, ind)
		}
	}
	return Population{individuals: selected}
}

// GroupSizes counts individuals per selection label
func (p Population) GroupSizes() map[Group]int {
	sizes := make(map[Group]int)
	for _, ind := range p.individuals {
		sizes[ind.Group]++
	}
	return sizes
}
