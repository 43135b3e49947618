package stats

import (
	"gocausal/domain/population"
)

// DesignColumn is one named regressor column of a design matrix. Callers
// assemble an ordered column list (intercept, treatment, covariates) instead
// of parsing symbolic formulas; adjusting for a covariate just widens the
// list.
type DesignColumn struct {
	Name   string
	Values []float64
}

// Design-column names used throughout the experiments
const (
	ColIntercept = "intercept"
	ColTreatment = "treatment"
	ColCovariate = "covariate"
)

// Intercept builds a constant column of ones
func Intercept(n int) DesignColumn {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	return DesignColumn{Name: ColIntercept, Values: ones}
}

// TreatmentColumn builds the 0/1 treatment regressor from a population
func TreatmentColumn(pop population.Population) DesignColumn {
	return DesignColumn{Name: ColTreatment, Values: pop.TreatmentIndicators()}
}

// CovariateColumn builds the observable covariate regressor from a population
func CovariateColumn(pop population.Population) DesignColumn {
	return DesignColumn{Name: ColCovariate, Values: pop.Covariates()}
}

// NaiveDesign regresses outcome on treatment alone (plus intercept).
// With a confounder in play this deliberately omits the adjustment.
func NaiveDesign(pop population.Population) []DesignColumn {
	return []DesignColumn{Intercept(pop.Size()), TreatmentColumn(pop)}
}

// AdjustedDesign widens the naive design with the observed covariate.
// Same estimator interface, one column wider.
func AdjustedDesign(pop population.Population) []DesignColumn {
	return []DesignColumn{Intercept(pop.Size()), TreatmentColumn(pop), CovariateColumn(pop)}
}

// StackedPotentialOutcomes duplicates every individual into a treated row
// (Y1, D=1) and an untreated row (Y0, D=0). Only meaningful in the fully
// synthetic setting where both potential outcomes are known; the OLS slope
// on this stack equals the difference of full-population means exactly.
func StackedPotentialOutcomes(pop population.Population) ([]float64, []DesignColumn) {
	n := pop.Size()
	outcome := make([]float64, 0, 2*n)
	treatment := make([]float64, 0, 2*n)

	outcome = append(outcome, pop.Y1s()...)
	for i := 0; i < n; i++ {
		treatment = append(treatment, 1)
	}
	outcome = append(outcome, pop.Y0s()...)
	for i := 0; i < n; i++ {
		treatment = append(treatment, 0)
	}

	design := []DesignColumn{
		Intercept(2 * n),
		{Name: ColTreatment, Values: treatment},
	}
	return outcome, design
}
