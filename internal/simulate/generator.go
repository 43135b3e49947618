// Package simulate holds the synthetic data-generating processes the
// experiments draw from. Every generator takes an injected *rand.Rand; the
// same generator state always produces an identical population.
package simulate

import (
	"math/rand"

	"gocausal/domain/population"
	"gocausal/internal/stat"
)

// BaselineParams describes the canonical potential-outcomes process:
// Y0 ~ Normal(BaseMean, BaseStdDev) clamped to [OutcomeLo, OutcomeHi],
// Y1 = Y0 + Normal(EffectMean, EffectStdDev).
type BaselineParams struct {
	N            int
	BaseMean     float64
	BaseStdDev   float64
	EffectMean   float64
	EffectStdDev float64
	OutcomeLo    float64
	OutcomeHi    float64
}

// DefaultBaseline is the canonical textbook process: Y0 ~ N(100,25) clamped to
// [0,200], unit effect ~ N(5,2), so the true ATE is exactly EffectMean.
func DefaultBaseline(n int) BaselineParams {
	return BaselineParams{
		N:            n,
		BaseMean:     100,
		BaseStdDev:   25,
		EffectMean:   5,
		EffectStdDev: 2,
		OutcomeLo:    0,
		OutcomeHi:    200,
	}
}

// Baseline generates a population with independent treatment effects
func Baseline(rng *rand.Rand, params BaselineParams) (population.Population, error) {
	y0 := make([]float64, params.N)
	for i := range y0 {
		y0[i] = params.BaseMean + params.BaseStdDev*rng.NormFloat64()
	}
	y0, err := stat.Clamp(y0, params.OutcomeLo, params.OutcomeHi)
	if err != nil {
		return population.Population{}, err
	}

	y1 := make([]float64, params.N)
	for i := range y1 {
		y1[i] = y0[i] + params.EffectMean + params.EffectStdDev*rng.NormFloat64()
	}

	return population.NewBuilder().PotentialOutcomes(y0, y1).Build()
}

// ConfoundedParams describes the confounded process: covariate C ~ N(0,1)
// drives both treatment assignment (D = 1 when C + noise > 0) and the
// outcome level (Y0 = BaseMean + ConfounderSlope*C + noise), while the unit
// effect stays constant at Effect.
type ConfoundedParams struct {
	N               int
	BaseMean        float64
	Effect          float64
	ConfounderSlope float64
	NoiseStdDev     float64
}

// DefaultConfounded picks a slope big enough that the naive estimate is
// visibly biased while covariate adjustment recovers the truth.
func DefaultConfounded(n int) ConfoundedParams {
	return ConfoundedParams{
		N:               n,
		BaseMean:        100,
		Effect:          5,
		ConfounderSlope: 10,
		NoiseStdDev:     5,
	}
}

// Confounded generates a population plus its confounded treatment assignment.
// The returned treatment slice is what the covariate induced; callers apply
// it via WithTreatment to realize observed outcomes.
func Confounded(rng *rand.Rand, params ConfoundedParams) (population.Population, []bool, error) {
	c := make([]float64, params.N)
	y0 := make([]float64, params.N)
	y1 := make([]float64, params.N)
	treated := make([]bool, params.N)
	for i := 0; i < params.N; i++ {
		c[i] = rng.NormFloat64()
		treated[i] = c[i]+rng.NormFloat64() > 0
		y0[i] = params.BaseMean + params.ConfounderSlope*c[i] + params.NoiseStdDev*rng.NormFloat64()
		y1[i] = y0[i] + params.Effect
	}

	pop, err := population.NewBuilder().
		PotentialOutcomes(y0, y1).
		Covariates(c).
		Build()
	if err != nil {
		return population.Population{}, nil, err
	}
	return pop, treated, nil
}

// LatentConfoundedParams adds an unobserved confounder U next to the
// observed covariate C. Adjusting for C alone leaves residual bias from U.
type LatentConfoundedParams struct {
	N           int
	BaseMean    float64
	Effect      float64
	CSlope      float64
	USlope      float64
	NoiseStdDev float64
}

// LatentConfounded generates a population where both C and the unobservable
// U drive treatment and outcome
func LatentConfounded(rng *rand.Rand, params LatentConfoundedParams) (population.Population, []bool, error) {
	c := make([]float64, params.N)
	u := make([]float64, params.N)
	y0 := make([]float64, params.N)
	y1 := make([]float64, params.N)
	treated := make([]bool, params.N)
	for i := 0; i < params.N; i++ {
		c[i] = rng.NormFloat64()
		u[i] = rng.NormFloat64()
		treated[i] = c[i]+u[i]+rng.NormFloat64() > 0
		y0[i] = params.BaseMean + params.CSlope*c[i] + params.USlope*u[i] + params.NoiseStdDev*rng.NormFloat64()
		y1[i] = y0[i] + params.Effect
	}

	pop, err := population.NewBuilder().
		PotentialOutcomes(y0, y1).
		Covariates(c).
		Confounders(u).
		Build()
	if err != nil {
		return population.Population{}, nil, err
	}
	return pop, treated, nil
}
