package simulate

import (
	"math"
	"math/rand"
	"testing"
)

func TestBaseline_Deterministic(t *testing.T) {
	params := DefaultBaseline(1000)

	a, err := Baseline(rand.New(rand.NewSource(42)), params)
	if err != nil {
		t.Fatalf("Baseline failed: %v", err)
	}
	b, err := Baseline(rand.New(rand.NewSource(42)), params)
	if err != nil {
		t.Fatalf("Baseline failed: %v", err)
	}

	for i := 0; i < a.Size(); i++ {
		if a.At(i).Y0 != b.At(i).Y0 || a.At(i).Y1 != b.At(i).Y1 {
			t.Fatalf("Individual %d differs between identically seeded populations", i)
		}
	}
}

func TestBaseline_OutcomesClamped(t *testing.T) {
	pop, err := Baseline(rand.New(rand.NewSource(7)), DefaultBaseline(50000))
	if err != nil {
		t.Fatalf("Baseline failed: %v", err)
	}
	for _, y0 := range pop.Y0s() {
		if y0 < 0 || y0 > 200 {
			t.Fatalf("Y0 %f escaped the clamp bounds", y0)
		}
	}
}

func TestBaseline_TrueEffectNearEffectMean(t *testing.T) {
	pop, err := Baseline(rand.New(rand.NewSource(42)), DefaultBaseline(100000))
	if err != nil {
		t.Fatalf("Baseline failed: %v", err)
	}
	var sum float64
	for _, d := range pop.UnitEffects() {
		sum += d
	}
	mean := sum / float64(pop.Size())
	if math.Abs(mean-5.0) > 0.05 {
		t.Errorf("Expected mean unit effect within ±0.05 of 5.0, got %f", mean)
	}
}

func TestConfounded_TreatmentTracksCovariate(t *testing.T) {
	pop, treated, err := Confounded(rand.New(rand.NewSource(42)), DefaultConfounded(20000))
	if err != nil {
		t.Fatalf("Confounded failed: %v", err)
	}

	// treated individuals should carry a higher covariate on average
	var sumT, sumC float64
	var nT, nC int
	for i, c := range pop.Covariates() {
		if treated[i] {
			sumT += c
			nT++
		} else {
			sumC += c
			nC++
		}
	}
	if nT == 0 || nC == 0 {
		t.Fatal("Expected both treated and untreated individuals")
	}
	if sumT/float64(nT) <= sumC/float64(nC) {
		t.Error("Expected treated group to have higher mean covariate")
	}
}

func TestLatentConfounded_CarriesBothConfounders(t *testing.T) {
	pop, _, err := LatentConfounded(rand.New(rand.NewSource(1)), LatentConfoundedParams{
		N: 100, BaseMean: 100, Effect: 5, CSlope: 10, USlope: 10, NoiseStdDev: 5,
	})
	if err != nil {
		t.Fatalf("LatentConfounded failed: %v", err)
	}
	var anyC, anyU bool
	for i := 0; i < pop.Size(); i++ {
		if pop.At(i).Covariate != 0 {
			anyC = true
		}
		if pop.At(i).Confounder != 0 {
			anyU = true
		}
	}
	if !anyC || !anyU {
		t.Error("Expected both covariate and confounder columns populated")
	}
}
