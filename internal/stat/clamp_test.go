package stat

import (
	"errors"
	"math/rand"
	"testing"

	"gocausal/domain/core"
)

func TestClamp_BoundsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	xs := make([]float64, 500)
	for i := range xs {
		xs[i] = rng.NormFloat64() * 100
	}

	lo, hi := -50.0, 50.0
	out, err := Clamp(xs, lo, hi)
	if err != nil {
		t.Fatalf("Clamp failed: %v", err)
	}
	if len(out) != len(xs) {
		t.Fatalf("Expected %d elements, got %d", len(xs), len(out))
	}
	for i, v := range out {
		if v < lo || v > hi {
			t.Errorf("Element %d out of bounds: %f", i, v)
		}
		if xs[i] >= lo && xs[i] <= hi && v != xs[i] {
			t.Errorf("In-range element %d changed: %f -> %f", i, xs[i], v)
		}
	}
}

func TestClamp_DoesNotMutateInput(t *testing.T) {
	xs := []float64{-10, 0, 10}
	_, err := Clamp(xs, -1, 1)
	if err != nil {
		t.Fatalf("Clamp failed: %v", err)
	}
	if xs[0] != -10 || xs[2] != 10 {
		t.Error("Clamp mutated its input")
	}
}

func TestClamp_EmptyInput(t *testing.T) {
	out, err := Clamp(nil, 0, 1)
	if err != nil {
		t.Fatalf("Clamp failed on empty input: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Expected empty output, got %d elements", len(out))
	}
}

func TestClamp_MalformedBounds(t *testing.T) {
	_, err := Clamp([]float64{1, 2, 3}, 5, 1)
	if !errors.Is(err, core.ErrMalformedBounds) {
		t.Errorf("Expected ErrMalformedBounds, got %v", err)
	}
	if !core.IsInvalidInputError(err) {
		t.Errorf("Expected malformed bounds to classify as invalid input, got %v", err)
	}
}
