package sampling

import (
	"errors"
	"math/rand"
	"testing"

	"gocausal/domain/core"
	"gocausal/domain/population"
)

func TestPartition_DisjointExactSizes(t *testing.T) {
	const n = 1000
	specs := []GroupSpec{
		{Name: "survey-1", Size: 200},
		{Name: "survey-2", Size: 200},
	}

	rng := rand.New(rand.NewSource(42))
	groups, err := Partition(rng, n, specs)
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}
	if len(groups) != n {
		t.Fatalf("Expected %d assignments, got %d", n, len(groups))
	}

	sizes := map[population.Group]int{}
	for _, g := range groups {
		sizes[g]++
	}
	if sizes["survey-1"] != 200 {
		t.Errorf("Expected 200 in survey-1, got %d", sizes["survey-1"])
	}
	if sizes["survey-2"] != 200 {
		t.Errorf("Expected 200 in survey-2, got %d", sizes["survey-2"])
	}
	if sizes[population.Unselected] != 600 {
		t.Errorf("Expected 600 unselected, got %d", sizes[population.Unselected])
	}
}

func TestPartition_Idempotent(t *testing.T) {
	specs := []GroupSpec{
		{Name: "treatment", Size: 300},
		{Name: "control", Size: 300},
	}

	first, err := Partition(rand.New(rand.NewSource(1234)), 1000, specs)
	if err != nil {
		t.Fatalf("First partition failed: %v", err)
	}
	second, err := Partition(rand.New(rand.NewSource(1234)), 1000, specs)
	if err != nil {
		t.Fatalf("Second partition failed: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Assignment %d differs between identically seeded runs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestPartition_SeedChangesAssignment(t *testing.T) {
	specs := []GroupSpec{{Name: "survey", Size: 500}}

	a, _ := Partition(rand.New(rand.NewSource(1)), 1000, specs)
	b, _ := Partition(rand.New(rand.NewSource(2)), 1000, specs)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds produced identical assignments")
	}
}

func TestPartition_InvalidInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	_, err := Partition(rng, 100, []GroupSpec{{Name: "a", Size: 60}, {Name: "b", Size: 50}})
	if !errors.Is(err, core.ErrGroupsExceedPop) {
		t.Errorf("Expected ErrGroupsExceedPop, got %v", err)
	}

	_, err = Partition(rng, 100, []GroupSpec{{Name: "a", Size: 0}})
	if !errors.Is(err, core.ErrGroupSizeInvalid) {
		t.Errorf("Expected ErrGroupSizeInvalid, got %v", err)
	}

	_, err = Partition(rng, 0, nil)
	if !errors.Is(err, core.ErrPopulationEmpty) {
		t.Errorf("Expected ErrPopulationEmpty, got %v", err)
	}

	_, err = Partition(rng, 100, []GroupSpec{{Name: population.Unselected, Size: 10}})
	if err == nil {
		t.Error("Expected error for empty group name")
	}
}

func TestNewManifest(t *testing.T) {
	specs := []GroupSpec{{Name: "survey", Size: 2}}
	groups := []population.Group{"survey", "", "survey", ""}

	m := NewManifest(4, specs, groups)
	if m.Sizes["survey"] != 2 {
		t.Errorf("Expected 2 in survey, got %d", m.Sizes["survey"])
	}
	if m.Fingerprint.IsEmpty() {
		t.Error("Expected non-empty fingerprint")
	}

	// identical assignment yields identical fingerprint
	again := NewManifest(4, specs, groups)
	if !m.Fingerprint.Equals(again.Fingerprint) {
		t.Error("Fingerprint not deterministic")
	}

	flipped := NewManifest(4, specs, []population.Group{"", "survey", "survey", ""})
	if m.Fingerprint.Equals(flipped.Fingerprint) {
		t.Error("Different assignments should fingerprint differently")
	}
}
