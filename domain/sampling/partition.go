package sampling

import (
	"fmt"
	"math/rand"
	"sort"

	"gocausal/domain/core"
	"gocausal/domain/population"
)

// GroupSpec requests a named group of a fixed size
type GroupSpec struct {
	Name population.Group `json:"name"`
	Size int              `json:"size"`
}

// Partition assigns each of n individuals to at most one named group by
// rank-by-random-key: every individual draws an independent uniform key, the
// population is sorted by key ascending, and the first sizes are cut off in
// spec order. Individuals past the last cut stay in the unselected remainder.
// The selection is equivalent in distribution to simple random sampling
// without replacement and disjoint by construction.
//
// The caller owns the generator; the same rng state always yields the same
// assignment.
func Partition(rng *rand.Rand, n int, specs []GroupSpec) ([]population.Group, error) {
	if n <= 0 {
		return nil, core.ErrPopulationEmpty
	}
	total := 0
	for _, spec := range specs {
		if spec.Size <= 0 {
			return nil, core.NewGroupSizeError(string(spec.Name), spec.Size)
		}
		if spec.Name == population.Unselected {
			return nil, core.NewValidationError("group name", "must not be the empty unselected label")
		}
		total += spec.Size
	}
	if total > n {
		return nil, fmt.Errorf("%w: requested %d, population %d", core.ErrGroupsExceedPop, total, n)
	}

	// One random key per individual, then a stable rank over the keys.
	keys := make([]float64, n)
	for i := range keys {
		keys[i] = rng.Float64()
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})

	assignments := make([]population.Group, n)
	cursor := 0
	for _, spec := range specs {
		for i := 0; i < spec.Size; i++ {
			assignments[order[cursor]] = spec.Name
			cursor++
		}
	}
	return assignments, nil
}

// Manifest records a partition for audit and replay
type Manifest struct {
	Specs       []GroupSpec              `json:"specs"`
	Population  int                      `json:"population"`
	Sizes       map[population.Group]int `json:"sizes"`
	Fingerprint core.Hash                `json:"fingerprint"`
}

// NewManifest summarizes an assignment against its requested specs
func NewManifest(n int, specs []GroupSpec, assignments []population.Group) Manifest {
	sizes := make(map[population.Group]int)
	for _, g := range assignments {
		sizes[g]++
	}
	fields := map[string]string{"n": fmt.Sprintf("%d", n)}
	for i, g := range assignments {
		if g != population.Unselected {
			fields[fmt.Sprintf("i%d", i)] = string(g)
		}
	}
	return Manifest{
		Specs:       specs,
		Population:  n,
		Sizes:       sizes,
		Fingerprint: core.HashFields(fields),
	}
}
