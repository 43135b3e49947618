package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic
// simulation and partitioning. Every sampling call receives its generator
// through this port; nothing in the system touches global random state.
type RNGPort interface {
	// SeededStream creates a deterministic generator for a named operation.
	// The same (name, seed) pair always yields an identical stream; distinct
	// names never share one.
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)
}
