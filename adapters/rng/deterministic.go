// Package rng provides the deterministic seeded-stream implementation of
// ports.RNGPort. Stream seeds are derived by hashing the operation name into
// the base seed so independent steps never share a stream but stay fully
// reproducible.
package rng

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"

	"gocausal/ports"
)

// Deterministic derives reproducible rand streams from named operations
type Deterministic struct{}

// NewDeterministic creates the RNG adapter
func NewDeterministic() *Deterministic {
	return &Deterministic{}
}

var _ ports.RNGPort = (*Deterministic)(nil)

// SeededStream creates a generator for a named operation. The same
// (name, seed) pair always produces an identical stream.
func (d *Deterministic) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	if name == "" {
		return nil, fmt.Errorf("stream name cannot be empty")
	}
	return rand.New(rand.NewSource(deriveSeed(name, seed))), nil
}

// deriveSeed folds the operation name into the base seed via FNV-1a
func deriveSeed(name string, seed int64) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return seed ^ int64(h.Sum64())
}
