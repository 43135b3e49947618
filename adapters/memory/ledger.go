// Package memory provides the in-memory artifact ledger used when no
// database is configured. Append-only, safe for concurrent readers.
package memory

import (
	"context"
	"sync"

	"gocausal/domain/core"
	"gocausal/ports"
)

// Ledger is an append-only in-memory artifact store
type Ledger struct {
	mu        sync.RWMutex
	artifacts []core.Artifact
	byID      map[core.ArtifactID]int
}

// NewLedger creates an empty in-memory ledger
func NewLedger() *Ledger {
	return &Ledger{byID: make(map[core.ArtifactID]int)}
}

var _ ports.LedgerPort = (*Ledger)(nil)

// StoreArtifact appends an artifact; existing artifacts are never rewritten
func (l *Ledger) StoreArtifact(ctx context.Context, artifact core.Artifact) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byID[artifact.ID] = len(l.artifacts)
	l.artifacts = append(l.artifacts, artifact)
	return nil
}

// GetArtifact retrieves an artifact by ID
func (l *Ledger) GetArtifact(ctx context.Context, id core.ArtifactID) (*core.Artifact, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx, ok := l.byID[id]
	if !ok {
		return nil, core.ErrArtifactNotFound
	}
	a := l.artifacts[idx]
	return &a, nil
}

// GetArtifactsByRun lists every artifact of one run in append order
func (l *Ledger) GetArtifactsByRun(ctx context.Context, runID core.RunID) ([]core.Artifact, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []core.Artifact
	for _, a := range l.artifacts {
		if a.RunID == runID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListArtifacts filters artifacts in append order
func (l *Ledger) ListArtifacts(ctx context.Context, filters ports.ArtifactFilters) ([]core.Artifact, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []core.Artifact
	for _, a := range l.artifacts {
		if filters.RunID != nil && a.RunID != *filters.RunID {
			continue
		}
		if filters.Kind != nil && a.Kind != *filters.Kind {
			continue
		}
		out = append(out, a)
		if filters.Limit > 0 && len(out) >= filters.Limit {
			break
		}
	}
	return out, nil
}
