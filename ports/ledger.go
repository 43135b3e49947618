package ports

import (
	"context"

	"gocausal/domain/core"
)

// LedgerWriterPort provides append-only write access to run artifacts.
// This is the only way to record artifacts - prevents read-after-write coupling.
type LedgerWriterPort interface {
	StoreArtifact(ctx context.Context, artifact core.Artifact) error
}

// LedgerReaderPort provides read-only access to stored artifacts
type LedgerReaderPort interface {
	GetArtifact(ctx context.Context, id core.ArtifactID) (*core.Artifact, error)
	GetArtifactsByRun(ctx context.Context, runID core.RunID) ([]core.Artifact, error)
	ListArtifacts(ctx context.Context, filters ArtifactFilters) ([]core.Artifact, error)
}

// ArtifactFilters narrows ledger queries
type ArtifactFilters struct {
	RunID *core.RunID
	Kind  *core.ArtifactKind
	Limit int
}

// LedgerPort combines read and write access
type LedgerPort interface {
	LedgerWriterPort
	LedgerReaderPort
}
