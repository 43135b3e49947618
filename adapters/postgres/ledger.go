// Package postgres persists run artifacts when a database URL is configured.
// Persistence is optional; experiments default to the in-memory ledger.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"gocausal/domain/core"
	"gocausal/ports"
)

// Ledger implements the artifact ledger on PostgreSQL
type Ledger struct {
	db *sqlx.DB
}

// NewLedger connects to PostgreSQL and ensures the artifact table exists
func NewLedger(databaseURL string) (*Ledger, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

var _ ports.LedgerPort = (*Ledger)(nil)

func (l *Ledger) migrate() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS artifacts (
			id         TEXT PRIMARY KEY,
			run_id     TEXT NOT NULL,
			kind       TEXT NOT NULL,
			payload    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS artifacts_run_idx ON artifacts (run_id);
	`)
	if err != nil {
		return fmt.Errorf("migrating artifact table: %w", err)
	}
	return nil
}

// Close releases the connection pool
func (l *Ledger) Close() error {
	return l.db.Close()
}

type artifactRow struct {
	ID        string    `db:"id"`
	RunID     string    `db:"run_id"`
	Kind      string    `db:"kind"`
	Payload   []byte    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

func (r artifactRow) toDomain() (core.Artifact, error) {
	var payload interface{}
	if err := json.Unmarshal(r.Payload, &payload); err != nil {
		return core.Artifact{}, fmt.Errorf("decoding artifact payload: %w", err)
	}
	return core.Artifact{
		ID:        core.ArtifactID(r.ID),
		RunID:     core.RunID(r.RunID),
		Kind:      core.ArtifactKind(r.Kind),
		Payload:   payload,
		CreatedAt: core.NewTimestamp(r.CreatedAt),
	}, nil
}

// StoreArtifact appends an artifact row
func (l *Ledger) StoreArtifact(ctx context.Context, artifact core.Artifact) error {
	payload, err := json.Marshal(artifact.Payload)
	if err != nil {
		return fmt.Errorf("encoding artifact payload: %w", err)
	}
	_, err = l.db.ExecContext(ctx, `
		INSERT INTO artifacts (id, run_id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, artifact.ID.String(), artifact.RunID.String(), string(artifact.Kind), payload, artifact.CreatedAt.Time())
	return err
}

// GetArtifact retrieves an artifact by ID
func (l *Ledger) GetArtifact(ctx context.Context, id core.ArtifactID) (*core.Artifact, error) {
	var row artifactRow
	err := l.db.GetContext(ctx, &row, `
		SELECT id, run_id, kind, payload, created_at FROM artifacts WHERE id = $1
	`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrArtifactNotFound
	}
	if err != nil {
		return nil, err
	}
	a, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetArtifactsByRun lists every artifact of one run in insertion order
func (l *Ledger) GetArtifactsByRun(ctx context.Context, runID core.RunID) ([]core.Artifact, error) {
	var rows []artifactRow
	err := l.db.SelectContext(ctx, &rows, `
		SELECT id, run_id, kind, payload, created_at FROM artifacts
		WHERE run_id = $1 ORDER BY created_at, id
	`, runID.String())
	if err != nil {
		return nil, err
	}
	return rowsToDomain(rows)
}

// ListArtifacts filters artifacts
func (l *Ledger) ListArtifacts(ctx context.Context, filters ports.ArtifactFilters) ([]core.Artifact, error) {
	query := `SELECT id, run_id, kind, payload, created_at FROM artifacts WHERE 1=1`
	args := []interface{}{}
	if filters.RunID != nil {
		args = append(args, filters.RunID.String())
		query += fmt.Sprintf(" AND run_id = $%d", len(args))
	}
	if filters.Kind != nil {
		args = append(args, string(*filters.Kind))
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	query += " ORDER BY created_at, id"
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var rows []artifactRow
	if err := l.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rowsToDomain(rows)
}

func rowsToDomain(rows []artifactRow) ([]core.Artifact, error) {
	out := make([]core.Artifact, 0, len(rows))
	for _, r := range rows {
		a, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
