package core

// ArtifactKind defines types of artifacts
type ArtifactKind string

const (
	ArtifactEstimate      ArtifactKind = "ate_estimate"
	ArtifactRegressionFit ArtifactKind = "regression_fit"
	ArtifactPartition     ArtifactKind = "partition_manifest"
	ArtifactGraph         ArtifactKind = "causal_graph"
	ArtifactRunManifest   ArtifactKind = "run_manifest"
)

// Artifact represents any output of an experiment run
type Artifact struct {
	ID        ArtifactID   `json:"id"`
	RunID     RunID        `json:"run_id"`
	Kind      ArtifactKind `json:"kind"`
	Payload   interface{}  `json:"payload"`
	CreatedAt Timestamp    `json:"created_at"`
}

// NewArtifact creates an artifact stamped with a fresh ID and timestamp
func NewArtifact(runID RunID, kind ArtifactKind, payload interface{}) Artifact {
	return Artifact{
		ID:        ArtifactID(NewID()),
		RunID:     runID,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: Now(),
	}
}
