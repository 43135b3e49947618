package app

import (
	"context"
	"fmt"
	"time"

	"gocausal/domain/causal"
	"gocausal/domain/core"
	"gocausal/domain/population"
	"gocausal/domain/sampling"
	domstats "gocausal/domain/stats"
	"gocausal/ports"
)

// Scenario names the data-generating exercise to run
type Scenario string

const (
	// ScenarioBaseline estimates the ATE over the full synthetic population
	// where both potential outcomes are known
	ScenarioBaseline Scenario = "baseline"
	// ScenarioRandomized draws two disjoint survey groups, treats one, and
	// estimates from observed outcomes only
	ScenarioRandomized Scenario = "randomized"
	// ScenarioConfounded lets a covariate drive both treatment and outcome,
	// comparing the naive and the covariate-adjusted regression
	ScenarioConfounded Scenario = "confounded"
	// ScenarioLatent adds an unobserved confounder that no adjustment can
	// remove
	ScenarioLatent Scenario = "latent"
)

// ExperimentRequest defines the inputs for a deterministic experiment run
type ExperimentRequest struct {
	Scenario       Scenario
	Seed           int64
	PopulationSize int
	SampleSize     int
	RunID          core.RunID // optional, generated if empty
}

// ExperimentResult contains the complete output of one run
type ExperimentResult struct {
	RunID     core.RunID              `json:"run_id"`
	Scenario  Scenario                `json:"scenario"`
	Seed      int64                   `json:"seed"`
	TrueATE   float64                 `json:"true_ate"`
	DiffMeans *domstats.ATEEstimate   `json:"diff_means,omitempty"`
	Naive     *domstats.RegressionFit `json:"naive,omitempty"`
	Adjusted  *domstats.RegressionFit `json:"adjusted,omitempty"`
	Partition *sampling.Manifest      `json:"partition,omitempty"`
	Graph     *causal.Graph           `json:"graph,omitempty"`
	Pop       population.Population   `json:"-"`
	Notes     []string                `json:"notes,omitempty"`
	RuntimeMs int64                   `json:"runtime_ms"`
}

// ExperimentService runs potential-outcomes exercises end to end:
// generate population, partition, realize observed outcomes, estimate the
// treatment effect both ways, and record artifacts through the ledger.
type ExperimentService struct {
	estimator ports.EstimatorPort
	rng       ports.RNGPort
	ledger    ports.LedgerWriterPort
}

// NewExperimentService wires the service with its ports
func NewExperimentService(estimator ports.EstimatorPort, rng ports.RNGPort, ledger ports.LedgerWriterPort) *ExperimentService {
	return &ExperimentService{
		estimator: estimator,
		rng:       rng,
		ledger:    ledger,
	}
}

// Run executes one scenario deterministically for the given seed
func (s *ExperimentService) Run(ctx context.Context, req ExperimentRequest) (*ExperimentResult, error) {
	if req.PopulationSize <= 0 {
		return nil, core.NewValidationError("population size", "must be positive")
	}
	start := time.Now()

	runID := req.RunID
	if runID.String() == "" {
		runID = core.RunID(core.NewID())
	}

	var (
		result *ExperimentResult
		err    error
	)
	switch req.Scenario {
	case ScenarioBaseline:
		result, err = s.runBaseline(ctx, runID, req)
	case ScenarioRandomized:
		result, err = s.runRandomized(ctx, runID, req)
	case ScenarioConfounded:
		result, err = s.runConfounded(ctx, runID, req)
	case ScenarioLatent:
		result, err = s.runLatent(ctx, runID, req)
	default:
		return nil, core.NewValidationError("scenario", fmt.Sprintf("unknown scenario %q", req.Scenario))
	}
	if err != nil {
		return nil, fmt.Errorf("running scenario %s: %w", req.Scenario, err)
	}

	result.RuntimeMs = time.Since(start).Milliseconds()
	if err := s.recordArtifacts(ctx, result); err != nil {
		return nil, fmt.Errorf("recording artifacts: %w", err)
	}
	return result, nil
}

// recordArtifacts appends run outputs and the closing manifest to the ledger
func (s *ExperimentService) recordArtifacts(ctx context.Context, result *ExperimentResult) error {
	store := func(kind core.ArtifactKind, payload interface{}) error {
		return s.ledger.StoreArtifact(ctx, core.NewArtifact(result.RunID, kind, payload))
	}

	if result.DiffMeans != nil {
		if err := store(core.ArtifactEstimate, result.DiffMeans); err != nil {
			return err
		}
	}
	if result.Naive != nil {
		if err := store(core.ArtifactRegressionFit, result.Naive); err != nil {
			return err
		}
	}
	if result.Adjusted != nil {
		if err := store(core.ArtifactRegressionFit, result.Adjusted); err != nil {
			return err
		}
	}
	if result.Partition != nil {
		if err := store(core.ArtifactPartition, result.Partition); err != nil {
			return err
		}
	}
	if result.Graph != nil {
		if err := store(core.ArtifactGraph, result.Graph); err != nil {
			return err
		}
	}

	// Fingerprint over the deterministic inputs only; two runs with the same
	// scenario, seed, and N produce the same fingerprint.
	fingerprint, err := core.HashOf(map[string]interface{}{
		"scenario": result.Scenario,
		"seed":     result.Seed,
		"n":        result.Pop.Size(),
	})
	if err != nil {
		return err
	}
	manifest := map[string]interface{}{
		"scenario":    result.Scenario,
		"seed":        result.Seed,
		"true_ate":    result.TrueATE,
		"runtime_ms":  result.RuntimeMs,
		"fingerprint": fingerprint.String(),
	}
	return store(core.ArtifactRunManifest, manifest)
}
