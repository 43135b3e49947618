// Package stats implements the estimation engine behind ports.EstimatorPort:
// difference-of-means with a pooled two-sample t-test, and ordinary least
// squares over explicit design matrices.
package stats

import (
	"gocausal/ports"
)

// Engine computes average treatment effect estimates
type Engine struct {
	// ConfidenceLevel for intervals, default 0.95
	ConfidenceLevel float64
}

// NewEngine creates an estimation engine with 95% intervals
func NewEngine() *Engine {
	return &Engine{ConfidenceLevel: 0.95}
}

var _ ports.EstimatorPort = (*Engine)(nil)
