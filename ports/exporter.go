package ports

import (
	"context"

	"gocausal/domain/population"
)

// TableExporterPort writes a population table to an inspectable file
// (presentation artifact, same lifecycle as rendered figures).
type TableExporterPort interface {
	ExportPopulation(ctx context.Context, pop population.Population, outPath string) error
}
