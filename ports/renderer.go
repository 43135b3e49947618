package ports

import (
	"context"

	"gocausal/domain/causal"
)

// RendererPort draws causal graphs. The renderer is an external collaborator:
// the core hands it a declarative graph plus a layout hint and consumes
// nothing back beyond the artifact path or an error.
type RendererPort interface {
	// Render draws the graph to a raster image at outPath (PNG)
	Render(ctx context.Context, g causal.Graph, outPath string) error
}
