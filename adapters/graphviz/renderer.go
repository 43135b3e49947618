// Package graphviz renders causal graphs through the external dot/circo
// binaries. The core hands over a declarative edge list and consumes nothing
// back beyond success or failure; any graph-visualization backend could sit
// behind the same port.
package graphviz

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"gocausal/domain/causal"
	"gocausal/ports"
)

// Renderer shells out to Graphviz to produce PNG figures
type Renderer struct {
	// DotBinary overrides the layout engine path; empty selects by layout hint
	DotBinary string
}

// NewRenderer creates a Graphviz-backed renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ ports.RendererPort = (*Renderer)(nil)

// Render draws the graph to a PNG at outPath
func (r *Renderer) Render(ctx context.Context, g causal.Graph, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating figure directory: %w", err)
	}

	bin := r.DotBinary
	if bin == "" {
		bin = engineFor(g.Layout)
	}

	cmd := exec.CommandContext(ctx, bin, "-Tpng", "-o", outPath)
	cmd.Stdin = bytes.NewBufferString(g.DOT())
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rendering graph %q with %s: %w (%s)", g.Name, bin, err, stderr.String())
	}
	return nil
}

// RenderAll draws several graphs concurrently. Rendering is a presentation
// edge, so this is the one place parallelism buys anything.
func (r *Renderer) RenderAll(ctx context.Context, graphs []causal.Graph, outDir string) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, g := range graphs {
		g := g
		eg.Go(func() error {
			return r.Render(ctx, g, filepath.Join(outDir, g.Name+".png"))
		})
	}
	return eg.Wait()
}

// engineFor maps a layout hint onto a Graphviz engine
func engineFor(layout causal.Layout) string {
	switch layout {
	case causal.LayoutCircular:
		return "circo"
	default:
		return "dot"
	}
}
