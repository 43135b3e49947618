package graphviz

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"gocausal/domain/causal"
)

func TestEngineFor(t *testing.T) {
	if engineFor(causal.LayoutCircular) != "circo" {
		t.Error("Expected circo for circular layout")
	}
	if engineFor(causal.LayoutNice) != "dot" {
		t.Error("Expected dot for nice layout")
	}
}

func TestRender_MissingBinary(t *testing.T) {
	r := NewRenderer()
	r.DotBinary = "definitely-not-a-real-binary"

	g := causal.ConfoundedGraph()
	err := r.Render(context.Background(), g, filepath.Join(t.TempDir(), "g.png"))
	if err == nil {
		t.Error("Expected error when the layout engine is missing")
	}
}

func TestRender_ProducesFigure(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("graphviz not installed")
	}

	r := NewRenderer()
	r.DotBinary = "dot"
	out := filepath.Join(t.TempDir(), "confounded.png")
	if err := r.Render(context.Background(), causal.ConfoundedGraph(), out); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}
