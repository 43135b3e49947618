package causal

import (
	"fmt"
	"strings"

	"gocausal/domain/core"
)

// DOT encodes the graph in Graphviz dot syntax. Node order follows the
// declared node list so the encoding is deterministic for a given graph.
func (g Graph) DOT() string {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", g.Name)
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle fontname=\"Helvetica\"];\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  %q;\n", string(n))
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %q -> %q;\n", string(e.Parent), string(e.Child))
	}
	b.WriteString("}\n")
	return b.String()
}

func names(ss ...string) []core.VariableName {
	out := make([]core.VariableName, len(ss))
	for i, s := range ss {
		out[i] = core.VariableName(s)
	}
	return out
}

// Common textbook graphs

// ConfoundedGraph is the classic triangle: C drives both X and Y, X drives Y
func ConfoundedGraph() Graph {
	g, _ := NewGraph("confounded",
		names("X", "Y", "C"),
		[]Edge{
			{Parent: "C", Child: "X"},
			{Parent: "C", Child: "Y"},
			{Parent: "X", Child: "Y"},
		}, LayoutCircular)
	return g
}

// UnobservedConfounderGraph adds the latent U alongside the observed C
func UnobservedConfounderGraph() Graph {
	g, _ := NewGraph("unobserved-confounder",
		names("X", "Y", "C", "U"),
		[]Edge{
			{Parent: "C", Child: "X"},
			{Parent: "C", Child: "Y"},
			{Parent: "U", Child: "X"},
			{Parent: "U", Child: "Y"},
			{Parent: "X", Child: "Y"},
		}, LayoutNice)
	return g
}

// InterventionGraph severs the natural parents of X, illustrating do(X)
func InterventionGraph() Graph {
	g, _ := NewGraph("do-x",
		names("X", "Y", "C"),
		[]Edge{
			{Parent: "C", Child: "Y"},
			{Parent: "X", Child: "Y"},
		}, LayoutCircular)
	return g
}
