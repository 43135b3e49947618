package causal

import (
	"fmt"

	"gocausal/domain/core"
)

// Layout hints for the rendering collaborator
type Layout string

const (
	LayoutCircular Layout = "circular"
	LayoutNice     Layout = "nice" // force-directed / hierarchical, renderer's choice
)

// Edge is one assumed causal parent -> child relationship
type Edge struct {
	Parent core.VariableName `json:"parent"`
	Child  core.VariableName `json:"child"`
}

// Graph is a declarative causal diagram: named variables plus directed
// parent -> child edges. It carries no estimation semantics; the only
// consumer is the rendering collaborator.
type Graph struct {
	Name   string              `json:"name"`
	Nodes  []core.VariableName `json:"nodes"`
	Edges  []Edge              `json:"edges"`
	Layout Layout              `json:"layout"`
}

// NewGraph validates node uniqueness, edge endpoints, and acyclicity
func NewGraph(name string, nodes []core.VariableName, edges []Edge, layout Layout) (Graph, error) {
	seen := make(map[core.VariableName]bool, len(nodes))
	for _, n := range nodes {
		if seen[n] {
			return Graph{}, fmt.Errorf("%w: %s", core.ErrDuplicateNode, n)
		}
		seen[n] = true
	}
	for _, e := range edges {
		if !seen[e.Parent] {
			return Graph{}, fmt.Errorf("%w: parent %s", core.ErrUnknownNode, e.Parent)
		}
		if !seen[e.Child] {
			return Graph{}, fmt.Errorf("%w: child %s", core.ErrUnknownNode, e.Child)
		}
	}
	g := Graph{Name: name, Nodes: nodes, Edges: edges, Layout: layout}
	if g.hasCycle() {
		return Graph{}, fmt.Errorf("%w: %s", core.ErrCyclicGraph, name)
	}
	return g, nil
}

// Parents returns the direct causal parents of a node
func (g Graph) Parents(node core.VariableName) []core.VariableName {
	var parents []core.VariableName
	for _, e := range g.Edges {
		if e.Child == node {
			parents = append(parents, e.Parent)
		}
	}
	return parents
}

// hasCycle runs a depth-first search with a three-color marking
func (g Graph) hasCycle() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[core.VariableName]int, len(g.Nodes))
	children := make(map[core.VariableName][]core.VariableName)
	for _, e := range g.Edges {
		children[e.Parent] = append(children[e.Parent], e.Child)
	}

	var visit func(core.VariableName) bool
	visit = func(n core.VariableName) bool {
		color[n] = gray
		for _, c := range children[n] {
			switch color[c] {
			case gray:
				return true
			case white:
				if visit(c) {
					return true
				}
			}
		}
		color[n] = black
		return false
	}

	for _, n := range g.Nodes {
		if color[n] == white && visit(n) {
			return true
		}
	}
	return false
}
