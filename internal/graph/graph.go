// Package graph builds a function call graph and computes PageRank.
package graph

import (
	"github.com/phobologic/funcrank/internal/model"
)

// Graph is a directed call graph keyed by bare function name. Same-named
// functions in different files collapse into one node; this is a known
// ambiguity kept on purpose, since downstream consumers rely on the
// collapsed-name centrality signal. Callee names that match no known
// function still become nodes (dangling references) so centrality accounts
// for them. Self-loops and repeated edges are valid states; repeated edges
// are idempotent.
type Graph struct {
	order []string
	nodes map[string]struct{}
	succs map[string][]string
	edges map[edgeKey]struct{}
}

type edgeKey struct{ from, to string }

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		succs: make(map[string][]string),
		edges: make(map[edgeKey]struct{}),
	}
}

// Build creates the call graph from enriched records: a node per record
// name, plus an edge (and node) per call target.
func Build(records []*model.FunctionRecord) *Graph {
	g := New()
	for _, rec := range records {
		g.AddNode(rec.Name)
		if rec.Metrics == nil {
			continue
		}
		for _, callee := range rec.Metrics.Calls {
			g.AddEdge(rec.Name, callee)
		}
	}
	return g
}

// AddNode ensures a node exists. Insertion order is preserved so iteration
// is deterministic.
func (g *Graph) AddNode(name string) {
	if _, ok := g.nodes[name]; ok {
		return
	}
	g.nodes[name] = struct{}{}
	g.order = append(g.order, name)
}

// AddEdge ensures both endpoints exist and adds a directed edge from → to.
// Duplicate edges and self-loops are accepted without error.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	key := edgeKey{from, to}
	if _, ok := g.edges[key]; ok {
		return
	}
	g.edges[key] = struct{}{}
	g.succs[from] = append(g.succs[from], to)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Nodes returns node names in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// HasEdge reports whether the directed edge from → to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edges[edgeKey{from, to}]
	return ok
}
