// Package graph provides the directed weighted graph the routing service
// computes over, together with derived metadata used for algorithm selection.
package graph

import (
	"sort"
	"sync"
)

// Edge is a single directed weighted edge
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Graph is a directed weighted graph keyed by string node identifiers.
//
// Construction is not safe for concurrent use; once built, the graph is
// treated as read-only by the routing service and concurrent reads are safe.
// Metadata is recomputed lazily behind a dirty flag, so bulk loading stays
// O(E) while reads never observe metadata stale relative to the current
// edge set.
type Graph struct {
	mu        sync.Mutex
	adj       map[string]map[string]float64
	edgeCount int
	meta      Metadata
	dirty     bool
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		adj: make(map[string]map[string]float64),
	}
}

// AddEdge adds a directed edge from source to target with the given weight.
// Both endpoints become known nodes, even if target has no outgoing edges.
// Adding the same (source, target) pair again overwrites the prior weight;
// there are no multi-edges between an ordered pair.
func (g *Graph) AddEdge(source, target string, weight float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.adj[source] == nil {
		g.adj[source] = make(map[string]float64)
	}
	if _, exists := g.adj[source][target]; !exists {
		g.edgeCount++
	}
	g.adj[source][target] = weight

	// Materialize the target so it counts as a node
	if g.adj[target] == nil {
		g.adj[target] = make(map[string]float64)
	}

	g.dirty = true
}

// Neighbors returns a snapshot of the outgoing edges from node. The returned
// map is a copy; mutating it cannot corrupt the graph. An unknown node yields
// an empty map, never an error.
func (g *Graph) Neighbors(node string) map[string]float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	targets := g.adj[node]
	out := make(map[string]float64, len(targets))
	for t, w := range targets {
		out[t] = w
	}
	return out
}

// HasNode reports whether node appeared as a source or target of any edge
func (g *Graph) HasNode(node string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.adj[node]
	return ok
}

// Nodes returns all known node identifiers in sorted order
func (g *Graph) Nodes() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.nodesLocked()
}

func (g *Graph) nodesLocked() []string {
	nodes := make([]string, 0, len(g.adj))
	for n := range g.adj {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Edges returns every edge, ordered by (source, target) for determinism
func (g *Graph) Edges() []Edge {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.edgesLocked()
}

func (g *Graph) edgesLocked() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for src, targets := range g.adj {
		for tgt, w := range targets {
			edges = append(edges, Edge{Source: src, Target: tgt, Weight: w})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})
	return edges
}

// NodeCount returns the number of known nodes
func (g *Graph) NodeCount() int {
	return g.Metadata().NodeCount
}

// EdgeCount returns the number of distinct (source, target) edges
func (g *Graph) EdgeCount() int {
	return g.Metadata().EdgeCount
}

// HasNegativeWeights reports whether any edge has a negative weight
func (g *Graph) HasNegativeWeights() bool {
	return g.Metadata().HasNegativeWeights
}

// NegativeEdges returns all negative-weight edges in deterministic order
func (g *Graph) NegativeEdges() []Edge {
	return g.Metadata().NegativeEdges
}

// HasNegativeCycle reports whether a negative cycle was detected by the
// Bellman-Ford probe. See Metadata for the single-source caveat.
func (g *Graph) HasNegativeCycle() bool {
	return g.Metadata().HasNegativeCycle
}
