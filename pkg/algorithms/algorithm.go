// Package algorithms implements the shortest-path algorithms the routing
// service dispatches between: Dijkstra for non-negative graphs and
// Bellman-Ford when negative weights are present.
package algorithms

import (
	"context"

	"github.com/dd0wney/cluso-routing/pkg/graph"
)

// Result is a computed shortest path with its total cost
type Result struct {
	Path []string
	Cost float64
}

// Algorithm is the contract shared by the shortest-path variants. The set is
// closed and small, so dispatch is a pure function of graph metadata rather
// than an open plugin registry.
type Algorithm interface {
	// Compute finds the shortest path from start to goal. It returns
	// ErrNoPath when goal is unreachable, a NegativeWeightError when the
	// graph violates the algorithm's precondition, a NegativeCycleError when
	// relaxation proves a start-reachable negative cycle, or the context's
	// error when the deadline expires mid-computation.
	Compute(ctx context.Context, g *graph.Graph, start, goal string) (*Result, error)

	// SupportsNegativeWeights reports whether the algorithm handles
	// negative-weight edges correctly
	SupportsNegativeWeights() bool

	// Name is the human-readable algorithm name carried in responses
	Name() string
}

// Compile-time interface checks
var (
	_ Algorithm = (*Dijkstra)(nil)
	_ Algorithm = (*BellmanFord)(nil)
)

// trivialResult handles the start == goal case shared by both algorithms:
// a single-node path with cost 0, resolved before the main loop runs.
func trivialResult(start, goal string) *Result {
	if start != goal {
		return nil
	}
	return &Result{Path: []string{start}, Cost: 0}
}

// reconstructPath walks the predecessor chain from goal back to start and
// reverses it. A node absent from prev has no predecessor; start is the
// chain's sentinel end.
func reconstructPath(prev map[string]string, start, goal string) []string {
	path := []string{goal}
	for node := goal; node != start; {
		parent, ok := prev[node]
		if !ok {
			break
		}
		path = append(path, parent)
		node = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
