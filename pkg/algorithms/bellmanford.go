package algorithms

import (
	"context"
	"fmt"
	"math"

	"github.com/dd0wney/cluso-routing/pkg/graph"
)

// BellmanFord computes shortest paths on graphs that may contain
// negative-weight edges and detects negative cycles reachable from the
// start node. O(V*E).
type BellmanFord struct{}

// NewBellmanFord creates a Bellman-Ford algorithm instance
func NewBellmanFord() *BellmanFord {
	return &BellmanFord{}
}

// Name returns the algorithm name
func (b *BellmanFord) Name() string {
	return "Bellman-Ford"
}

// SupportsNegativeWeights is true; negative cycles are still unsolvable and
// reported as a distinct error
func (b *BellmanFord) SupportsNegativeWeights() bool {
	return true
}

// Compute runs Bellman-Ford from start to goal.
//
// Distances start at +Inf except the start node at 0. Up to |V|-1 full passes
// relax every edge, stopping early after a pass with no update. One extra
// pass over all edges follows: any edge that still improves its target proves
// a negative cycle reachable from start. The context is polled once per pass
// so a deadline aborts between passes rather than after the full O(V*E) run.
func (b *BellmanFord) Compute(ctx context.Context, g *graph.Graph, start, goal string) (*Result, error) {
	if r := trivialResult(start, goal); r != nil {
		return r, nil
	}

	nodes := g.Nodes()
	edges := g.Edges()

	dist := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		dist[n] = math.Inf(1)
	}
	dist[start] = 0
	prev := make(map[string]string, len(nodes))

	for i := 0; i < len(nodes)-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		updated := false
		for _, e := range edges {
			if math.IsInf(dist[e.Source], 1) {
				continue
			}
			if next := dist[e.Source] + e.Weight; next < dist[e.Target] {
				dist[e.Target] = next
				prev[e.Target] = e.Source
				updated = true
			}
		}
		if !updated {
			break // fixed point reached, later passes cannot improve
		}
	}

	// One more pass: any remaining improvement closes a negative cycle
	// reachable from start.
	for _, e := range edges {
		if math.IsInf(dist[e.Source], 1) {
			continue
		}
		if dist[e.Source]+e.Weight < dist[e.Target] {
			return nil, &NegativeCycleError{Start: start, Edge: e}
		}
	}

	if math.IsInf(dist[goal], 1) {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoPath, start, goal)
	}

	return &Result{
		Path: reconstructPath(prev, start, goal),
		Cost: dist[goal],
	}, nil
}
