package algorithms

import (
	"github.com/dd0wney/cluso-routing/pkg/graph"
)

// Select picks the algorithm for a graph from its metadata: Bellman-Ford
// when negative weights are present, Dijkstra otherwise. The decision is a
// pure read of the metadata and is re-evaluated on every request.
func Select(g *graph.Graph) Algorithm {
	if g.HasNegativeWeights() {
		return NewBellmanFord()
	}
	return NewDijkstra()
}
