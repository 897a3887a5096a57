package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-routing/pkg/graph"
)

func TestSelectDijkstraForNonNegativeGraph(t *testing.T) {
	g := graph.New()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 0)

	algo := Select(g)
	if algo.Name() != "Dijkstra" {
		t.Errorf("selected %s, want Dijkstra", algo.Name())
	}
	if algo.SupportsNegativeWeights() {
		t.Error("Dijkstra must not claim negative-weight support")
	}
}

func TestSelectBellmanFordForNegativeGraph(t *testing.T) {
	g := graph.New()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", -1)

	algo := Select(g)
	if algo.Name() != "Bellman-Ford" {
		t.Errorf("selected %s, want Bellman-Ford", algo.Name())
	}
	if !algo.SupportsNegativeWeights() {
		t.Error("Bellman-Ford must claim negative-weight support")
	}
}

func TestSelectReevaluatedAfterMutation(t *testing.T) {
	g := graph.New()
	g.AddEdge("A", "B", 1)

	if algo := Select(g); algo.Name() != "Dijkstra" {
		t.Fatalf("selected %s, want Dijkstra", algo.Name())
	}

	g.AddEdge("B", "C", -4)

	if algo := Select(g); algo.Name() != "Bellman-Ford" {
		t.Errorf("selection did not track metadata: got %s", algo.Name())
	}
}
