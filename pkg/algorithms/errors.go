package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-routing/pkg/graph"
)

// ErrNoPath is returned when the goal is unreachable from the start
var ErrNoPath = errors.New("no path exists")

// maxReportedNegativeEdges bounds how many offending edges a precondition
// error enumerates before collapsing the rest into a count
const maxReportedNegativeEdges = 3

// NegativeWeightError reports that a graph with negative-weight edges was
// handed to an algorithm that cannot process them
type NegativeWeightError struct {
	Algorithm string
	Edges     []graph.Edge
}

func (e *NegativeWeightError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s does not support negative-weight edges: graph has %d negative edge(s)", e.Algorithm, len(e.Edges))

	shown := len(e.Edges)
	if shown > maxReportedNegativeEdges {
		shown = maxReportedNegativeEdges
	}
	for i := 0; i < shown; i++ {
		edge := e.Edges[i]
		fmt.Fprintf(&b, " (%s->%s=%g)", edge.Source, edge.Target, edge.Weight)
	}
	if rest := len(e.Edges) - shown; rest > 0 {
		fmt.Fprintf(&b, " and %d more", rest)
	}
	return b.String()
}

// NegativeCycleError reports a negative cycle reachable from the start node,
// naming an edge that still relaxed after |V|-1 passes
type NegativeCycleError struct {
	Start string
	Edge  graph.Edge
}

func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("negative cycle detected: reachable from %s, edge %s->%s=%g still improves its target",
		e.Start, e.Edge.Source, e.Edge.Target, e.Edge.Weight)
}
