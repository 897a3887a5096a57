package graph

import (
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genEdges produces random edge lists over a small node alphabet so that
// duplicate (source, target) pairs and self-loops occur regularly.
func genEdges() gopter.Gen {
	nodeGen := gen.OneConstOf("A", "B", "C", "D", "E", "F")
	edgeGen := gopter.CombineGens(
		nodeGen, nodeGen, gen.Float64Range(-10, 10),
	).Map(func(vals []interface{}) Edge {
		return Edge{
			Source: vals[0].(string),
			Target: vals[1].(string),
			Weight: vals[2].(float64),
		}
	})
	return gen.SliceOf(edgeGen)
}

// TestGraphProperties verifies invariants that must hold for any edge list
func TestGraphProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("serialize then load reproduces edges and metadata", prop.ForAll(
		func(edges []Edge) bool {
			g := FromEdgeList(edges)

			data, err := json.Marshal(g)
			if err != nil {
				return false
			}
			restored := New()
			if err := json.Unmarshal(data, restored); err != nil {
				return false
			}

			a, b := g.Edges(), restored.Edges()
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}

			ma, mb := g.Metadata(), restored.Metadata()
			return ma.NodeCount == mb.NodeCount &&
				ma.EdgeCount == mb.EdgeCount &&
				ma.HasNegativeWeights == mb.HasNegativeWeights &&
				ma.HasNegativeCycle == mb.HasNegativeCycle
		},
		genEdges(),
	))

	properties.Property("edge count never exceeds distinct ordered pairs", prop.ForAll(
		func(edges []Edge) bool {
			g := FromEdgeList(edges)

			pairs := make(map[[2]string]struct{})
			for _, e := range edges {
				pairs[[2]string{e.Source, e.Target}] = struct{}{}
			}
			return g.EdgeCount() == len(pairs)
		},
		genEdges(),
	))

	properties.Property("every edge endpoint is a known node", prop.ForAll(
		func(edges []Edge) bool {
			g := FromEdgeList(edges)
			for _, e := range edges {
				if !g.HasNode(e.Source) || !g.HasNode(e.Target) {
					return false
				}
			}
			return true
		},
		genEdges(),
	))

	properties.TestingRun(t)
}
