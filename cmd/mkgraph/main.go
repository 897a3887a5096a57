// mkgraph generates a random weighted graph and writes it as an edge-list
// file for the routing daemon. Files ending in .snappy are compressed.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/dd0wney/cluso-routing/pkg/graph"
)

func main() {
	out := flag.String("out", "graph.json", "Output file (.snappy suffix enables compression)")
	nodes := flag.Int("nodes", 1000, "Number of nodes")
	edgesPerNode := flag.Int("edges-per-node", 4, "Average outgoing edges per node")
	minWeight := flag.Float64("min-weight", 1, "Minimum edge weight")
	maxWeight := flag.Float64("max-weight", 100, "Maximum edge weight")
	seed := flag.Int64("seed", 42, "Random seed")
	flag.Parse()

	if *nodes < 2 {
		log.Fatal("need at least 2 nodes")
	}
	if *maxWeight < *minWeight {
		log.Fatal("max-weight must be >= min-weight")
	}

	rng := rand.New(rand.NewSource(*seed))
	g := generate(rng, *nodes, *edgesPerNode, *minWeight, *maxWeight)

	if err := g.SaveFile(*out); err != nil {
		log.Fatalf("Failed to write graph: %v", err)
	}

	meta := g.Metadata()
	fmt.Printf("Wrote %s: %d nodes, %d edges\n", *out, meta.NodeCount, meta.EdgeCount)
	if meta.HasNegativeWeights {
		fmt.Printf("Graph has %d negative edges\n", len(meta.NegativeEdges))
	}
	if meta.HasNegativeCycle {
		fmt.Println("Warning: graph contains a negative cycle and will be rejected by the daemon")
		os.Exit(1)
	}
}

// generate builds a connected graph: a spanning chain first so every node is
// reachable from node 0, then random extra edges up to the target density.
func generate(rng *rand.Rand, nodes, edgesPerNode int, minWeight, maxWeight float64) *graph.Graph {
	g := graph.New()

	name := func(i int) string { return fmt.Sprintf("n%d", i) }
	weight := func() float64 {
		return minWeight + rng.Float64()*(maxWeight-minWeight)
	}

	for i := 1; i < nodes; i++ {
		g.AddEdge(name(rng.Intn(i)), name(i), weight())
	}

	extra := nodes * (edgesPerNode - 1)
	for i := 0; i < extra; i++ {
		from := rng.Intn(nodes)
		to := rng.Intn(nodes)
		if from == to {
			continue
		}
		g.AddEdge(name(from), name(to), weight())
	}

	return g
}
