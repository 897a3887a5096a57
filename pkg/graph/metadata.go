package graph

import "math"

// Metadata describes derived graph properties used for validation and
// algorithm selection. It is recomputed from the edge set on demand, so a
// read always reflects the edges present at read time.
type Metadata struct {
	NodeCount          int     `json:"node_count"`
	EdgeCount          int     `json:"edge_count"`
	MinWeight          float64 `json:"min_weight"`
	MaxWeight          float64 `json:"max_weight"`
	HasNegativeWeights bool    `json:"has_negative_weights"`
	NegativeEdges      []Edge  `json:"negative_edges,omitempty"`
	HasNegativeCycle   bool    `json:"has_negative_cycle"`
}

// Metadata returns a snapshot of the graph's derived properties,
// recomputing them first if any edge was added since the last read.
func (g *Graph) Metadata() Metadata {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.dirty {
		g.refreshLocked()
		g.dirty = false
	}

	meta := g.meta
	meta.NegativeEdges = append([]Edge(nil), g.meta.NegativeEdges...)
	return meta
}

func (g *Graph) refreshLocked() {
	meta := Metadata{
		NodeCount: len(g.adj),
		EdgeCount: g.edgeCount,
		MinWeight: math.Inf(1),
		MaxWeight: math.Inf(-1),
	}

	edges := g.edgesLocked()
	for _, e := range edges {
		if e.Weight < meta.MinWeight {
			meta.MinWeight = e.Weight
		}
		if e.Weight > meta.MaxWeight {
			meta.MaxWeight = e.Weight
		}
		if e.Weight < 0 {
			meta.HasNegativeWeights = true
			meta.NegativeEdges = append(meta.NegativeEdges, e)
		}
	}

	// A graph with only non-negative edges cannot contain a negative cycle,
	// so the probe is skipped entirely.
	if meta.HasNegativeWeights {
		meta.HasNegativeCycle = detectNegativeCycle(g.nodesLocked(), edges)
	}

	g.meta = meta
}

// detectNegativeCycle runs a single-source Bellman-Ford probe: relax every
// edge |V|-1 times from one source, then run one more full pass. Any edge
// that still improves a distance closes a negative cycle reachable from the
// probe source.
//
// The probe starts from the first node in sorted order. A negative cycle in
// a component unreachable from that node goes undetected; this single-source
// behavior is intentional and callers should not rely on the probe as an
// all-pairs certificate.
func detectNegativeCycle(nodes []string, edges []Edge) bool {
	if len(nodes) == 0 {
		return false
	}

	dist := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		dist[n] = math.Inf(1)
	}
	dist[nodes[0]] = 0

	for i := 0; i < len(nodes)-1; i++ {
		updated := false
		for _, e := range edges {
			if math.IsInf(dist[e.Source], 1) {
				continue
			}
			if next := dist[e.Source] + e.Weight; next < dist[e.Target] {
				dist[e.Target] = next
				updated = true
			}
		}
		if !updated {
			break
		}
	}

	for _, e := range edges {
		if math.IsInf(dist[e.Source], 1) {
			continue
		}
		if dist[e.Source]+e.Weight < dist[e.Target] {
			return true
		}
	}
	return false
}
