package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// edgeListDoc is the external graph construction format:
// {"edges": [{"source": "A", "target": "B", "weight": 5}, ...]}
type edgeListDoc struct {
	Edges []Edge `json:"edges"`
}

// FromEdgeList builds a graph from a sequence of edges. Duplicate
// (source, target) pairs follow last-write-wins semantics.
func FromEdgeList(edges []Edge) *Graph {
	g := New()
	for _, e := range edges {
		g.AddEdge(e.Source, e.Target, e.Weight)
	}
	return g
}

// LoadFile reads a graph from a JSON edge-list document. Files with a
// ".snappy" suffix are decompressed first, which keeps large exported
// road-network snapshots small on disk.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	if strings.HasSuffix(path, ".snappy") {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("decompress graph file %s: %w", path, err)
		}
	}

	var doc edgeListDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse graph file %s: %w", path, err)
	}

	return FromEdgeList(doc.Edges), nil
}

// SaveFile writes the graph as a JSON edge-list document, compressing with
// snappy when the path carries a ".snappy" suffix.
func (g *Graph) SaveFile(path string) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("serialize graph: %w", err)
	}

	if strings.HasSuffix(path, ".snappy") {
		data = snappy.Encode(nil, data)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write graph file: %w", err)
	}
	return nil
}

// MarshalJSON serializes the graph back to the edge-list document format.
// Edges are emitted in deterministic (source, target) order.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(edgeListDoc{Edges: g.Edges()})
}

// UnmarshalJSON rebuilds a graph from the edge-list document format,
// replacing any existing edges
func (g *Graph) UnmarshalJSON(data []byte) error {
	var doc edgeListDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	g.mu.Lock()
	g.adj = make(map[string]map[string]float64)
	g.edgeCount = 0
	g.meta = Metadata{}
	g.dirty = true
	g.mu.Unlock()

	for _, e := range doc.Edges {
		g.AddEdge(e.Source, e.Target, e.Weight)
	}
	return nil
}
