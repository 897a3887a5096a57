package algorithms

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/dd0wney/cluso-routing/pkg/graph"
)

// Dijkstra computes shortest paths on graphs with non-negative edge weights
// using a binary-heap priority queue. O(E log V).
type Dijkstra struct{}

// NewDijkstra creates a Dijkstra algorithm instance
func NewDijkstra() *Dijkstra {
	return &Dijkstra{}
}

// Name returns the algorithm name
func (d *Dijkstra) Name() string {
	return "Dijkstra"
}

// SupportsNegativeWeights is false: negative edges break the finalization
// invariant and are rejected up front
func (d *Dijkstra) SupportsNegativeWeights() bool {
	return false
}

// Compute runs Dijkstra from start to goal.
//
// A node is finalized exactly when it is popped from the priority queue with
// the minimum tentative cost, never when it is first discovered. Duplicate
// heap entries for an already-finalized node are stale and skipped. The cost
// at the moment the goal pops is final, so the search returns immediately.
// The context is polled once per pop so a deadline aborts the search promptly
// instead of running the queue dry.
func (d *Dijkstra) Compute(ctx context.Context, g *graph.Graph, start, goal string) (*Result, error) {
	// Precondition: no negative edges anywhere in the graph
	if negatives := g.NegativeEdges(); len(negatives) > 0 {
		return nil, &NegativeWeightError{Algorithm: d.Name(), Edges: negatives}
	}

	if r := trivialResult(start, goal); r != nil {
		return r, nil
	}

	dist := map[string]float64{start: 0}
	prev := make(map[string]string)
	finalized := make(map[string]struct{})

	pq := &costHeap{{node: start, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := heap.Pop(pq).(costEntry)

		if _, done := finalized[item.node]; done {
			continue // stale entry
		}
		finalized[item.node] = struct{}{}

		if item.node == goal {
			return &Result{
				Path: reconstructPath(prev, start, goal),
				Cost: item.cost,
			}, nil
		}

		for neighbor, weight := range g.Neighbors(item.node) {
			if _, done := finalized[neighbor]; done {
				continue
			}
			next := item.cost + weight
			if current, seen := dist[neighbor]; !seen || next < current {
				dist[neighbor] = next
				prev[neighbor] = item.node
				heap.Push(pq, costEntry{node: neighbor, cost: next})
			}
		}
	}

	return nil, fmt.Errorf("%w from %s to %s", ErrNoPath, start, goal)
}

// costEntry is a (node, tentative cost) pair in the priority queue
type costEntry struct {
	node string
	cost float64
}

// costHeap is a min-heap of tentative costs. Ties break arbitrarily; no
// stability is guaranteed or needed.
type costHeap []costEntry

func (h costHeap) Len() int            { return len(h) }
func (h costHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h costHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x interface{}) { *h = append(*h, x.(costEntry)) }

func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
