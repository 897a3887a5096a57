// Package validation checks route requests against the graph they will be
// computed on, and payloads and configuration against their structural rules.
package validation

import (
	"fmt"

	"github.com/dd0wney/cluso-routing/pkg/graph"
)

// Machine-readable validation error codes
const (
	CodeEmptyGraph    = "EMPTY_GRAPH"
	CodeGraphTooLarge = "GRAPH_TOO_LARGE"
	CodeNegativeCycle = "NEGATIVE_CYCLE"
	CodeNodeNotFound  = "NODE_NOT_FOUND"
)

// Default graph size limits
const (
	DefaultMaxNodes = 10000
	DefaultMaxEdges = 100000
)

// ValidationError is a single validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Result collects every violated rule. Errors keep insertion order so a
// given request always reports failures in the same sequence.
type Result struct {
	Valid  bool
	Errors []ValidationError
}

func (r *Result) addError(field, message, code string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message, Code: code})
}

// HasCode reports whether any collected error carries the given code
func (r *Result) HasCode(code string) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Limits bounds the graph sizes the service accepts
type Limits struct {
	MaxNodes int
	MaxEdges int
}

// DefaultLimits returns the standard graph size limits
func DefaultLimits() Limits {
	return Limits{MaxNodes: DefaultMaxNodes, MaxEdges: DefaultMaxEdges}
}

// RequestValidator validates route requests against a graph
type RequestValidator struct {
	limits Limits
}

// NewRequestValidator creates a validator with the given limits
func NewRequestValidator(limits Limits) *RequestValidator {
	if limits.MaxNodes <= 0 {
		limits.MaxNodes = DefaultMaxNodes
	}
	if limits.MaxEdges <= 0 {
		limits.MaxEdges = DefaultMaxEdges
	}
	return &RequestValidator{limits: limits}
}

// ValidateGraph checks the graph's structural rules: non-empty, within size
// limits, and free of negative cycles. A flagged negative cycle is fatal here
// so a cyclic graph never reaches the algorithm layer on the normal path.
func (v *RequestValidator) ValidateGraph(g *graph.Graph) Result {
	result := Result{Valid: true}
	meta := g.Metadata()

	if meta.NodeCount == 0 {
		result.addError("graph", "graph has no nodes", CodeEmptyGraph)
	}
	if meta.NodeCount > v.limits.MaxNodes {
		result.addError("graph",
			fmt.Sprintf("graph has %d nodes, exceeds limit of %d", meta.NodeCount, v.limits.MaxNodes),
			CodeGraphTooLarge)
	}
	if meta.EdgeCount > v.limits.MaxEdges {
		result.addError("graph",
			fmt.Sprintf("graph has %d edges, exceeds limit of %d", meta.EdgeCount, v.limits.MaxEdges),
			CodeGraphTooLarge)
	}
	if meta.HasNegativeCycle {
		result.addError("graph",
			"graph contains a negative-weight cycle; shortest path is undefined",
			CodeNegativeCycle)
	}

	return result
}

// ValidateRouteRequest checks a (start, goal) request against the graph.
// All rules are independent and every violated rule is reported, not just
// the first. start == goal is valid: the trivial case resolves to a
// single-node zero-cost path in the algorithm layer.
func (v *RequestValidator) ValidateRouteRequest(g *graph.Graph, start, goal string) Result {
	result := v.ValidateGraph(g)

	if !g.HasNode(start) {
		result.addError("start",
			fmt.Sprintf("start node %q not found in graph", start),
			CodeNodeNotFound)
	}
	if !g.HasNode(goal) {
		result.addError("goal",
			fmt.Sprintf("goal node %q not found in graph", goal),
			CodeNodeNotFound)
	}

	return result
}
