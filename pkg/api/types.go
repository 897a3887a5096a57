package api

import "time"

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// GraphStatsResponse is returned by GET /graph/stats
type GraphStatsResponse struct {
	NodeCount          int     `json:"node_count"`
	EdgeCount          int     `json:"edge_count"`
	MinWeight          float64 `json:"min_weight"`
	MaxWeight          float64 `json:"max_weight"`
	HasNegativeWeights bool    `json:"has_negative_weights"`
	NegativeEdgeCount  int     `json:"negative_edge_count"`
	HasNegativeCycle   bool    `json:"has_negative_cycle"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}
