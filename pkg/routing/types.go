package routing

import (
	"time"

	"github.com/google/uuid"
)

// RouteRequest identifies one logical shortest-path query. RequestID is the
// idempotency key: submissions sharing an id are deduplicated to a single
// computation. Immutable once created.
type RouteRequest struct {
	Start     string
	Goal      string
	RequestID string
	// Timeout bounds the total computation budget across all attempts.
	// Zero means the service default.
	Timeout time.Duration
}

// NewRouteRequest builds a request with a generated identifier. A generated
// id is unique per call, so such requests are never deduplicated against
// each other.
func NewRouteRequest(start, goal string) RouteRequest {
	return RouteRequest{
		Start:     start,
		Goal:      goal,
		RequestID: uuid.NewString(),
	}
}

// RouteResponse is the terminal outcome of a route request. Once stored
// under a request identifier it is never mutated; replays of the same id
// return this exact object.
type RouteResponse struct {
	RequestID     string      `json:"requestIdentifier"`
	Status        RouteStatus `json:"status"`
	Path          []string    `json:"path,omitempty"`
	Cost          *float64    `json:"cost,omitempty"`
	AlgorithmUsed string      `json:"algorithmUsed,omitempty"`
	ComputeTimeMs float64     `json:"computeTimeMs"`
	AttemptCount  int         `json:"attemptCount"`
	ErrorMessage  string      `json:"errorMessage,omitempty"`
}

// Stats is a snapshot of service-level counters
type Stats struct {
	RequestsTotal uint64  `json:"requests_total"`
	SuccessTotal  uint64  `json:"requests_success"`
	ErrorTotal    uint64  `json:"requests_error"`
	CacheSize     int     `json:"cache_size"`
	SuccessRate   float64 `json:"success_rate"`
}
