package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dd0wney/cluso-routing/pkg/api/middleware"
	"github.com/dd0wney/cluso-routing/pkg/routing"
	"github.com/dd0wney/cluso-routing/pkg/validation"
)

// handleRoute computes a shortest path. The idempotency key comes from the
// body's requestIdentifier, falling back to the X-Request-ID header so plain
// clients get deduplication for free.
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var payload validation.RoutePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateRoutePayload(&payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	requestID := payload.RequestID
	if requestID == "" {
		requestID = middleware.GetRequestID(r)
	}

	resp := s.service.Route(routing.RouteRequest{
		Start:     payload.Start,
		Goal:      payload.Goal,
		RequestID: requestID,
		Timeout:   time.Duration(payload.TimeoutSeconds * float64(time.Second)),
	})

	respondJSON(w, httpStatusFor(resp.Status), resp)
}

// handleGraphStats reports the graph's derived metadata
func (s *Server) handleGraphStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	meta := s.graph.Metadata()
	respondJSON(w, http.StatusOK, GraphStatsResponse{
		NodeCount:          meta.NodeCount,
		EdgeCount:          meta.EdgeCount,
		MinWeight:          meta.MinWeight,
		MaxWeight:          meta.MaxWeight,
		HasNegativeWeights: meta.HasNegativeWeights,
		NegativeEdgeCount:  len(meta.NegativeEdges),
		HasNegativeCycle:   meta.HasNegativeCycle,
	})
}

// handleServiceStats reports request counters and cache size
func (s *Server) handleServiceStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	respondJSON(w, http.StatusOK, s.service.Stats())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).String(),
	})
}
