// Package routing orchestrates shortest-path requests: validation, algorithm
// selection, bounded retries, idempotent response storage, and status
// classification.
package routing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-routing/pkg/algorithms"
	"github.com/dd0wney/cluso-routing/pkg/graph"
	"github.com/dd0wney/cluso-routing/pkg/logging"
	"github.com/dd0wney/cluso-routing/pkg/metrics"
	"github.com/dd0wney/cluso-routing/pkg/validation"
)

// Lifecycle event names. Every event carries the request identifier so the
// full request history can be reconstructed from logs alone.
const (
	eventRequestReceived      = "request_received"
	eventCacheHit             = "cache_hit"
	eventValidationStarted    = "validation_started"
	eventValidationPassed     = "validation_passed"
	eventValidationFailed     = "validation_failed"
	eventAlgorithmSelected    = "algorithm_selected"
	eventComputationStarted   = "computation_started"
	eventComputationCompleted = "computation_completed"
	eventComputationFailed    = "computation_failed"
	eventRetryScheduled       = "retry_scheduled"
	eventResponseSent         = "response_sent"
)

// DefaultTimeout bounds a route computation when the request does not carry
// its own budget
const DefaultTimeout = 5 * time.Second

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	Limits         validation.Limits
	Retry          RetryConfig
	DefaultTimeout time.Duration
	Logger         logging.Logger
	Metrics        *metrics.Registry
}

// Service computes shortest paths over a single read-only graph. It is safe
// for concurrent use: the graph is never mutated during query processing and
// the idempotency cache serializes duplicate submissions.
type Service struct {
	graph     *graph.Graph
	validator *validation.RequestValidator
	retry     RetryConfig
	timeout   time.Duration
	cache     *ResponseCache
	log       logging.Logger
	metrics   *metrics.Registry

	// selectAlgorithm is swapped in tests to inject failing algorithms
	selectAlgorithm func(*graph.Graph) algorithms.Algorithm

	requestCount atomic.Uint64
	successCount atomic.Uint64
	errorCount   atomic.Uint64
}

// NewService creates a routing service over g
func NewService(g *graph.Graph, opts Options) *Service {
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = DefaultRetryConfig()
	}
	if opts.DefaultTimeout == 0 {
		opts.DefaultTimeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.DefaultLogger()
	}

	s := &Service{
		graph:           g,
		validator:       validation.NewRequestValidator(opts.Limits),
		retry:           opts.Retry,
		timeout:         opts.DefaultTimeout,
		cache:           NewResponseCache(),
		log:             opts.Logger.With(logging.Component("routing")),
		metrics:         opts.Metrics,
		selectAlgorithm: algorithms.Select,
	}

	if s.metrics != nil {
		meta := g.Metadata()
		s.metrics.SetGraphStats(meta.NodeCount, meta.EdgeCount, len(meta.NegativeEdges))
	}
	return s
}

// Route processes one request end to end and always returns a response; no
// error ever escapes this boundary. For a fixed request identifier Route is
// memoized: the first call computes, every later or concurrent call with the
// same identifier receives the stored response unchanged.
func (s *Service) Route(req RouteRequest) *RouteResponse {
	s.requestCount.Add(1)

	id := req.RequestID
	if id == "" {
		id = uuid.NewString()
	}

	claim, claimed := s.cache.ClaimOrGet(id)
	if !claimed {
		resp := claim.Await()
		s.log.Info(eventCacheHit,
			logging.RequestID(id),
			logging.Status(string(resp.Status)),
		)
		if s.metrics != nil {
			s.metrics.RecordCacheHit()
		}
		return resp
	}
	if s.metrics != nil {
		s.metrics.RecordCacheMiss()
	}

	start := time.Now()
	s.log.Info(eventRequestReceived,
		logging.RequestID(id),
		logging.StartNode(req.Start),
		logging.GoalNode(req.Goal),
	)

	// Validation
	s.log.Info(eventValidationStarted, logging.RequestID(id))
	result := s.validator.ValidateRouteRequest(s.graph, req.Start, req.Goal)
	if !result.Valid {
		return s.finishValidationFailure(claim, id, result, start)
	}
	meta := s.graph.Metadata()
	s.log.Info(eventValidationPassed,
		logging.RequestID(id),
		logging.Int("node_count", meta.NodeCount),
		logging.Int("edge_count", meta.EdgeCount),
		logging.Bool("has_negative_weights", meta.HasNegativeWeights),
	)

	// Algorithm selection, re-evaluated per request from graph metadata
	algo := s.selectAlgorithm(s.graph)
	s.log.Info(eventAlgorithmSelected,
		logging.RequestID(id),
		logging.Algorithm(algo.Name()),
	)

	return s.compute(claim, id, req, algo, start)
}

// compute runs the attempt loop within the request's time budget
func (s *Service) compute(claim *Claim, id string, req RouteRequest, algo algorithms.Algorithm, start time.Time) *RouteResponse {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = s.timeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var lastErr error
	for attempt := 1; attempt <= s.retry.MaxAttempts; attempt++ {
		s.log.Info(eventComputationStarted,
			logging.RequestID(id),
			logging.Attempt(attempt),
		)

		result, err := algo.Compute(ctx, s.graph, req.Start, req.Goal)
		if err == nil {
			cost := result.Cost
			resp := &RouteResponse{
				RequestID:     id,
				Status:        StatusSuccess,
				Path:          result.Path,
				Cost:          &cost,
				AlgorithmUsed: algo.Name(),
				ComputeTimeMs: msSince(start),
				AttemptCount:  attempt,
			}
			s.log.Info(eventComputationCompleted,
				logging.RequestID(id),
				logging.Algorithm(algo.Name()),
				logging.Cost(cost),
				logging.Int("path_length", len(result.Path)),
				logging.Attempt(attempt),
			)
			return s.finish(claim, resp, algo.Name(), start)
		}

		status, terminal := classify(err)
		s.log.Warn(eventComputationFailed,
			logging.RequestID(id),
			logging.Status(string(status)),
			logging.Attempt(attempt),
			logging.Error(err),
		)

		if terminal {
			resp := &RouteResponse{
				RequestID:     id,
				Status:        status,
				ComputeTimeMs: msSince(start),
				AttemptCount:  attempt,
				ErrorMessage:  err.Error(),
			}
			return s.finish(claim, resp, algo.Name(), start)
		}

		lastErr = err
		if attempt < s.retry.MaxAttempts {
			backoff := s.retry.BackoffFor(attempt)
			s.log.Info(eventRetryScheduled,
				logging.RequestID(id),
				logging.Attempt(attempt),
				logging.Duration("backoff", backoff),
			)
			if s.metrics != nil {
				s.metrics.RecordRetry()
			}
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				resp := &RouteResponse{
					RequestID:     id,
					Status:        StatusTimeout,
					ComputeTimeMs: msSince(start),
					AttemptCount:  attempt,
					ErrorMessage:  fmt.Sprintf("computation exceeded timeout of %s", timeout),
				}
				return s.finish(claim, resp, algo.Name(), start)
			}
		}
	}

	// Retries exhausted
	resp := &RouteResponse{
		RequestID:     id,
		Status:        StatusFailure,
		ComputeTimeMs: msSince(start),
		AttemptCount:  s.retry.MaxAttempts,
		ErrorMessage:  fmt.Sprintf("failed after %d attempts: %v", s.retry.MaxAttempts, lastErr),
	}
	return s.finish(claim, resp, algo.Name(), start)
}

// classify maps an algorithm error to a terminal status. terminal is false
// only for unexpected errors, which are eligible for bounded retry; graph
// conditions never change between attempts, so retrying them is pointless.
func classify(err error) (status RouteStatus, terminal bool) {
	var cycleErr *algorithms.NegativeCycleError
	var weightErr *algorithms.NegativeWeightError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout, true
	case errors.Is(err, algorithms.ErrNoPath):
		return StatusNoPath, true
	case errors.As(err, &cycleErr):
		return StatusNegativeCycle, true
	case errors.As(err, &weightErr):
		// Only reachable when an algorithm is invoked directly on a
		// graph that violates its precondition.
		return StatusAlgorithmError, true
	default:
		return StatusFailure, false
	}
}

func (s *Service) finishValidationFailure(claim *Claim, id string, result validation.Result, start time.Time) *RouteResponse {
	status := StatusValidationError
	if result.HasCode(validation.CodeNegativeCycle) {
		status = StatusNegativeCycle
	}

	messages := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Field, e.Message))
		if s.metrics != nil {
			s.metrics.RecordValidationFailure(e.Code)
		}
	}

	s.log.Warn(eventValidationFailed,
		logging.RequestID(id),
		logging.Status(string(status)),
		logging.Count(len(result.Errors)),
		logging.Any("validation_errors", result.Errors),
	)

	resp := &RouteResponse{
		RequestID:     id,
		Status:        status,
		ComputeTimeMs: msSince(start),
		ErrorMessage:  strings.Join(messages, "; "),
	}
	return s.finish(claim, resp, "none", start)
}

// finish stores the terminal response exactly once, updates counters and
// metrics, and emits the final lifecycle event
func (s *Service) finish(claim *Claim, resp *RouteResponse, algoLabel string, start time.Time) *RouteResponse {
	claim.Complete(resp)

	if resp.Status == StatusSuccess {
		s.successCount.Add(1)
	} else {
		s.errorCount.Add(1)
	}
	if s.metrics != nil {
		s.metrics.RecordRoute(string(resp.Status), algoLabel, resp.AttemptCount, time.Since(start))
	}

	s.log.Info(eventResponseSent,
		logging.RequestID(resp.RequestID),
		logging.Status(string(resp.Status)),
		logging.Latency(time.Since(start)),
	)
	return resp
}

// Stats returns a snapshot of the service counters
func (s *Service) Stats() Stats {
	requests := s.requestCount.Load()
	success := s.successCount.Load()

	rate := 0.0
	if requests > 0 {
		rate = float64(success) / float64(requests)
	}
	return Stats{
		RequestsTotal: requests,
		SuccessTotal:  success,
		ErrorTotal:    s.errorCount.Load(),
		CacheSize:     s.cache.Len(),
		SuccessRate:   rate,
	}
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
