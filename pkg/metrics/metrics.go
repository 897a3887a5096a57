package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordResponseSize records the size of an HTTP response
func (r *Registry) RecordResponseSize(method, path string, size float64) {
	r.HTTPResponseSizeBytes.WithLabelValues(method, path).Observe(size)
}

// IncHTTPRequestsInFlight increments the in-flight request gauge
func (r *Registry) IncHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Inc()
}

// DecHTTPRequestsInFlight decrements the in-flight request gauge
func (r *Registry) DecHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Dec()
}

// RecordRoute records a terminal route response
func (r *Registry) RecordRoute(status, algorithm string, attempts int, duration time.Duration) {
	r.RoutesTotal.WithLabelValues(status, algorithm).Inc()
	r.RouteDuration.WithLabelValues(status).Observe(duration.Seconds())
	r.RouteAttempts.Observe(float64(attempts))
}

// RecordCacheHit records an idempotency cache hit
func (r *Registry) RecordCacheHit() {
	r.CacheHitsTotal.Inc()
}

// RecordCacheMiss records an idempotency cache miss
func (r *Registry) RecordCacheMiss() {
	r.CacheMissesTotal.Inc()
}

// RecordRetry records a scheduled computation retry
func (r *Registry) RecordRetry() {
	r.RetriesTotal.Inc()
}

// RecordValidationFailure records a validation failure by code
func (r *Registry) RecordValidationFailure(code string) {
	r.ValidationFailuresTotal.WithLabelValues(code).Inc()
}

// SetGraphStats updates the graph gauges
func (r *Registry) SetGraphStats(nodes, edges, negativeEdges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.GraphNegativeEdges.Set(float64(negativeEdges))
}

// Handler returns an http.Handler serving this registry in the Prometheus
// exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
