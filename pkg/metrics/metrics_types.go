// Package metrics exposes Prometheus instrumentation for the routing service
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsInFlight  prometheus.Gauge
	HTTPResponseSizeBytes *prometheus.HistogramVec

	// Route Metrics
	RoutesTotal             *prometheus.CounterVec
	RouteDuration           *prometheus.HistogramVec
	RouteAttempts           prometheus.Histogram
	CacheHitsTotal          prometheus.Counter
	CacheMissesTotal        prometheus.Counter
	RetriesTotal            prometheus.Counter
	ValidationFailuresTotal *prometheus.CounterVec

	// Graph Metrics
	GraphNodes         prometheus.Gauge
	GraphEdges         prometheus.Gauge
	GraphNegativeEdges prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics registered
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initHTTPMetrics()
	r.initRouteMetrics()
	r.initGraphMetrics()
	return r
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// Default returns the global metrics registry
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
