package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRouteMetrics() {
	r.RoutesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_routes_total",
			Help: "Total number of route requests by terminal status and algorithm",
		},
		[]string{"status", "algorithm"},
	)

	r.RouteDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routing_route_duration_seconds",
			Help:    "Route computation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"status"},
	)

	r.RouteAttempts = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "routing_route_attempts",
			Help:    "Number of computation attempts per route request",
			Buckets: []float64{1, 2, 3, 5, 10},
		},
	)

	r.CacheHitsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routing_idempotency_cache_hits_total",
			Help: "Route requests answered from the idempotency cache",
		},
	)

	r.CacheMissesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routing_idempotency_cache_misses_total",
			Help: "Route requests that claimed a fresh computation",
		},
	)

	r.RetriesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routing_retries_total",
			Help: "Total number of computation retries scheduled",
		},
	)

	r.ValidationFailuresTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_validation_failures_total",
			Help: "Validation failures by machine-readable code",
		},
		[]string{"code"},
	)
}
