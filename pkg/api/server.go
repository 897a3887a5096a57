// Package api exposes the routing service over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/dd0wney/cluso-routing/pkg/api/middleware"
	"github.com/dd0wney/cluso-routing/pkg/graph"
	"github.com/dd0wney/cluso-routing/pkg/logging"
	"github.com/dd0wney/cluso-routing/pkg/metrics"
	"github.com/dd0wney/cluso-routing/pkg/routing"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

// Server wires the routing service, graph, and metrics registry into an
// HTTP handler
type Server struct {
	service   *routing.Service
	graph     *graph.Graph
	metrics   *metrics.Registry
	log       logging.Logger
	startTime time.Time
	version   string
}

// Options configures an API server
type Options struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
	Version string
}

// NewServer creates an API server over the given service and graph
func NewServer(service *routing.Service, g *graph.Graph, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logging.DefaultLogger()
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Server{
		service:   service,
		graph:     g,
		metrics:   opts.Metrics,
		log:       opts.Logger.With(logging.Component("api")),
		startTime: time.Now(),
		version:   opts.Version,
	}
}

// Handler returns the fully assembled HTTP handler with the middleware
// chain applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/route", s.handleRoute)
	mux.HandleFunc("/graph/stats", s.handleGraphStats)
	mux.HandleFunc("/stats", s.handleServiceStats)
	mux.HandleFunc("/health", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}

	// Innermost first: recovery wraps everything so a panicking handler
	// still produces a response and a metric.
	var handler http.Handler = mux
	handler = middleware.BodySizeLimit(maxRequestBodyBytes)(handler)
	if s.metrics != nil {
		handler = middleware.Metrics(s.metrics)(handler)
	}
	handler = middleware.Logging(s.log)(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.PanicRecovery(s.log)(handler)
	return handler
}
