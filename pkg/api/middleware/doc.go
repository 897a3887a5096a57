// Package middleware provides HTTP middleware for the routing API server.
//
// Each concern lives in its own file:
//
//   - recovery.go: panic recovery
//   - request_id.go: request ID generation and propagation
//   - logging.go: structured request logging
//   - metrics.go: HTTP metrics collection
//   - body_limit.go: request body size limiting
//
// All middleware follows the standard pattern func(http.Handler) http.Handler
// so layers chain as handler = outer(inner(mux)).
package middleware
