package middleware

import (
	"net/http"
	"time"

	"github.com/dd0wney/cluso-routing/pkg/logging"
)

// loggingResponseWriter captures the status code for the access log
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Logging creates middleware that emits one structured log entry per request
func Logging(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r)

			logger.Info("http_request",
				logging.RequestID(GetRequestID(r)),
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Int("status", wrapper.statusCode),
				logging.Latency(time.Since(start)),
			)
		})
	}
}
