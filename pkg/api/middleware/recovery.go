package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/dd0wney/cluso-routing/pkg/logging"
)

// PanicRecovery creates middleware that recovers from panics in HTTP
// handlers. The panic and stack trace are logged; the client sees only a
// generic 500.
func PanicRecovery(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic_recovered",
						logging.RequestID(GetRequestID(r)),
						logging.String("method", r.Method),
						logging.String("path", r.URL.Path),
						logging.Error(fmt.Errorf("%v", err)),
						logging.String("stack", string(debug.Stack())),
					)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
