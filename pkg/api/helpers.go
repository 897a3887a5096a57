package api

import (
	"encoding/json"
	"net/http"

	"github.com/dd0wney/cluso-routing/pkg/routing"
)

// httpStatusFor maps a terminal route status to an HTTP status code
func httpStatusFor(status routing.RouteStatus) int {
	switch status {
	case routing.StatusSuccess:
		return http.StatusOK
	case routing.StatusValidationError:
		return http.StatusBadRequest
	case routing.StatusNoPath:
		return http.StatusNotFound
	case routing.StatusNegativeCycle:
		return http.StatusUnprocessableEntity
	case routing.StatusTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding our own response types cannot fail; nothing useful to do
	// if the client went away mid-write.
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
