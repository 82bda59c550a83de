package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/logger"
)

// errorResponse is the JSON body for API errors.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnsupportedKind):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrContentUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v with status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode response: %v", err)
	}
}

// writeError writes err as JSON. Internal errors are logged and hidden.
func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	resp := errorResponse{Error: err.Error()}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	if code >= http.StatusInternalServerError {
		logger.Error("Request failed: %v", err)
		resp.Error = http.StatusText(code)
	}
	if code == http.StatusTooManyRequests {
		w.Header().Set("Retry-After", "5")
	}
	writeJSON(w, code, resp)
}
