package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"confcompanion/internal/domain"
)

// WriteServiceError maps a service error onto the HTTP error contract:
// ErrInvalidInput is 400, ErrNotFound is 404 with notFoundMsg,
// connection-class storage errors are a retryable 503, and anything else
// is logged and answered with 500 and defaultMsg.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFoundMsg, defaultMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, notFoundMsg)
	case domain.IsConnectionError(err):
		logger.WarnContext(r.Context(), "storage unavailable", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteServiceUnavailable(w, "Service temporarily unavailable, please try again")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSON(w, http.StatusInternalServerError, APIError{Error: defaultMsg})
	}
}
