package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest         = "bad_request"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeNotFound           = "not_found"
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)

// APIError is the body of every error response.
// swagger:model APIError
type APIError struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes v as the body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONSuccess writes data as the bare response body.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, data)
}

// WriteJSONError writes an APIError with the given code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, APIError{Error: message, Code: code})
}

// WriteServiceUnavailable tells the client the failure was transient and the request may be retried.
func WriteServiceUnavailable(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusServiceUnavailable, APIError{
		Error:     message,
		Code:      ErrCodeServiceUnavailable,
		Retryable: true,
	})
}
