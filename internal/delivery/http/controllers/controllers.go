// Package controllers holds the HTTP handlers of the conference API.
package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"confcompanion/internal/delivery/http/helpers"
	"confcompanion/internal/delivery/http/middleware"
	"confcompanion/internal/domain"
)

// StatusResponse is a minimal acknowledgement body.
type StatusResponse struct {
	Success bool `json:"success"`
}

// pathUUID reads a UUID path value. It writes 404 with notFoundMsg and
// returns false when the value is not a UUID, since no such row can exist.
func pathUUID(w http.ResponseWriter, r *http.Request, name, notFoundMsg string) (string, bool) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg)
		return "", false
	}
	return id.String(), true
}

// requireClaims returns the verified claims or writes 401.
func requireClaims(w http.ResponseWriter, r *http.Request) (*domain.IdentityClaims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	return claims, true
}
