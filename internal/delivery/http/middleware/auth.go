package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "confcompanion/internal/delivery/http/helpers"
	"confcompanion/internal/domain"
)

type contextKey string

const claimsKey contextKey = "claims"

// SetClaims returns a context carrying the verified identity claims. Used by auth middleware.
func SetClaims(ctx context.Context, claims *domain.IdentityClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the verified identity claims, if present.
func ClaimsFromContext(ctx context.Context) (*domain.IdentityClaims, bool) {
	c, ok := ctx.Value(claimsKey).(*domain.IdentityClaims)
	return c, ok && c != nil && c.Subject != ""
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	c, ok := ClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	return c.Subject, true
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively. On failure it returns the client-facing reason.
func bearerToken(r *http.Request) (token, reason string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", "missing authorization header"
	}
	scheme, rest, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", "invalid authorization format"
	}
	token = strings.TrimSpace(rest)
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}

// RequireAuth returns a wrapper that validates the Bearer token and stores its claims in the request context.
// If the token is missing or invalid, or carries no subject, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, reason := bearerToken(r)
			if reason != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, reason)
				return
			}
			claims, err := verifier.Verify(token)
			if err == nil && (claims == nil || claims.Subject == "") {
				err = errors.New("token has no subject")
			}
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected",
					"path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()), "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetClaims(r.Context(), claims)))
		}
	}
}
