package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, PATCH, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Authorization, Content-Type, Accept, " + RequestIDHeader
	corsMaxAge       = "86400"
)

// originSet is the normalized CORS allow-list. "*" admits any origin.
type originSet struct {
	any     bool
	origins map[string]struct{}
}

func newOriginSet(allowedOrigins []string) originSet {
	s := originSet{origins: make(map[string]struct{}, len(allowedOrigins))}
	for _, o := range allowedOrigins {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			s.any = true
		default:
			s.origins[o] = struct{}{}
		}
	}
	return s
}

func (s originSet) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if s.any {
		return true
	}
	_, ok := s.origins[origin]
	return ok
}

// CORS returns a handler that adds CORS headers for allowed origins and
// responds to OPTIONS preflight requests with 204.
// The allowed origin is echoed back, never "*", so credentials keep working.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowed := newOriginSet(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		w.Header().Add("Vary", "Origin")
		ok := allowed.allows(origin)
		if ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			if ok {
				w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
				w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
				w.Header().Set("Access-Control-Max-Age", corsMaxAge)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if ok {
			w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
		}
		next.ServeHTTP(w, r)
	})
}
