package middleware

import (
	"net/http"
	"strconv"
	"time"

	"confcompanion/internal/metrics"
)

// Metrics records request counts and latency per matched route pattern.
// Unmatched requests are recorded under "unmatched" to bound label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
		metrics.HTTPLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
