package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"confcompanion/internal/metrics"
)

func TestMetrics_UsesRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := Metrics(mux)

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "GET /api/sessions/{id}", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sessions/"+id, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	unmatched := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")
	before = testutil.ToFloat64(unmatched)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(unmatched))
}
