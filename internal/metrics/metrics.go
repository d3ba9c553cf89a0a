// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StorageRetries counts backoff retries per storage operation
	StorageRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confcompanion_storage_retries_total",
			Help: "Total number of storage operation retries after a transient connection failure",
		},
		[]string{"op"},
	)

	// StorageErrors counts escalated storage errors by kind (connection or error)
	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confcompanion_storage_errors_total",
			Help: "Total number of storage errors escalated to callers",
		},
		[]string{"op", "kind"},
	)

	// DBUp is 1 when the last connection probe succeeded
	DBUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "confcompanion_db_up",
			Help: "Whether the last database connection probe succeeded",
		},
	)

	// DBOpenConnections tracks the pool's open connections
	DBOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "confcompanion_db_open_connections",
			Help: "Number of open database connections",
		},
	)

	// CacheRequests counts conference cache lookups by result (hit, miss, error)
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confcompanion_cache_requests_total",
			Help: "Total number of conference cache lookups",
		},
		[]string{"result"},
	)

	// HTTPRequests counts served requests per route pattern and status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confcompanion_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPLatency tracks request latency per route pattern
	HTTPLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "confcompanion_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
