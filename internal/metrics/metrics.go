// Package metrics provides Prometheus metrics for the platform
// adapters and the HTTP handler exposing them.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Adapter label values.
const (
	AdapterGateway = "gateway"
	AdapterWeb     = "web"
)

var (
	// RequestsTotal counts adapter invocations by adapter and
	// status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adapter_requests_total",
			Help: "Adapter invocations",
		},
		[]string{"adapter", "status"},
	)

	// RequestDuration records end-to-end invocation duration in
	// seconds, translation and framework handler included.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adapter_request_duration_seconds",
			Help:    "Adapter invocation duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"adapter"},
	)

	// ErrorsTotal counts invocations that failed before a response
	// could be produced.
	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adapter_errors_total",
			Help: "Adapter invocation failures",
		},
		[]string{"adapter"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		ErrorsTotal,
	)
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest records a completed adapter invocation.
func ObserveRequest(adapter string, statusCode int, started time.Time) {
	RequestsTotal.WithLabelValues(adapter, statusClass(statusCode)).Inc()
	RequestDuration.WithLabelValues(adapter).Observe(time.Since(started).Seconds())
}

// ObserveError records a failed adapter invocation.
func ObserveError(adapter string) {
	ErrorsTotal.WithLabelValues(adapter).Inc()
}

func statusClass(statusCode int) string {
	if statusCode < 100 || statusCode > 599 {
		return "unknown"
	}

	return fmt.Sprintf("%dxx", statusCode/100)
}
