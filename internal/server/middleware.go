package server

import (
	"net/http"
	"time"

	"github.com/shininglovestar/remix/internal/metrics"
)

// WithAPIKey rejects requests whose api-key header does not match the
// configured key. An empty key disables the check.
func WithAPIKey(key string, next http.Handler) http.Handler {
	if key == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != key {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WithMetrics records request counts and durations for the wrapped
// handler under the given adapter label.
func WithMetrics(adapter string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		metrics.ObserveRequest(adapter, rec.status, started)
	})
}

// statusRecorder captures the status code while forwarding writes.
// Flush is forwarded so streaming responses keep working behind the
// middleware.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
