package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithAPIKey_AllowsMatchingKey(t *testing.T) {
	handler := WithAPIKey("secret", noopHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("api-key", "secret")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithAPIKey_RejectsWrongKey(t *testing.T) {
	handler := WithAPIKey("secret", noopHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("api-key", "wrong")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAPIKey_DisabledWithoutKey(t *testing.T) {
	handler := WithAPIKey("", noopHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithMetrics_ForwardsFlush(t *testing.T) {
	handler := WithMetrics("web", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, w.Flushed)
}
