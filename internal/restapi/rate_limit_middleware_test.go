package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	middleware := NewRateLimitMiddleware(5, time.Second)
	defer middleware.Stop()

	limited := middleware.rateLimitHandler(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/bus-times", nil)
		w := httptest.NewRecorder()

		limited.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
	}
}

func TestRateLimitMiddleware_BlocksRequestsOverLimit(t *testing.T) {
	middleware := NewRateLimitMiddleware(3, time.Second)
	defer middleware.Stop()

	limited := middleware.rateLimitHandler(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/bus-times", nil)
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bus-times", nil)
	w := httptest.NewRecorder()
	limited.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code, "request over limit should be blocked")
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestRateLimitMiddleware_PerClientLimiting(t *testing.T) {
	middleware := NewRateLimitMiddleware(2, time.Second)
	defer middleware.Stop()

	limited := middleware.rateLimitHandler(okHandler())

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/bus-times", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, req)
		return w.Code
	}

	// Exhaust the first client's budget.
	assert.Equal(t, http.StatusOK, send("10.0.0.1:4567"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:4567"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:4567"))

	// A different client still gets through.
	assert.Equal(t, http.StatusOK, send("10.0.0.2:4567"))
}

func TestRateLimitMiddleware_DisabledWhenNotConfigured(t *testing.T) {
	middleware := NewRateLimitMiddleware(0, time.Second)
	defer middleware.Stop()

	limited := middleware.rateLimitHandler(okHandler())

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/bus-times", nil)
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitIntegration(t *testing.T) {
	api := newTestAPI(t, okHandler(), 2)
	handler := api.Handler()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	// Even limited responses carry the CORS headers.
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
