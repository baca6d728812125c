package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(h http.Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	return rec
}

func TestRateLimited_RejectsAboveBurst(t *testing.T) {
	h := rateLimited(okHandler(), RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})

	assert.Equal(t, http.StatusOK, serve(h).Code)
	assert.Equal(t, http.StatusOK, serve(h).Code)

	rec := serve(h)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimited_Disabled(t *testing.T) {
	h := rateLimited(okHandler(), RateLimitConfig{})

	for i := 0; i < 100; i++ {
		assert.Equal(t, http.StatusOK, serve(h).Code)
	}
}

func TestRateLimited_MinimumBurst(t *testing.T) {
	h := rateLimited(okHandler(), RateLimitConfig{RequestsPerSecond: 0.001})

	assert.Equal(t, http.StatusOK, serve(h).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h).Code)
}

func TestDefaultRateLimit(t *testing.T) {
	assert.True(t, DefaultRateLimit.Enabled())
	assert.False(t, RateLimitConfig{}.Enabled())
}
