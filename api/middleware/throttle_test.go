package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"retail-service/config"
	"retail-service/service/metrics"
	"retail-service/service/rate_limiter"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLimiter struct{}

func (failingLimiter) Check(ctx context.Context, rule rate_limiter.RateLimitRule) (*rate_limiter.RateLimitResult, error) {
	return nil, errors.New("redis不可用")
}

func (failingLimiter) Close() error { return nil }

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestThrottle_LimiterFailureAllowsRequest(t *testing.T) {
	cfg := config.Resolve(config.MapEnv{})
	handler := Throttle(failingLimiter{}, cfg, nil)(http.HandlerFunc(okHandler))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestThrottle_PerClientIP(t *testing.T) {
	cfg := config.Resolve(config.MapEnv{config.EnvThrottleLimit: "1"})
	handler := Throttle(rate_limiter.NewMemoryRateLimiter(), cfg, nil)(http.HandlerFunc(okHandler))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:2000"), "同一IP不同端口应共享计数")
}

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Get("/clients/{id}", okHandler)

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients/"+id, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, float64(2), promtest.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/clients/{id}", "200")))
}
