package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "portfolio/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFn func(context.Context) error

func (f pingFn) Ping(ctx context.Context) error { return f(ctx) }

type keys []string

func (k keys) Keys() []string { return k }

func call[T any](t *testing.T, d Deps, path string) T {
	t.Helper()
	return callStatus[T](t, d, path, http.StatusOK)
}

func callStatus[T any](t *testing.T, d Deps, path string, status int) T {
	t.Helper()
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), d)

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, status, rec.Code)

	var env struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Data
}

func TestHealth(t *testing.T) {
	got := call[HealthResponse](t, Deps{ServiceName: "portfolio-api", StartedAt: time.Now()}, "/health")
	assert.True(t, got.OK)
	assert.Equal(t, "portfolio-api", got.Service)
}

func TestReady(t *testing.T) {
	got := call[ReadyResponse](t, Deps{}, "/ready")
	assert.Equal(t, "degraded", got.Status)
	require.Len(t, got.Checks, 1)
	assert.Equal(t, "skipped", got.Checks[0].Status)

	ok := pingFn(func(context.Context) error { return nil })
	got = call[ReadyResponse](t, Deps{GitHub: ok}, "/ready")
	assert.Equal(t, "ok", got.Status)

	bad := pingFn(func(context.Context) error { return errors.New("GitHub API error: 401 Unauthorized") })
	got = callStatus[ReadyResponse](t, Deps{GitHub: bad}, "/ready", http.StatusServiceUnavailable)
	assert.Equal(t, "fail", got.Status)
	assert.Contains(t, got.Checks[0].Error, "401")

	got = call[ReadyResponse](t, Deps{GitHub: struct{}{}}, "/ready")
	assert.Equal(t, "unknown", got.Checks[0].Status)
}

func TestReady_TimeoutBoundsPing(t *testing.T) {
	slow := pingFn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	got := callStatus[ReadyResponse](t, Deps{GitHub: slow, ReadyTimeout: 10 * time.Millisecond}, "/ready", http.StatusServiceUnavailable)
	assert.Equal(t, "fail", got.Status)
}

func TestService(t *testing.T) {
	started := time.Now().Add(-90 * time.Second)
	got := call[ServiceResponse](t, Deps{ServiceName: "portfolio-api", InstanceID: "abc", StartedAt: started}, "/service")
	assert.Equal(t, "abc", got.Instance)
	assert.GreaterOrEqual(t, got.Uptime, int64(90))
}

func TestCache(t *testing.T) {
	got := call[CacheResponse](t, Deps{Cache: keys{"allRepos", "profile"}}, "/cache")
	assert.Equal(t, 2, got.Entries)
	assert.Equal(t, []string{"allRepos", "profile"}, got.Keys)

	got = call[CacheResponse](t, Deps{}, "/cache")
	assert.Zero(t, got.Entries)
}

func TestVersion(t *testing.T) {
	got := call[map[string]any](t, Deps{}, "/version")
	assert.Equal(t, "portfolio-api", got["service"])
}
