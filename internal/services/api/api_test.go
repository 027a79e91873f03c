package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/adapters/github"
	"portfolio/internal/modkit/module"
	"portfolio/internal/platform/cache"
	"portfolio/internal/platform/config"
	phttp "portfolio/internal/platform/net/http"
	ghmod "portfolio/internal/services/api/github/module"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMount(t *testing.T) {
	module.Reset()
	t.Cleanup(module.Reset)

	upstream := http.NewServeMux()
	upstream.HandleFunc("GET /users/octocat", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"login":"octocat"}`))
	})
	upstream.HandleFunc("GET /rate_limit", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"rate":{"limit":5000,"remaining":5000}}`))
	})
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	gh, err := github.NewClient(github.Options{Token: "tok", Login: "octocat", BaseURL: srv.URL})
	require.NoError(t, err)

	m := chi.NewRouter()
	c := cache.New()
	Mount(phttp.AdaptChi(m), Options{Config: config.New(), GitHub: gh, Cache: c})

	for _, tc := range []struct {
		path string
		want string
	}{
		{"/api/v1/meta/health", `"ok":true`},
		{"/api/v1/meta/ready", `"status":"ok"`},
		{"/api/v1/github/profile", `"login":"octocat"`},
		{"/api/v1/meta/cache", `"profile"`},
	} {
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equalf(t, http.StatusOK, rec.Code, "GET %s", tc.path)
		assert.Containsf(t, rec.Body.String(), tc.want, "GET %s", tc.path)
	}

	ports, ok := module.PortsAs[ghmod.Ports]("github")
	require.True(t, ok)
	assert.NotNil(t, ports.Service)
	assert.Same(t, c, ports.Cache)

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "swagger is off unless enabled")
}
