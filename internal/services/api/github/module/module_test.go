package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"portfolio/internal/adapters/github"
	modkit "portfolio/internal/modkit"
	"portfolio/internal/modkit/module"
	"portfolio/internal/platform/cache"
	"portfolio/internal/platform/config"
	phttp "portfolio/internal/platform/net/http"
	"portfolio/internal/services/api/github/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upstream(t *testing.T, calls *atomic.Int32) *github.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octocat", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"login":"octocat","name":"Mona","created_at":"2020-01-01T00:00:00Z"}`))
	})
	mux.HandleFunc("GET /users/octocat/repos", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[
			{"name":"site","language":"TypeScript","stargazers_count":2},
			{"name":"ml","language":"Python","stargazers_count":1}
		]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := github.NewClient(github.Options{Token: "tok", Login: "octocat", BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func mount(t *testing.T, m modkit.Module) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(r))
	return r
}

func get(t *testing.T, h http.Handler, path string) (int, json.RawMessage) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env.Data
}

func TestNew_RequiresClient(t *testing.T) {
	assert.Panics(t, func() { New(modkit.Deps{Cfg: config.New()}) })
}

func TestModule_MountsUnderPrefixAndCaches(t *testing.T) {
	var calls atomic.Int32
	c := cache.New()
	m := New(modkit.Deps{Cfg: config.New(), GitHub: upstream(t, &calls), Cache: c})
	assert.Equal(t, "github", m.Name())

	h := mount(t, m)

	code, data := get(t, h, "/github/profile")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(data), `"login":"octocat"`)

	code, _ = get(t, h, "/github/profile")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, calls.Load())

	code, data = get(t, h, "/github/repos/all")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, strings.Index(string(data), `"ml"`) < strings.Index(string(data), `"site"`))
	assert.Equal(t, []string{"allRepos", "profile"}, c.Keys())
}

func TestModule_ExposesServicePort(t *testing.T) {
	var calls atomic.Int32
	m := New(modkit.Deps{Cfg: config.New(), GitHub: upstream(t, &calls)})

	p, ok := m.Ports().(Ports)
	require.True(t, ok)
	require.NotNil(t, p.Service)
	require.NotNil(t, p.Cache)

	module.Reset()
	t.Cleanup(module.Reset)
	module.Register(m.Name(), m.Ports())

	svc, ok := module.PortsAs[domain.ServicePort]("github")
	require.True(t, ok)
	repos, err := svc.TopRepos(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "site", repos[0].Name)

	keys, ok := module.PortsAs[interface{ Keys() []string }]("github")
	require.True(t, ok)
	assert.Equal(t, []string{`topRepos_{"limit":1}`}, keys.Keys())
}

func TestFromConfig(t *testing.T) {
	t.Setenv("CACHE_TTL_REPOS", "90s")
	cfg := FromConfig(config.New())
	assert.Equal(t, 90*time.Second, cfg.TTL.Repos)
	assert.Equal(t, 5*time.Minute, cfg.TTL.Profile)
	assert.Equal(t, 5*time.Minute, cfg.TTL.Contributions)
}
