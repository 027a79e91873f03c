package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/modkit/httpkit"
	phttp "portfolio/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func header(k, v string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(k, v)
			next.ServeHTTP(w, r)
		})
	}
}

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestBuild(t *testing.T) {
	b := Build(WithName("github"), WithPrefix("/github"), WithName("meta"))
	assert.Equal(t, "meta", b.Name, "later options win")
	assert.Equal(t, "/github", b.Prefix)
	assert.Nil(t, b.Subrouter)
	assert.Nil(t, b.Register)

	mw := []func(http.Handler) http.Handler{header("X-A", "1")}
	b = Build(WithMiddlewares(mw...), WithMiddlewares(header("X-B", "2")))
	assert.Len(t, b.Mw, 2)
	mw[0] = nil
	assert.NotNil(t, b.Mw[0], "middleware slice is copied")
}

func TestBuilt_Mount(t *testing.T) {
	var order []string
	b := Build(
		WithPrefix("github/"),
		WithMiddlewares(header("X-Module", "github")),
		WithSubrouter(func(r httpkit.Router) httpkit.Router {
			order = append(order, "subrouter")
			return r
		}),
		WithRegister(func(r httpkit.Router) {
			order = append(order, "register")
			r.Get("/extra", ok)
		}),
	)

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		order = append(order, "routes")
		r.Get("/profile", ok)
	})
	assert.Equal(t, []string{"subrouter", "routes", "register"}, order)

	for _, path := range []string{"/github/profile", "/github/extra"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "github", rec.Header().Get("X-Module"), path)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuilt_ModuleName(t *testing.T) {
	assert.Equal(t, "github", Build(WithName("github")).ModuleName())
	assert.PanicsWithValue(t, "module name is required", func() { Build().ModuleName() })
}

func TestBuilt_MountRequiresPrefix(t *testing.T) {
	assert.Panics(t, func() {
		Build().Mount(phttp.AdaptChi(chi.NewRouter()), func(httpkit.Router) {})
	})
}
