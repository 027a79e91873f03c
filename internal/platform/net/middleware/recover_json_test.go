package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "portfolio/internal/platform/errors"
	pnet "portfolio/internal/platform/net"
	"portfolio/internal/platform/net/middleware"
)

func TestRecoverJSON(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("skills table missing")
	}))

	req := httptest.NewRequest(http.MethodGet, "/github/portfolio", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "rid-panic"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "rid-panic" {
		t.Fatalf("expected request id header, got %q", got)
	}
	var env pnet.Wire
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Code != perr.ErrorCodePanic || env.RequestID != "rid-panic" || env.Error == "" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected handler status, got %d", rec.Code)
	}
}
