// Package middleware adapts chi middleware to plain net/http signatures and adds
// the in house access log and panic recovery
package middleware

import (
	"net/http"
	"time"

	pstrings "portfolio/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the plain net/http middleware shape used across the API
type Middleware = func(http.Handler) http.Handler

// RequestID propagates X-Request-Id or mints one, readable via pnet.RequestID
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For / X-Real-IP for RemoteAddr
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d; a handler still running gets a 504
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache stops browsers and proxies from caching API responses
func NoCache() Middleware { return chimw.NoCache }

// Compress gzips/deflates responses at level (flate.BestSpeed etc)
func Compress(level int) Middleware { return chimw.NewCompressor(level).Handler }

// StripSlashes serves /github/repos/ as /github/repos
func StripSlashes() Middleware { return chimw.StripSlashes }

// Heartbeat answers GET path with a bare 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// Throttle caps in flight requests; extra requests wait up to wait in a backlog, then get 429
func Throttle(limit, backlog int, wait time.Duration) Middleware {
	return chimw.ThrottleBacklog(limit, backlog, wait)
}

// CORSOptions is the part of go-chi/cors the API configures
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS applies go-chi/cors. The API is read only, so methods default to GET, POST and OPTIONS
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.Or(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.Or(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders: pstrings.Or(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         o.MaxAge,
	})
}
