package httpkit

import (
	"compress/flate"
	"time"

	"portfolio/internal/platform/config"
	"portfolio/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack for a deployment
type StackOptions struct {
	// CORSOrigins are the browser origins allowed to call the API, any when empty
	CORSOrigins []string
	// Timeout bounds a request end to end, 30s when zero
	Timeout time.Duration
	// Slow is the access log warn threshold, 2s when zero
	Slow time.Duration
	// MaxInFlight caps concurrent requests so a burst cannot drain the GitHub quota; 0 disables
	MaxInFlight int
}

// StackFromConfig reads CORE_API_CORS_ORIGINS, CORE_API_REQUEST_TIMEOUT,
// CORE_API_SLOW_REQUEST and CORE_API_MAX_INFLIGHT
func StackFromConfig(cfg config.Conf) StackOptions {
	c := cfg.Prefix("CORE_API_")
	return StackOptions{
		CORSOrigins: c.MayCSV("CORS_ORIGINS", nil),
		Timeout:     c.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:        c.MayDuration("SLOW_REQUEST", 2*time.Second),
		MaxInFlight: c.MayInt("MAX_INFLIGHT", 0),
	}
}

// CommonStack returns the baseline middleware slice mounted under /api/v1
func CommonStack(opts ...StackOptions) []middleware.Middleware {
	var o StackOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 2 * time.Second
	}

	stack := []middleware.Middleware{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,

		// upstream data is cached server side; clients always revalidate
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight, o.MaxInFlight*4, o.Timeout))
	}
	return append(stack, middleware.Timeout(o.Timeout))
}
