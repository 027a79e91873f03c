// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"portfolio/internal/core/version"
	"portfolio/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// KeyLister is satisfied by the response cache
type KeyLister interface {
	Keys() []string
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	InstanceID  string
	StartedAt   time.Time
	GitHub      any
	Cache       KeyLister

	// ReadyTimeout bounds the dependency checks, 2s when zero
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/cache", h.cache)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"portfolio-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"github"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"GitHub API error: 401 Unauthorized"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name     string `json:"name"     example:"portfolio-api"`
	Instance string `json:"instance" example:"6f1c7a4e-2b0f-4a53-9d55-1f1b8c2f3a10"`
	Started  string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Uptime   int64  `json:"uptime"   example:"300"`
}

// CacheResponse lists the stored response cache entries
type CacheResponse struct {
	Entries int      `json:"entries" example:"2"`
	Keys    []string `json:"keys"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with upstream checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "an upstream check failed"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyTimeout)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	gh := check("github", h.deps.GitHub)

	overall := "ok"
	switch gh.Status {
	case "ok":
	case "fail":
		overall = "fail"
	default:
		overall = "degraded"
	}

	resp := ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{gh},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}
	if overall == "fail" {
		// probes read the status, humans read the checks
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: resp}, nil
	}
	return resp, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:     h.deps.ServiceName,
		Instance: h.deps.InstanceID,
		Started:  h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:   int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/cache Meta metaCache
// @Summary Response cache entries
// @Tags Meta
// @Produce json
// @Success 200 {object} CacheResponse "ok"
// @Router /meta/cache [get]
func (h *handlers) cache(_ *http.Request) (any, error) {
	keys := []string{}
	if h.deps.Cache != nil {
		keys = h.deps.Cache.Keys()
	}
	return CacheResponse{Entries: len(keys), Keys: keys}, nil
}
