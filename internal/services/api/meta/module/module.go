// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"portfolio/internal/core/version"
	modkit "portfolio/internal/modkit"
	"portfolio/internal/modkit/httpkit"
	"portfolio/internal/modkit/module"
	metahttp "portfolio/internal/services/api/meta/http"

	"github.com/google/uuid"
)

// Module serves liveness, readiness, version and cache endpoints
type Module struct {
	modkit.Built

	deps metahttp.Deps
}

// New constructs a meta module. The GitHub client is optional; without it /ready
// skips the upstream ping. /cache reads the github module's Cache port
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	md := metahttp.Deps{
		ServiceName:  version.Service,
		InstanceID:   uuid.NewString(),
		StartedAt:    time.Now(),
		ReadyTimeout: deps.Cfg.Prefix("CORE_API_").MayDuration("READY_TIMEOUT", 2*time.Second),
	}
	if deps.GitHub != nil {
		md.GitHub = deps.GitHub
	}
	md.Cache = portCache("github")
	return &Module{
		Built: modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...),
		deps:  md,
	}
}

// portCache lists the cache another module exports. The lookup happens per
// request since that module registers after meta
type portCache string

func (p portCache) Keys() []string {
	if c, ok := module.PortsAs[metahttp.KeyLister](string(p)); ok {
		return c.Keys()
	}
	return []string{}
}

// MountRoutes mounts meta endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name returns the module name
func (m *Module) Name() string { return m.ModuleName() }

// Ports is nil; nothing else consumes meta
func (m *Module) Ports() any { return nil }
