// Package module wires the github portfolio service into the API using modkit
package module

import (
	"portfolio/internal/core/skills"
	modkit "portfolio/internal/modkit"
	"portfolio/internal/modkit/httpkit"
	"portfolio/internal/platform/cache"
	ghhttp "portfolio/internal/services/api/github/http"
	ghsvc "portfolio/internal/services/api/github/service"
)

// Module implements the github module
type Module struct {
	modkit.Built

	svc   ghsvc.Service
	ports Ports
}

// New constructs the github module. deps.GitHub is required; a missing cache or
// skills processor falls back to a fresh cache and the embedded taxonomy
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if deps.GitHub == nil {
		panic("github module requires a GitHub client")
	}
	c := deps.Cache
	if c == nil {
		c = cache.New()
	}
	proc := deps.Skills
	if proc == nil {
		proc = skills.Default()
	}
	svc := ghsvc.New(deps.GitHub, c, proc, FromConfig(deps.Cfg))

	return &Module{
		Built: modkit.Build(append([]modkit.Option{modkit.WithName("github"), modkit.WithPrefix("/github")}, opts...)...),
		svc:   svc,
		ports: Ports{Service: adaptGitHubPort{svc: svc}, Cache: c},
	}
}

// MountRoutes mounts the portfolio endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { ghhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.ModuleName() }
