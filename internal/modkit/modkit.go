// Package modkit builds API modules from shared deps and functional options
package modkit

import (
	"net/http"

	"portfolio/internal/adapters/github"
	"portfolio/internal/core/skills"
	"portfolio/internal/modkit/httpkit"
	"portfolio/internal/modkit/module"
	"portfolio/internal/platform/cache"
	"portfolio/internal/platform/config"
	"portfolio/internal/platform/logger"
	str "portfolio/internal/platform/strings"
)

// Module is the contract api.Mount composes
type Module = module.Module

// Deps are the shared collaborators handed to every module constructor.
// Cache and Skills may be nil; modules fall back to their own defaults
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	GitHub *github.Client
	Cache  *cache.Cache
	Skills *skills.Processor
}

// Option tweaks a Built before the module reads it
type Option func(*Built)

// Built is the resolved mounting config a module embeds
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	// Subrouter may wrap the prefixed router, e.g. to add a Group
	Subrouter func(httpkit.Router) httpkit.Router
	// Register attaches extra endpoints after the module's own
	Register func(httpkit.Router)
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	return b
}

// WithName sets the registry and log name
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the mount path, e.g. /github
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends per module middleware
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithSubrouter sets the subrouter hook
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister sets the extra endpoints hook
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.Register = fn }
}

// Mount mounts routes, then the Register hook, under Prefix with Mw applied
func (b Built) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	httpkit.MountUnder(r, str.MustPrefix(b.Prefix), b.Mw, func(rr httpkit.Router) {
		if b.Subrouter != nil {
			rr = b.Subrouter(rr)
		}
		routes(rr)
		if b.Register != nil {
			b.Register(rr)
		}
	})
}

// ModuleName is Name checked for emptiness
func (b Built) ModuleName() string { return str.Required(b.Name, "module name") }
