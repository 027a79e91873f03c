// Package api provides the HTTP API for the application
package api

import (
	"portfolio/internal/adapters/github"
	"portfolio/internal/core/skills"
	"portfolio/internal/platform/cache"
	"portfolio/internal/platform/config"
	"portfolio/internal/platform/logger"
	phttp "portfolio/internal/platform/net/http"

	"portfolio/internal/modkit"
	"portfolio/internal/modkit/httpkit"
	"portfolio/internal/modkit/module"
	"portfolio/internal/modkit/swaggerkit"

	githubmod "portfolio/internal/services/api/github/module"
	metamod "portfolio/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	GitHub         *github.Client
	Cache          *cache.Cache
	Skills         *skills.Processor
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	if opt.Cache == nil {
		opt.Cache = cache.New()
	}
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		GitHub: opt.GitHub,
		Cache:  opt.Cache,
		Skills: opt.Skills,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		githubmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackFromConfig(opt.Config)), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, swaggerkit.Options{Enabled: opt.EnableSwagger})
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
		logger.Named("api").Debug().Strs("modules", module.Names()).Msg("modules mounted")
	})
}
