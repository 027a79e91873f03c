// @title         Portfolio API
// @version       0.1.0
// @description   GitHub profile, repository and contribution data for a personal portfolio

package main

import (
	"context"
	"os/signal"
	"syscall"

	"portfolio/internal/adapters/github"
	"portfolio/internal/core/skills"
	"portfolio/internal/platform/cache"
	"portfolio/internal/platform/config"
	"portfolio/internal/platform/logger"
	phttp "portfolio/internal/platform/net/http"

	"portfolio/internal/services/api"

	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine; real env always wins
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// fail fast on missing credentials instead of on first request
	ghOpts, err := github.FromConfig(root)
	if err != nil {
		l.Fatal().Err(err).Msg("github config")
	}
	gh, err := github.NewClient(ghOpts)
	if err != nil {
		l.Fatal().Err(err).Msg("github client")
	}

	taxonomy, err := skills.LoadFile(root.Prefix("SKILLS_").MayString("TAXONOMY_FILE", ""))
	if err != nil {
		l.Fatal().Err(err).Msg("skills taxonomy")
	}

	// http server (reads CORE_API_PORT / CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			GitHub:         gh,
			Cache:          cache.New(),
			Skills:         skills.NewProcessor(taxonomy),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	l.Info().Str("login", gh.Login()).Str("addr", srv.Addr()).Msg("portfolio api starting")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("portfolio api stopped")
}
