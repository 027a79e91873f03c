package main

import (
	"context"
	"errors"

	"portfolio/internal/adapters/github"
	"portfolio/internal/core/skills"
	"portfolio/internal/platform/cache"
	"portfolio/internal/platform/config"
	perr "portfolio/internal/platform/errors"
	"portfolio/internal/services/api/github/domain"
	ghmod "portfolio/internal/services/api/github/module"
	ghsvc "portfolio/internal/services/api/github/service"
)

// globals are the persistent flags shared by every command
type globals struct {
	token    string
	user     string
	taxonomy string
}

// app is what commands run against
type app struct {
	svc  domain.ServicePort
	rate func(context.Context) (github.RateStatus, error)
}

type appFactory func(g globals) (*app, error)

// newApp builds the service from GITHUB_, CACHE_ and SKILLS_ env with flag overrides
func newApp(g globals) (*app, error) {
	cfg := config.New()
	opts := github.LoadOptions(cfg)
	if g.token != "" {
		opts.Token = g.token
	}
	if g.user != "" {
		opts.Login = g.user
	}
	client, err := github.NewClient(opts)
	if err != nil {
		return nil, err
	}
	tax, err := loadTaxonomy(g)
	if err != nil {
		return nil, err
	}
	svc := ghsvc.New(client, cache.New(), skills.NewProcessor(tax), ghmod.FromConfig(cfg))
	return &app{svc: svc, rate: client.RateLimit}, nil
}

func loadTaxonomy(g globals) (skills.Taxonomy, error) {
	path := g.taxonomy
	if path == "" {
		path = config.New().Prefix("SKILLS_").MayString("TAXONOMY_FILE", "")
	}
	return skills.LoadFile(path)
}

// usageError marks a bad invocation: unknown command, bad flag or wrong arguments
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err}
}

// exitCode maps failures to distinct codes for scripts:
// 2 config or usage, 3 auth, 4 rate limited, 5 not found, 6 upstream unreachable,
// 130 cancelled or out of time, 1 anything else.
// Coded errors win over context errors: a transport timeout is a network failure
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if github.IsRateLimited(err) {
		return 4
	}
	switch perr.CodeOf(err) {
	case perr.ErrorCodeConfig:
		return 2
	case perr.ErrorCodeUnauthorized, perr.ErrorCodeForbidden:
		return 3
	case perr.ErrorCodeNotFound:
		return 5
	case perr.ErrorCodeUnavailable:
		return 6
	}
	var ue usageError
	switch {
	case errors.As(err, &ue):
		return 2
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return 130
	}
	return 1
}
