// Package service contains the github portfolio workflows: cached reads through
// the GitHub client and the uncached processed portfolio view
package service

import (
	"context"
	"time"

	"portfolio/internal/core/curate"
	"portfolio/internal/core/portfolio"
	"portfolio/internal/core/skills"
	"portfolio/internal/platform/cache"
	"portfolio/internal/platform/logger"
	"portfolio/internal/services/api/github/domain"

	"golang.org/x/sync/errgroup"
)

// Cache operation names
const (
	opProfile       = "profile"
	opRepos         = "repos"
	opTopRepos      = "topRepos"
	opAllRepos      = "allRepos"
	opContributions = "contributions"
)

// Service defines the github service contract
type Service interface {
	domain.ServicePort
}

// TTLs are per resource cache lifetimes
type TTLs struct {
	Profile       time.Duration
	Repos         time.Duration
	Contributions time.Duration
}

// DefaultTTLs are used for any zero TTL
func DefaultTTLs() TTLs {
	return TTLs{
		Profile:       5 * time.Minute,
		Repos:         2 * time.Minute,
		Contributions: 5 * time.Minute,
	}
}

// Config configures the service
type Config struct {
	TTL TTLs
}

// Svc implements the github service
type Svc struct {
	client domain.ClientPort
	cache  *cache.Cache
	proc   domain.ProcessorPort
	ttl    TTLs
	now    func() time.Time
}

// New constructs a github service
func New(client domain.ClientPort, c *cache.Cache, proc domain.ProcessorPort, cfg Config) *Svc {
	if client == nil {
		panic("github.Service requires a non nil client")
	}
	if c == nil {
		panic("github.Service requires a non nil cache")
	}
	if proc == nil {
		panic("github.Service requires a non nil processor")
	}
	def := DefaultTTLs()
	ttl := cfg.TTL
	if ttl.Profile <= 0 {
		ttl.Profile = def.Profile
	}
	if ttl.Repos <= 0 {
		ttl.Repos = def.Repos
	}
	if ttl.Contributions <= 0 {
		ttl.Contributions = def.Contributions
	}
	return &Svc{client: client, cache: c, proc: proc, ttl: ttl, now: time.Now}
}

// Profile returns the account profile
func (s *Svc) Profile(ctx context.Context) (portfolio.Profile, error) {
	ctx = logger.WithOp(ctx, opProfile)
	return cache.Remember(ctx, s.cache, cache.Key(opProfile, nil), s.ttl.Profile, s.client.Profile)
}

// Repos returns the owned repositories in upstream order.
// includeDetails only selects a separate cache entry
func (s *Svc) Repos(ctx context.Context, includeDetails bool) ([]portfolio.Repository, error) {
	ctx = logger.WithOp(ctx, opRepos)
	key := cache.Key(opRepos, map[string]any{"includeDetails": includeDetails})
	return cache.Remember(ctx, s.cache, key, s.ttl.Repos, s.client.Repositories)
}

// TopRepos returns the curated display selection. limit <= 0 means the default
func (s *Svc) TopRepos(ctx context.Context, limit int) ([]portfolio.Repository, error) {
	ctx = logger.WithOp(ctx, opTopRepos)
	limit = domain.OrDefault(limit, domain.DefaultTopLimit)
	key := cache.Key(opTopRepos, map[string]any{"limit": limit})
	return cache.Remember(ctx, s.cache, key, s.ttl.Repos, func(ctx context.Context) ([]portfolio.Repository, error) {
		return s.client.TopRepositories(ctx, limit)
	})
}

// AllRepos returns every owned repository with Python ones first
func (s *Svc) AllRepos(ctx context.Context) ([]portfolio.Repository, error) {
	ctx = logger.WithOp(ctx, opAllRepos)
	return cache.Remember(ctx, s.cache, cache.Key(opAllRepos, nil), s.ttl.Repos, func(ctx context.Context) ([]portfolio.Repository, error) {
		repos, err := s.client.Repositories(ctx)
		if err != nil {
			return nil, err
		}
		return curate.PythonFirst(repos), nil
	})
}

// Contributions returns stats over the trailing months. months <= 0 means the default
func (s *Svc) Contributions(ctx context.Context, months int) (portfolio.ContributionStats, error) {
	ctx = logger.WithOp(ctx, opContributions)
	months = domain.OrDefault(months, domain.DefaultMonths)
	key := cache.Key(opContributions, map[string]any{"months": months})
	return cache.Remember(ctx, s.cache, key, s.ttl.Contributions, func(ctx context.Context) (portfolio.ContributionStats, error) {
		return s.client.ContributionStats(ctx, months)
	})
}

// RecentContributions is Contributions over the last three months
func (s *Svc) RecentContributions(ctx context.Context) (portfolio.ContributionStats, error) {
	return s.Contributions(ctx, domain.RecentMonths)
}

// PortfolioData fetches profile, repositories and contributions concurrently and
// derives the portfolio view. It bypasses the cache. A failed profile degrades to
// no profile; the other two fail the call
func (s *Svc) PortfolioData(ctx context.Context, months int) (portfolio.Processed, error) {
	ctx = logger.WithOp(ctx, "portfolio")
	months = domain.OrDefault(months, domain.DefaultPortfolioMonths)

	var (
		profile *portfolio.Profile
		repos   []portfolio.Repository
		stats   portfolio.ContributionStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.client.Profile(gctx)
		if err != nil {
			logger.C(ctx).Warn().Err(err).Msg("profile unavailable; continuing without it")
			return nil
		}
		profile = &p
		return nil
	})
	g.Go(func() error {
		var err error
		repos, err = s.client.Repositories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.client.ContributionStats(gctx, months)
		return err
	})
	if err := g.Wait(); err != nil {
		return portfolio.Processed{}, err
	}

	return s.proc.Process(skills.Input{
		Profile:       profile,
		Repositories:  repos,
		Contributions: &stats,
		Now:           s.now(),
	}), nil
}
