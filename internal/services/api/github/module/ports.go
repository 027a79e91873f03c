package module

import (
	"context"

	"portfolio/internal/core/portfolio"
	"portfolio/internal/platform/cache"
	"portfolio/internal/services/api/github/domain"
	ghsvc "portfolio/internal/services/api/github/service"
)

// Ports is what the github module exposes to other modules
type Ports struct {
	Service domain.ServicePort
	Cache   *cache.Cache // response cache the service reads through
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptGitHubPort struct{ svc ghsvc.Service }

// Profile returns the cached account profile
func (a adaptGitHubPort) Profile(ctx context.Context) (portfolio.Profile, error) {
	return a.svc.Profile(ctx)
}

// Repos returns owned repositories in upstream order
func (a adaptGitHubPort) Repos(ctx context.Context, includeDetails bool) ([]portfolio.Repository, error) {
	return a.svc.Repos(ctx, includeDetails)
}

// TopRepos returns the curated display selection
func (a adaptGitHubPort) TopRepos(ctx context.Context, limit int) ([]portfolio.Repository, error) {
	return a.svc.TopRepos(ctx, limit)
}

// AllRepos returns every owned repository, Python first
func (a adaptGitHubPort) AllRepos(ctx context.Context) ([]portfolio.Repository, error) {
	return a.svc.AllRepos(ctx)
}

// Contributions returns stats over a trailing window
func (a adaptGitHubPort) Contributions(ctx context.Context, months int) (portfolio.ContributionStats, error) {
	return a.svc.Contributions(ctx, months)
}

// RecentContributions returns stats over the last three months
func (a adaptGitHubPort) RecentContributions(ctx context.Context) (portfolio.ContributionStats, error) {
	return a.svc.RecentContributions(ctx)
}

// PortfolioData returns the processed portfolio view
func (a adaptGitHubPort) PortfolioData(ctx context.Context, months int) (portfolio.Processed, error) {
	return a.svc.PortfolioData(ctx, months)
}
