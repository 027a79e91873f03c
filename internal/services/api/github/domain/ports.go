package domain

import (
	"context"

	"portfolio/internal/core/portfolio"
	"portfolio/internal/core/skills"
)

// ClientPort is the GitHub access the service needs
type ClientPort interface {
	Profile(ctx context.Context) (portfolio.Profile, error)
	Repositories(ctx context.Context) ([]portfolio.Repository, error)
	TopRepositories(ctx context.Context, limit int) ([]portfolio.Repository, error)
	ContributionStats(ctx context.Context, months int) (portfolio.ContributionStats, error)
}

// ProcessorPort derives the portfolio view
type ProcessorPort interface {
	Process(in skills.Input) portfolio.Processed
}

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Profile(ctx context.Context) (portfolio.Profile, error)
	Repos(ctx context.Context, includeDetails bool) ([]portfolio.Repository, error)
	TopRepos(ctx context.Context, limit int) ([]portfolio.Repository, error)
	AllRepos(ctx context.Context) ([]portfolio.Repository, error)
	Contributions(ctx context.Context, months int) (portfolio.ContributionStats, error)
	RecentContributions(ctx context.Context) (portfolio.ContributionStats, error)
	PortfolioData(ctx context.Context, months int) (portfolio.Processed, error)
}
