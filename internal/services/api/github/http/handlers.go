// Package http provides http transport for the github portfolio service
package http

import (
	stdhttp "net/http"

	"portfolio/internal/modkit/httpkit"
	"portfolio/internal/services/api/github/domain"
	svc "portfolio/internal/services/api/github/service"
)

// Register mounts github endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/profile", h.profile)
	httpkit.Get(r, "/repos/all", h.allRepos)
	httpkit.Get(r, "/contributions/recent", h.recentContributions)

	// bodies are optional; absent fields take their defaults
	httpkit.PostOptionalJSON[domain.ReposInput](r, "/repos", h.repos)
	httpkit.PostOptionalJSON[domain.TopReposInput](r, "/repos/top", h.topRepos)
	httpkit.PostOptionalJSON[domain.ContributionsInput](r, "/contributions", h.contributions)
	httpkit.PostOptionalJSON[domain.PortfolioInput](r, "/portfolio", h.portfolio)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /github/profile GitHub githubProfile
// @Summary Account profile
// @Tags GitHub
// @Produce json
// @Success 200 {object} portfolio.Profile "ok"
// @Router /github/profile [get]
func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	return h.svc.Profile(r.Context())
}

// swagger:route POST /github/repos GitHub githubRepos
// @Summary Owned repositories, most recently updated first
// @Tags GitHub
// @Accept json
// @Produce json
// @Param payload body domain.ReposInput false "Query"
// @Success 200 {array} portfolio.Repository "ok"
// @Router /github/repos [post]
func (h *handlers) repos(r *stdhttp.Request, in domain.ReposInput) (any, error) {
	return h.svc.Repos(r.Context(), in.Details())
}

// swagger:route POST /github/repos/top GitHub githubTopRepos
// @Summary Curated display selection of repositories
// @Tags GitHub
// @Accept json
// @Produce json
// @Param payload body domain.TopReposInput false "Query"
// @Success 200 {array} portfolio.Repository "ok"
// @Router /github/repos/top [post]
func (h *handlers) topRepos(r *stdhttp.Request, in domain.TopReposInput) (any, error) {
	return h.svc.TopRepos(r.Context(), in.Limit)
}

// swagger:route GET /github/repos/all GitHub githubAllRepos
// @Summary Every owned repository, Python first
// @Tags GitHub
// @Produce json
// @Success 200 {array} portfolio.Repository "ok"
// @Router /github/repos/all [get]
func (h *handlers) allRepos(r *stdhttp.Request) (any, error) {
	return h.svc.AllRepos(r.Context())
}

// swagger:route POST /github/contributions GitHub githubContributions
// @Summary Contribution stats over a trailing window
// @Tags GitHub
// @Accept json
// @Produce json
// @Param payload body domain.ContributionsInput false "Query"
// @Success 200 {object} portfolio.ContributionStats "ok"
// @Router /github/contributions [post]
func (h *handlers) contributions(r *stdhttp.Request, in domain.ContributionsInput) (any, error) {
	return h.svc.Contributions(r.Context(), in.Months)
}

// swagger:route GET /github/contributions/recent GitHub githubRecentContributions
// @Summary Contribution stats over the last three months
// @Tags GitHub
// @Produce json
// @Success 200 {object} portfolio.ContributionStats "ok"
// @Router /github/contributions/recent [get]
func (h *handlers) recentContributions(r *stdhttp.Request) (any, error) {
	return h.svc.RecentContributions(r.Context())
}

// swagger:route POST /github/portfolio GitHub githubPortfolio
// @Summary Processed portfolio view with skills and experience
// @Tags GitHub
// @Accept json
// @Produce json
// @Param payload body domain.PortfolioInput false "Query"
// @Success 200 {object} portfolio.Processed "ok"
// @Router /github/portfolio [post]
func (h *handlers) portfolio(r *stdhttp.Request, in domain.PortfolioInput) (any, error) {
	return h.svc.PortfolioData(r.Context(), in.Months)
}
