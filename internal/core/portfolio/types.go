// Package portfolio holds the records produced by the GitHub client and the derived
// views computed from them. Values are snapshots: producers build fresh ones and
// consumers never mutate what they receive
package portfolio

import "time"

// Repository is one repository owned by the configured account
type Repository struct {
	Name          string    `json:"name"           example:"portfolio"`
	Description   string    `json:"description"    example:"Personal site"`
	URL           string    `json:"url"            example:"https://github.com/octocat/portfolio"`
	Stars         int       `json:"stars"          example:"42"`
	Forks         int       `json:"forks"          example:"3"`
	Language      string    `json:"language"       example:"Go"` // empty when GitHub reports none
	Topics        []string  `json:"topics"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	IsFork        bool      `json:"is_fork"`
	OpenIssues    int       `json:"open_issues"`
	Watchers      int       `json:"watchers"`
	DefaultBranch string    `json:"default_branch" example:"main"`
}

// Profile is the public profile of the configured account
type Profile struct {
	Login       string    `json:"login"      example:"octocat"`
	ID          int64     `json:"id"         example:"583231"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Blog        string    `json:"blog"`
	Location    string    `json:"location"`
	Email       *string   `json:"email"`
	Bio         string    `json:"bio"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContributionDay is a single calendar cell
type ContributionDay struct {
	Date  string `json:"date"  example:"2025-06-01"`
	Count int    `json:"count" example:"5"`
	Level int    `json:"level" example:"2"` // 0..4
}

// Share is a count and its rounded percentage of the window total
type Share struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// ActivityBreakdown splits contributions by kind
type ActivityBreakdown struct {
	Commits      Share `json:"commits"`
	PullRequests Share `json:"pull_requests"`
	Issues       Share `json:"issues"`
	CodeReviews  Share `json:"code_reviews"`
}

// MonthlyContribution is one month of the rollup
type MonthlyContribution struct {
	Month string `json:"month" example:"Jun"`
	Year  string `json:"year"  example:"2025"`
	Count int    `json:"count"`
}

// RepoSummary is a short repository reference
type RepoSummary struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Stars    int    `json:"stars"`
	Language string `json:"language"`
}

// ContributionStats is the aggregate over a trailing window
type ContributionStats struct {
	TotalContributions      int                   `json:"total_contributions"`
	ActivityBreakdown       ActivityBreakdown     `json:"activity_breakdown"`
	ContributionCalendar    []ContributionDay     `json:"contribution_calendar"`
	MonthlyContributions    []MonthlyContribution `json:"monthly_contributions"`
	ContributedRepositories []RepoSummary         `json:"contributed_repositories"`
}

// Summary returns the short reference for r
func (r Repository) Summary() RepoSummary {
	return RepoSummary{Name: r.Name, URL: r.URL, Stars: r.Stars, Language: r.Language}
}
