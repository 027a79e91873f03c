package github

import (
	"time"

	"portfolio/internal/core/contrib"
	"portfolio/internal/core/portfolio"
	pstrings "portfolio/internal/platform/strings"
)

// repoDoc is a partial GitHub repository document with fields we use.
// Nullable strings are pointers so absence survives decoding
type repoDoc struct {
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	HTMLURL       string    `json:"html_url"`
	Stargazers    int       `json:"stargazers_count"`
	ForksCount    int       `json:"forks_count"`
	Language      *string   `json:"language"`
	Topics        []string  `json:"topics"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Fork          bool      `json:"fork"`
	OpenIssues    int       `json:"open_issues_count"`
	Watchers      int       `json:"watchers_count"`
	DefaultBranch string    `json:"default_branch"`
}

// userDoc is a partial GitHub user document
type userDoc struct {
	Login       string    `json:"login"`
	ID          int64     `json:"id"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	Name        *string   `json:"name"`
	Company     *string   `json:"company"`
	Blog        *string   `json:"blog"`
	Location    *string   `json:"location"`
	Email       *string   `json:"email"`
	Bio         *string   `json:"bio"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// eventDoc is one entry of the public activity feed
type eventDoc struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	CreatedAt *time.Time `json:"created_at"`
	Repo      struct {
		Name string `json:"name"`
	} `json:"repo"`
}

// commitDoc is one entry of the commits listing
type commitDoc struct {
	SHA    string `json:"sha"`
	Commit struct {
		Author *struct {
			Date *time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// Commit is a commit reduced to what the aggregator needs.
// AuthoredAt is zero when GitHub reports no author date
type Commit struct {
	SHA        string
	AuthoredAt time.Time
}

func (d repoDoc) repository() portfolio.Repository {
	topics := d.Topics
	if topics == nil {
		topics = []string{}
	}
	branch := d.DefaultBranch
	if branch == "" {
		branch = "main"
	}
	return portfolio.Repository{
		Name:          d.Name,
		Description:   pstrings.Deref(d.Description),
		URL:           d.HTMLURL,
		Stars:         d.Stargazers,
		Forks:         d.ForksCount,
		Language:      pstrings.Deref(d.Language),
		Topics:        topics,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		IsFork:        d.Fork,
		OpenIssues:    d.OpenIssues,
		Watchers:      d.Watchers,
		DefaultBranch: branch,
	}
}

func (d userDoc) profile() portfolio.Profile {
	return portfolio.Profile{
		Login:       d.Login,
		ID:          d.ID,
		AvatarURL:   d.AvatarURL,
		HTMLURL:     d.HTMLURL,
		Name:        pstrings.Deref(d.Name),
		Company:     pstrings.Deref(d.Company),
		Blog:        pstrings.Deref(d.Blog),
		Location:    pstrings.Deref(d.Location),
		Email:       d.Email,
		Bio:         pstrings.Deref(d.Bio),
		PublicRepos: d.PublicRepos,
		PublicGists: d.PublicGists,
		Followers:   d.Followers,
		Following:   d.Following,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d eventDoc) event() contrib.Event {
	e := contrib.Event{Type: d.Type}
	if d.CreatedAt != nil {
		e.CreatedAt = *d.CreatedAt
	}
	return e
}

func (d commitDoc) commit() Commit {
	c := Commit{SHA: d.SHA}
	if a := d.Commit.Author; a != nil && a.Date != nil {
		c.AuthoredAt = *a.Date
	}
	return c
}

type rateLimitDoc struct {
	Rate struct {
		Limit     int   `json:"limit"`
		Remaining int   `json:"remaining"`
		Used      int   `json:"used"`
		Reset     int64 `json:"reset"`
	} `json:"rate"`
}

// RateStatus is the core API quota as reported by GitHub
type RateStatus struct {
	Limit     int       `json:"limit"     example:"5000"`
	Remaining int       `json:"remaining" example:"4987"`
	Used      int       `json:"used"      example:"13"`
	Reset     time.Time `json:"reset"`
}

func (d rateLimitDoc) status() RateStatus {
	return RateStatus{
		Limit:     d.Rate.Limit,
		Remaining: d.Rate.Remaining,
		Used:      d.Rate.Used,
		Reset:     time.Unix(d.Rate.Reset, 0).UTC(),
	}
}
