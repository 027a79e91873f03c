package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"portfolio/internal/core/contrib"
	"portfolio/internal/core/curate"
	"portfolio/internal/core/portfolio"
)

// Profile fetches the account's public profile
func (c *Client) Profile(ctx context.Context) (portfolio.Profile, error) {
	var doc userDoc
	if err := c.Do(ctx, "/users/"+url.PathEscape(c.opts.Login), &doc); err != nil {
		return portfolio.Profile{}, err
	}
	return doc.profile(), nil
}

// Repositories lists repositories the account owns, most recently updated first.
// Only the first page is read
func (c *Client) Repositories(ctx context.Context) ([]portfolio.Repository, error) {
	q := url.Values{}
	q.Set("sort", "updated")
	q.Set("per_page", strconv.Itoa(c.opts.PageSize))
	q.Set("type", "owner")
	path := fmt.Sprintf("/users/%s/repos?%s", url.PathEscape(c.opts.Login), q.Encode())

	var docs []repoDoc
	if err := c.Do(ctx, path, &docs); err != nil {
		return nil, err
	}
	out := make([]portfolio.Repository, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.repository())
	}
	c.log.Debug().Int("count", len(out)).Msg("github mapped repositories")
	return out, nil
}

// TopRepositories returns the curated display selection of at most limit repositories
func (c *Client) TopRepositories(ctx context.Context, limit int) ([]portfolio.Repository, error) {
	repos, err := c.Repositories(ctx)
	if err != nil {
		return nil, err
	}
	return curate.TopRepositories(repos, limit), nil
}

// Events reads the first page of the account's public activity feed
func (c *Client) Events(ctx context.Context) ([]contrib.Event, error) {
	path := fmt.Sprintf("/users/%s/events?per_page=%d", url.PathEscape(c.opts.Login), c.opts.PageSize)
	var docs []eventDoc
	if err := c.Do(ctx, path, &docs); err != nil {
		return nil, err
	}
	out := make([]contrib.Event, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.event())
	}
	return out, nil
}

// CommitsPage lists one page of the account's commits to repo authored since the given time
func (c *Client) CommitsPage(ctx context.Context, repo string, page int, since time.Time) ([]Commit, error) {
	q := url.Values{}
	q.Set("author", c.opts.Login)
	q.Set("since", since.UTC().Format(time.RFC3339))
	q.Set("per_page", strconv.Itoa(c.opts.PageSize))
	q.Set("page", strconv.Itoa(page))
	path := fmt.Sprintf("/repos/%s/%s/commits?%s", url.PathEscape(c.opts.Login), url.PathEscape(repo), q.Encode())

	var docs []commitDoc
	if err := c.Do(ctx, path, &docs); err != nil {
		return nil, err
	}
	out := make([]Commit, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.commit())
	}
	return out, nil
}

// RateLimit reports the remaining core quota. The call itself is not counted against it
func (c *Client) RateLimit(ctx context.Context) (RateStatus, error) {
	var doc rateLimitDoc
	if err := c.Do(ctx, "/rate_limit", &doc); err != nil {
		return RateStatus{}, err
	}
	return doc.status(), nil
}

// Ping checks that the API is reachable with the configured token
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.RateLimit(ctx)
	return err
}
