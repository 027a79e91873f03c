package github

import (
	"context"
	"sync"
	"time"

	"portfolio/internal/core/contrib"
	"portfolio/internal/core/curate"
	"portfolio/internal/core/portfolio"
	"portfolio/internal/platform/logger"

	"golang.org/x/sync/errgroup"
)

// ContributionStats aggregates the trailing months of activity.
// Events and repositories are required; commit pages are best effort and a
// failed page only costs its commits
func (c *Client) ContributionStats(ctx context.Context, months int) (portfolio.ContributionStats, error) {
	w := contrib.NewWindow(c.now(), months)

	var (
		events []contrib.Event
		repos  []portfolio.Repository
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = c.Events(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = c.Repositories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return portfolio.ContributionStats{}, err
	}

	sorted := curate.ByStars(repos)
	commits := c.commitTimes(ctx, sorted[:min(c.opts.CommitRepos, len(sorted))], w.Start)
	if err := ctx.Err(); err != nil {
		return portfolio.ContributionStats{}, err
	}

	tally := contrib.Aggregate(w, commits, events)
	logger.C(ctx).Debug().
		Int("months", w.Months).
		Int("events", len(events)).
		Int("commits", len(commits)).
		Int("total", tally.Total()).
		Msg("github contributions aggregated")
	return tally.Stats(curate.Summaries(sorted, c.opts.ContributedRepos)), nil
}

// commitTimes fetches CommitPages pages for every repo at once. Each page
// records its own outcome so one failure never cancels the others
func (c *Client) commitTimes(ctx context.Context, repos []portfolio.Repository, since time.Time) []time.Time {
	pages := c.opts.CommitPages
	results := make([][]Commit, len(repos)*pages)

	var wg sync.WaitGroup
	for i, r := range repos {
		for p := range pages {
			slot := i*pages + p
			wg.Go(func() {
				cs, err := c.CommitsPage(ctx, r.Name, p+1, since)
				if err != nil {
					logger.C(ctx).Warn().Err(err).Str("repo", r.Name).Int("page", p+1).Msg("github commit page failed skipping")
					return
				}
				results[slot] = cs
			})
		}
	}
	wg.Wait()

	var out []time.Time
	for _, cs := range results {
		for _, cm := range cs {
			out = append(out, cm.AuthoredAt)
		}
	}
	return out
}
