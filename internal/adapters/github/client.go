// Package github is a GitHub REST v3 client scoped to one account. Every call goes
// through Do, which owns auth headers, rate limit waits and linear retry backoff
package github

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	perr "portfolio/internal/platform/errors"
	"portfolio/internal/platform/logger"
)

const (
	baseURLDefault     = "https://api.github.com"
	apiVersionDefault  = "2022-11-28"
	defaultTimeout     = 10 * time.Second
	defaultUA          = "portfolio-api"
	defaultMaxRetry    = 3
	defaultRetryBase   = time.Second
	defaultRateBuffer  = time.Second
	defaultCommitRepos = 5
	defaultCommitPages = 3
	defaultPageSize    = 100
	defaultContributed = 10
)

// maxBody caps a decoded response. A page of 100 pull request events carries
// full PR objects and runs to several MiB
var maxBody int64 = 32 << 20

// errBodyTooLarge is terminal: a retry would read the same oversized body
var errBodyTooLarge = errors.New("response body exceeds limit")

// Options configures the Client
type Options struct {
	Token      string
	Login      string
	BaseURL    string
	UserAgent  string
	APIVersion string
	Timeout    time.Duration

	// MaxRetries is the total number of attempts per request
	MaxRetries int
	// RetryBase is the linear backoff unit: attempt n waits n*RetryBase
	RetryBase time.Duration
	// RateLimitBuffer is added on top of the quota reset wait. Zero waits
	// exactly until the reset; LoadOptions supplies the 1s default
	RateLimitBuffer time.Duration

	CommitRepos      int // most starred repositories scanned for commits
	CommitPages      int // commit pages fetched per repository
	PageSize         int
	ContributedRepos int
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.APIVersion == "" {
		o.APIVersion = apiVersionDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.RateLimitBuffer < 0 {
		o.RateLimitBuffer = 0
	}
	if o.CommitRepos <= 0 {
		o.CommitRepos = defaultCommitRepos
	}
	if o.CommitPages <= 0 {
		o.CommitPages = defaultCommitPages
	}
	if o.PageSize <= 0 || o.PageSize > 100 {
		o.PageSize = defaultPageSize
	}
	if o.ContributedRepos <= 0 {
		o.ContributedRepos = defaultContributed
	}
	return o
}

// Client talks to GitHub on behalf of Options.Login. It is safe for concurrent use
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// NewClient validates o and returns a Client. A missing token or login is a config error
func NewClient(o Options) (*Client, error) {
	if o.Token == "" {
		return nil, perr.Configf("github token is required")
	}
	if o.Login == "" {
		return nil, perr.Configf("github username is required")
	}
	o = o.withDefaults()
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("github"),
		now:   time.Now,
		sleep: sleepCtx,
	}, nil
}

// Login is the account this client reads
func (c *Client) Login() string { return c.opts.Login }

// Do GETs path and decodes the JSON body into out.
// A 403 with an exhausted quota waits for the reset and retries without backoff;
// every other failure retries after attempt*RetryBase. The last failure is returned
func (c *Client) Do(ctx context.Context, path string, out any) error {
	var lastErr error
	for attempt := 0; attempt < c.opts.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		wait, err := c.attempt(ctx, path, attempt, out)
		if err == nil {
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		lastErr = err
		if attempt == c.opts.MaxRetries-1 || errors.Is(err, errBodyTooLarge) {
			break
		}

		if wait < 0 {
			wait = c.backoff(attempt)
			c.log.Warn().Err(err).Str("path", path).Dur("retry_in", wait).Int("attempt", attempt).Msg("github request failed retrying")
		} else {
			c.log.Warn().Str("path", path).Dur("sleep", wait).Int("attempt", attempt).Msg("github rate limited waiting for reset")
		}
		if err := c.sleep(ctx, wait); err != nil {
			return err
		}
	}
	return lastErr
}

// attempt performs one request. wait is the rate limit wait when the quota is
// exhausted, or -1 when the caller should use linear backoff
func (c *Client) attempt(ctx context.Context, path string, attempt int, out any) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+path, nil)
	if err != nil {
		return -1, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	req.Header.Set("X-GitHub-Api-Version", c.opts.APIVersion)
	req.Header.Set("User-Agent", c.opts.UserAgent)

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return -1, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github do failed")
	}

	rh := parseRateHeaders(resp.Header)
	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("attempt", attempt).
		Dur("latency", lat).
		Str("rate_remaining", rh.remaining).
		Int("rate_limit", rh.limit).
		Time("rate_reset", rh.reset).
		Msg("github http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = drainAndClose(resp.Body)
		limited := resp.StatusCode == http.StatusForbidden && rh.exhausted()
		serr := statusError(resp.StatusCode, limited)
		if limited {
			return rh.waitFor(c.now(), c.opts.RateLimitBuffer), serr
		}
		return -1, serr
	}

	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()
	body := &io.LimitedReader{R: resp.Body, N: maxBody + 1}
	if err := json.NewDecoder(body).Decode(out); err != nil {
		if body.N <= 0 {
			return -1, perr.Wrapf(errBodyTooLarge, perr.ErrorCodeUpstream, "github decode %s: body over %d bytes", path, maxBody)
		}
		return -1, perr.Wrapf(err, perr.ErrorCodeUpstream, "github decode %s", path)
	}
	return 0, nil
}

// backoff is linear: the first retry waits RetryBase, the second twice that
func (c *Client) backoff(attempt int) time.Duration {
	return time.Duration(attempt+1) * c.opts.RetryBase
}
