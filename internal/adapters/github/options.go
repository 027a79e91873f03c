package github

import (
	"strings"

	"portfolio/internal/platform/config"
	perr "portfolio/internal/platform/errors"
)

// FromConfig reads Options from the GITHUB_ env namespace.
// GITHUB_TOKEN and GITHUB_USERNAME are required
func FromConfig(cfg config.Conf) (Options, error) {
	if missing := cfg.Prefix("GITHUB_").Missing("TOKEN", "USERNAME"); len(missing) > 0 {
		return Options{}, perr.Configf("missing required env %s", strings.Join(missing, ", "))
	}
	return LoadOptions(cfg), nil
}

// LoadOptions is FromConfig without the required check, for callers that
// supply credentials another way. NewClient still rejects empty ones
func LoadOptions(cfg config.Conf) Options {
	gh := cfg.Prefix("GITHUB_")
	return Options{
		Token:            gh.MayString("TOKEN", ""),
		Login:            gh.MayString("USERNAME", ""),
		BaseURL:          strings.TrimRight(gh.MayString("BASE_URL", baseURLDefault), "/"),
		UserAgent:        gh.MayString("USER_AGENT", defaultUA),
		APIVersion:       gh.MayString("API_VERSION", apiVersionDefault),
		Timeout:          gh.MayDuration("TIMEOUT", defaultTimeout),
		MaxRetries:       gh.MayInt("MAX_RETRIES", defaultMaxRetry),
		RetryBase:        gh.MayDuration("RETRY_BASE", defaultRetryBase),
		RateLimitBuffer:  gh.MayDuration("RATE_LIMIT_BUFFER", defaultRateBuffer),
		CommitRepos:      gh.MayInt("COMMIT_REPOS", defaultCommitRepos),
		CommitPages:      gh.MayInt("COMMIT_PAGES", defaultCommitPages),
		PageSize:         gh.MayInt("PAGE_SIZE", defaultPageSize),
		ContributedRepos: gh.MayInt("CONTRIBUTED_REPOS", defaultContributed),
	}
}
