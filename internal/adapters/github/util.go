package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	perr "portfolio/internal/platform/errors"
)

// APIError is a non-2xx response from GitHub
type APIError struct {
	Status     int
	StatusText string
}

// Error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error: %d %s", e.Status, e.StatusText)
}

// HTTPStatus interface
func (e *APIError) HTTPStatus() int { return e.Status }

// AsAPIError unwraps err to an *APIError
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsRateLimited reports whether err came from an exhausted quota or a 429
func IsRateLimited(err error) bool {
	return perr.IsCode(err, perr.ErrorCodeTooManyRequests)
}

// rateHeaders is the subset of GitHub rate limit headers we act on
type rateHeaders struct {
	remaining string
	reset     time.Time
	limit     int
}

func parseRateHeaders(h http.Header) rateHeaders {
	rh := rateHeaders{
		remaining: h.Get("X-RateLimit-Remaining"),
		limit:     atoi(h.Get("X-RateLimit-Limit")),
	}
	if sec := atoi(h.Get("X-RateLimit-Reset")); sec > 0 {
		rh.reset = time.Unix(int64(sec), 0).UTC()
	}
	return rh
}

// exhausted reports a primary quota hit. GitHub sends the literal "0"
func (rh rateHeaders) exhausted() bool { return rh.remaining == "0" }

// waitFor is the time until reset, clamped at zero, plus buffer
func (rh rateHeaders) waitFor(now time.Time, buffer time.Duration) time.Duration {
	var d time.Duration
	if !rh.reset.IsZero() && rh.reset.After(now) {
		d = rh.reset.Sub(now)
	}
	return d + buffer
}

// statusError maps a failed response onto an APIError carrying a platform code
func statusError(status int, quotaExhausted bool) error {
	ae := &APIError{Status: status, StatusText: http.StatusText(status)}
	code := perr.ErrorCodeUpstream
	switch {
	case status == http.StatusUnauthorized:
		code = perr.ErrorCodeUnauthorized
	case status == http.StatusForbidden && quotaExhausted:
		code = perr.ErrorCodeTooManyRequests
	case status == http.StatusForbidden:
		code = perr.ErrorCodeForbidden
	case status == http.StatusNotFound:
		code = perr.ErrorCodeNotFound
	case status == http.StatusTooManyRequests:
		code = perr.ErrorCodeTooManyRequests
	}
	return perr.Wrap(ae, code, "github request failed")
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

// sleepCtx waits for d or until ctx is done
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
