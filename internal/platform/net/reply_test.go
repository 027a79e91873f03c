package net_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	perr "portfolio/internal/platform/errors"
	pnet "portfolio/internal/platform/net"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]any{"login": "octocat"}, "req-1")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, pnet.Wire{
		StatusCode: http.StatusOK,
		Status:     "OK",
		RequestID:  "req-1",
		Data:       map[string]any{"login": "octocat"},
	}, w)
}

func TestData_CustomStatus(t *testing.T) {
	status, w := pnet.Data(http.StatusServiceUnavailable, "degraded", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "Service Unavailable", w.Status)
	assert.Equal(t, "degraded", w.Data)
}

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err    error
		status int
		code   perr.ErrorCode
		msg    string
	}{
		{perr.Newf(perr.ErrorCodeTooManyRequests, "GitHub API error: 403 Forbidden"), 429, perr.ErrorCodeTooManyRequests, "GitHub API error: 403 Forbidden"},
		{perr.Upstreamf("GitHub API error: 500 Internal Server Error"), 502, perr.ErrorCodeUpstream, "GitHub API error: 500 Internal Server Error"},
		{perr.Wrap(errors.New("dial tcp"), perr.ErrorCodeUnavailable, "github do failed"), 503, perr.ErrorCodeUnavailable, "github do failed"},
		{perr.NotFoundf("GitHub API error: 404 Not Found"), 404, perr.ErrorCodeNotFound, "GitHub API error: 404 Not Found"},
		{errors.New("boom"), 500, perr.ErrorCodeUnknown, "boom"},
	} {
		status, w := pnet.Error(tc.err, "req-2")
		assert.Equal(t, tc.status, status, tc.msg)
		assert.Equal(t, tc.status, w.StatusCode)
		assert.Equal(t, tc.code, w.Code)
		assert.Equal(t, tc.msg, w.Error)
		assert.Equal(t, "req-2", w.RequestID)
		assert.Nil(t, w.Data)
	}
}

func TestError_Nil(t *testing.T) {
	status, w := pnet.Error(nil, "req-3")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, w.Error)
}

func TestWire_OmitsEmpty(t *testing.T) {
	_, w := pnet.OK(nil, "")
	b, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status_code":200,"status":"OK"}`, string(b))
}
