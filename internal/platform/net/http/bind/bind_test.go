package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "portfolio/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type windowInput struct {
	Months int    `json:"months,omitempty" validate:"omitempty,min=1,max=24"`
	Login  string `json:"login,omitempty"  validate:"omitempty,min=2"`
}

type tagged struct {
	Plain  int `validate:"min=1"`
	Hidden int `json:"-" validate:"max=1"`
}

func post(body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(http.MethodPost, "/github/contributions", http.NoBody)
	}
	return httptest.NewRequest(http.MethodPost, "/github/contributions", strings.NewReader(body))
}

func TestParseJSON(t *testing.T) {
	got, err := ParseJSON[windowInput](post(`{"months":6,"login":"octocat"}`))
	require.NoError(t, err)
	assert.Equal(t, windowInput{Months: 6, Login: "octocat"}, got)
}

func TestParseJSON_Failures(t *testing.T) {
	for _, tc := range []struct {
		name string
		body string
		opts []JSONOptions
		code perr.ErrorCode
		msg  string
	}{
		{"empty body", "", nil, perr.ErrorCodeJSON, "empty body"},
		{"broken", `{"months":`, nil, perr.ErrorCodeJSON, "invalid JSON"},
		{"unknown field", `{"weeks":2}`, nil, perr.ErrorCodeJSON, "weeks"},
		{"trailing data", `{"months":2}{"months":3}`, nil, perr.ErrorCodeJSON, "trailing"},
		{"too large", `{"months":12}`, []JSONOptions{{MaxBytes: 4}}, perr.ErrorCodeJSON, "invalid JSON"},
		{"above max", `{"months":36}`, nil, perr.ErrorCodeValidation, "months must be at most 24"},
		{"below min", `{"login":"x"}`, nil, perr.ErrorCodeValidation, "login must be at least 2"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON[windowInput](post(tc.body), tc.opts...)
			require.Error(t, err)
			assert.Equal(t, tc.code, perr.CodeOf(err))
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseJSON_OptionalBody(t *testing.T) {
	got, err := ParseJSON[windowInput](post(""), OptionalBody())
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = ParseJSON[windowInput](post(`{"months":3}`), OptionalBody())
	require.NoError(t, err)
	assert.Equal(t, 3, got.Months)

	_, err = ParseJSON[windowInput](post(`{"months":0,"x":1}`), OptionalBody())
	assert.True(t, perr.IsCode(err, perr.ErrorCodeJSON), "unknown fields still rejected")
}

func TestParseJSON_BodylessMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/github/profile", http.NoBody)
	_, err := ParseJSON[windowInput](req)
	assert.NoError(t, err)
}

func TestParseJSON_AllowUnknown(t *testing.T) {
	got, err := ParseJSON[windowInput](post(`{"months":2,"weeks":9}`), JSONOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Months)
}

func TestParseJSON_NonStruct(t *testing.T) {
	got, err := ParseJSON[map[string]int](post(`{"months":2}`))
	require.NoError(t, err)
	assert.Equal(t, 2, got["months"])
}

func TestMessage_FieldNames(t *testing.T) {
	err := validation().v.Struct(tagged{Plain: 0, Hidden: 5})
	require.Error(t, err)
	assert.Equal(t, "Plain must be at least 1", Message(err))

	err = validation().v.Struct(tagged{Plain: 1, Hidden: 5})
	require.Error(t, err)
	assert.Equal(t, "Hidden must be at most 1", Message(err))

	assert.Equal(t, assert.AnError.Error(), Message(assert.AnError))
}
