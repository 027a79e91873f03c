package net

import (
	"net/http"

	perr "portfolio/internal/platform/errors"
)

// Wire is the response envelope every endpoint writes
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Data builds a success envelope with the given status
func Data(status int, data any, reqID string) (int, Wire) {
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// OK is Data with 200
func OK(data any, reqID string) (int, Wire) { return Data(http.StatusOK, data, reqID) }

// Error builds the envelope for err; its code picks the status. A nil err is OK(nil)
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	w := perr.WireFrom(err)
	status, env := Data(perr.HTTPStatusCode(w.Code), nil, reqID)
	env.Code = w.Code
	env.Error = w.Message
	return status, env
}
