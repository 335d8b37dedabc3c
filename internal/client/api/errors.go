package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response (connection refused, DNS, timeout). Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// Error is an application-level failure: the server answered with a
// non-success status. Message is always display-ready.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// newError builds an Error from a failed response. The message comes from
// the body's "message" field when present, otherwise a generic fallback.
func newError(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	msg := payload.Message
	if msg == "" {
		msg = fmt.Sprintf("Error %d", status)
	}
	return &Error{Status: status, Message: msg}
}
