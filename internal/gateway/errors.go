package gateway

import (
	"errors"
	"fmt"
)

// DefaultErrorMessage is used when neither the payload nor the status line
// carries a message.
const DefaultErrorMessage = "Request failed"

// RequestError is a non-2xx response from the backend.
type RequestError struct {
	Message string
	Status  int
	// Details is the decoded response payload: a JSON value, the raw text,
	// or nil for an empty body.
	Details any
}

// Error returns the message only.
func (e *RequestError) Error() string {
	return e.Message
}

// String includes the status code.
func (e *RequestError) String() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// IsStatus reports whether err is a *RequestError with the given status.
func IsStatus(err error, status int) bool {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Status == status
	}
	return false
}

// AsRequestError extracts a *RequestError from err.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
