package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNetworkUnreachable is wrapped into errors for requests that never
	// got an HTTP response.
	ErrNetworkUnreachable = errors.New("network unreachable")

	// ErrRequestFailed matches every *RequestError.
	ErrRequestFailed = errors.New("request failed")
)

// RequestError is returned for any non-2xx response. Message is the server's
// "error" field, else its "message" field, else "API Error: <status>".
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

func statusMessage(status int) string {
	return fmt.Sprintf("API Error: %d", status)
}

// Message returns the user-facing text for err: the server message of a
// RequestError found in the chain, or err.Error() otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var re *RequestError
	if errors.As(err, &re) {
		return re.Message
	}
	return err.Error()
}

// StatusCode returns the HTTP status of a RequestError in the chain, or 0.
func StatusCode(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}
