package api

import (
	"errors"
	"fmt"
)

// Kind classifies an API call failure so callers can pick the right
// user-facing treatment without string-matching messages.
type Kind int

const (
	// KindNetwork means the request never reached the server.
	KindNetwork Kind = iota
	// KindNotFound maps HTTP 404.
	KindNotFound
	// KindUnauthorized maps HTTP 401; the session is expired.
	KindUnauthorized
	// KindForbidden maps HTTP 403; authenticated but role is insufficient.
	KindForbidden
	// KindServer maps HTTP 5xx.
	KindServer
	// KindRequest maps any other non-2xx status.
	KindRequest
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindServer:
		return "server"
	default:
		return "request_failed"
	}
}

// Error is the single error type returned by the client for failed calls.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 for network failures
	Message string // user-presentable detail
	Err     error  // underlying transport error, network failures only
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func kindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindUnauthorized
}

// IsForbidden reports whether err is a 403 from the API.
func IsForbidden(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindForbidden
}

// IsNetwork reports whether the request failed before reaching the server.
func IsNetwork(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNetwork
}

// UserMessage renders err for display: connectivity hints for network
// failures, a retry-later line for 5xx, and the server-provided detail for
// everything else.
func UserMessage(err error) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	switch apiErr.Kind {
	case KindNetwork:
		return "Could not reach the server. Check your connection and try again."
	case KindServer:
		return "The server had a problem. Please try again later."
	case KindUnauthorized:
		return "Your session has expired. Please log in again."
	case KindForbidden:
		return "You do not have permission to do that."
	case KindNotFound:
		return "Not found."
	default:
		return apiErr.Message
	}
}
