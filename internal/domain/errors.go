package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the stable machine-readable error classification exposed to
// callers.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation_error"
	KindUpstream   ErrorKind = "upstream_error"
	KindParse      ErrorKind = "parse_error"
	KindNotFound   ErrorKind = "not_found"
)

// Error carries a kind and a human-readable message across the service
// boundary. The wrapped cause is for logs only and is never serialized.
type Error struct {
	Kind    ErrorKind
	Message string
	// Status records the upstream HTTP status for KindUpstream failures.
	// Zero means the call never produced a response (network error, timeout).
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether an upstream failure looks transient. Network
// errors, timeouts, throttling and server-side statuses are retryable;
// everything else (bad request, auth, content policy) is permanent.
func (e *Error) Retryable() bool {
	if e.Kind != KindUpstream {
		return false
	}
	switch {
	case e.Status == 0,
		e.Status == http.StatusRequestTimeout,
		e.Status == http.StatusTooManyRequests,
		e.Status >= http.StatusInternalServerError:
		return true
	}
	return false
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Parsef(format string, args ...any) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...)}
}

// Upstream wraps a failed backend call. cause may be nil when the failure is
// fully described by status and message.
func Upstream(status int, cause error, format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Status: status, Err: cause}
}

// AsError extracts the typed error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf classifies err. Errors outside the taxonomy count as upstream
// failures so they are never silently swallowed at the boundary.
func KindOf(err error) ErrorKind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindUpstream
}
