// Package errors provides the error taxonomy for the client SDK.
// Every failure surfaced by a request builder is a *Error of one Kind.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Kind identifies which stage of a request failed.
type Kind int

const (
	// Network means the request never produced an HTTP response
	// (DNS, connection refused, TLS, timeout).
	Network Kind = iota

	// Decode means a response arrived but its body did not match the expected JSON shape.
	Decode

	// API means the upstream service answered with a non-success status.
	API
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Network:
		return "Network"
	case Decode:
		return "Decode"
	case API:
		return "API"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ErrorCategory tells callers whether repeating the same request may succeed.
// The SDK never retries on its own.
type ErrorCategory int

const (
	// Recoverable errors may succeed if repeated later.
	// Examples: 429 Too Many Requests, 503 Service Unavailable, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors will fail the same way every time.
	// Examples: 400 Bad Request, 403 Forbidden, malformed JSON.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error is the single error type returned by request builders.
type Error struct {
	Kind       Kind
	Category   ErrorCategory
	Op         string        // endpoint operation, e.g. "get breaches for account"
	StatusCode int           // HTTP status code (0 for network errors)
	Body       string        // response body for debugging, API errors only
	RetryAfter time.Duration // parsed Retry-After header, zero when absent
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s: HTTP %d: %v", e.Kind, e.Op, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Op, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err carries a *Error of kind k.
func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// IsRecoverable reports whether err was classified as Recoverable.
func IsRecoverable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Category == Recoverable
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
