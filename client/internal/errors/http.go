package errors

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxBodySnippet bounds how much of an error response body is kept.
const maxBodySnippet = 512

// ClassifyHTTPStatus maps HTTP status codes to error categories:
// - 4xx client errors (except 408 and 429) are irrecoverable
// - 5xx server errors are recoverable
// - anything else unexpected is treated as recoverable
func ClassifyHTTPStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewHTTPError creates an API error for a non-success response.
func NewHTTPError(op string, statusCode int, body string, header http.Header) *Error {
	body = strings.TrimSpace(body)
	if len(body) > maxBodySnippet {
		body = body[:maxBodySnippet]
	}
	e := &Error{
		Kind:       API,
		Category:   ClassifyHTTPStatus(statusCode),
		Op:         op,
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("unexpected status %q", http.StatusText(statusCode)),
	}
	if header != nil {
		e.RetryAfter = parseRetryAfter(header.Get("Retry-After"))
	}
	return e
}

// NewNetworkError creates an error for failures before any response arrived.
// Network errors are always recoverable as they may be transient.
func NewNetworkError(op string, err error) *Error {
	return &Error{
		Kind:       Network,
		Category:   Recoverable,
		Op:         op,
		Underlying: err,
	}
}

// NewDecodeError creates an error for a response body that is not the expected JSON.
func NewDecodeError(op string, statusCode int, err error) *Error {
	return &Error{
		Kind:       Decode,
		Category:   Irrecoverable,
		Op:         op,
		StatusCode: statusCode,
		Underlying: err,
	}
}

// parseRetryAfter accepts delta-seconds or an HTTP date.
func parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
