package types

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when a named resource does not exist upstream.
var ErrNotFound = errors.New("not found")

// ErrInvalidUserAgent is returned by ValidateUserAgent.
var ErrInvalidUserAgent = errors.New("invalid user agent")

// ValidateUserAgent checks the identifier the upstream API requires on every request.
// It must be non-blank and a legal HTTP header value.
func ValidateUserAgent(ua string) error {
	if strings.TrimSpace(ua) == "" {
		return fmt.Errorf("%w: must not be empty", ErrInvalidUserAgent)
	}
	if !httpguts.ValidHeaderFieldValue(ua) {
		return fmt.Errorf("%w: %q is not a valid header value", ErrInvalidUserAgent, ua)
	}
	return nil
}
