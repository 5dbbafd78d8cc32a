package client

// Functional options that configure the Client during construction. Keeping
// them in a standalone file makes every knob discoverable at a glance.

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied in order; the debug transport, when requested, is
// installed after all of them so it always sees the final transport.
type Option func(*Client) error

// WithBaseURL points the client at a different API root, e.g. a mirror or a
// test server. The URL must be absolute http(s).
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base url: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid base url %q: must be absolute http(s)", raw)
		}
		if u.RawQuery != "" || u.Fragment != "" {
			return fmt.Errorf("invalid base url %q: must not carry a query or fragment", raw)
		}
		c.baseURL = strings.TrimRight(raw, "/")
		return nil
	}
}

// WithHTTPClient replaces the underlying *http.Client. The client is copied,
// so later options never mutate the caller's value. A WithHTTPTimeout value
// overrides the supplied client's Timeout regardless of option order.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging logs every request/response at debug level when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and dumps full response bodies into logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}
