// Package client is a Go SDK for the Have I Been Pwned breach lookup API.
//
//	c, err := client.New("my-app")
//	breaches, err := c.GetBreachesForAccount("foo@bar.com").Truncate(true).Send(ctx)
package client

import (
	"net/http"
	"time"

	"github.com/insanitybit/haveibeenpwnd/client/internal/api"
	"github.com/insanitybit/haveibeenpwnd/client/internal/types"
)

// DefaultBaseURL is the upstream API root used unless WithBaseURL overrides it.
const DefaultBaseURL = "https://haveibeenpwned.com/api/v2"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client issues lookups against the breach API. It holds no mutable state
// after New returns and is safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string // sent as User-Agent on every request; upstream rejects requests without one
	http      *http.Client
	debug     bool
	timeout   time.Duration // zero keeps whatever the http.Client carries
}

// New constructs a Client identified by userAgent. It performs no network I/O
// and fails only when userAgent is blank or not a valid header value, or when
// an option is invalid.
func New(userAgent string, opts ...Option) (*Client, error) {
	if err := types.ValidateUserAgent(userAgent); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Applied after the option loop so option order does not matter.
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	// Installed last so it wraps whichever transport the options settled on.
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport}
	}
	return c, nil
}

// UserAgent returns the identifier sent with every request.
func (c *Client) UserAgent() string { return c.userAgent }

// BaseURL returns the API root requests are built against.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) target() api.Target {
	return api.Target{BaseURL: c.baseURL, UserAgent: c.userAgent}
}

// --------------------------------------------------------------------
// Request builders - one per endpoint, sent with Send
// --------------------------------------------------------------------

// GetBreachesForAccount prepares a lookup of every breach the account appears in.
func (c *Client) GetBreachesForAccount(account string) *AccountBreachesRequest {
	return &AccountBreachesRequest{c: c, account: account}
}

// GetAllBreaches prepares a fetch of the full breach catalog.
func (c *Client) GetAllBreaches() *AllBreachesRequest {
	return &AllBreachesRequest{c: c}
}

// GetBreach prepares a fetch of a single breach by its Name.
func (c *Client) GetBreach(name string) *BreachRequest {
	return &BreachRequest{c: c, name: name}
}

// GetDataClasses prepares a fetch of every known data class.
func (c *Client) GetDataClasses() *DataClassesRequest {
	return &DataClassesRequest{c: c}
}

// GetPastesForAccount prepares a lookup of pastes the account appears in.
func (c *Client) GetPastesForAccount(account string) *PastesRequest {
	return &PastesRequest{c: c, account: account}
}
