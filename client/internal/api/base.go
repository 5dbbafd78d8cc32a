package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Target carries the per-client values every request needs.
type Target struct {
	BaseURL   string
	UserAgent string
}

// newGetRequest builds a GET for baseURL + path with the user agent and JSON accept header set.
// Path segments are escaped by the caller.
func newGetRequest(ctx context.Context, t Target, path string, query url.Values) (*http.Request, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := strings.TrimRight(t.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", t.UserAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
