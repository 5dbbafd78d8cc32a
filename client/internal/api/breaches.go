package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	sdkerrors "github.com/insanitybit/haveibeenpwnd/client/internal/errors"
	"github.com/insanitybit/haveibeenpwnd/client/internal/types"
)

const (
	OpAccountBreaches = "get breaches for account"
	OpAllBreaches     = "get all breaches"
	OpBreach          = "get breach"
)

// AccountBreachesRequest builds GET /breachedaccount/{account}.
func AccountBreachesRequest(ctx context.Context, t Target, account string, truncate bool, domain string) (*http.Request, error) {
	q := url.Values{}
	if domain != "" {
		q.Set("domain", domain)
	}
	if truncate {
		q.Set("truncateResponse", "true")
	}
	return newGetRequest(ctx, t, "/breachedaccount/"+url.PathEscape(account), q)
}

// AllBreachesRequest builds GET /breaches, optionally filtered to one domain.
func AllBreachesRequest(ctx context.Context, t Target, domain string) (*http.Request, error) {
	q := url.Values{}
	if domain != "" {
		q.Set("domain", domain)
	}
	return newGetRequest(ctx, t, "/breaches", q)
}

// BreachRequest builds GET /breach/{name}.
func BreachRequest(ctx context.Context, t Target, name string) (*http.Request, error) {
	return newGetRequest(ctx, t, "/breach/"+url.PathEscape(name), nil)
}

// GetBreachesForAccount sends req and decodes the account's breaches.
// Upstream answers 404 for an account with no breaches; that is an empty result.
func GetBreachesForAccount(httpClient HTTPClient, req *http.Request) ([]types.Breach, error) {
	resp, err := do(httpClient, req, OpAccountBreaches)
	if err != nil {
		return nil, err
	}
	if resp.status == http.StatusNotFound {
		return []types.Breach{}, nil
	}
	if !success(resp.status) {
		return nil, resp.apiError(OpAccountBreaches)
	}
	return decodeBreaches(resp, OpAccountBreaches)
}

// GetAllBreaches sends req and decodes the breach catalog.
func GetAllBreaches(httpClient HTTPClient, req *http.Request) ([]types.Breach, error) {
	resp, err := do(httpClient, req, OpAllBreaches)
	if err != nil {
		return nil, err
	}
	if !success(resp.status) {
		return nil, resp.apiError(OpAllBreaches)
	}
	return decodeBreaches(resp, OpAllBreaches)
}

// GetBreach sends req and decodes a single breach. 404 maps to types.ErrNotFound.
func GetBreach(httpClient HTTPClient, req *http.Request) (*types.Breach, error) {
	resp, err := do(httpClient, req, OpBreach)
	if err != nil {
		return nil, err
	}
	if resp.status == http.StatusNotFound {
		return nil, types.ErrNotFound
	}
	if !success(resp.status) {
		return nil, resp.apiError(OpBreach)
	}
	breaches, err := decodeBreaches(resp, OpBreach)
	if err != nil {
		return nil, err
	}
	if len(breaches) != 1 {
		return nil, sdkerrors.NewDecodeError(OpBreach, resp.status, fmt.Errorf("expected one breach, got %d", len(breaches)))
	}
	return &breaches[0], nil
}

// decodeBreaches accepts a JSON array of breaches or a single breach object.
// An empty body decodes to an empty list.
func decodeBreaches(resp *response, op string) ([]types.Breach, error) {
	trimmed := bytes.TrimSpace(resp.body)
	if len(trimmed) == 0 {
		return []types.Breach{}, nil
	}

	var breaches []types.Breach
	switch trimmed[0] {
	case 'n':
		if !bytes.Equal(trimmed, []byte("null")) {
			return nil, sdkerrors.NewDecodeError(op, resp.status, fmt.Errorf("improperly formatted response: want array or object"))
		}
		return []types.Breach{}, nil
	case '[':
		if err := resp.decodeJSON(op, &breaches); err != nil {
			return nil, err
		}
		if breaches == nil {
			breaches = []types.Breach{}
		}
	case '{':
		var b types.Breach
		if err := resp.decodeJSON(op, &b); err != nil {
			return nil, err
		}
		breaches = []types.Breach{b}
	default:
		return nil, sdkerrors.NewDecodeError(op, resp.status, fmt.Errorf("improperly formatted response: want array or object"))
	}

	for i := range breaches {
		if breaches[i].Name == "" {
			return nil, sdkerrors.NewDecodeError(op, resp.status, fmt.Errorf("breach %d: missing Name", i))
		}
	}
	return breaches, nil
}
