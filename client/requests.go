package client

import (
	"context"
	"net/http"

	"github.com/insanitybit/haveibeenpwnd/client/internal/api"
)

// Each builder separates pure request construction (HTTPRequest) from the
// round trip (Send). Builders are cheap values; create one per call.

// AccountBreachesRequest looks up breaches for one account.
type AccountBreachesRequest struct {
	c        *Client
	account  string
	truncate bool
	domain   string
}

// Truncate asks upstream to return breach names only.
func (r *AccountBreachesRequest) Truncate(t bool) *AccountBreachesRequest {
	r.truncate = t
	return r
}

// Domain restricts results to breaches of the given domain.
func (r *AccountBreachesRequest) Domain(d string) *AccountBreachesRequest {
	r.domain = d
	return r
}

// HTTPRequest builds the GET without sending it.
func (r *AccountBreachesRequest) HTTPRequest(ctx context.Context) (*http.Request, error) {
	return api.AccountBreachesRequest(ctx, r.c.target(), r.account, r.truncate, r.domain)
}

// Send performs the lookup. An account with no breaches yields an empty slice and a nil error.
func (r *AccountBreachesRequest) Send(ctx context.Context) ([]Breach, error) {
	req, err := r.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []Breach
	err = observe(endpointAccountBreaches, func() (err error) {
		out, err = api.GetBreachesForAccount(r.c.http, req)
		return err
	})
	return out, err
}

// AllBreachesRequest fetches the breach catalog.
type AllBreachesRequest struct {
	c      *Client
	domain string
}

// Domain restricts the catalog to breaches of the given domain.
func (r *AllBreachesRequest) Domain(d string) *AllBreachesRequest {
	r.domain = d
	return r
}

// HTTPRequest builds the GET without sending it.
func (r *AllBreachesRequest) HTTPRequest(ctx context.Context) (*http.Request, error) {
	return api.AllBreachesRequest(ctx, r.c.target(), r.domain)
}

// Send fetches the catalog.
func (r *AllBreachesRequest) Send(ctx context.Context) ([]Breach, error) {
	req, err := r.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []Breach
	err = observe(endpointAllBreaches, func() (err error) {
		out, err = api.GetAllBreaches(r.c.http, req)
		return err
	})
	return out, err
}

// BreachRequest fetches one breach by name.
type BreachRequest struct {
	c    *Client
	name string
}

// HTTPRequest builds the GET without sending it.
func (r *BreachRequest) HTTPRequest(ctx context.Context) (*http.Request, error) {
	return api.BreachRequest(ctx, r.c.target(), r.name)
}

// Send fetches the breach. ErrNotFound is returned when no breach has that name.
func (r *BreachRequest) Send(ctx context.Context) (*Breach, error) {
	req, err := r.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out *Breach
	err = observe(endpointBreach, func() (err error) {
		out, err = api.GetBreach(r.c.http, req)
		return err
	})
	return out, err
}

// DataClassesRequest fetches the data-class names.
type DataClassesRequest struct {
	c *Client
}

// HTTPRequest builds the GET without sending it.
func (r *DataClassesRequest) HTTPRequest(ctx context.Context) (*http.Request, error) {
	return api.DataClassesRequest(ctx, r.c.target())
}

// Send fetches the data classes in the order upstream returns them.
func (r *DataClassesRequest) Send(ctx context.Context) ([]string, error) {
	req, err := r.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	err = observe(endpointDataClasses, func() (err error) {
		out, err = api.GetDataClasses(r.c.http, req)
		return err
	})
	return out, err
}

// PastesRequest looks up pastes for one account.
type PastesRequest struct {
	c       *Client
	account string
}

// HTTPRequest builds the GET without sending it.
func (r *PastesRequest) HTTPRequest(ctx context.Context) (*http.Request, error) {
	return api.PastesRequest(ctx, r.c.target(), r.account)
}

// Send performs the lookup. An account with no pastes yields an empty slice and a nil error.
func (r *PastesRequest) Send(ctx context.Context) ([]Paste, error) {
	req, err := r.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []Paste
	err = observe(endpointPastes, func() (err error) {
		out, err = api.GetPastesForAccount(r.c.http, req)
		return err
	})
	return out, err
}
