package api

import (
	"context"
	"net/http"
)

const OpDataClasses = "get data classes"

// DataClassesRequest builds GET /dataclasses.
func DataClassesRequest(ctx context.Context, t Target) (*http.Request, error) {
	return newGetRequest(ctx, t, "/dataclasses", nil)
}

// GetDataClasses sends req and decodes the list of data-class names in server order.
func GetDataClasses(httpClient HTTPClient, req *http.Request) ([]string, error) {
	resp, err := do(httpClient, req, OpDataClasses)
	if err != nil {
		return nil, err
	}
	if !success(resp.status) {
		return nil, resp.apiError(OpDataClasses)
	}
	var classes []string
	if err := resp.decodeJSON(OpDataClasses, &classes); err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []string{}
	}
	return classes, nil
}
