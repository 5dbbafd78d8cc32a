package api

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/insanitybit/haveibeenpwnd/client/internal/types"
)

const OpPastes = "get pastes for account"

// PastesRequest builds GET /pasteaccount/{account}.
func PastesRequest(ctx context.Context, t Target, account string) (*http.Request, error) {
	return newGetRequest(ctx, t, "/pasteaccount/"+url.PathEscape(account), nil)
}

// GetPastesForAccount sends req and decodes the account's pastes.
// 404 means no pastes and yields an empty result.
func GetPastesForAccount(httpClient HTTPClient, req *http.Request) ([]types.Paste, error) {
	resp, err := do(httpClient, req, OpPastes)
	if err != nil {
		return nil, err
	}
	if resp.status == http.StatusNotFound {
		return []types.Paste{}, nil
	}
	if !success(resp.status) {
		return nil, resp.apiError(OpPastes)
	}
	if len(bytes.TrimSpace(resp.body)) == 0 {
		return []types.Paste{}, nil
	}
	var pastes []types.Paste
	if err := resp.decodeJSON(OpPastes, &pastes); err != nil {
		return nil, err
	}
	if pastes == nil {
		pastes = []types.Paste{}
	}
	return pastes, nil
}
