package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	sdkerrors "github.com/insanitybit/haveibeenpwnd/client/internal/errors"
)

// maxResponseBytes caps how much of a response body is read. The full breach
// catalog is a few megabytes.
var maxResponseBytes int64 = 64 << 20

// ErrResponseTooLarge is wrapped by the error returned when a body exceeds maxResponseBytes.
var ErrResponseTooLarge = errors.New("response too large")

// response is a fully read upstream reply.
type response struct {
	status int
	header http.Header
	body   []byte
}

// do executes req and reads the whole body. Transport and body-read failures are
// Network errors; the caller decides what each status means.
func do(httpClient HTTPClient, req *http.Request, op string) (*response, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, sdkerrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, sdkerrors.NewNetworkError(op, fmt.Errorf("read body: %w", err))
	}
	if int64(len(body)) > maxResponseBytes {
		return nil, sdkerrors.NewDecodeError(op, resp.StatusCode, fmt.Errorf("%w: exceeds %d bytes", ErrResponseTooLarge, maxResponseBytes))
	}
	return &response{status: resp.StatusCode, header: resp.Header, body: body}, nil
}

// success reports whether status is 2xx.
func success(status int) bool {
	return status >= 200 && status < 300
}

// apiError turns a non-success response into an API error.
func (r *response) apiError(op string) error {
	return sdkerrors.NewHTTPError(op, r.status, string(r.body), r.header)
}

// decodeJSON unmarshals the body into out, reporting failures as Decode errors.
func (r *response) decodeJSON(op string, out any) error {
	if err := json.Unmarshal(r.body, out); err != nil {
		return sdkerrors.NewDecodeError(op, r.status, err)
	}
	return nil
}
