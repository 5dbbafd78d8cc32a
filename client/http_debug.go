package client

import (
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport dumps each request and response through the global zerolog
// logger at debug level. Both lines share a request_id so they can be paired
// when lookups run concurrently.
//
// Enable with WithDebugLogging(true). Logs include full response bodies.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	id := uuid.NewString()

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Dur("elapsed", time.Since(start)).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Dur("elapsed", time.Since(start)).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}
