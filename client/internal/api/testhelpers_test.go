package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

func testTarget(baseURL string) Target {
	return Target{BaseURL: baseURL, UserAgent: "hibp-go-test"}
}

// serve starts a server that answers every request with status and body.
func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func mustRequest(t *testing.T) func(*http.Request, error) *http.Request {
	return func(req *http.Request, err error) *http.Request {
		t.Helper()
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		return req
	}
}

func bg() context.Context { return context.Background() }
