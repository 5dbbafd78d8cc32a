package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUA = "hibp-go-client-test"

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(testUA, WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func TestNew(t *testing.T) {
	t.Parallel()
	c, err := New(testUA)
	require.NoError(t, err)
	assert.Equal(t, testUA, c.UserAgent())
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	for _, ua := range []string{"", "  ", "line\nbreak"} {
		_, err := New(ua)
		assert.ErrorIs(t, err, ErrInvalidUserAgent, "user agent %q", ua)
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	t.Parallel()
	_, err := New(testUA, WithBaseURL("not a url"))
	assert.Error(t, err)
	_, err = New(testUA, WithBaseURL("ftp://example.com"))
	assert.Error(t, err)
	_, err = New(testUA, WithBaseURL("https://example.com/api?x=1"))
	assert.Error(t, err)
	_, err = New(testUA, WithHTTPTimeout(0))
	assert.Error(t, err)
	_, err = New(testUA, WithHTTPClient(nil))
	assert.Error(t, err)
}

func TestRequestConstruction_NoNetwork(t *testing.T) {
	t.Parallel()
	c, err := New(testUA, WithBaseURL("https://hibp.test/api/v3/"))
	require.NoError(t, err)
	ctx := context.Background()

	cases := []struct {
		name string
		req  func() (*http.Request, error)
		want string
	}{
		{"account", func() (*http.Request, error) {
			return c.GetBreachesForAccount("foo@bar.com").HTTPRequest(ctx)
		}, "https://hibp.test/api/v3/breachedaccount/foo@bar.com"},
		{"account truncated", func() (*http.Request, error) {
			return c.GetBreachesForAccount("foo@bar.com").Truncate(true).Domain("adobe.com").HTTPRequest(ctx)
		}, "https://hibp.test/api/v3/breachedaccount/foo@bar.com?domain=adobe.com&truncateResponse=true"},
		{"all", func() (*http.Request, error) { return c.GetAllBreaches().HTTPRequest(ctx) }, "https://hibp.test/api/v3/breaches"},
		{"all by domain", func() (*http.Request, error) { return c.GetAllBreaches().Domain("adobe.com").HTTPRequest(ctx) }, "https://hibp.test/api/v3/breaches?domain=adobe.com"},
		{"breach", func() (*http.Request, error) { return c.GetBreach("Adobe").HTTPRequest(ctx) }, "https://hibp.test/api/v3/breach/Adobe"},
		{"dataclasses", func() (*http.Request, error) { return c.GetDataClasses().HTTPRequest(ctx) }, "https://hibp.test/api/v3/dataclasses"},
		{"pastes", func() (*http.Request, error) { return c.GetPastesForAccount("foo@bar.com").HTTPRequest(ctx) }, "https://hibp.test/api/v3/pasteaccount/foo@bar.com"},
	}
	for _, tc := range cases {
		req, err := tc.req()
		require.NoError(t, err, tc.name)
		assert.Equal(t, http.MethodGet, req.Method, tc.name)
		assert.Equal(t, tc.want, req.URL.String(), tc.name)
		assert.Equal(t, testUA, req.Header.Get("User-Agent"), tc.name)
	}
}

func TestSend_SetsUserAgent(t *testing.T) {
	t.Parallel()
	var got string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[]`))
	}))
	_, err := c.GetDataClasses().Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testUA, got)
}

func TestGetBreachesForAccount_UnknownAccountIsEmpty(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, jsonHandler(http.StatusNotFound, ""))
	got, err := c.GetBreachesForAccount("nobody@example.com").Send(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetBreachesForAccount_EmptyAccountMirrorsUpstream(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/breachedaccount/", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
	}))
	_, err := c.GetBreachesForAccount("").Send(context.Background())
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
}

func TestGetAllBreaches_DecodesFixture(t *testing.T) {
	t.Parallel()
	want := []Breach{
		{
			Name: "Adobe", Title: "Adobe", Domain: "adobe.com",
			BreachDate: "2013-10-04", AddedDate: "2013-12-04T00:00:00Z", PwnCount: 152445165,
			Description: "In October 2013, 153 million Adobe accounts were breached.",
			DataClasses: []string{"Email addresses", "Password hints", "Passwords", "Usernames"},
			IsVerified:  true,
		},
		{
			Name: "Ashley Madison", Title: "Ashley Madison", Domain: "ashleymadison.com",
			BreachDate: "2015-07-19", AddedDate: "2015-08-18T20:00:00Z", PwnCount: 30811934,
			Description: "In July 2015, the infidelity website Ashley Madison suffered a serious data breach.",
			DataClasses: []string{"Dates of birth", "Email addresses", "Ethnicities", "Genders"},
			IsVerified:  true, IsSensitive: true,
		},
	}
	fixture, err := json.Marshal(want)
	require.NoError(t, err)

	c := newTestClient(t, jsonHandler(http.StatusOK, string(fixture)))
	got, err := c.GetAllBreaches().Send(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want, got)
}

func TestGetBreach_NotFound(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, jsonHandler(http.StatusNotFound, ""))
	b, err := c.GetBreach("Nope").Send(context.Background())
	assert.Nil(t, b)
	assert.True(t, IsNotFound(err))
}

func TestGetDataClasses_PreservesOrder(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, jsonHandler(http.StatusOK, `["Email addresses", "Passwords"]`))
	got, err := c.GetDataClasses().Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Email addresses", "Passwords"}, got)
}

func TestGetPastesForAccount(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, jsonHandler(http.StatusOK, `[{"Source":"Pastebin","Id":"8Q0BvKD8","Title":"syslog","Date":"2014-03-04T19:14:54Z","EmailCount":139}]`))
	got, err := c.GetPastesForAccount("foo@bar.com").Send(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pastebin", got[0].Source)
	assert.Equal(t, 139, got[0].EmailCount)

	c = newTestClient(t, jsonHandler(http.StatusNotFound, ""))
	got, err = c.GetPastesForAccount("nobody@example.com").Send(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSend_ConnectionRefusedIsNetworkError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(testUA, WithBaseURL(url), WithHTTPTimeout(2*time.Second))
	require.NoError(t, err)
	_, err = c.GetBreachesForAccount("foo@bar.com").Send(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
	assert.False(t, IsDecodeError(err))
	assert.True(t, IsRetryable(err))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindNetwork, e.Kind)
	assert.Zero(t, e.StatusCode)
}

func TestSend_MalformedJSONIsDecodeError(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, jsonHandler(http.StatusOK, "{bad json"))
	_, err := c.GetAllBreaches().Send(context.Background())
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
	assert.False(t, IsNetworkError(err))
	assert.False(t, IsRetryable(err))
}

func TestSend_RateLimited(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	_, err := c.GetPastesForAccount("foo@bar.com").Send(context.Background())
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindAPI, e.Kind)
	assert.Equal(t, 5*time.Second, e.RetryAfter)
	assert.True(t, IsRetryable(err))
}

func TestSend_CtxCanceled(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, jsonHandler(http.StatusOK, "[]"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetAllBreaches().Send(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentAccountLookups_DoNotInterfere(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account := strings.TrimPrefix(r.URL.Path, "/breachedaccount/")
		// Stagger replies so requests overlap.
		if strings.HasPrefix(account, "slow") {
			time.Sleep(20 * time.Millisecond)
		}
		_, _ = fmt.Fprintf(w, `[{"Name":"breach-of-%s"}]`, account)
	}))

	accounts := []string{"slow-a@example.com", "b@example.com", "slow-c@example.com", "d@example.com"}
	results := make([][]Breach, len(accounts))
	errs := make([]error, len(accounts))

	var wg sync.WaitGroup
	for i, acct := range accounts {
		wg.Add(1)
		go func(i int, acct string) {
			defer wg.Done()
			results[i], errs[i] = c.GetBreachesForAccount(acct).Send(context.Background())
		}(i, acct)
	}
	wg.Wait()

	for i, acct := range accounts {
		require.NoError(t, errs[i])
		require.Len(t, results[i], 1)
		assert.Equal(t, "breach-of-"+acct, results[i][0].Name)
	}
}
