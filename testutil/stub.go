package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andyle182810/apicheck/httpclient"
	"github.com/andyle182810/apicheck/httpserver"
	"github.com/andyle182810/apicheck/stubapi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// StubAPI starts the demo API stub on a loopback httptest server and returns
// the base URL the clients should use (with the /api prefix).
func StubAPI(t testing.TB, opts ...stubapi.Option) string {
	t.Helper()

	srv := stubapi.NewServer(&httpserver.Config{ //nolint:exhaustruct
		Host: "127.0.0.1",
	}, stubapi.NewAPI(opts...), zerolog.Nop())

	ts := httptest.NewServer(srv.Echo)
	t.Cleanup(ts.Close)

	return ts.URL + stubapi.BasePath
}

// ClosedURL returns the address of a server that is no longer listening.
func ClosedURL(t testing.TB) string {
	t.Helper()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	return url
}

func RequireStatus(t testing.TB, resp *httpclient.Response, want int) {
	t.Helper()

	require.NotNil(t, resp, "no response received")
	require.Equal(t, want, resp.StatusCode, "unexpected status, body: %s", resp.Body)
}

func RequireJSONBody(t testing.TB, resp *httpclient.Response, target any) {
	t.Helper()

	require.NotNil(t, resp, "no response received")
	require.NoError(t, resp.JSON(target), "body: %s", resp.Body)
}
