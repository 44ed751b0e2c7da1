package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return New(5*time.Second, 0)
}

func TestFetchText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "hello prices")
	}))
	defer srv.Close()

	body, err := newTestClient().FetchText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "hello prices", string(body))
}

func TestFetchJSONSetsAcceptHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer srv.Close()

	body, err := newTestClient().FetchJSON(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient().FetchText(context.Background(), srv.URL)
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
}

func TestFetchTransportFailure(t *testing.T) {
	_, err := newTestClient().FetchText(context.Background(), "http://127.0.0.1:1/nope")
	require.Error(t, err)

	var httpErr *HTTPError
	assert.True(t, errors.As(err, &httpErr))
}

func TestFetchContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, err := newTestClient().FetchText(ctx, srv.URL)
	require.Error(t, err)
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://example.com/rates?api_key=secret123", "https://example.com/rates"},
		{"https://example.com/rates", "https://example.com/rates"},
		{"https://example.com/page#frag", "https://example.com/page"},
		{"://bad url?key=1", "://bad url"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeURL(tt.input), "input %q", tt.input)
	}
}

func TestDiagnosticScrubsQueryParams(t *testing.T) {
	err := fmt.Errorf("fetch https://api.example.com/gold?apikey=supersecret failed: status 500")
	diag := Diagnostic(err)

	assert.NotContains(t, diag, "supersecret")
	assert.Contains(t, diag, "https://api.example.com/gold")
}

func TestDiagnosticTruncates(t *testing.T) {
	err := errors.New(strings.Repeat("x", 1000))
	diag := Diagnostic(err)

	assert.LessOrEqual(t, len([]rune(diag)), maxDiagnosticLen+3)
	assert.True(t, strings.HasSuffix(diag, "..."))
}

func TestDiagnosticNil(t *testing.T) {
	assert.Equal(t, "", Diagnostic(nil))
}
