package fetcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11y-analyzer/internal/config"
)

func newTestFetcher() *Fetcher {
	cfg := config.FetcherConfig{
		Timeout:   5 * time.Second,
		UserAgent: "test-agent",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, logger)
}

func TestNormalizeURL(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Bare Host", input: "example.com", want: "https://example.com"},
		{name: "Host With Path", input: "example.com/page", want: "https://example.com/page"},
		{name: "Already HTTPS", input: "https://example.com", want: "https://example.com"},
		{name: "Already HTTP", input: "http://example.com", want: "http://example.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeURL(tc.input))
		})
	}
}

func TestFetchSuccess(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><h1>Hello</h1></body></html>"))
	}))
	defer server.Close()

	f := newTestFetcher()
	pageURL, markup, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, server.URL, pageURL)
	assert.Contains(t, markup, "<h1>Hello</h1>")
	assert.Equal(t, "test-agent", gotUserAgent)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	f := newTestFetcher()
	_, _, err := f.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Equal(t, server.URL, fetchErr.URL)
}

func TestFetchConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	f := newTestFetcher()
	_, _, err := f.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Zero(t, fetchErr.StatusCode)
	assert.Error(t, fetchErr.Unwrap())
}

func TestFetchDecodesLegacyCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write([]byte("<html><body>caf\xe9</body></html>"))
	}))
	defer server.Close()

	f := newTestFetcher()
	_, markup, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, markup, "café")
}
