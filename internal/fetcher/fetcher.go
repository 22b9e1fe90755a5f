package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"

	"a11y-analyzer/internal/config"
)

// FetchError indicates a page could not be retrieved. StatusCode is zero when
// the request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves web pages and hands their markup to the analyzer as
// UTF-8, whatever charset the server responded with.
type Fetcher struct {
	client *resty.Client
	logger *slog.Logger
}

// New builds a Fetcher from the given settings.
func New(cfg config.FetcherConfig, logger *slog.Logger) *Fetcher {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWaitTime).
		SetRetryMaxWaitTime(cfg.RetryMaxWaitTime).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Fetcher{client: client, logger: logger}
}

// NormalizeURL prepends https:// to addresses entered without a scheme.
func NormalizeURL(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "https://" + rawURL
	}
	return rawURL
}

// Fetch retrieves the page at rawURL and returns the normalized URL that was
// actually requested along with the decoded markup. Failures come back as a
// *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, string, error) {
	pageURL := NormalizeURL(rawURL)
	logger := f.logger.With(slog.String("url", pageURL))
	logger.DebugContext(ctx, "Fetching page")

	resp, err := f.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch page", slog.Any("error", err))
		return pageURL, "", &FetchError{URL: pageURL, Err: err}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		logger.WarnContext(ctx, "Unexpected response status", slog.String("status", resp.Status()))
		return pageURL, "", &FetchError{URL: pageURL, StatusCode: resp.StatusCode()}
	}

	markup, err := decodeBody(resp.Body(), resp.Header().Get("Content-Type"))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to decode response body", slog.Any("error", err))
		return pageURL, "", &FetchError{URL: pageURL, Err: err}
	}

	logger.InfoContext(ctx, "Page fetched",
		slog.Int("status_code", resp.StatusCode()),
		slog.Int("bytes", len(markup)),
	)
	return pageURL, markup, nil
}

// decodeBody converts the response body to UTF-8, using the Content-Type
// header and the document itself to detect the source charset.
func decodeBody(body []byte, contentType string) (string, error) {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", fmt.Errorf("detecting charset: %w", err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decoding body: %w", err)
	}
	return string(decoded), nil
}
