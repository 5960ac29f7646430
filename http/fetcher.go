// Package http provides an HTTP-based implementation of clawdoc.Fetcher
// for retrieving documentation from static sites.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements clawdoc.Fetcher at compile time.
var _ clawdoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript and is suitable for static sites.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets a custom HTTP client, overriding the timeout-based
// default. Used in tests.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the content at the given URL. A 404 maps to
// ENOTFOUND; timeouts, transport failures, and other non-200 statuses
// map to EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", clawdoc.Errorf(clawdoc.EINVALID, "Invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", clawdoc.Errorf(clawdoc.EUNAVAILABLE, "Timed out fetching %s.", url)
		}
		return "", clawdoc.Errorf(clawdoc.EUNAVAILABLE, "Failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", clawdoc.Errorf(clawdoc.ENOTFOUND, "Document not found at %s.", url)
	case resp.StatusCode != http.StatusOK:
		return "", clawdoc.Errorf(clawdoc.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", clawdoc.Errorf(clawdoc.EUNAVAILABLE, "Failed to read response from %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
