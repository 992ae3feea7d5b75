// Package gateways provides infrastructure adapters for external systems.
package gateways

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// rawContentHost serves repository files by owner/repo/ref/path.
const rawContentHost = "https://raw.githubusercontent.com"

// Fetcher retrieves contract artifacts from the upstream repository's
// raw-content endpoint.
type Fetcher struct {
	httpClient *http.Client
	baseURL    string
}

// NewFetcher creates a fetcher against the default raw-content host.
func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: rawContentHost,
	}
}

// NewFetcherWithBaseURL creates a fetcher against a custom host
// (exported for testing against a local server).
func NewFetcherWithBaseURL(baseURL string) *Fetcher {
	f := NewFetcher()
	f.baseURL = baseURL
	return f
}

// ContractURL builds the download URL for a file at a ref.
func (f *Fetcher) ContractURL(owner, repo, ref, upstreamPath string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", f.baseURL, owner, repo, ref, upstreamPath)
}

// Fetch performs a single blocking GET and returns the response body.
// Any non-2xx status is an error: remote rejection and transport failure
// are handled identically, with no retry. Redirects are followed by the
// client default.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "contractsync/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
