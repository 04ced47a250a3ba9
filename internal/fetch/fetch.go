// Package fetch downloads header images for the meta tab preview.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPFetcher performs plain GET requests. The body is returned as-is:
// no content-type check, no size limit, no caching.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher. A zero timeout waits indefinitely.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch returns the response body for url
func (f *HTTPFetcher) Fetch(url string) ([]byte, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
