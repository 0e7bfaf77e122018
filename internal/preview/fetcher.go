package preview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/apperr"
)

const (
	defaultFetchTimeout = 15 * time.Second
	maxImageBytes       = 20 << 20
)

type FetcherOption func(*HTTPFetcher)

// HTTPFetcher downloads source images.
type HTTPFetcher struct {
	http *http.Client
}

func NewHTTPFetcher(opts ...FetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		http: &http.Client{Timeout: defaultFetchTimeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithHttpClient(httpClient *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		f.http = httpClient
	}
}

func WithTimeout(d time.Duration) FetcherOption {
	return func(f *HTTPFetcher) {
		f.http.Timeout = d
	}
}

// Fetch returns the body of url. A non-2xx answer yields *apperr.UpstreamError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image url %q: %w", url, err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperr.UpstreamError{Resource: "image", Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	if len(body) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}
	return body, nil
}
