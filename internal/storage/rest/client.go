package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type ClientOption func(*client)

// client speaks the PostgREST dialect exposed by the hosted backend under
// /rest/v1.
type client struct {
	base   url.URL
	apiKey string
	http   *http.Client
}

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(c *client) {
		c.http = httpClient
	}
}

func newClient(cfg ClientConfig, opts ...ClientOption) (*client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid store url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &client{
		base:   *base,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type response struct {
	status       int
	body         []byte
	contentRange string
}

func (c *client) do(ctx context.Context, method, table string, query url.Values, body any, headers map[string]string) (*response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	reqURL := c.base.JoinPath("rest", "v1", table)
	reqURL.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, err
	}

	request.Header.Set("apikey", c.apiKey)
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		request.Header.Set(k, v)
	}

	resp, err := c.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	return &response{
		status:       resp.StatusCode,
		body:         respBody,
		contentRange: resp.Header.Get("Content-Range"),
	}, nil
}

func (c *client) get(ctx context.Context, table string, query url.Values, out any, headers map[string]string) (*response, error) {
	resp, err := c.do(ctx, http.MethodGet, table, query, nil, headers)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return nil, fmt.Errorf("unmarshal %s rows: %w", table, err)
	}
	return resp, nil
}

// totalFromContentRange reads the total of a "0-11/42" header. An unknown
// total ("*") yields -1.
func totalFromContentRange(header string) int64 {
	_, total, ok := strings.Cut(header, "/")
	if !ok || total == "*" {
		return -1
	}
	n, err := strconv.ParseInt(total, 10, 64)
	if err != nil {
		return -1
	}
	return n
}
