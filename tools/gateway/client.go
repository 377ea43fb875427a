// Package gateway implements the capabilities backed by the pharmaceutical
// data gateway: six read-only lookups keyed by therapy area, molecule name or
// document ID.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client queries the data gateway. Read-only after construction, safe for
// concurrent invocations.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(clt *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = clt
	}
}

// NewClient returns a gateway client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	ret := &Client{
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return ret
}

// Get performs one lookup and renders the outcome as capability text.
// Gateway-level errors (4xx/5xx bodies) and network failures become error
// text rather than errors, so they can feed back into the reasoning context.
func (c *Client) Get(ctx context.Context, path string, queryKey string, value string) (string, error) {
	values := url.Values{}
	values.Set(queryKey, value)
	lookupURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", err
	}
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return fmt.Sprintf("Network Error: Failed to connect to API. %v", err), nil
	}
	defer httpResp.Body.Close()
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Sprintf("Network Error: Failed to connect to API. %v", err), nil
	}
	if httpResp.StatusCode >= http.StatusBadRequest {
		return fmt.Sprintf("API Error: %d - %s", httpResp.StatusCode, string(body)), nil
	}
	return string(body), nil
}
