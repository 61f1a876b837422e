package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the storefront's commerce backend: the catalog feed
// and the WooCommerce order-creation endpoint.
type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
}

// ClientOption is a functional option for configuring the client.
type ClientOption func(*Client)

// WithCredentials sets the backend API credentials.
func WithCredentials(key, secret string) ClientOption {
	return func(c *Client) {
		c.consumerKey = key
		c.consumerSecret = secret
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new commerce backend client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCatalog fetches the storefront product catalog.
func (c *Client) GetCatalog(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.doRequest(ctx, http.MethodGet, "/api/catalog", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateOrder submits an order to the commerce backend. The returned
// response may lack an order id; callers must treat that as a soft
// failure, not a created order.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := c.doRequest(ctx, http.MethodPost, "/wp-json/wc/v3/orders", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest performs an HTTP request against the backend.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.consumerKey != "" && c.consumerSecret != "" {
		req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
