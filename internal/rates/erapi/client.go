// Package erapi is a client for exchangerate-api style endpoints: a single
// GET returning a JSON object whose "rates" field maps currency codes to
// USD-pivot rates.
package erapi

import (
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://open.er-api.com/v6"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=erapi_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the exchange-rate API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient performs the requests.
	httpClient HTTPClient
	// header contains additional headers sent with each request.
	header http.Header
	// query contains additional query parameters sent with each request.
	query url.Values
}

// ClientOption is a configuration option for the client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewClient creates a new exchange-rate API client. The key is optional;
// open endpoints serve unauthenticated requests at a lower quota.
func NewClient(key string, options ...ClientOption) (*Client, error) {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
	}
	if key != "" {
		c.query.Add("api_key", key)
	}
	for _, option := range options {
		option(c)
	}
	return c, nil
}
