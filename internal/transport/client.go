// Package transport provides the authenticated HTTP client shared by all
// feed source and storefront API calls.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/amby-app/feedsync/pkg/constants"
	"github.com/amby-app/feedsync/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with token authentication.
// The storefront API expects the raw token in the Authorization header.
type Client struct {
	http  *http.Client
	token string
}

// New creates a new transport client with the given API token.
// An empty token produces an unauthenticated client for public feeds.
func New(token string) *Client {
	return &Client{
		http:  &http.Client{Timeout: DefaultHTTPTimeout},
		token: token,
	}
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(req)
}

// Post performs a POST request with a JSON-encoded body.
// A nil body sends an empty request body.
func (c *Client) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	return c.send(ctx, http.MethodPost, url, body)
}

// Patch performs a PATCH request with a JSON-encoded body.
func (c *Client) Patch(ctx context.Context, url string, body any) (*http.Response, error) {
	return c.send(ctx, http.MethodPatch, url, body)
}

func (c *Client) send(ctx context.Context, method, url string, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WrapParse("json", "request body", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.WrapResource("create", "request", method+" "+url, err)
	}
	return c.Do(req)
}
