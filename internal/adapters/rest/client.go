// Package rest implements ports.Store and ports.Notifier against the
// marketplace backend's HTTP API. The backend stays a black box: this
// package only moves records and notification intents across the wire.
package rest

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Internmain07/I-INTERN-sub000/internal/ports"
)

// Client holds the shared HTTP plumbing for the store and notifier.
type Client struct {
	httpClient ports.HTTPClient
	baseURL    string
	authKey    string
	logger     ports.Logger
}

// NewClient creates a backend API client. baseURL should not end with a
// slash; a trailing slash is trimmed.
func NewClient(httpClient ports.HTTPClient, baseURL, authKey string, logger ports.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		authKey:    authKey,
		logger:     logger,
	}
}

// do sends the request with auth headers and verifies the response class.
// The response body is returned for 2xx responses; the caller closes it.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.authKey)
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

// errorFromResponse drains the body and builds an error naming the status.
func errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
