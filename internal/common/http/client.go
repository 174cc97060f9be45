package http

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"
)

type Client struct {
	httpClient *http.Client
}

// NewClient builds an HTTP client with a per-request timeout. When insecure
// is true, TLS certificate verification is disabled; this is intended for
// non-production targets only and must be requested explicitly.
func NewClient(timeout time.Duration, insecure bool) *Client {
	transport := http.DefaultTransport
	if insecure {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.httpClient.Do(req)
}
