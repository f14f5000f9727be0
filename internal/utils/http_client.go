package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so its request builder is used directly:
//
//	resp, err := client.R().SetContext(ctx).SetResult(&out).Get("/api/notes")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewHTTPClientFor returns a client bound to baseURL with the given timeout.
func NewHTTPClientFor(baseURL string, timeout time.Duration) *HTTPClient {
	c := NewHTTPClient()
	c.SetBaseURL(baseURL).SetTimeout(timeout)
	return c
}
