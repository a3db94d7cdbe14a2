package httpclient

import (
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client defines an interface for making HTTP requests
// This allows for easy mocking and testing of HTTP calls
type Client interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
	Get(url string) (*http.Response, error)
	Do(req *http.Request) (*http.Response, error)
}

// StandardHTTPClient wraps the standard http.Client
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardClient creates a new HTTP client with default settings
func NewStandardClient() Client {
	return &StandardHTTPClient{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewStandardClientWithTimeout creates a new HTTP client with a custom timeout
func NewStandardClientWithTimeout(timeout time.Duration) Client {
	return &StandardHTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Post makes a POST request
func (c *StandardHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return c.client.Post(url, contentType, body)
}

// Get makes a GET request
func (c *StandardHTTPClient) Get(url string) (*http.Response, error) {
	return c.client.Get(url)
}

// Do executes an HTTP request
func (c *StandardHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

// RateLimitedClient caps the outbound request rate of a wrapped Client.
// The chat poll plus a fast-typing search user can otherwise burst-fire
// requests at the API.
type RateLimitedClient struct {
	inner   Client
	limiter *rate.Limiter
}

// NewRateLimitedClient wraps client, allowing rps requests per second with
// the given burst size.
func NewRateLimitedClient(client Client, rps float64, burst int) *RateLimitedClient {
	return &RateLimitedClient{
		inner:   client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (c *RateLimitedClient) wait(req *http.Request) error {
	if req != nil {
		return c.limiter.Wait(req.Context())
	}
	// Requests built without an explicit context still pass through the
	// limiter; reservation-based blocking avoids needing one.
	r := c.limiter.Reserve()
	if !r.OK() {
		return nil
	}
	time.Sleep(r.Delay())
	return nil
}

// Post makes a rate-limited POST request
func (c *RateLimitedClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	if err := c.wait(nil); err != nil {
		return nil, err
	}
	return c.inner.Post(url, contentType, body)
}

// Get makes a rate-limited GET request
func (c *RateLimitedClient) Get(url string) (*http.Response, error) {
	if err := c.wait(nil); err != nil {
		return nil, err
	}
	return c.inner.Get(url)
}

// Do executes a rate-limited HTTP request
func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	if err := c.wait(req); err != nil {
		return nil, err
	}
	return c.inner.Do(req)
}
