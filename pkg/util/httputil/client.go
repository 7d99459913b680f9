package httputil

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

var (
	defaultHttpClient = &http.Client{
		Timeout: time.Minute * 5,
	}

	DefaultClient = &Client{client: defaultHttpClient}
)

// Client is a thin wrapper around http.Client that keeps request
// construction in one place. Redirects are followed with the default
// policy of net/http.
type Client struct {
	client *http.Client
}

// Get issues a GET with the given headers applied verbatim.
func (c *Client) Get(ctx context.Context, url string, headers http.Header) (resp *http.Response, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	applyHeaders(req, headers)
	return c.Do(req)
}

// Post issues a POST of body with the given content type and headers.
func (c *Client) Post(ctx context.Context, url, contentType string, body io.Reader, headers http.Header) (resp *http.Response, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	applyHeaders(req, headers)
	if contentType != "" {
		req.Header.Set(http.CanonicalHeaderKey("Content-Type"), contentType)
	}
	return c.Do(req)
}

func (c *Client) Do(req *http.Request) (resp *http.Response, err error) {
	if req == nil {
		return nil, errors.New("nil pointer exception: parameter 'req' is nil")
	}

	return c.client.Do(req)
}

func applyHeaders(req *http.Request, headers http.Header) {
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
}
