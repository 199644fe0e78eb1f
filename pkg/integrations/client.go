package integrations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	mverrors "github.com/matzehuels/mvnversions/pkg/errors"
	"github.com/matzehuels/mvnversions/pkg/observability"
)

// Client provides shared HTTP functionality for package index scrapers.
// It applies default headers to every request, maps status codes to
// [ErrNotFound] and [ErrNetwork], and reports each request through
// [observability.HTTP]. Returned errors also carry a pkg/errors code
// (NOT_FOUND, NETWORK_ERROR or PARSE_ERROR).
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given request timeout and default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(timeout time.Duration, headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(timeout),
		headers: headers,
	}
}

// GetDocument performs an HTTP GET request and parses the response as HTML.
func (c *Client) GetDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	body, err := c.doRequest(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, mverrors.Wrap(mverrors.ErrCodeParse, fmt.Errorf("%w: %w", ErrParse, err), "parse html from %s", rawURL)
	}
	return doc, nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := splitURL(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, mverrors.Wrap(mverrors.ErrCodeNetwork, fmt.Errorf("%w: %w", ErrNetwork, err), "GET %s%s", host, path)
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func splitURL(u *url.URL) (host, path string) {
	return u.Host, u.EscapedPath()
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return mverrors.Wrap(mverrors.ErrCodeNotFound, ErrNotFound, "status %d", code)
	default:
		return mverrors.Wrap(mverrors.ErrCodeNetwork, ErrNetwork, "status %d", code)
	}
}
