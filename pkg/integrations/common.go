package integrations

import (
	"errors"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a page or resource doesn't exist on the index.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-200 responses).
	ErrNetwork = errors.New("network error")

	// ErrParse is returned when a response body cannot be parsed.
	ErrParse = errors.New("parse error")
)

// NewHTTPClient creates an HTTP client with the given timeout.
// A non-positive timeout selects the 10 second default.
//
// Keep-alives are disabled so every request uses its own connection.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &http.Transport{Proxy: http.ProxyFromEnvironment, DisableKeepAlives: true},
	}
}

// UserAgentHeader builds the default header map carrying userAgent.
func UserAgentHeader(userAgent string) map[string]string {
	return map[string]string{"User-Agent": userAgent}
}
