// Package httputil provides HTTP client construction with standard configurations.
package httputil

import (
	"net/http"
	"time"
)

const (
	maxIdleConns        = 10
	maxIdleConnsPerHost = 2
	idleConnTimeout     = 30 * time.Second
)

// NewClient creates an HTTP client with the given timeout and a pooled
// transport suitable for repeated API calls to the same hosts.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	}
}

// NewNoRedirectClient creates a client that reports redirects to the
// caller instead of following them. Used for HEAD probes where the
// Location header is the payload.
func NewNoRedirectClient(timeout time.Duration) *http.Client {
	c := NewClient(timeout)
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}
