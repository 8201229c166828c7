// Package fetch provides generic JSON-over-GET fetching for the external
// suggestion and search services. This package centralizes HTTP logic used
// by every suggestion source adapter.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout. Individual sources
// may use shorter timeouts for their sub-calls.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; RankBuddy/1.0)"

// Error represents an error during a JSON fetch.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// JSON performs a GET request against baseURL with the given query
// parameters and decodes the response body into target. Any transport,
// status, or decode failure is returned as a *Error; callers at the source
// boundary downgrade it to an empty contribution.
func JSON(ctx context.Context, baseURL string, params url.Values, opts *Options, target any) error {
	body, err := Body(ctx, baseURL, params, opts)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return &Error{URL: baseURL, Message: "unexpected response shape", Cause: err}
	}
	return nil
}

// Body performs a GET request and returns the raw response body.
func Body(ctx context.Context, baseURL string, params url.Values, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: baseURL, Message: "invalid URL", Cause: err}
	}
	if params != nil {
		parsed.RawQuery = params.Encode()
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, "GET", parsed.String(), nil)
	if err != nil {
		return nil, &Error{URL: baseURL, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: baseURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: baseURL, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: baseURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return body, nil
}
