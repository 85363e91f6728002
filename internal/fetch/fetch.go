// Package fetch provides the JSON-over-HTTP calls used by the job sources and
// the AI client, plus HTML markup stripping for provider text.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "resume-critiquer/1.0"

// maxErrorBody caps how much of a failed response is kept for the error message.
const maxErrorBody = 512

// Result holds the raw response of a request.
type Result struct {
	URL        string
	StatusCode int
	Body       []byte
}

// Error represents an error during an HTTP call.
type Error struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
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

// Options configures the request behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	Query     url.Values
	// Client overrides the HTTP client; Timeout still applies through the context.
	Client *http.Client
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// GetJSON issues a GET and decodes a 200 response body into out.
func GetJSON(ctx context.Context, urlStr string, opts *Options, out any) (*Result, error) {
	return Do(ctx, http.MethodGet, urlStr, nil, opts, out)
}

// PostJSON encodes body as JSON, issues a POST and decodes a 200 response into out.
func PostJSON(ctx context.Context, urlStr string, body any, opts *Options, out any) (*Result, error) {
	return Do(ctx, http.MethodPost, urlStr, body, opts, out)
}

// Do performs a JSON request. A non-200 status returns the Result together
// with an *Error so callers can inspect the body. out may be nil.
func Do(ctx context.Context, method, urlStr string, body any, opts *Options, out any) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}
	if len(opts.Query) > 0 {
		q := parsedURL.Query()
		for key, values := range opts.Query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		parsedURL.RawQuery = q.Encode()
	}
	display := Redact(parsedURL)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{URL: display, Message: "failed to encode request body", Cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, parsedURL.String(), reader)
	if err != nil {
		return nil, &Error{URL: display, Message: "failed to create request", Cause: err}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		// *url.Error quotes the full request URL, credentials included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = display
		}
		return nil, &Error{URL: display, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: display, StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:        display,
		StatusCode: resp.StatusCode,
		Body:       bodyBytes,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:        display,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP status %d: %s", resp.StatusCode, truncate(string(bodyBytes), maxErrorBody)),
		}
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return result, &Error{URL: display, StatusCode: resp.StatusCode, Message: "failed to decode JSON response", Cause: err}
		}
	}

	return result, nil
}

// Redact returns u as a string with credential-like query values masked.
func Redact(u *url.URL) string {
	if u == nil {
		return ""
	}
	clone := *u
	q := clone.Query()
	changed := false
	for key := range q {
		if isSecretParam(key) {
			q.Set(key, "REDACTED")
			changed = true
		}
	}
	if changed {
		clone.RawQuery = q.Encode()
	}
	return clone.String()
}

func isSecretParam(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "key") || strings.Contains(key, "token") ||
		strings.Contains(key, "secret") || key == "app_id"
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
