// Package backend implements the authenticated request pipeline to the remote
// Mayhem API. It attaches the session credential as a bearer header, caches
// GET responses, retries transient transport failures, and classifies every
// outcome into the package's failure taxonomy.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// Configurator provides the server location and the session credential for a
// request. Token reads from the session store happen through this interface
// so the pipeline can be tested with a static token source.
type Configurator interface {
	BaseURL() string
	Token(ctx context.Context) (string, bool)
}

// ClientOptions configures the pipeline.
type ClientOptions struct {
	CacheTTL      time.Duration // TTL for cached GET responses; 0 disables the cache
	RetryAttempts uint          // attempts for GETs on transport failure; 0 means no retry
	Timeout       time.Duration // per-request transport timeout
}

// Client issues requests to the remote API. One logical request in, one typed
// result or classified failure out.
type Client struct {
	config     Configurator
	httpClient *http.Client
	cache      *responseCache
	attempts   uint
}

// NewClient creates a request pipeline with the given configuration.
func NewClient(config Configurator, opts ...ClientOptions) *Client {
	o := ClientOptions{}
	if len(opts) > 0 {
		o = opts[0]
	}
	c := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: o.Timeout},
		attempts:   o.RetryAttempts,
	}
	if c.attempts == 0 {
		c.attempts = 1
	}
	if o.CacheTTL > 0 {
		c.cache = newResponseCache(o.CacheTTL)
	}
	return c
}

// RequestOptions describes one logical request.
type RequestOptions struct {
	Method  string            // HTTP method (GET, POST, PUT, PATCH, DELETE)
	Path    string            // API endpoint path
	Query   url.Values        // optional query parameters
	Body    any               // optional body, JSON-encoded when non-nil
	Headers map[string]string // optional extra headers
}

// Do makes an HTTP request with the given options and returns the response
// body. Failures are ErrUnauthorized, ErrRequestFailed, or ErrTransport;
// callers choose retry and navigation policy from the class, not the text.
func (c *Client) Do(ctx context.Context, opts RequestOptions) ([]byte, error) {
	u, err := url.Parse(c.config.BaseURL())
	if err != nil {
		return nil, ErrRequestFailed.Msg("invalid backend URL")
	}
	u.Path = path.Join(u.Path, opts.Path)
	u.RawQuery = opts.Query.Encode()

	var bodyBytes []byte
	if opts.Body != nil {
		bodyBytes, err = json.Marshal(opts.Body)
		if err != nil {
			return nil, ErrRequestFailed.Msg("unable to encode request body")
		}
	}

	isGet := opts.Method == http.MethodGet
	// Keyed by path and query only, not by credential. There is one admin
	// session per deployment, so within the short TTL a revoked token may be
	// served cached content; the next uncached request surfaces the 401.
	cacheKey := opts.Path
	if u.RawQuery != "" {
		cacheKey += "?" + u.RawQuery
	}

	// GETs may be served from cache; mutations always hit the backend.
	if isGet && c.cache != nil {
		if body, ok := c.cache.get(cacheKey); ok {
			return body, nil
		}
	}

	attempts := uint(1)
	if isGet {
		attempts = c.attempts
	}

	body, err := retry.DoWithData(
		func() ([]byte, error) {
			return c.roundTrip(ctx, opts, u.String(), bodyBytes)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// Only transport failures are retryable; authorization and
			// validation failures are not.
			return errors.Is(err, ErrTransport)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().Err(err).Uint("attempt", n+1).
				Str("path", opts.Path).Msg("retrying backend request")
		}),
	)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if isGet {
			c.cache.put(cacheKey, body)
		} else {
			c.cache.invalidatePath(opts.Path)
		}
	}
	return body, nil
}

// roundTrip performs a single attempt and classifies the outcome.
func (c *Client) roundTrip(ctx context.Context, opts RequestOptions, url string, bodyBytes []byte) ([]byte, error) {
	var reader io.Reader
	if bodyBytes != nil {
		reader = bytes.NewReader(bodyBytes)
	}
	req, err := http.NewRequestWithContext(ctx, opts.Method, url, reader)
	if err != nil {
		return nil, ErrRequestFailed.Msg("unable to build request")
	}

	req.Header.Set("Content-Type", "application/json")
	// Attach the credential only when a session exists. A request without a
	// token must never carry an Authorization header.
	if token, ok := c.config.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrTransport.Err(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrTransport.Err(err)
	}

	return classify(resp, body)
}

// classify maps a completed HTTP exchange onto the failure taxonomy.
func classify(resp *http.Response, body []byte) ([]byte, error) {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 400:
		if msg := serverMessage(body); msg != "" {
			return nil, ErrRequestFailed.Msg(msg)
		}
		return nil, ErrRequestFailed.Msg(fmt.Sprintf("request failed with status %d", resp.StatusCode))
	}

	// Success without a JSON content type is an empty result.
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return nil, nil
	}
	return body, nil
}

// serverMessage extracts the error message from a structured error body.
func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if msg := gjson.GetBytes(body, "message").String(); msg != "" {
		return msg
	}
	return gjson.GetBytes(body, "error").String()
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.Do(ctx, RequestOptions{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, RequestOptions{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, RequestOptions{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Do(ctx, RequestOptions{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.Do(ctx, RequestOptions{Method: http.MethodDelete, Path: path})
}
