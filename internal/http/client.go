// Package http wraps the outbound HTTP transport for the pet adoption
// API: bearer token injection, query encoding, and mapping of non-2xx
// responses onto the error taxonomy. Requests are sent exactly once; no
// retries, no backoff.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/petfinder-community/petfinder-go/internal/auth"
	"github.com/petfinder-community/petfinder-go/internal/constants"
	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client is the transport used by every resource client. The bearer
// token is fetched from the token manager per request; the manager
// caches it, so within its lifetime every request shares the same
// read-only token.
type Client struct {
	rest   *resty.Client
	tokens auth.TokenManager
	logger petfinder.Logger
	debug  bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger petfinder.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.rest.SetHeader("User-Agent", userAgent)
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rest.SetTimeout(timeout)
	}
}

// NewClient creates a transport rooted at baseURL. A nil token manager
// sends requests without authentication.
func NewClient(baseURL string, tokens auth.TokenManager, opts ...Option) *Client {
	rest := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(constants.DefaultHTTPTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", constants.DefaultUserAgent)

	client := &Client{
		rest:   rest,
		tokens: tokens,
		logger: petfinder.NoopLogger{},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get performs a GET request against path with the given query
// parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	c.logRequest("GET", path, query)

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	return c.handleResponse(resp)
}

// PostForm performs a POST request against path with a form-encoded
// body.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	req.SetFormDataFromValues(form)

	c.logRequest("POST", path, nil)

	resp, err := req.Post(path)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	return c.handleResponse(resp)
}

func (c *Client) newRequest(ctx context.Context) (*resty.Request, error) {
	req := c.rest.R().SetContext(ctx)

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return nil, err
		}

		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req, nil
}

func (c *Client) logRequest(method, path string, query url.Values) {
	if !c.debug {
		return
	}

	fields := map[string]interface{}{
		"method": method,
		"path":   path,
	}
	if len(query) > 0 {
		fields["query"] = query.Encode()
	}

	c.logger.Debug("HTTP Request", fields)
}

// handleResponse maps non-2xx responses onto the error taxonomy. The
// failed Response is returned alongside the error so callers can
// inspect the raw body.
func (c *Client) handleResponse(resp *resty.Response) (*Response, error) {
	response := &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   resp.StatusCode(),
			"duration": resp.Time().String(),
		})
	}

	if resp.IsError() {
		return response, apiError(response)
	}

	return response, nil
}

// errorBody is the JSON shape of API error responses. The
// invalid-params block is only present on 400 responses.
type errorBody struct {
	Title         string                   `json:"title"`
	Detail        string                   `json:"detail"`
	InvalidParams []petfinder.InvalidParam `json:"invalid-params"`
}

func apiError(resp *Response) error {
	apiErr := &petfinder.APIError{StatusCode: resp.StatusCode}

	var body errorBody
	if err := json.Unmarshal(resp.Body, &body); err == nil {
		apiErr.Detail = body.Detail
		apiErr.InvalidParams = body.InvalidParams
	}

	switch resp.StatusCode {
	case 400:
		apiErr.Title = "invalid request parameters"
	case 401:
		apiErr.Title = "invalid credentials"
	case 403:
		apiErr.Title = "insufficient access"
	case 404:
		apiErr.Title = "requested resource not found"
	case 500:
		apiErr.Title = "the API encountered an unexpected error"
	default:
		apiErr.Title = "unexpected response"
	}

	return apiErr
}
