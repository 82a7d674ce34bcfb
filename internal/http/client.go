package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/airtable-client/internal/constants"
	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
	"github.com/hashicorp/go-retryablehttp"
)

const defaultUserAgent = "airtable-client/1.0"

// TokenManager supplies the bearer token attached to every request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// Request describes one HTTP request against the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw outcome of a request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client performs authenticated requests against a base URL.
//
// GET requests ride a retryable path that backs off on 5xx, 429, and
// connection errors (429 backoff honors Retry-After). Mutating requests are
// sent exactly once: the API assigns no idempotency keys, so repeating a
// create or upsert risks duplication.
type Client struct {
	baseURL      string
	tokenManager TokenManager
	retryClient  *retryablehttp.Client
	httpClient   *http.Client
	logger       Logger
	debug        bool
	userAgent    string
}

// Logger matches airtable.Logger; declared here so the transport does not
// depend on the public package for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
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

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the read-side retry policy.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout bounds each individual HTTP request.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a transport client. tokenManager may be nil, in which
// case requests are sent unauthenticated.
func NewClient(baseURL string, tokenManager TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		retryClient:  retryClient,
		httpClient: &http.Client{
			Timeout: constants.DefaultHTTPTimeout,
		},
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. Non-success statuses return the Response together
// with an *airtable.APIError carrying the status and server message.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	err = c.setHeaders(ctx, httpReq, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.execute(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"size":   len(body),
		})
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, airtable.ParseAPIError(resp.StatusCode, body)
	}

	return resp, nil
}

// execute routes reads through the retryable client and everything else
// through the plain one.
func (c *Client) execute(httpReq *http.Request) (*http.Response, error) {
	if httpReq.Method != http.MethodGet {
		return c.httpClient.Do(httpReq) //nolint:wrapcheck // wrapped by caller
	}

	retryReq, err := retryablehttp.FromRequest(httpReq)
	if err != nil {
		return nil, fmt.Errorf("preparing retryable request: %w", err)
	}

	return c.retryClient.Do(retryReq) //nolint:wrapcheck // wrapped by caller
}

func (c *Client) setHeaders(ctx context.Context, httpReq *http.Request, req *Request) error {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request. query carries the records[] parameters
// of batched deletes and may be nil.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query})
}
