// Package http wraps the HTTP transport for the RabbitMQ management API:
// URL construction, basic authentication, JSON bodies, optional retries,
// and status-code classification into the rmq error taxonomy.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

// BasicAuth carries the credentials sent with every request.
type BasicAuth struct {
	Username string
	Password string
}

// Request is a transport-agnostic description of one call. Path must
// already have its segments percent-encoded.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw outcome of one call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends management API requests. It is immutable after construction
// and safe for concurrent use.
type Client struct {
	baseURL    string
	auth       *BasicAuth
	httpClient *retryablehttp.Client
	logger     rmq.Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug logging.
func WithLogger(logger rmq.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
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

// WithRetryConfig enables transport-level retries of transient failures
// (5xx, 429, connection errors).
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout caps a single HTTP exchange.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInsecureTLS disables TLS certificate verification. The caller is
// responsible for restricting this to development environments.
func WithInsecureTLS() Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402 -- gated by the rmqclient dev-mode check
		}
	}
}

// NewClient creates a client for the management API at baseURL. Request
// paths carry the "/api" prefix themselves. auth may be nil for
// unauthenticated endpoints.
func NewClient(baseURL string, auth *BasicAuth, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Hand the final 5xx/429 response back instead of a bare "giving up"
	// error so it reaches interpretError with status and body intact.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		auth:       auth,
		httpClient: retryClient,
		userAgent:  "rabbitmq-http-client/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes one request and classifies the outcome. A non-2xx status is
// returned as a *rmq.BrokerError alongside the raw response; a failure of
// the exchange itself is a *rmq.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	operation := req.Method + " " + req.Path

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.auth != nil {
		httpReq.SetBasicAuth(c.auth.Username, c.auth.Password)
	}

	c.logRequest(req.Method, fullURL)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &rmq.TransportError{Op: operation, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &rmq.TransportError{Op: operation, Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	c.logResponse(req.Method, fullURL, resp)

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, interpretError(httpResp.StatusCode, body)
	}

	return resp, nil
}

// Get sends a GET.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Put sends a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Post sends a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Delete sends a DELETE.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) logRequest(method, fullURL string) {
	if !c.debug || c.logger == nil {
		return
	}

	// Credentials live in the Authorization header, which is deliberately
	// not part of these fields.
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": method,
		"url":    fullURL,
	})
}

func (c *Client) logResponse(method, fullURL string, resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method": method,
		"url":    fullURL,
		"status": resp.StatusCode,
		"bytes":  len(resp.Body),
	})
}

// interpretError builds a BrokerError from a non-2xx response. The body is
// best-effort parsed as the broker's {"error": ..., "reason": ...} shape;
// empty or non-JSON bodies degrade to status-only detail.
func interpretError(statusCode int, body []byte) error {
	brokerErr := &rmq.BrokerError{
		StatusCode: statusCode,
		Kind:       classifyStatus(statusCode),
		Reason:     http.StatusText(statusCode),
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil && payload != nil {
		brokerErr.Payload = payload

		if name, ok := payload["error"].(string); ok {
			brokerErr.ErrorName = name
		}

		if reason, ok := payload["reason"].(string); ok && reason != "" {
			brokerErr.Reason = reason
		}
	}

	// RabbitMQ reports redeclaration with a different definition as a 400
	// with an "inequivalent arg" reason rather than a 409.
	if statusCode == http.StatusBadRequest && strings.Contains(brokerErr.Reason, "inequivalent") {
		brokerErr.Kind = rmq.KindConflict
	}

	return brokerErr
}

func classifyStatus(statusCode int) rmq.BrokerErrorKind {
	switch {
	case statusCode == http.StatusNotFound:
		return rmq.KindNotFound
	case statusCode == http.StatusConflict:
		return rmq.KindConflict
	case statusCode == http.StatusUnauthorized:
		return rmq.KindUnauthorized
	case statusCode == http.StatusForbidden:
		return rmq.KindForbidden
	case statusCode >= http.StatusInternalServerError:
		return rmq.KindServer
	default:
		return rmq.KindGeneric
	}
}
