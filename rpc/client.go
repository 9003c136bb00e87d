package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTokenHeader carries the UltimateControl auth token.
	DefaultTokenHeader = "X-Ultimate-Control-Token"
	// DefaultTimeout bounds a single call.
	DefaultTimeout = 30 * time.Second
)

// Caller performs JSON-RPC calls.
type Caller interface {
	// Call invokes method; nil params omits the params field.
	Call(ctx context.Context, method string, params json.RawMessage) (*Outcome, error)
}

// Client is a JSON-RPC over HTTP client.
type Client struct {
	endpoint    string
	token       *string
	tokenHeader string
	timeout     time.Duration
	logger      *slog.Logger
}

// Endpoint returns the UltimateControl RPC URL for host and port.
func Endpoint(host string, port int) string {
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/rpc"
}

// New creates a client for endpoint.
func New(endpoint string, options ...Option) *Client {
	ret := &Client{
		endpoint:    endpoint,
		tokenHeader: DefaultTokenHeader,
		timeout:     DefaultTimeout,
		logger:      slog.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Endpoint returns the client endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Call performs an ephemeral call: a dedicated connection is opened for the
// request and closed before Call returns.
func (c *Client) Call(ctx context.Context, method string, params json.RawMessage) (*Outcome, error) {
	transport := newTransport(false)
	defer transport.CloseIdleConnections()
	return c.do(ctx, &http.Client{Transport: transport}, method, params)
}

// Open starts a session reusing one pooled connection until Close.
func (c *Client) Open() *Session {
	transport := newTransport(true)
	return &Session{client: c, transport: transport, http: &http.Client{Transport: transport}}
}

// WithSession runs fn with an open session and closes it on every exit path,
// including a panic in fn.
func (c *Client) WithSession(ctx context.Context, fn func(ctx context.Context, caller Caller) error) error {
	session := c.Open()
	defer session.Close()
	return fn(ctx, session)
}

func (c *Client) do(ctx context.Context, httpClient *http.Client, method string, params json.RawMessage) (*Outcome, error) {
	request := NewRequest(method, params)
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %v request: %w", method, err)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create %v request: %w", method, err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Accept", "application/json")
	if c.token != nil {
		httpRequest.Header.Set(c.tokenHeader, *c.token)
	}

	started := time.Now()
	outcome, err := c.exchange(ctx, httpClient, httpRequest, request.Id)
	if err != nil {
		c.logger.Debug("rpc call failed", "method", method, "id", request.Id, "elapsed", time.Since(started), "error", err)
		return nil, err
	}
	c.logger.Debug("rpc call completed", "method", method, "id", request.Id, "elapsed", time.Since(started), "rpc_error", outcome.Error != nil)
	return outcome, nil
}

func (c *Client) exchange(ctx context.Context, httpClient *http.Client, httpRequest *http.Request, requestID string) (*Outcome, error) {
	response, err := httpClient.Do(httpRequest)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer drainAndClose(response.Body)
	data, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize+1))
	if err != nil {
		return nil, classify(ctx, err)
	}
	if len(data) > maxBodySize {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, ErrResponseTooLarge)
	}
	if response.StatusCode >= http.StatusBadRequest {
		// some hosts deliver JSON-RPC errors with an HTTP error status
		if outcome, err := decodeOutcome(data, requestID); err == nil && outcome.Error != nil {
			return outcome, nil
		}
		return nil, &StatusError{StatusCode: response.StatusCode, Body: truncate(strings.TrimSpace(string(data)), maxErrorBody)}
	}
	return decodeOutcome(data, requestID)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
