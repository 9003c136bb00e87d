package rpc

import (
	"log/slog"
	"time"
)

// Option configures a Client.
type Option func(c *Client)

// WithToken sets the auth token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = &token }
}

// WithTokenHeader overrides the auth token header name.
func WithTokenHeader(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.tokenHeader = name
		}
	}
}

// WithTimeout sets the per call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}
