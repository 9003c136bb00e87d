package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// Session is a reusable connection scope. It is safe for concurrent use:
// each in-flight call owns a pooled connection and its reply is matched by id.
type Session struct {
	client    *Client
	transport *http.Transport
	http      *http.Client
	closed    atomic.Bool
}

// Call performs a call over the session connection pool.
func (s *Session) Call(ctx context.Context, method string, params json.RawMessage) (*Outcome, error) {
	if s.closed.Load() {
		return nil, ErrSessionClosed
	}
	outcome, err := s.client.do(ctx, s.http, method, params)
	if s.closed.Load() {
		// closed while this call was in flight
		s.transport.CloseIdleConnections()
	}
	return outcome, err
}

// Close releases the session connections. It is idempotent.
func (s *Session) Close() error {
	s.closed.Store(true)
	s.transport.CloseIdleConnections()
	return nil
}

// Closed reports whether the session was closed.
func (s *Session) Closed() bool {
	return s.closed.Load()
}
