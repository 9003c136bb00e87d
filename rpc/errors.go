package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	// ErrTimeout is returned when a call exceeds its deadline.
	ErrTimeout = errors.New("rpc call timed out")
	// ErrUnreachable is returned when the remote host cannot be reached.
	ErrUnreachable = errors.New("rpc host unreachable")
	// ErrMalformedResponse is returned when the reply is not a valid JSON-RPC response.
	ErrMalformedResponse = errors.New("malformed rpc response")
	// ErrResponseTooLarge is returned when the reply body exceeds the read limit.
	ErrResponseTooLarge = fmt.Errorf("rpc response exceeded %d MiB", maxBodySize>>20)
	// ErrSessionClosed is returned when calling on a closed session.
	ErrSessionClosed = errors.New("rpc session closed")
)

// StatusError is an HTTP level failure without a JSON-RPC error body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected HTTP status %d: %s", e.StatusCode, e.Body)
}

// classify maps transport errors onto the package sentinels.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case isTimeout(err):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("rpc call canceled: %w", err)
	case isUnreachable(err):
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	return err
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
