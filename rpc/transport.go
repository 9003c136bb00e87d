package rpc

import (
	"io"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultDialTimeout is the maximum time to establish a TCP connection.
	DefaultDialTimeout = 10 * time.Second
	// DefaultKeepAlive is the interval between TCP keep-alive probes.
	DefaultKeepAlive = 30 * time.Second
	// DefaultIdleConnTimeout is how long a session keeps an idle connection.
	DefaultIdleConnTimeout = 90 * time.Second
	// DefaultMaxIdleConnsPerHost bounds pooled connections of a session.
	DefaultMaxIdleConnsPerHost = 4

	// maxBodySize caps response bodies read into memory.
	maxBodySize = 10 << 20
	// maxErrorBody caps the HTTP error body kept in StatusError.
	maxErrorBody = 512
)

// newTransport creates a transport. Without keepAlive each request uses a
// connection that is closed once the response is consumed.
func newTransport(keepAlive bool) *http.Transport {
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   DefaultDialTimeout,
			KeepAlive: DefaultKeepAlive,
		}).DialContext,
		IdleConnTimeout:     DefaultIdleConnTimeout,
		MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,
		DisableKeepAlives:   !keepAlive,
	}
}

// drainAndClose discards the remaining body so the connection can be reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBodySize))
	_ = body.Close()
}
