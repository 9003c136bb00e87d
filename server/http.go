package server

import (
	"context"
	"net/http"

	"github.com/viant/jsonrpc/transport/server/http/streamable"
)

const (
	// DefaultHTTPAddr binds to loopback only to reduce DNS rebinding risk.
	DefaultHTTPAddr = "127.0.0.1:5000"
	// DefaultStreamableURI is the MCP endpoint path.
	DefaultStreamableURI = "/mcp"
)

type httpServer struct {
	streamingHandler *streamable.Handler
	streamableURI    string
	allowedOrigins   []string
}

// HTTP creates an HTTP server exposing the streamable MCP transport.
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = DefaultHTTPAddr
	}
	if s.streamableURI == "" {
		s.streamableURI = DefaultStreamableURI
	}
	s.streamingHandler = streamable.New(s.NewHandler,
		streamable.WithURI(s.streamableURI),
	)
	mux := http.NewServeMux()
	middlewareHandlers := []Middleware{
		originValidationMiddleware(s.allowedOrigins),
		protocolVersionMiddleware(),
	}
	mux.Handle(s.streamableURI, ChainMiddlewareHandlers(s.streamingHandler, middlewareHandlers...))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
