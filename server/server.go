package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Toolbox lists and invokes tools.
type Toolbox interface {
	ListTools(ctx context.Context) []schema.Tool
	// CallTool never fails at the protocol level; tool failures are reported in the result.
	CallTool(ctx context.Context, params *schema.CallToolRequestParams) *schema.CallToolResult
}

// Server represents MCP protocol server
type Server struct {
	toolbox         Toolbox
	info            schema.Implementation
	instructions    *string
	protocolVersion string
	logger          *slog.Logger
	level           *slog.LevelVar
	loggerName      string

	stdioServer
	httpServer
}

// NewHandler creates a handler for a client connection
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return newHandler(s, transport)
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		info: schema.Implementation{
			Name:    "ue5-mcp-bridge",
			Version: "0.1",
		},
		loggerName:      "ue5-mcp-bridge",
		protocolVersion: schema.LatestProtocolVersion,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.toolbox == nil {
		return nil, errors.New("no toolbox specified")
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}
