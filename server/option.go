package server

import (
	"log/slog"

	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/mcp-protocol/schema"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithToolbox sets the tool provider.
func WithToolbox(toolbox Toolbox) Option {
	return func(s *Server) error {
		s.toolbox = toolbox
		return nil
	}
}

// WithImplementation sets the server implementation.
func WithImplementation(implementation schema.Implementation) Option {
	return func(s *Server) error {
		s.info = implementation
		return nil
	}
}

// WithInstructions sets the instructions returned on initialize.
func WithInstructions(instructions string) Option {
	return func(s *Server) error {
		s.instructions = &instructions
		return nil
	}
}

// WithProtocolVersion sets the protocol version.
func WithProtocolVersion(version string) Option {
	return func(s *Server) error {
		s.protocolVersion = version
		return nil
	}
}

// WithLogger sets the process logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// WithLevel sets the process log level adjusted by logging/setLevel.
func WithLevel(level *slog.LevelVar) Option {
	return func(s *Server) error {
		s.level = level
		return nil
	}
}

// WithLoggerName sets the logger name used in client log notifications.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithAllowedOrigins sets the browser origins accepted by the HTTP transport.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) error {
		s.allowedOrigins = append(s.allowedOrigins, origins...)
		return nil
	}
}

// WithStdioOptions sets stdio transport options.
func WithStdioOptions(options ...stdio.Option) Option {
	return func(s *Server) error {
		s.stdioServerOption = append(s.stdioServerOption, options...)
		return nil
	}
}
