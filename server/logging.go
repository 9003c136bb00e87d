package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// mcpLevels maps MCP logging levels onto slog levels.
var mcpLevels = map[string]slog.Level{
	"debug":     slog.LevelDebug,
	"info":      slog.LevelInfo,
	"notice":    slog.LevelInfo + 2,
	"warning":   slog.LevelWarn,
	"error":     slog.LevelError,
	"critical":  slog.LevelError + 4,
	"alert":     slog.LevelError + 8,
	"emergency": slog.LevelError + 12,
}

// ParseLevel converts an MCP logging level name.
func ParseLevel(name string) (slog.Level, bool) {
	level, ok := mcpLevels[name]
	return level, ok
}

// LevelName returns the MCP logging level name of level.
func LevelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError+12:
		return "emergency"
	case level >= slog.LevelError+8:
		return "alert"
	case level >= slog.LevelError+4:
		return "critical"
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warning"
	case level >= slog.LevelInfo+2:
		return "notice"
	case level >= slog.LevelInfo:
		return "info"
	}
	return "debug"
}

type setLevelParams struct {
	Level string `json:"level"`
}

// SetLevel handles the logging/setLevel method.
// It enables client log notifications at the level and adjusts the process log level.
func (h *Handler) SetLevel(ctx context.Context, request *jsonrpc.Request) (*schema.SetLevelResult, *jsonrpc.Error) {
	params := &setLevelParams{}
	if err := json.Unmarshal(request.Params, params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	level, ok := ParseLevel(params.Level)
	if !ok {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("unsupported level: %v", params.Level), request.Params)
	}
	h.clientLevel.set(level)
	if h.level != nil {
		h.level.Set(level)
	}
	h.logger.Info("log level changed", "level", params.Level)
	return &schema.SetLevelResult{}, nil
}
