package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ListTools handles the tools/list method
func (h *Handler) ListTools(ctx context.Context, request *jsonrpc.Request) (*schema.ListToolsResult, *jsonrpc.Error) {
	return &schema.ListToolsResult{Tools: h.toolbox.ListTools(ctx)}, nil
}

// CallTool handles the tools/call method
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (*schema.CallToolResult, *jsonrpc.Error) {
	params := &schema.CallToolRequestParams{}
	if err := json.Unmarshal(request.Params, params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	result := h.toolbox.CallTool(ctx, params)
	if result == nil {
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("tool %v returned no result", params.Name), nil)
	}
	if result.IsError != nil && *result.IsError {
		h.clientLog.WarnContext(ctx, "tool call failed", "tool", params.Name)
	}
	return result, nil
}
