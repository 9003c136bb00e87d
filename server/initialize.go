package server

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// supportedProtocolVersions lists versions accepted from clients, newest first.
var supportedProtocolVersions = []string{schema.LatestProtocolVersion, "2025-06-18", "2025-03-26", "2024-11-05"}

type initializeParams struct {
	ProtocolVersion string `json:"protocolVersion"`
	ClientInfo      struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"clientInfo"`
}

// Initialize handles the initialize method
func (h *Handler) Initialize(ctx context.Context, request *jsonrpc.Request) (*schema.InitializeResult, *jsonrpc.Error) {
	params := &initializeParams{}
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, params); err != nil {
			return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse %v", err), request.Params)
		}
	}
	protoVersion := h.protocolVersion
	if params.ProtocolVersion != "" && slices.Contains(supportedProtocolVersions, params.ProtocolVersion) {
		protoVersion = params.ProtocolVersion
	}
	h.logger.Info("client connected", "client", params.ClientInfo.Name, "client_version", params.ClientInfo.Version, "protocol", protoVersion)
	return &schema.InitializeResult{
		ProtocolVersion: protoVersion,
		ServerInfo:      h.info,
		Capabilities: schema.ServerCapabilities{
			Tools: &schema.ServerCapabilitiesTools{},
		},
		Instructions: h.instructions,
	}, nil
}
