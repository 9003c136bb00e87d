// Package bridge exposes the Unreal Engine UltimateControl JSON-RPC API as MCP tools.
//
// Each MCP tools/call is resolved against the tool catalog, sent to the editor
// as one JSON-RPC call, and the outcome (a value or a classified failure) is
// returned to the MCP caller as indented JSON text.
//
// The bridge is configured with command line flags or environment variables:
//
//	ue5-mcp-bridge --host 127.0.0.1 --port 7777 --token $UE5_MCP_TOKEN
//	ue5-mcp-bridge --http 127.0.0.1:5000 --persistent
//	ue5-mcp-bridge --probe
package bridge
