// Command ue5-mcp-bridge is a standalone binary that exposes a running Unreal
// Engine 5 editor (UltimateControl plugin) to MCP clients.
//
// It speaks MCP over stdio by default, so it can be registered directly as an
// MCP server command; --http serves the streamable HTTP transport instead.
package main
