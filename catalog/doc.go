// Package catalog defines the UltimateControl tool catalog.
//
// The catalog is the single source of truth for two views of the bridge:
//  1. the tool registry advertised to MCP callers (name, description, parameter schema) and
//  2. the dispatch table translating a tool call into a JSON-RPC method and params.
//
// Both views are derived from one declaration list (catalog.yaml, embedded in the binary),
// so a tool can never be advertised without a dispatch entry, or the other way round.
//
// Example:
//
//	cat, _ := catalog.Default()
//	call, err := cat.Resolve("ue5_asset_list", map[string]any{"path": "/Game"})
//	// call.Method == "asset.list", call.Params == {"path":"/Game"}
package catalog
