// Package server provides the MCP server surface of the bridge.
//
// It handles the MCP lifecycle (initialize, ping, logging/setLevel,
// cancellation notifications) and delegates tools/list and tools/call to a
// Toolbox. The server can be exposed over stdio or streamable HTTP:
//
//	s, _ := server.New(server.WithToolbox(toolbox))
//	log.Fatal(s.Stdio(ctx).ListenAndServe())
package server
