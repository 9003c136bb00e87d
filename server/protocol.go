package server

import (
	"net/http"
	"slices"
)

const protocolVersionHeader = "MCP-Protocol-Version"

// protocolVersionMiddleware rejects unsupported MCP-Protocol-Version headers.
// An absent header is accepted.
func protocolVersionMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			version := r.Header.Get(protocolVersionHeader)
			if version != "" && !slices.Contains(supportedProtocolVersions, version) {
				http.Error(w, "invalid MCP-Protocol-Version", http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
