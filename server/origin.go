package server

import (
	"net"
	"net/http"
	"net/url"
)

// originValidationMiddleware rejects browser requests from unknown origins.
// Requests without Origin are allowed. With no allowlist only loopback origins pass;
// "*" allows any origin.
func originValidationMiddleware(allowed []string) Middleware {
	return func(next http.Handler) http.Handler {
		allowedMap := make(map[string]bool, len(allowed))
		for _, v := range allowed {
			allowedMap[v] = true
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || allowedMap["*"] || allowedMap[origin] {
				next.ServeHTTP(w, r)
				return
			}
			if len(allowedMap) == 0 && isLoopbackOrigin(origin) {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "origin not allowed", http.StatusForbidden)
		})
	}
}

func isLoopbackOrigin(origin string) bool {
	URL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := URL.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
