package server

import "net/http"

// Middleware wraps an http.Handler
type Middleware func(next http.Handler) http.Handler

// ChainMiddlewareHandlers chains middleware, the first one being outermost
func ChainMiddlewareHandlers(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
