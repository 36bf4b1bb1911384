// Package middleware holds the HTTP middleware of the ledger API.
//
// The server applies them outermost first: RequestID, Recovery, CORS, Auth,
// Logger, Metrics. Auth only resolves identity; routes that need it are
// wrapped in RequireAuth or AdminOnly, and login and proof submission are
// additionally rate limited per client IP.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that Chain(a, b)(h) is a(b(h)): the first
// argument runs first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
