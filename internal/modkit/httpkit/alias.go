// Package httpkit is the handler and routing surface modules build on.
// Modules import it instead of the platform http package, so the envelope
// and router plumbing stay swappable in one place
package httpkit

import (
	"net/http"

	phttp "gitgauge/internal/platform/net/http"
	"gitgauge/internal/platform/net/http/bind"
)

type (
	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Call adapts a body-less handler to the response envelope. The returned
// value is wrapped as a 200; an error picks its own status
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		return phttp.OK(out)
	})
}

// Param returns the named URL path parameter for the current route
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }

// ValidForgeName reports whether a path segment is usable as an owner or
// repository name before it is spent on an upstream call
func ValidForgeName(s string) bool { return bind.ValidForgeName(s) }
