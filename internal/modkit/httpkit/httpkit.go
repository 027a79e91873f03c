// Package httpkit is what modules import to mount handlers, so none of them
// touch the platform http package or chi directly
package httpkit

import (
	"net/http"
	"strings"

	phttp "portfolio/internal/platform/net/http"
	"portfolio/internal/platform/net/http/bind"
)

type (
	// Router is the platform router seam
	Router = phttp.Router
	// Handler is the platform handler shape
	Handler = phttp.Handler
	// Response lets a handler pick its own status or headers
	Response = phttp.Response
)

// Get mounts a bodyless handler; its result is wrapped in the envelope
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.JSONHandlerNoBody(h))
}

// PostOptionalJSON mounts a POST handler whose JSON body is decoded into T.
// An absent body is the zero T, so every field must have a usable default
func PostOptionalJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h, bind.OptionalBody()))
}

// MountUnder mounts routes under prefix with per module middleware
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI mounts routes under /api/{version}, e.g.
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(), func(api httpkit.Router) {
//	  github.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/"+strings.Trim(version, "/"), mw, mount)
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
