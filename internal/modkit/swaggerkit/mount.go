// Package swaggerkit serves the OpenAPI document and the Swagger UI
package swaggerkit

import (
	"cmp"
	"net/http"
	"strings"

	phttp "portfolio/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options place the docs. Nothing is mounted unless Enabled
type Options struct {
	Enabled bool
	Path    string // default /api/docs
	Server  string // OAS3 servers url, default /api/v1
}

// Mount registers the UI under Path and the JSON document at Path/doc.json
func Mount(r phttp.Router, opt Options) {
	if !opt.Enabled {
		return
	}
	base := strings.TrimRight(cmp.Or(opt.Path, "/api/docs"), "/")
	doc := base + "/doc.json"

	r.Get(base, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, base+"/", http.StatusPermanentRedirect)
	})
	r.Get(doc, serveDocJSON(cmp.Or(opt.Server, "/api/v1")))
	r.Handle(base+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(doc),
	))
}
