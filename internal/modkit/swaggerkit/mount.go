// Package swaggerkit mounts the Swagger UI and the OpenAPI document.
// The document body depends on the build: with the swag tag it serves the
// generated spec, without it a skeleton that still lets the UI load
package swaggerkit

import (
	"net/http"

	phttp "gitgauge/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount registers the UI and spec routes when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON())
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
