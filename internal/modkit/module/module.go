// Package module holds the module contract and the port registry the API
// composer uses for cross module wiring
package module

import (
	phttp "gitgauge/internal/platform/net/http"
)

// Module mirrors the modkit contract. It lives here as a sibling so port
// helpers can accept modules without importing modkit back
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
