// Package modkit is the wiring layer for API modules: shared dependencies,
// build options, and the contract a module satisfies to be mounted
package modkit

import (
	phttp "gitgauge/internal/platform/net/http"
)

// Module is the surface the API composer works against. Keep it tiny so
// modules stay decoupled from each other
type Module interface {
	// MountRoutes attaches the module's routes to the router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module's exported port set for cross wiring
	Ports() any
	// Name identifies the module in logs and the port registry
	Name() string
}
