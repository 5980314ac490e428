// Package module wires profile analysis into the API
package module

import (
	"net/http"

	modkit "gitgauge/internal/modkit"
	"gitgauge/internal/modkit/httpkit"
	str "gitgauge/internal/platform/strings"
	profilehttp "gitgauge/internal/services/api/profile/http"
	profilesvc "gitgauge/internal/services/api/profile/service"
)

// Module bundles the profile service with its route wiring
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	register func(httpkit.Router)

	svc profilesvc.Service
}

// New constructs the profile module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("profiles"), modkit.WithPrefix("/profiles")}, opts...)...)

	svc := profilesvc.New(deps.Forge)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = adaptProfilePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		profilehttp.Register(r, m.svc)
		external(r)
	}
	return m
}

// MountRoutes mounts the module under its prefix with its middlewares
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the normalized route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
