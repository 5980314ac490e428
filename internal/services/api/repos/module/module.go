// Package module wires single repository analysis into the API
package module

import (
	"net/http"

	modkit "gitgauge/internal/modkit"
	"gitgauge/internal/modkit/httpkit"
	str "gitgauge/internal/platform/strings"
	reposhttp "gitgauge/internal/services/api/repos/http"
	repossvc "gitgauge/internal/services/api/repos/service"
)

// Module bundles the repos service with its route wiring
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	register func(httpkit.Router)

	svc repossvc.Service
}

// New constructs the repos module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("repos"), modkit.WithPrefix("/repos")}, opts...)...)

	svc := repossvc.New(deps.Forge)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = adaptReposPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		reposhttp.Register(r, m.svc)
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
