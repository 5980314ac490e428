// Package module wires enhancement workflows into the API. Portfolio
// planning consumes the profile module's collector port, so the API
// composer must pass one in through modkit.WithPorts
package module

import (
	"net/http"

	modkit "gitgauge/internal/modkit"
	"gitgauge/internal/modkit/httpkit"
	str "gitgauge/internal/platform/strings"
	"gitgauge/internal/services/api/enhance/domain"
	enhancehttp "gitgauge/internal/services/api/enhance/http"
	enhancesvc "gitgauge/internal/services/api/enhance/service"
)

// Module bundles the enhance service with its route wiring
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	register func(httpkit.Router)

	svc enhancesvc.Service
}

// New constructs the enhance module around the injected collector port
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("enhance"), modkit.WithPrefix("/enhance")}, opts...)...)

	collector, ok := b.Ports.(domain.Collector)
	if !ok {
		panic("enhance module requires a collector port, pass one with modkit.WithPorts")
	}
	svc := enhancesvc.New(collector)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = adaptEnhancePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		enhancehttp.Register(r, m.svc)
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
