// Package module wires the meta endpoints (health, readiness, version)
package module

import (
	"net/http"
	"time"

	modkit "gitgauge/internal/modkit"
	"gitgauge/internal/modkit/httpkit"
	str "gitgauge/internal/platform/strings"

	metahttp "gitgauge/internal/services/api/meta/http"
)

// Module serves the service level endpoints; it has no domain service
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	startedAt time.Time
}

// New constructs the meta module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "gitgauge-api",
			StartedAt:   m.startedAt,
			Forge:       deps.Forge,
		})
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
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix returns the normalized route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports is nil; meta exports nothing for cross wiring
func (m *Module) Ports() any { return nil }
