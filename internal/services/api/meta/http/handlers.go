// Package http provides the meta endpoints: liveness, readiness, build
// info, and service uptime
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"gitgauge/internal/core/version"
	"gitgauge/internal/modkit/httpkit"
)

// readyTimeout bounds the dependency probes so a wedged upstream cannot
// hang the readiness endpoint
const readyTimeout = 2 * time.Second

// Pinger is satisfied by adapters that expose a cheap liveness probe
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Forge       any
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the liveness payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"gitgauge-api"`
	Started string `json:"started"  example:"2026-01-15T13:00:00Z"`
	Now     string `json:"now"      example:"2026-01-15T13:05:00Z"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: stamp(h.deps.StartedAt),
		Now:     stamp(time.Now()),
	}, nil
}

// ReadyCheck is the probe result for one dependency
type ReadyCheck struct {
	Name   string `json:"name"   example:"forge"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"platform API rate limit exceeded"`
}

// ReadyResponse summarizes readiness across all checks
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-01-15T13:05:00Z"`
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), readyTimeout)
	defer cancel()

	forge := probe(ctx, "forge", h.deps.Forge)

	overall := "ok"
	switch forge.Status {
	case "ok":
	case "fail":
		overall = "fail"
	default:
		// skipped or unknown dependencies degrade, they do not fail
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{forge},
		Now:    stamp(time.Now()),
	}, nil
}

// probe classifies one dependency: absent ones are skipped, non-Pinger
// values are unknown, the rest report what Ping says
func probe(ctx stdctx.Context, name string, dep any) ReadyCheck {
	if dep == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	p, ok := dep.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: "unknown"}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: "ok"}
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// ServiceResponse describes the running service
type ServiceResponse struct {
	Name    string `json:"name"    example:"gitgauge-api"`
	Started string `json:"started" example:"2026-01-15T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: stamp(h.deps.StartedAt),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}, nil
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }
