// Package api composes the HTTP API from its modules
package api

import (
	"gitgauge/internal/adapters/forge"
	"gitgauge/internal/platform/config"
	"gitgauge/internal/platform/logger"
	phttp "gitgauge/internal/platform/net/http"
	"gitgauge/internal/platform/net/middleware"

	"gitgauge/internal/modkit"
	"gitgauge/internal/modkit/httpkit"
	"gitgauge/internal/modkit/module"
	"gitgauge/internal/modkit/swaggerkit"

	enhancedomain "gitgauge/internal/services/api/enhance/domain"
	enhancemod "gitgauge/internal/services/api/enhance/module"
	metamod "gitgauge/internal/services/api/meta/module"
	profilemod "gitgauge/internal/services/api/profile/module"
	reposmod "gitgauge/internal/services/api/repos/module"
)

// enhanceConcurrency caps in-flight enhancement requests; README synthesis
// is CPU bound and portfolio planning fans out to the forge
const enhanceConcurrency = 16

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Forge          forge.Client
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Forge: opt.Forge,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// the profile module exports the repository collector that portfolio
	// enhancement plans from
	profiles := profilemod.New(deps)
	collector := module.MustPortsOf[enhancedomain.Collector](profiles)

	mods := []module.Module{
		metamod.New(deps),
		profiles,
		reposmod.New(deps),
		enhancemod.New(deps,
			modkit.WithPorts(collector),
			modkit.WithMiddlewares(middleware.Throttle(enhanceConcurrency)),
		),
	}

	origins := opt.Config.MayCSV("HTTP_CORS_ORIGINS", []string{"http://localhost:5173"})

	// root-level heartbeat so load balancers probe /health without
	// entering the versioned tree
	r.Use(middleware.Heartbeat("/health"))

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(origins...), func(api httpkit.Router) {
		for _, m := range mods {
			// ports land in the registry under the module name for
			// cross module lookups during bootstrap
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}
