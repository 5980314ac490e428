// Package http provides http transport for repo analysis
package http

import (
	stdhttp "net/http"

	"gitgauge/internal/modkit/httpkit"
	perr "gitgauge/internal/platform/errors"
	svc "gitgauge/internal/services/api/repos/service"
)

// Register mounts repo endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{owner}/{name}/analysis", h.analyze)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /repos/{owner}/{name}/analysis Repos repoAnalyze
// @Summary Analyze a single repository
// @Tags Repos
// @Produce json
// @Param owner path string true "Repository owner"
// @Param name path string true "Repository name"
// @Success 200 {object} domain.Analysis "ok"
// @Router /repos/{owner}/{name}/analysis [get]
func (h *handlers) analyze(r *stdhttp.Request) (any, error) {
	owner := httpkit.Param(r, "owner")
	name := httpkit.Param(r, "name")
	if !httpkit.ValidForgeName(owner) || !httpkit.ValidForgeName(name) {
		return nil, perr.InvalidArgf("invalid repository %q/%q", owner, name)
	}
	return h.svc.Analyze(r.Context(), owner, name)
}
