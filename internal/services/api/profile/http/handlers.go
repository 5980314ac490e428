// Package http provides http transport for profile analysis
package http

import (
	stdhttp "net/http"

	"gitgauge/internal/modkit/httpkit"
	perr "gitgauge/internal/platform/errors"
	svc "gitgauge/internal/services/api/profile/service"
)

// Register mounts profile endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{username}/analysis", h.analyze)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /profiles/{username}/analysis Profiles profileAnalyze
// @Summary Analyze a user's public portfolio
// @Tags Profiles
// @Produce json
// @Param username path string true "Platform username"
// @Success 200 {object} domain.Analysis "ok"
// @Router /profiles/{username}/analysis [get]
func (h *handlers) analyze(r *stdhttp.Request) (any, error) {
	username := httpkit.Param(r, "username")
	if !httpkit.ValidForgeName(username) {
		return nil, perr.InvalidArgf("invalid username %q", username)
	}
	return h.svc.Analyze(r.Context(), username)
}
