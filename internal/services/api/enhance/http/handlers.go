// Package http provides http transport for enhancement workflows
package http

import (
	stdhttp "net/http"

	"gitgauge/internal/modkit/httpkit"
	"gitgauge/internal/services/api/enhance/domain"
	svc "gitgauge/internal/services/api/enhance/service"
)

// Register mounts enhance endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// README synthesis from submitted content
	httpkit.PostJSON[domain.ReadmeInput](r, "/readme", h.readme)

	// portfolio improvement plan
	httpkit.PostJSON[domain.PortfolioInput](r, "/portfolio", h.portfolio)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /enhance/readme Enhance enhanceReadme
// @Summary Generate an improved README
// @Tags Enhance
// @Accept json
// @Produce json
// @Param payload body domain.ReadmeInput true "Repository name and current README"
// @Success 200 {object} domain.ReadmeOutput "ok"
// @Router /enhance/readme [post]
func (h *handlers) readme(r *stdhttp.Request, in domain.ReadmeInput) (any, error) {
	return h.svc.Readme(r.Context(), in)
}

// swagger:route POST /enhance/portfolio Enhance enhancePortfolio
// @Summary Plan portfolio improvements
// @Tags Enhance
// @Accept json
// @Produce json
// @Param payload body domain.PortfolioInput true "Target username"
// @Success 200 {object} domain.PortfolioPlan "ok"
// @Router /enhance/portfolio [post]
func (h *handlers) portfolio(r *stdhttp.Request, in domain.PortfolioInput) (any, error) {
	return h.svc.Portfolio(r.Context(), in)
}
