package module

import (
	"context"

	"gitgauge/internal/services/api/enhance/domain"
	enhancesvc "gitgauge/internal/services/api/enhance/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptEnhancePort struct{ svc enhancesvc.Service }

// Readme fills the canonical sections missing from the submitted document
func (a adaptEnhancePort) Readme(ctx context.Context, in domain.ReadmeInput) (domain.ReadmeOutput, error) {
	return a.svc.Readme(ctx, in)
}

// Portfolio grades a user's repositories and plans improvements
func (a adaptEnhancePort) Portfolio(ctx context.Context, in domain.PortfolioInput) (domain.PortfolioPlan, error) {
	return a.svc.Portfolio(ctx, in)
}
