package module

import (
	"context"

	"gitgauge/internal/services/api/repos/domain"
	repossvc "gitgauge/internal/services/api/repos/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptReposPort struct{ svc repossvc.Service }

// Analyze grades a single repository
func (a adaptReposPort) Analyze(ctx context.Context, owner, name string) (domain.Analysis, error) {
	return a.svc.Analyze(ctx, owner, name)
}
