package module

import (
	"context"

	"gitgauge/internal/core/score"
	"gitgauge/internal/services/api/profile/domain"
	profilesvc "gitgauge/internal/services/api/profile/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptProfilePort struct{ svc profilesvc.Service }

// Analyze grades a user's public portfolio
func (a adaptProfilePort) Analyze(ctx context.Context, username string) (domain.Analysis, error) {
	return a.svc.Analyze(ctx, username)
}

// Snapshot exposes the collected repository metadata to sibling modules
func (a adaptProfilePort) Snapshot(ctx context.Context, username string) ([]score.RepoMetadata, error) {
	return a.svc.Snapshot(ctx, username)
}
