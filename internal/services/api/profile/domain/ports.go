package domain

import (
	"context"

	"gitgauge/internal/core/score"
)

// ServicePort is consumed by handlers and other modules. Snapshot exists
// for siblings that need the collected metadata without the full report
type ServicePort interface {
	Analyze(ctx context.Context, username string) (Analysis, error)
	Snapshot(ctx context.Context, username string) ([]score.RepoMetadata, error)
}
