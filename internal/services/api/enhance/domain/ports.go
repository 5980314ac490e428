package domain

import (
	"context"

	"gitgauge/internal/core/score"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Readme(ctx context.Context, in ReadmeInput) (ReadmeOutput, error)
	Portfolio(ctx context.Context, in PortfolioInput) (PortfolioPlan, error)
}

// Collector supplies the scored repository snapshot Portfolio plans from.
// The profile module exposes it through its ports, so enhancement never
// duplicates the fetch-and-tolerate collection loop
type Collector interface {
	Snapshot(ctx context.Context, username string) ([]score.RepoMetadata, error)
}
