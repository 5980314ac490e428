// Package service contains enhancement workflows: README synthesis and
// portfolio improvement planning
package service

import (
	"context"
	"time"

	"gitgauge/internal/core/readme"
	"gitgauge/internal/core/score"
	"gitgauge/internal/services/api/enhance/domain"
)

// maxPriorityActions caps the call-to-action list on a portfolio plan
const maxPriorityActions = 3

// Service defines the enhance service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the enhance service
type Svc struct {
	collector domain.Collector
	now       func() time.Time
}

// New constructs an enhance service around the profile module's collector
func New(c domain.Collector) *Svc {
	if c == nil {
		panic("enhance.Service requires a non nil collector")
	}
	return &Svc{collector: c, now: time.Now}
}

// Readme fills the canonical sections missing from the submitted document.
// No upstream calls are made; the caller supplies the current content
func (s *Svc) Readme(_ context.Context, in domain.ReadmeInput) (domain.ReadmeOutput, error) {
	out := readme.Enhance(in.RepoName, in.CurrentReadme)
	return domain.ReadmeOutput{Content: out.Content, Improvements: out.Improvements}, nil
}

// Portfolio grades the user's repositories and simulates how far fixing
// every weak factor would lift the overall score
func (s *Svc) Portfolio(ctx context.Context, in domain.PortfolioInput) (domain.PortfolioPlan, error) {
	metas, err := s.collector.Snapshot(ctx, in.Username)
	if err != nil {
		return domain.PortfolioPlan{}, err
	}

	now := s.now()
	report := score.ScorePortfolio(in.Username, metas, now)
	plan := score.PlanEnhancements(report, metas, now)

	actions := report.Recommendations
	if len(actions) > maxPriorityActions {
		actions = actions[:maxPriorityActions]
	}
	return domain.PortfolioPlan{EnhancementPlan: plan, PriorityActions: actions}, nil
}
