// Package domain holds DTOs for readme and portfolio enhancement
package domain

import "gitgauge/internal/core/score"

// ReadmeInput asks for an improved README document
type ReadmeInput struct {
	RepoName      string `json:"repo_name" validate:"required,forge_name" example:"widget"`
	CurrentReadme string `json:"current_readme" example:"# widget"`
}

// ReadmeOutput carries the improved document and what was synthesized
type ReadmeOutput struct {
	Content      string   `json:"content"`
	Improvements []string `json:"improvements" example:"Added Usage section"`
}

// PortfolioInput asks for an enhancement plan over a user's portfolio
type PortfolioInput struct {
	Username string `json:"username" validate:"required,forge_name" example:"octocat"`
}

// PortfolioPlan is the wire shape for a portfolio enhancement plan.
// PriorityActions repeats the top portfolio recommendations so a client
// can render a short call-to-action list without walking the horizons
type PortfolioPlan struct {
	score.EnhancementPlan
	PriorityActions []string `json:"priority_actions"`
}
