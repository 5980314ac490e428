// Package domain holds DTOs for single-repository analysis
package domain

import (
	"time"

	"gitgauge/internal/core/readme"
	"gitgauge/internal/core/score"
)

// Commit is one rendered commit from the default branch
type Commit struct {
	SHA     string    `json:"sha" example:"d6cd1e2bd19e03a81132a23b2025920577f84e37"`
	Message string    `json:"message" example:"fix flaky readiness probe"`
	Author  string    `json:"author" example:"Ada Lovelace"`
	Date    time.Time `json:"date"`
}

// Analysis is the full single-repository report: metadata, the weighted
// health grade, the README breakdown, and a slice of recent history
type Analysis struct {
	Name          string             `json:"name" example:"widget"`
	Owner         string             `json:"owner" example:"octocat"`
	Description   string             `json:"description,omitempty" example:"makes widgets"`
	URL           string             `json:"url" example:"https://github.com/octocat/widget"`
	Stars         int                `json:"stars" example:"120"`
	Forks         int                `json:"forks" example:"14"`
	OpenIssues    int                `json:"open_issues" example:"3"`
	PushedAt      time.Time          `json:"pushed_at"`
	Languages     map[string]int64   `json:"languages"`
	Health        score.HealthReport `json:"health"`
	Readme        readme.Analysis    `json:"readme"`
	RecentCommits []Commit           `json:"recent_commits"`
}
