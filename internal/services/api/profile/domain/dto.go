// Package domain holds DTOs for profile http and service contracts
package domain

import "gitgauge/internal/core/score"

// Summary is the rendered slice of the upstream user document
type Summary struct {
	Login       string `json:"login" example:"octocat"`
	Name        string `json:"name,omitempty" example:"The Octocat"`
	AvatarURL   string `json:"avatar_url,omitempty" example:"https://avatars.githubusercontent.com/u/583231"`
	HTMLURL     string `json:"html_url,omitempty" example:"https://github.com/octocat"`
	Bio         string `json:"bio,omitempty" example:"Building things"`
	PublicRepos int    `json:"public_repos" example:"8"`
	Followers   int    `json:"followers" example:"100"`
}

// Analysis is the full profile report: who the user is plus how their
// public portfolio grades
type Analysis struct {
	Profile   Summary               `json:"profile"`
	Portfolio score.PortfolioReport `json:"portfolio"`
}
