// Package service contains single-repository analysis workflows
package service

import (
	"context"
	stderrs "errors"
	"time"

	"gitgauge/internal/adapters/forge"
	"gitgauge/internal/core/readme"
	"gitgauge/internal/core/score"
	"gitgauge/internal/platform/logger"
	"gitgauge/internal/services/api/repos/domain"
)

// maxRecentCommits bounds the history slice in a repo analysis
const maxRecentCommits = 10

// Service defines the repos service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the repos service
type Svc struct {
	forge forge.Client
	log   logger.Logger
	now   func() time.Time
}

// New constructs a repos service
func New(fc forge.Client) *Svc {
	if fc == nil {
		panic("repos.Service requires a non nil forge client")
	}
	return &Svc{forge: fc, log: *logger.Named("repos"), now: time.Now}
}

// Analyze fetches one repository and grades it. The repository itself must
// exist; README, languages, and commit history are optional extras that
// degrade to documented defaults when the fetch fails
func (s *Svc) Analyze(ctx context.Context, owner, name string) (domain.Analysis, error) {
	r, err := s.forge.Repository(ctx, owner, name)
	if err != nil {
		return domain.Analysis{}, err
	}

	m := score.RepoMetadata{
		Name:        r.Name,
		Description: r.Description,
		URL:         r.HTMLURL,
		Stars:       r.Stars,
		Forks:       r.Forks,
		OpenIssues:  r.OpenIssues,
		HasIssues:   r.HasIssues,
		PushedAt:    r.PushedAt,
	}

	body, err := s.forge.Readme(ctx, owner, name)
	switch {
	case err == nil:
		m.Readme = body
		m.HasReadme = true
	case stderrs.Is(err, forge.ErrNoReadme):
		// graded as tier none
	default:
		s.log.Warn().Err(err).Str("repo", name).Msg("readme fetch failed")
	}

	langs, err := s.forge.Languages(ctx, owner, name)
	if err != nil {
		s.log.Warn().Err(err).Str("repo", name).Msg("languages fetch failed")
		langs = map[string]int64{}
	}
	m.Languages = langs

	commits, err := s.forge.RecentCommits(ctx, owner, name, maxRecentCommits)
	if err != nil {
		s.log.Warn().Err(err).Str("repo", name).Msg("commits fetch failed")
		commits = nil
	}

	out := domain.Analysis{
		Name:          r.Name,
		Owner:         r.Owner,
		Description:   r.Description,
		URL:           r.HTMLURL,
		Stars:         r.Stars,
		Forks:         r.Forks,
		OpenIssues:    r.OpenIssues,
		PushedAt:      r.PushedAt,
		Languages:     langs,
		Health:        score.ScoreRepo(m, s.now()),
		Readme:        readme.Analyze(m.Readme),
		RecentCommits: make([]domain.Commit, 0, len(commits)),
	}
	for _, c := range commits {
		out.RecentCommits = append(out.RecentCommits, domain.Commit{
			SHA:     c.SHA,
			Message: c.Message,
			Author:  c.Author,
			Date:    c.Date,
		})
	}
	return out, nil
}
