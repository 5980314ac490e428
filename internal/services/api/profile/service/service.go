// Package service contains profile analysis workflows
package service

import (
	"context"
	stderrs "errors"
	"time"

	"gitgauge/internal/adapters/forge"
	"gitgauge/internal/core/score"
	"gitgauge/internal/platform/logger"
	"gitgauge/internal/services/api/profile/domain"
)

// Service defines the profile service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the profile service
type Svc struct {
	forge forge.Client
	log   logger.Logger
	now   func() time.Time
}

// New constructs a profile service
func New(fc forge.Client) *Svc {
	if fc == nil {
		panic("profile.Service requires a non nil forge client")
	}
	return &Svc{forge: fc, log: *logger.Named("profile"), now: time.Now}
}

// Analyze fetches the user's profile and repositories, grades every
// repository, and rolls the grades up into one portfolio report
func (s *Svc) Analyze(ctx context.Context, username string) (domain.Analysis, error) {
	prof, err := s.forge.Profile(ctx, username)
	if err != nil {
		return domain.Analysis{}, err
	}
	metas, err := s.Snapshot(ctx, username)
	if err != nil {
		return domain.Analysis{}, err
	}

	return domain.Analysis{
		Profile: domain.Summary{
			Login:       prof.Login,
			Name:        prof.Name,
			AvatarURL:   prof.AvatarURL,
			HTMLURL:     prof.HTMLURL,
			Bio:         prof.Bio,
			PublicRepos: prof.PublicRepos,
			Followers:   prof.Followers,
		},
		Portfolio: score.ScorePortfolio(prof.Login, metas, s.now()),
	}, nil
}

// Snapshot lists the user's repositories and pulls the optional per-repo
// extras. A missing README or a failed language fetch never sinks the
// analysis; the repository is scored with whatever metadata survived.
// Only context cancellation aborts the loop
func (s *Svc) Snapshot(ctx context.Context, username string) ([]score.RepoMetadata, error) {
	repos, err := s.forge.Repositories(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.collect(ctx, repos)
}

func (s *Svc) collect(ctx context.Context, repos []forge.Repository) ([]score.RepoMetadata, error) {
	metas := make([]score.RepoMetadata, 0, len(repos))
	for _, r := range repos {
		if err := ctx.Err(); err != nil {
			return nil, err
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

		body, err := s.forge.Readme(ctx, r.Owner, r.Name)
		switch {
		case err == nil:
			m.Readme = body
			m.HasReadme = true
		case stderrs.Is(err, forge.ErrNoReadme):
			// scored as tier none
		default:
			s.log.Warn().Err(err).Str("repo", r.Name).Msg("readme fetch failed")
		}

		langs, err := s.forge.Languages(ctx, r.Owner, r.Name)
		if err != nil {
			s.log.Warn().Err(err).Str("repo", r.Name).Msg("languages fetch failed")
		} else {
			m.Languages = langs
		}

		metas = append(metas, m)
	}
	return metas, nil
}
