// Package forgetest provides a configurable in-memory forge.Client for
// service tests. Only the hooks a test wires are consulted; nil hooks
// return quiet defaults so fixtures stay small
package forgetest

import (
	"context"

	"gitgauge/internal/adapters/forge"
)

// Fake implements forge.Client with per-method hooks
type Fake struct {
	ProfileFn       func(ctx context.Context, username string) (forge.Profile, error)
	RepositoriesFn  func(ctx context.Context, username string) ([]forge.Repository, error)
	RepositoryFn    func(ctx context.Context, owner, name string) (forge.Repository, error)
	ReadmeFn        func(ctx context.Context, owner, name string) (string, error)
	LanguagesFn     func(ctx context.Context, owner, name string) (map[string]int64, error)
	RecentCommitsFn func(ctx context.Context, owner, name string, limit int) ([]forge.Commit, error)
	PingFn          func(ctx context.Context) error
}

var _ forge.Client = (*Fake)(nil)

// Profile defaults to a bare profile echoing the username
func (f *Fake) Profile(ctx context.Context, username string) (forge.Profile, error) {
	if f.ProfileFn == nil {
		return forge.Profile{Login: username}, nil
	}
	return f.ProfileFn(ctx, username)
}

// Repositories defaults to no repositories
func (f *Fake) Repositories(ctx context.Context, username string) ([]forge.Repository, error) {
	if f.RepositoriesFn == nil {
		return nil, nil
	}
	return f.RepositoriesFn(ctx, username)
}

// Repository defaults to a bare repository echoing owner and name
func (f *Fake) Repository(ctx context.Context, owner, name string) (forge.Repository, error) {
	if f.RepositoryFn == nil {
		return forge.Repository{Name: name, Owner: owner}, nil
	}
	return f.RepositoryFn(ctx, owner, name)
}

// Readme defaults to the no-readme state
func (f *Fake) Readme(ctx context.Context, owner, name string) (string, error) {
	if f.ReadmeFn == nil {
		return "", forge.ErrNoReadme
	}
	return f.ReadmeFn(ctx, owner, name)
}

// Languages defaults to no language data
func (f *Fake) Languages(ctx context.Context, owner, name string) (map[string]int64, error) {
	if f.LanguagesFn == nil {
		return map[string]int64{}, nil
	}
	return f.LanguagesFn(ctx, owner, name)
}

// RecentCommits defaults to an empty history
func (f *Fake) RecentCommits(ctx context.Context, owner, name string, limit int) ([]forge.Commit, error) {
	if f.RecentCommitsFn == nil {
		return nil, nil
	}
	return f.RecentCommitsFn(ctx, owner, name, limit)
}

// Ping defaults to healthy
func (f *Fake) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		return nil
	}
	return f.PingFn(ctx)
}
