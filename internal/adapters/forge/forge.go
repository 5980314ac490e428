// Package forge defines the client port for the code-hosting platform and
// the minimal upstream shapes the services consume. The GitHub adapter in
// the github subpackage is the production implementation; tests fake this
// interface directly
package forge

import (
	"context"
	"errors"
	"time"
)

// ErrNoReadme reports that a repository exists but carries no README file.
// Callers treat it as a documented default (tier none), never a failure
var ErrNoReadme = errors.New("forge: repository has no readme")

// Client is the outbound port to the code-hosting platform
type Client interface {
	// Profile fetches the public profile for a username
	Profile(ctx context.Context, username string) (Profile, error)
	// Repositories lists the user's public non-fork repositories,
	// newest activity first, capped at the adapter's listing limit
	Repositories(ctx context.Context, username string) ([]Repository, error)
	// Repository fetches a single repository by owner and name
	Repository(ctx context.Context, owner, name string) (Repository, error)
	// Readme returns the decoded README content, or ("", ErrNoReadme)
	// when the repository has none
	Readme(ctx context.Context, owner, name string) (string, error)
	// Languages returns the byte breakdown per language, empty when none
	Languages(ctx context.Context, owner, name string) (map[string]int64, error)
	// RecentCommits returns up to limit commits from the default branch
	RecentCommits(ctx context.Context, owner, name string, limit int) ([]Commit, error)
	// Ping verifies upstream reachability for readiness probes
	Ping(ctx context.Context) error
}

// Profile is a partial platform user document with the fields we render
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

// Repository is a partial platform repository document with the fields
// the scorer and the API render
type Repository struct {
	Name        string    `json:"name"`
	Owner       string    `json:"owner"`
	Description string    `json:"description"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	OpenIssues  int       `json:"open_issues"`
	HasIssues   bool      `json:"has_issues"`
	Fork        bool      `json:"fork"`
	PushedAt    time.Time `json:"pushed_at"`
	HTMLURL     string    `json:"html_url"`
}

// Commit is a single commit rendered by the repo analysis endpoint
type Commit struct {
	SHA     string    `json:"sha"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
}
