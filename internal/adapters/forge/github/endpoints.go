package github

import (
	"context"
	"net/http"

	"gitgauge/internal/adapters/forge"
	perr "gitgauge/internal/platform/errors"

	gh "github.com/google/go-github/v62/github"
)

// Profile performs GET /users/{username}
func (c *Client) Profile(ctx context.Context, username string) (forge.Profile, error) {
	u, _, err := c.gh.Users.Get(ctx, username)
	if err != nil {
		return forge.Profile{}, c.mapErr(err, "github get user")
	}
	return forge.Profile{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		AvatarURL:   u.GetAvatarURL(),
		HTMLURL:     u.GetHTMLURL(),
		Bio:         u.GetBio(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
	}, nil
}

// Repositories lists the user's public repositories newest activity first,
// skipping forks, capped at maxRepos across pages
func (c *Client) Repositories(ctx context.Context, username string) ([]forge.Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: pageSize},
	}
	out := make([]forge.Repository, 0, maxRepos)
	for {
		page, resp, err := c.gh.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			return nil, c.mapErr(err, "github list repositories")
		}
		for _, r := range page {
			if r.GetFork() {
				continue
			}
			out = append(out, toRepository(r))
			if len(out) == maxRepos {
				c.log.Debug().Str("user", username).Int("repos", len(out)).Msg("github listing cap reached")
				return out, nil
			}
		}
		if resp.NextPage == 0 {
			c.log.Debug().Str("user", username).Int("repos", len(out)).Msg("github repositories listed")
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

// Repository performs GET /repos/{owner}/{name}
func (c *Client) Repository(ctx context.Context, owner, name string) (forge.Repository, error) {
	r, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return forge.Repository{}, c.mapErr(err, "github get repository")
	}
	return toRepository(r), nil
}

// Readme returns the decoded README content or ("", forge.ErrNoReadme)
// when the repository has none. Base64 transport encoding is handled by
// the library
func (c *Client) Readme(ctx context.Context, owner, name string) (string, error) {
	rm, _, err := c.gh.Repositories.GetReadme(ctx, owner, name, nil)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return "", forge.ErrNoReadme
		}
		return "", c.mapErr(err, "github get readme")
	}
	content, err := rm.GetContent()
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUpstream, "github decode readme")
	}
	return content, nil
}

// Languages performs GET /repos/{owner}/{name}/languages, empty map when none
func (c *Client) Languages(ctx context.Context, owner, name string) (map[string]int64, error) {
	langs, _, err := c.gh.Repositories.ListLanguages(ctx, owner, name)
	if err != nil {
		return nil, c.mapErr(err, "github list languages")
	}
	out := make(map[string]int64, len(langs))
	for lang, size := range langs {
		out[lang] = int64(size)
	}
	return out, nil
}

// RecentCommits returns up to limit commits from the default branch.
// A repository with no commits yet answers 409, which reads as empty
func (c *Client) RecentCommits(ctx context.Context, owner, name string, limit int) ([]forge.Commit, error) {
	if limit <= 0 || limit > maxCommits {
		limit = maxCommits
	}
	list, _, err := c.gh.Repositories.ListCommits(ctx, owner, name, &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{PerPage: limit},
	})
	if err != nil {
		if statusOf(err) == http.StatusConflict {
			return nil, nil
		}
		return nil, c.mapErr(err, "github list commits")
	}
	out := make([]forge.Commit, 0, min(limit, len(list)))
	for _, rc := range list {
		if len(out) == limit {
			break
		}
		out = append(out, forge.Commit{
			SHA:     rc.GetSHA(),
			Message: rc.GetCommit().GetMessage(),
			Author:  rc.GetCommit().GetAuthor().GetName(),
			Date:    rc.GetCommit().GetAuthor().GetDate().Time,
		})
	}
	return out, nil
}

// Ping performs GET /rate_limit, which is free and does not touch the quota
func (c *Client) Ping(ctx context.Context) error {
	_, _, err := c.gh.RateLimit.Get(ctx)
	return c.mapErr(err, "github rate limit probe")
}

func toRepository(r *gh.Repository) forge.Repository {
	return forge.Repository{
		Name:        r.GetName(),
		Owner:       r.GetOwner().GetLogin(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		OpenIssues:  r.GetOpenIssuesCount(),
		HasIssues:   r.GetHasIssues(),
		Fork:        r.GetFork(),
		PushedAt:    r.GetPushedAt().Time,
		HTMLURL:     r.GetHTMLURL(),
	}
}
