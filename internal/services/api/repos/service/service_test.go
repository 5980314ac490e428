package service

import (
	"context"
	"testing"
	"time"

	"gitgauge/internal/adapters/forge"
	"gitgauge/internal/adapters/forge/forgetest"
	perr "gitgauge/internal/platform/errors"
)

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func testRepo() forge.Repository {
	return forge.Repository{
		Name:        "widget",
		Owner:       "octocat",
		Description: "makes widgets",
		Stars:       120,
		Forks:       14,
		OpenIssues:  3,
		HasIssues:   true,
		PushedAt:    testNow.Add(-24 * time.Hour),
		HTMLURL:     "https://github.com/octocat/widget",
	}
}

func TestAnalyze(t *testing.T) {
	fake := &forgetest.Fake{
		RepositoryFn: func(_ context.Context, _, _ string) (forge.Repository, error) {
			return testRepo(), nil
		},
		ReadmeFn: func(_ context.Context, _, _ string) (string, error) {
			return "# widget\n\n## Usage\n\nRun it.\n", nil
		},
		LanguagesFn: func(_ context.Context, _, _ string) (map[string]int64, error) {
			return map[string]int64{"Go": 9000}, nil
		},
		RecentCommitsFn: func(_ context.Context, _, _ string, limit int) ([]forge.Commit, error) {
			if limit != maxRecentCommits {
				t.Errorf("commit limit = %d, want %d", limit, maxRecentCommits)
			}
			return []forge.Commit{
				{SHA: "aaa111", Message: "init", Author: "Ada", Date: testNow.Add(-48 * time.Hour)},
				{SHA: "bbb222", Message: "fix build", Author: "Grace", Date: testNow.Add(-24 * time.Hour)},
			}, nil
		},
	}

	s := New(fake)
	s.now = func() time.Time { return testNow }

	out, err := s.Analyze(context.Background(), "octocat", "widget")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if out.Name != "widget" || out.Owner != "octocat" || out.Stars != 120 {
		t.Fatalf("metadata: %+v", out)
	}
	if out.Health.Score <= 0 {
		t.Fatalf("health score = %d, want positive", out.Health.Score)
	}
	if !out.Readme.Present || out.Readme.WordCount == 0 {
		t.Fatalf("readme analysis: %+v", out.Readme)
	}
	if len(out.RecentCommits) != 2 || out.RecentCommits[0].SHA != "aaa111" {
		t.Fatalf("commits: %+v", out.RecentCommits)
	}
	if out.Languages["Go"] != 9000 {
		t.Fatalf("languages: %v", out.Languages)
	}
}

func TestAnalyze_RepoErrorPropagates(t *testing.T) {
	fake := &forgetest.Fake{
		RepositoryFn: func(_ context.Context, _, _ string) (forge.Repository, error) {
			return forge.Repository{}, perr.Newf(perr.ErrorCodeNotFound, "user or repository not found")
		},
	}
	s := New(fake)

	_, err := s.Analyze(context.Background(), "octocat", "ghost")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestAnalyze_OptionalFetchesDegrade(t *testing.T) {
	fake := &forgetest.Fake{
		RepositoryFn: func(_ context.Context, _, _ string) (forge.Repository, error) {
			return testRepo(), nil
		},
		LanguagesFn: func(_ context.Context, _, _ string) (map[string]int64, error) {
			return nil, perr.Newf(perr.ErrorCodeUnavailable, "flaky upstream")
		},
		RecentCommitsFn: func(_ context.Context, _, _ string, _ int) ([]forge.Commit, error) {
			return nil, perr.Newf(perr.ErrorCodeUnavailable, "flaky upstream")
		},
	}
	s := New(fake)
	s.now = func() time.Time { return testNow }

	out, err := s.Analyze(context.Background(), "octocat", "widget")
	if err != nil {
		t.Fatalf("Analyze should tolerate optional fetch failures: %v", err)
	}
	if out.Readme.Present {
		t.Fatalf("readme should be absent, got %+v", out.Readme)
	}
	if len(out.Languages) != 0 || len(out.RecentCommits) != 0 {
		t.Fatalf("expected empty extras, got langs=%v commits=%v", out.Languages, out.RecentCommits)
	}
	if out.Health.Score <= 0 {
		t.Fatalf("repo with stars and recent push should still score, got %d", out.Health.Score)
	}
}
