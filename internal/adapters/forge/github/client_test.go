package github

import (
	"context"
	"encoding/base64"
	stderrs "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gitgauge/internal/adapters/forge"
	perr "gitgauge/internal/platform/errors"
)

func testClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.gh.BaseURL.String(); got != "https://api.github.com/" {
		t.Fatalf("default base url = %q", got)
	}

	c, err = New(Options{BaseURL: "http://127.0.0.1:9"})
	if err != nil {
		t.Fatalf("New with base url: %v", err)
	}
	if got := c.gh.BaseURL.String(); !strings.HasSuffix(got, "/") {
		t.Fatalf("base url missing trailing slash: %q", got)
	}

	if _, err = New(Options{BaseURL: "://nope"}); err == nil {
		t.Fatal("expected error for malformed base url")
	}
}

func TestProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"login": "octocat",
			"name": "The Octocat",
			"avatar_url": "https://avatars.example/u/1",
			"html_url": "https://github.com/octocat",
			"bio": "likes tentacles",
			"public_repos": 8,
			"followers": 100
		}`)
	})
	c := testClient(t, mux)

	p, err := c.Profile(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.Login != "octocat" || p.Name != "The Octocat" || p.Bio != "likes tentacles" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.PublicRepos != 8 || p.Followers != 100 {
		t.Fatalf("unexpected counts: %+v", p)
	}
}

func TestProfile_NotFound(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	}))

	_, err := c.Profile(context.Background(), "ghost")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not-found code, got %v", err)
	}
	if !strings.Contains(err.Error(), "user or repository not found") {
		t.Fatalf("expected canonical message, got %q", err.Error())
	}
}

func repoJSON(name string, fork bool) string {
	return fmt.Sprintf(`{
		"name": %q,
		"owner": {"login": "octocat"},
		"description": "about %s",
		"stargazers_count": 3,
		"forks_count": 1,
		"open_issues_count": 2,
		"has_issues": true,
		"fork": %t,
		"pushed_at": "2026-01-02T15:04:05Z",
		"html_url": "https://github.com/octocat/%s"
	}`, name, name, fork, name)
}

func TestRepositories_SkipsForksAndCaps(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("sort") != "updated" || q.Get("per_page") != "100" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		var items []string
		for i := range 25 {
			items = append(items, repoJSON(fmt.Sprintf("repo-%02d", i), i%5 == 4))
		}
		fmt.Fprint(w, "["+strings.Join(items, ",")+"]")
	})
	c := testClient(t, mux)

	repos, err := c.Repositories(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Repositories: %v", err)
	}
	if len(repos) != maxRepos {
		t.Fatalf("got %d repos, want %d", len(repos), maxRepos)
	}
	for _, r := range repos {
		if r.Fork {
			t.Fatalf("fork %q not skipped", r.Name)
		}
	}
	if repos[0].Name != "repo-00" || repos[0].Owner != "octocat" {
		t.Fatalf("unexpected first repo: %+v", repos[0])
	}
	if repos[0].PushedAt.IsZero() {
		t.Fatal("pushed_at not mapped")
	}
}

func TestRepositories_Paginates(t *testing.T) {
	mux := http.NewServeMux()
	var pagesSeen []string
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pagesSeen = append(pagesSeen, page)
		if page == "" || page == "1" {
			w.Header().Set("Link", `</users/octocat/repos?page=2&per_page=100>; rel="next"`)
			fmt.Fprint(w, "["+repoJSON("one", false)+","+repoJSON("two", false)+"]")
			return
		}
		fmt.Fprint(w, "["+repoJSON("three", false)+"]")
	})
	c := testClient(t, mux)

	repos, err := c.Repositories(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Repositories: %v", err)
	}
	if len(repos) != 3 {
		t.Fatalf("got %d repos, want 3", len(repos))
	}
	if len(pagesSeen) != 2 || pagesSeen[1] != "2" {
		t.Fatalf("pagination requests: %v", pagesSeen)
	}
	if repos[2].Name != "three" {
		t.Fatalf("page order lost: %+v", repos)
	}
}

func TestRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/widget", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, repoJSON("widget", false))
	})
	c := testClient(t, mux)

	repo, err := c.Repository(context.Background(), "octocat", "widget")
	if err != nil {
		t.Fatalf("Repository: %v", err)
	}
	if repo.Name != "widget" || !repo.HasIssues || repo.OpenIssues != 2 {
		t.Fatalf("unexpected repo: %+v", repo)
	}
}

func TestReadme(t *testing.T) {
	const body = "# widget\n\nDoes things.\n"
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/widget/readme", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"type": "file",
			"name": "README.md",
			"encoding": "base64",
			"content": %q
		}`, base64.StdEncoding.EncodeToString([]byte(body)))
	})
	c := testClient(t, mux)

	got, err := c.Readme(context.Background(), "octocat", "widget")
	if err != nil {
		t.Fatalf("Readme: %v", err)
	}
	if got != body {
		t.Fatalf("decoded readme = %q, want %q", got, body)
	}
}

func TestReadme_Missing(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	}))

	_, err := c.Readme(context.Background(), "octocat", "bare")
	if !stderrs.Is(err, forge.ErrNoReadme) {
		t.Fatalf("expected ErrNoReadme, got %v", err)
	}
}

func TestLanguages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/widget/languages", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Go": 12345, "Makefile": 20}`)
	})
	c := testClient(t, mux)

	langs, err := c.Languages(context.Background(), "octocat", "widget")
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if langs["Go"] != 12345 || langs["Makefile"] != 20 {
		t.Fatalf("unexpected languages: %v", langs)
	}
}

func TestRecentCommits(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/widget/commits", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"sha": "aaa111", "commit": {"message": "init", "author": {"name": "Ada", "date": "2026-01-02T15:04:05Z"}}},
			{"sha": "bbb222", "commit": {"message": "fix build", "author": {"name": "Grace", "date": "2026-01-03T10:00:00Z"}}},
			{"sha": "ccc333", "commit": {"message": "docs", "author": {"name": "Ada", "date": "2026-01-04T09:30:00Z"}}}
		]`)
	})
	c := testClient(t, mux)

	commits, err := c.RecentCommits(context.Background(), "octocat", "widget", 10)
	if err != nil {
		t.Fatalf("RecentCommits: %v", err)
	}
	if len(commits) != 3 {
		t.Fatalf("got %d commits, want 3", len(commits))
	}
	want := forge.Commit{
		SHA:     "aaa111",
		Message: "init",
		Author:  "Ada",
		Date:    time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	if commits[0].SHA != want.SHA || commits[0].Message != want.Message ||
		commits[0].Author != want.Author || !commits[0].Date.Equal(want.Date) {
		t.Fatalf("commit mapping: got %+v want %+v", commits[0], want)
	}

	// the client enforces the cap even when the server over-delivers
	commits, err = c.RecentCommits(context.Background(), "octocat", "widget", 2)
	if err != nil {
		t.Fatalf("RecentCommits limited: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("got %d commits, want 2", len(commits))
	}
}

func TestRecentCommits_EmptyRepo(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message": "Git Repository is empty."}`)
	}))

	commits, err := c.RecentCommits(context.Background(), "octocat", "empty", 10)
	if err != nil {
		t.Fatalf("expected empty list for 409, got %v", err)
	}
	if len(commits) != 0 {
		t.Fatalf("got %d commits, want 0", len(commits))
	}
}

func TestPing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rate_limit", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"resources": {"core": {"limit": 5000, "remaining": 4999, "reset": 1767351845}}}`)
	})
	c := testClient(t, mux)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	down := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"message": "down"}`)
	}))
	if err := down.Ping(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable code, got %v", err)
	}
}

func TestRateLimited(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "1767351845")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message": "API rate limit exceeded"}`)
	}))

	_, err := c.Profile(context.Background(), "octocat")
	if !perr.IsRateLimited(err) {
		t.Fatalf("expected rate-limited code, got %v", err)
	}
	if !strings.Contains(err.Error(), "provide an API token") {
		t.Fatalf("expected actionable message, got %q", err.Error())
	}
}

func TestAuthHeader(t *testing.T) {
	var auth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"login": "octocat"}`)
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Options{BaseURL: srv.URL, Token: "sekret"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Profile(context.Background(), "octocat"); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if auth != "Bearer sekret" {
		t.Fatalf("auth header = %q", auth)
	}

	anon, err := New(Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New anonymous: %v", err)
	}
	if _, err := anon.Profile(context.Background(), "octocat"); err != nil {
		t.Fatalf("Profile anonymous: %v", err)
	}
	if auth != "" {
		t.Fatalf("anonymous request carried auth header %q", auth)
	}
}
