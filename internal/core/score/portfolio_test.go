package score

import (
	"fmt"
	"strings"
	"testing"
)

// strongRepo builds a repository that scores comfortably above 80
func strongRepo(i int) RepoMetadata {
	langs := []string{"Go", "Rust", "Python"}
	return RepoMetadata{
		Name:        fmt.Sprintf("repo-%d", i),
		Description: "does a thing well",
		Stars:       10,
		Forks:       2,
		HasIssues:   true,
		PushedAt:    testNow.AddDate(0, 0, -5),
		Readme:      excellentReadme,
		HasReadme:   true,
		Languages:   map[string]int64{langs[i%3]: 1000},
	}
}

func TestScorePortfolio_StrongProfile(t *testing.T) {
	repos := make([]RepoMetadata, 10)
	for i := range repos {
		repos[i] = strongRepo(i)
	}

	p := ScorePortfolio("octocat", repos, testNow)

	for _, rr := range p.Repos {
		if rr.Health.Score < 80 {
			t.Fatalf("fixture repo %s should score >= 80, got %d", rr.Name, rr.Health.Score)
		}
	}
	if p.Overall < 80 {
		t.Fatalf("expected overall >= 80, got %d", p.Overall)
	}
	if len(p.Strengths) == 0 {
		t.Fatalf("expected strengths for a strong profile")
	}
	if len(p.Weaknesses) != 0 {
		t.Fatalf("expected no weaknesses, got %v", p.Weaknesses)
	}
	if p.RepoCount != 10 || p.TotalStars != 100 || p.TotalForks != 20 {
		t.Fatalf("bad totals: %+v", p)
	}
	if p.ReadmeCoverage != 1.0 {
		t.Fatalf("expected full coverage, got %v", p.ReadmeCoverage)
	}
	if len(p.Languages) != 3 {
		t.Fatalf("expected 3 distinct languages, got %v", p.Languages)
	}
}

func TestScorePortfolio_EmptyProfile(t *testing.T) {
	p := ScorePortfolio("newbie", nil, testNow)

	if p.Overall != 0 || p.RepoCount != 0 {
		t.Fatalf("empty profile should score zero: %+v", p)
	}
	if len(p.Recommendations) != 1 || !strings.Contains(p.Recommendations[0], "first public repository") {
		t.Fatalf("expected a single bootstrap recommendation, got %v", p.Recommendations)
	}
	if len(p.Repos) != 0 || len(p.Strengths) != 0 || len(p.Weaknesses) != 0 {
		t.Fatalf("empty profile should carry no reports: %+v", p)
	}
}

func TestScorePortfolio_WeakProfile(t *testing.T) {
	repos := []RepoMetadata{
		{Name: "a", PushedAt: testNow.AddDate(-1, 0, 0)},
		{Name: "b", PushedAt: testNow.AddDate(-2, 0, 0)},
		{Name: "c", PushedAt: testNow.AddDate(-3, 0, 0)},
	}
	p := ScorePortfolio("ghost", repos, testNow)

	if p.Overall >= 40 {
		t.Fatalf("expected low overall, got %d", p.Overall)
	}
	if len(p.Weaknesses) == 0 {
		t.Fatalf("expected weaknesses for a weak profile")
	}
	var sawDocs, sawStale bool
	for _, w := range p.Weaknesses {
		if strings.Contains(w, "lack documentation") {
			sawDocs = true
		}
		if strings.Contains(w, "stale") {
			sawStale = true
		}
	}
	if !sawDocs || !sawStale {
		t.Fatalf("expected documentation and staleness weaknesses, got %v", p.Weaknesses)
	}
}

func TestScorePortfolio_OverallBounded(t *testing.T) {
	repos := make([]RepoMetadata, 12)
	for i := range repos {
		r := strongRepo(i)
		r.Stars = 100000
		r.Forks = 5000
		repos[i] = r
	}
	p := ScorePortfolio("famous", repos, testNow)
	if p.Overall > 100 {
		t.Fatalf("overall must clamp at 100, got %d", p.Overall)
	}
}

// Improving one repository must never lower the portfolio score
func TestScorePortfolio_MonotonicInRepoHealth(t *testing.T) {
	weak := []RepoMetadata{
		{Name: "x", PushedAt: testNow.AddDate(-1, 0, 0)},
		{Name: "y", PushedAt: testNow.AddDate(-1, 0, 0)},
	}
	before := ScorePortfolio("dev", weak, testNow)

	improved := make([]RepoMetadata, len(weak))
	copy(improved, weak)
	improved[0].Readme = excellentReadme
	improved[0].HasReadme = true
	improved[0].Description = "now documented"
	after := ScorePortfolio("dev", improved, testNow)

	if after.Overall < before.Overall {
		t.Fatalf("overall regressed from %d to %d after improving a repo", before.Overall, after.Overall)
	}
}

func TestScorePortfolio_RecommendationsDedupedAndCapped(t *testing.T) {
	repos := make([]RepoMetadata, 8)
	for i := range repos {
		repos[i] = RepoMetadata{
			Name:     fmt.Sprintf("r%d", i),
			PushedAt: testNow.AddDate(-1, 0, 0),
		}
	}
	p := ScorePortfolio("dev", repos, testNow)

	if len(p.Recommendations) > maxRecommendations {
		t.Fatalf("recommendations must cap at %d, got %d", maxRecommendations, len(p.Recommendations))
	}
	readmeRecs := 0
	for _, r := range p.Recommendations {
		if strings.Contains(r, "README") {
			readmeRecs++
		}
	}
	if readmeRecs != 1 {
		t.Fatalf("expected exactly one README recommendation, got %v", p.Recommendations)
	}
	// highest weight factor comes first
	if !strings.Contains(p.Recommendations[0], "README") {
		t.Fatalf("expected the README recommendation first, got %v", p.Recommendations)
	}
}
