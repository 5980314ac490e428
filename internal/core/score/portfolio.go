package score

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
)

// RepoReport pairs one repository with its health report
type RepoReport struct {
	Name        string       `json:"name"`
	URL         string       `json:"url"`
	Description string       `json:"description,omitempty"`
	Stars       int          `json:"stars"`
	Forks       int          `json:"forks"`
	PushedAt    time.Time    `json:"pushed_at"`
	Health      HealthReport `json:"health"`
}

// PortfolioReport grades a whole profile
type PortfolioReport struct {
	Username        string         `json:"username"`
	Overall         int            `json:"overall"`
	AverageHealth   float64        `json:"average_health"`
	ReadmeCoverage  float64        `json:"readme_coverage"`
	RepoCount       int            `json:"repo_count"`
	TotalStars      int            `json:"total_stars"`
	TotalForks      int            `json:"total_forks"`
	Languages       map[string]int `json:"languages"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []string       `json:"recommendations"`
	Repos           []RepoReport   `json:"repos"`
}

// factorOrder is the fixed weight order shared by suggestions,
// recommendations, and plan items
var factorOrder = []string{
	FactorReadme,
	FactorCommunity,
	FactorRecency,
	FactorDescription,
	FactorIssues,
}

// a repository counts as stale when it has not been pushed for half a year
const staleAfter = 180 * 24 * time.Hour

const maxRecommendations = 5

// ScorePortfolio scores every repository and rolls the results up into
// one bounded portfolio grade
func ScorePortfolio(username string, repos []RepoMetadata, now time.Time) PortfolioReport {
	p := PortfolioReport{
		Username:  username,
		Languages: map[string]int{},
	}
	if len(repos) == 0 {
		p.Recommendations = []string{
			"Create a first public repository to start building a portfolio",
		}
		return p
	}

	scores := make([]float64, 0, len(repos))
	withReadme := 0
	stale := 0
	for _, m := range repos {
		h := ScoreRepo(m, now)
		scores = append(scores, float64(h.Score))
		if m.HasReadme {
			withReadme++
		}
		if now.Sub(m.PushedAt) > staleAfter {
			stale++
		}
		p.TotalStars += m.Stars
		p.TotalForks += m.Forks
		for lang := range m.Languages {
			p.Languages[lang]++
		}
		p.Repos = append(p.Repos, RepoReport{
			Name:        m.Name,
			URL:         m.URL,
			Description: m.Description,
			Stars:       m.Stars,
			Forks:       m.Forks,
			PushedAt:    m.PushedAt,
			Health:      h,
		})
	}

	avg, err := stats.Mean(scores)
	if err != nil {
		avg = 0
	}
	coverage := float64(withReadme) / float64(len(repos))
	staleShare := float64(stale) / float64(len(repos))

	p.RepoCount = len(repos)
	p.ReadmeCoverage = coverage
	if rounded, rerr := stats.Round(avg, 1); rerr == nil {
		p.AverageHealth = rounded
	} else {
		p.AverageHealth = avg
	}
	p.Overall = overall(avg, coverage, p.TotalStars, p.RepoCount)
	p.Strengths = strengths(avg, coverage, p.TotalStars, p.RepoCount, len(p.Languages))
	p.Weaknesses = weaknesses(avg, coverage, staleShare, p.TotalStars)
	p.Recommendations = recommendations(p.Repos)

	return p
}

// overall blends average health with readme coverage, then adds
// portfolio-level bonuses. Monotonic in per-repo scores, clamped to [0,100]
func overall(avg, coverage float64, totalStars, repoCount int) int {
	base := 0.8*avg + 0.2*coverage*100
	bonus := 0
	switch {
	case totalStars >= 50:
		bonus += 5
	case totalStars >= 10:
		bonus += 3
	}
	if repoCount >= 5 {
		bonus += 3
	}
	return clamp(int(math.Round(base))+bonus, 0, 100)
}

func strengths(avg, coverage float64, totalStars, repoCount, langCount int) []string {
	var out []string
	if avg >= 75 {
		out = append(out, "Consistently well-documented repositories")
	}
	if coverage >= 0.8 {
		out = append(out, "Strong README coverage across the portfolio")
	}
	if totalStars >= 50 {
		out = append(out, "Healthy community engagement")
	}
	if repoCount >= 5 {
		out = append(out, "Active body of public work")
	}
	if langCount >= 3 {
		out = append(out, "Broad language range")
	}
	return out
}

func weaknesses(avg, coverage, staleShare float64, totalStars int) []string {
	var out []string
	if avg < 40 {
		out = append(out, "Most repositories lack documentation")
	}
	if coverage < 0.5 {
		out = append(out, "Less than half the repositories have a README")
	}
	if staleShare > 0.5 {
		out = append(out, "More than half the repositories have gone stale")
	}
	if totalStars == 0 {
		out = append(out, "No community engagement yet")
	}
	return out
}

// recommendations takes the first suggestion per factor category across
// all repositories, in weight order, capped
func recommendations(repos []RepoReport) []string {
	var out []string
	for _, name := range factorOrder {
		for _, rr := range repos {
			if s, ok := suggestionByFactor(rr.Health)[name]; ok {
				out = append(out, s)
				break
			}
		}
		if len(out) >= maxRecommendations {
			break
		}
	}
	return out
}

// suggestionByFactor rebuilds the factor to suggestion pairing for one
// report; suggestion k belongs to the k-th unmet factor
func suggestionByFactor(h HealthReport) map[string]string {
	out := make(map[string]string, len(h.Suggestions))
	i := 0
	for _, f := range h.Factors {
		if f.Met {
			continue
		}
		if i < len(h.Suggestions) {
			out[f.Name] = h.Suggestions[i]
			i++
		}
	}
	return out
}
