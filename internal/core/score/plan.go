package score

import (
	"fmt"
	"time"

	"gitgauge/internal/core/readme"
)

// Impact labels for plan items
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// PlanItem is one improvement opportunity
type PlanItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// EnhancementPlan partitions improvement opportunities into effort horizons
type EnhancementPlan struct {
	CurrentScore   int        `json:"current_score"`
	PotentialScore int        `json:"potential_score"`
	QuickWins      []PlanItem `json:"quick_wins"`
	MediumTerm     []PlanItem `json:"medium_term"`
	LongTerm       []PlanItem `json:"long_term"`
}

// goodCutoff maps factor names to the points the simulation raises them to
var goodCutoff = map[string]int{
	FactorReadme:      goodReadme,
	FactorCommunity:   goodCommunity,
	FactorRecency:     goodRecency,
	FactorDescription: goodDescription,
	FactorIssues:      goodIssues,
}

var planTitles = map[string]string{
	FactorReadme:      "Improve README documentation",
	FactorCommunity:   "Grow stars and forks",
	FactorRecency:     "Commit more regularly",
	FactorDescription: "Fill in repository descriptions",
	FactorIssues:      "Tidy the issue tracker",
}

// PlanEnhancements simulates every below-cutoff factor raised to its good
// cutoff and re-aggregates with the portfolio formula. The simulated
// average and coverage never decrease, so PotentialScore is at least
// CurrentScore without any extra clamp
func PlanEnhancements(p PortfolioReport, repos []RepoMetadata, now time.Time) EnhancementPlan {
	plan := EnhancementPlan{CurrentScore: p.Overall, PotentialScore: p.Overall}
	if len(repos) == 0 {
		return plan
	}

	reports := make([]HealthReport, len(repos))
	for i, m := range repos {
		reports[i] = ScoreRepo(m, now)
	}

	curAvg := simulatedAverage(reports, nil)
	current := overall(curAvg, p.ReadmeCoverage, p.TotalStars, p.RepoCount)

	// every repo with its readme factor at or above the cutoff has a
	// README, so the fully simulated portfolio is fully covered
	all := map[string]bool{}
	unmet := map[string]int{}
	for _, h := range reports {
		for _, f := range h.Factors {
			if !f.Met {
				all[f.Name] = true
				unmet[f.Name]++
			}
		}
	}
	plan.PotentialScore = overall(simulatedAverage(reports, all), 1.0, p.TotalStars, p.RepoCount)

	for _, name := range factorOrder {
		if unmet[name] == 0 {
			continue
		}
		cov := p.ReadmeCoverage
		if name == FactorReadme {
			cov = 1.0
		}
		raised := overall(simulatedAverage(reports, map[string]bool{name: true}), cov, p.TotalStars, p.RepoCount)
		item := PlanItem{
			Title:       planTitles[name],
			Description: planDescription(name, unmet[name], len(repos)),
			Impact:      impactOf(raised - current),
		}
		switch name {
		case FactorReadme, FactorDescription, FactorIssues:
			plan.QuickWins = append(plan.QuickWins, item)
		case FactorRecency:
			plan.MediumTerm = append(plan.MediumTerm, item)
		case FactorCommunity:
			plan.LongTerm = append(plan.LongTerm, item)
		}
	}

	if n := countGoodTier(reports); n > 0 {
		plan.MediumTerm = append(plan.MediumTerm, PlanItem{
			Title: "Deepen existing READMEs",
			Description: fmt.Sprintf(
				"%d READMEs stop at the good tier; covering the full section catalog takes them to excellent", n),
			Impact: ImpactLow,
		})
	}

	if len(p.Languages) < 2 {
		plan.LongTerm = append(plan.LongTerm, PlanItem{
			Title:       "Diversify the language portfolio",
			Description: "Most public work uses a single language; a project in a second stack broadens the profile",
			Impact:      ImpactLow,
		})
	}

	return plan
}

// simulatedAverage resums every repository with the named factors raised
// to their good cutoffs
func simulatedAverage(reports []HealthReport, raise map[string]bool) float64 {
	total := 0.0
	for _, h := range reports {
		sum := 0
		for _, f := range h.Factors {
			pts := f.Points
			if raise[f.Name] && pts < goodCutoff[f.Name] {
				pts = goodCutoff[f.Name]
			}
			sum += pts
		}
		total += float64(clamp(sum, 0, 100))
	}
	return total / float64(len(reports))
}

func planDescription(name string, n, total int) string {
	switch name {
	case FactorReadme:
		return fmt.Sprintf("%d of %d repositories are missing README content or sections", n, total)
	case FactorCommunity:
		return fmt.Sprintf("%d repositories have little community traction yet", n)
	case FactorRecency:
		return fmt.Sprintf("%d repositories have not been pushed in over three months", n)
	case FactorDescription:
		return fmt.Sprintf("%d repositories have no description", n)
	case FactorIssues:
		return fmt.Sprintf("%d repositories have issues disabled or a large open backlog", n)
	}
	return ""
}

func countGoodTier(reports []HealthReport) int {
	n := 0
	for _, h := range reports {
		if h.Tier == readme.TierGood {
			n++
		}
	}
	return n
}

func impactOf(delta int) string {
	switch {
	case delta >= 8:
		return ImpactHigh
	case delta >= 3:
		return ImpactMedium
	default:
		return ImpactLow
	}
}
