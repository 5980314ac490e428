// Package score turns repository metadata into health reports, portfolio
// aggregates, and enhancement plans. Every function here is pure: same
// metadata and clock in, same report out
package score

import (
	"math"
	"strings"
	"time"

	"gitgauge/internal/core/readme"
)

// RepoMetadata is the scorer's view of one repository
type RepoMetadata struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	URL         string           `json:"url"`
	Languages   map[string]int64 `json:"languages"`
	Stars       int              `json:"stars"`
	Forks       int              `json:"forks"`
	OpenIssues  int              `json:"open_issues"`
	HasIssues   bool             `json:"has_issues"`
	Private     bool             `json:"private"`
	PushedAt    time.Time        `json:"pushed_at"`

	// Readme is the document body; HasReadme separates absent from empty
	Readme    string `json:"-"`
	HasReadme bool   `json:"has_readme"`
}

// Factor names, in weight order
const (
	FactorReadme      = "readme"
	FactorCommunity   = "community"
	FactorRecency     = "recency"
	FactorDescription = "description"
	FactorIssues      = "issues"
)

// Factor maxima; the five together sum to 100
const (
	maxReadme      = 46
	maxCommunity   = 25
	maxRecency     = 15
	maxDescription = 10
	maxIssues      = 4
)

// Good cutoffs: at or above these points a factor stops generating
// suggestions and plan items
const (
	goodReadme      = 38 // presence plus a good tier
	goodCommunity   = 8  // roughly three stars
	goodRecency     = 10 // pushed within 90 days
	goodDescription = 10
	goodIssues      = 4
)

// readmePresencePoints rewards having the file at all; the rest of the
// readme factor comes from the tier
const readmePresencePoints = 10

// tierPoints maps a readme tier to its share of the readme factor
var tierPoints = map[readme.Tier]int{
	readme.TierNone:      0,
	readme.TierMinimal:   8,
	readme.TierBasic:     18,
	readme.TierGood:      28,
	readme.TierExcellent: 36,
}

// FactorScore is one weighted component of a repository health score
type FactorScore struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Max    int    `json:"max"`
	Met    bool   `json:"met"`
}

// HealthReport grades one repository
type HealthReport struct {
	Score           int                `json:"score"`
	Tier            readme.Tier        `json:"readme_tier"`
	MissingSections []readme.SectionID `json:"missing_sections"`
	Suggestions     []string           `json:"suggestions"`
	Factors         []FactorScore      `json:"factors"`
}

// ScoreRepo evaluates one repository against the weighted factors.
// now is a parameter so callers and tests pin the clock
func ScoreRepo(m RepoMetadata, now time.Time) HealthReport {
	a := readme.Analyze(m.Readme)
	tier := readme.Classify(m.HasReadme, a)

	factors := []FactorScore{
		readmeFactor(m.HasReadme, tier),
		communityFactor(m.Stars, m.Forks),
		recencyFactor(m.PushedAt, now),
		descriptionFactor(m.Description),
		issuesFactor(m.HasIssues, m.OpenIssues, m.Stars, m.Forks),
	}

	total := 0
	for _, f := range factors {
		total += f.Points
	}

	return HealthReport{
		Score:           clamp(total, 0, 100),
		Tier:            tier,
		MissingSections: a.Missing,
		Suggestions:     suggestions(m, a, factors),
		Factors:         factors,
	}
}

func readmeFactor(hasReadme bool, tier readme.Tier) FactorScore {
	pts := tierPoints[tier]
	if hasReadme {
		pts += readmePresencePoints
	}
	return factor(FactorReadme, pts, maxReadme, goodReadme)
}

// communityFactor scales stars and forks logarithmically so a huge
// repository does not dominate linearly
func communityFactor(stars, forks int) FactorScore {
	pts := math.Min(20, 4*math.Log2(1+float64(max(stars, 0)))) +
		math.Min(5, 2*math.Log2(1+float64(max(forks, 0))))
	return factor(FactorCommunity, int(math.Round(pts)), maxCommunity, goodCommunity)
}

func recencyFactor(pushedAt, now time.Time) FactorScore {
	days := int(now.Sub(pushedAt).Hours() / 24)
	var pts int
	switch {
	case days <= 30:
		pts = 15
	case days <= 90:
		pts = 10
	case days <= 180:
		pts = 5
	case days <= 365:
		pts = 2
	}
	return factor(FactorRecency, pts, maxRecency, goodRecency)
}

func descriptionFactor(desc string) FactorScore {
	var pts int
	if strings.TrimSpace(desc) != "" {
		pts = maxDescription
	}
	return factor(FactorDescription, pts, maxDescription, goodDescription)
}

// issuesFactor checks the open-issue load against community size.
// load = open / (1 + stars + forks)
func issuesFactor(hasIssues bool, open, stars, forks int) FactorScore {
	var pts int
	if hasIssues {
		load := float64(open) / float64(1+stars+forks)
		switch {
		case load <= 0.5:
			pts = 4
		case load <= 1.0:
			pts = 2
		}
	}
	return factor(FactorIssues, pts, maxIssues, goodIssues)
}

func factor(name string, pts, max, good int) FactorScore {
	return FactorScore{Name: name, Points: pts, Max: max, Met: pts >= good}
}

// suggestions emits one line per unmet factor, in factor-weight order
func suggestions(m RepoMetadata, a readme.Analysis, factors []FactorScore) []string {
	var out []string
	for _, f := range factors {
		if f.Met {
			continue
		}
		switch f.Name {
		case FactorReadme:
			switch {
			case !m.HasReadme:
				out = append(out, "Add a README to document what the repository does")
			case a.Empty || !a.Present:
				out = append(out, "Write actual content in the README, it is currently empty")
			default:
				out = append(out, "Add the missing README sections: "+joinSections(a.Missing))
			}
		case FactorCommunity:
			out = append(out, "Share the repository to attract stars and forks")
		case FactorRecency:
			out = append(out, "Update the repository more frequently to keep it active")
		case FactorDescription:
			out = append(out, "Add a short description so visitors know what the repository is about")
		case FactorIssues:
			if !m.HasIssues {
				out = append(out, "Enable issues so users can report problems")
			} else {
				out = append(out, "Triage and close stale open issues")
			}
		}
	}
	return out
}

func joinSections(ids []readme.SectionID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
