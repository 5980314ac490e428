package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	profiledomain "gitgauge/internal/services/api/profile/domain"
	reposdomain "gitgauge/internal/services/api/repos/domain"
)

// printJSON writes v as indented JSON to the command's stdout
func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

// scoreColor picks the color band for a 0-100 score
func scoreColor(n int) *color.Color {
	switch {
	case n >= 80:
		return color.New(color.FgGreen, color.Bold)
	case n >= 60:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func renderPortfolio(cmd *cobra.Command, a profiledomain.Analysis) {
	w := cmd.OutOrStdout()
	p := a.Portfolio
	bold := color.New(color.Bold)

	fmt.Fprintln(w)
	bold.Fprint(w, p.Username)
	if a.Profile.Name != "" {
		fmt.Fprintf(w, "  (%s)", a.Profile.Name)
	}
	fmt.Fprintln(w)

	scoreColor(p.Overall).Fprintf(w, "Overall %d/100\n", p.Overall)
	fmt.Fprintf(w, "Average health %.1f   README coverage %d%%\n",
		p.AverageHealth, int(p.ReadmeCoverage*100))
	fmt.Fprintf(w, "%d repositories   %d stars   %d forks\n",
		p.RepoCount, p.TotalStars, p.TotalForks)
	if len(p.Languages) > 0 {
		fmt.Fprintf(w, "Languages: %s\n", strings.Join(sortedKeys(p.Languages), ", "))
	}

	if len(p.Repos) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Repositories")
		for _, r := range p.Repos {
			scoreColor(r.Health.Score).Fprintf(w, "  %3d", r.Health.Score)
			fmt.Fprintf(w, "  %-9s %-28s ★ %d\n", r.Health.Tier, r.Name, r.Stars)
		}
	}

	renderList(w, color.New(color.FgGreen, color.Bold), "Strengths", p.Strengths)
	renderList(w, color.New(color.FgYellow, color.Bold), "Weaknesses", p.Weaknesses)
	renderList(w, color.New(color.FgCyan, color.Bold), "Recommendations", p.Recommendations)
}

func renderRepo(cmd *cobra.Command, a reposdomain.Analysis) {
	w := cmd.OutOrStdout()
	bold := color.New(color.Bold)

	fmt.Fprintln(w)
	bold.Fprintf(w, "%s/%s\n", a.Owner, a.Name)
	if a.Description != "" {
		fmt.Fprintf(w, "%s\n", a.Description)
	}

	scoreColor(a.Health.Score).Fprintf(w, "Health %d/100", a.Health.Score)
	fmt.Fprintf(w, "   README tier %s\n", a.Health.Tier)
	fmt.Fprintf(w, "%d stars   %d forks   %d open issues   last push %s\n",
		a.Stars, a.Forks, a.OpenIssues, a.PushedAt.Format("2006-01-02"))
	if len(a.Languages) > 0 {
		fmt.Fprintf(w, "Languages: %s\n", strings.Join(sortedKeys64(a.Languages), ", "))
	}

	fmt.Fprintln(w)
	bold.Fprintln(w, "Factors")
	for _, f := range a.Health.Factors {
		mark := color.GreenString("✓")
		if !f.Met {
			mark = color.RedString("✗")
		}
		fmt.Fprintf(w, "  %s %-12s %2d/%d\n", mark, f.Name, f.Points, f.Max)
	}

	renderList(w, color.New(color.FgCyan, color.Bold), "Suggestions", a.Health.Suggestions)

	if len(a.RecentCommits) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Recent commits")
		for _, c := range a.RecentCommits {
			fmt.Fprintf(w, "  %s  %s  %s\n",
				shortSHA(c.SHA), c.Date.Format("2006-01-02"), firstLine(c.Message))
		}
	}
}

func renderList(w io.Writer, c *color.Color, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w)
	c.Fprintln(w, title)
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys64(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func firstLine(msg string) string {
	line, _, _ := strings.Cut(msg, "\n")
	const max = 72
	if len(line) > max {
		return line[:max-3] + "..."
	}
	return line
}
