package cli

import (
	"github.com/spf13/cobra"

	profilesvc "gitgauge/internal/services/api/profile/service"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze USERNAME",
		Short: "Grade a user's public portfolio",
		Long: `Fetch a user's public repositories, grade each one, and roll the results
up into a portfolio report.

Examples:
  # Human-readable report
  gitgauge analyze octocat

  # Machine-readable, for piping into jq
  gitgauge analyze octocat --json`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	username := args[0]

	fc, err := newForge()
	if err != nil {
		return err
	}

	stop := spin("Analyzing " + username + "...")
	out, err := profilesvc.New(fc).Analyze(cmd.Context(), username)
	stop()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cmd, out)
	}
	renderPortfolio(cmd, out)
	return nil
}
