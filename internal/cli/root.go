// Package cli implements the gitgauge command tree
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"gitgauge/internal/adapters/forge"
	"gitgauge/internal/adapters/forge/github"
	"gitgauge/internal/core/version"
	"gitgauge/internal/platform/logger"
)

var (
	token   string
	jsonOut bool
)

// NewRootCmd builds the gitgauge command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gitgauge",
		Short: "Repository health and README quality from the command line",
		Long: `gitgauge grades public repositories and portfolios the same way the API
service does: README completeness, community traction, recency,
description coverage, and issue hygiene.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// adapter logs go to stderr at warn so command output stays clean
			logger.Init(logger.Options{Level: "warn", Format: "console", Writer: os.Stderr})
		},
	}

	// Disable automatic 'completion' command added by cobra
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&token, "token", "",
		"GitHub API token (defaults to GITGAUGE_GITHUB_TOKEN, then GITHUB_TOKEN)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "Emit machine-readable JSON")

	root.AddCommand(
		newAnalyzeCmd(),
		newRepoCmd(),
		newReadmeCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			bi := version.Info()
			cmd.Printf("gitgauge %s (commit %s, built %s)\n", bi.Version, bi.Commit, bi.Date)
		},
	}
}

// newForge builds the GitHub client every command talks through
func newForge() (forge.Client, error) {
	t := token
	if t == "" {
		t = os.Getenv("GITGAUGE_GITHUB_TOKEN")
	}
	if t == "" {
		t = os.Getenv("GITHUB_TOKEN")
	}
	return github.New(github.Options{Token: t})
}

// spin starts a progress spinner and returns its stop func.
// It stays off stdout so piped output is clean, and off entirely in JSON mode
func spin(suffix string) func() {
	if jsonOut {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	s.Start()
	return s.Stop
}

// splitRepoArg parses an OWNER/NAME argument
func splitRepoArg(arg string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(arg, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("expected OWNER/NAME, got %q", arg)
	}
	return owner, name, nil
}
