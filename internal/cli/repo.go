package cli

import (
	"github.com/spf13/cobra"

	repossvc "gitgauge/internal/services/api/repos/service"
)

func newRepoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repo OWNER/NAME",
		Short: "Grade one repository",
		Long: `Fetch a repository's metadata, README, languages, and recent commits,
then print its health report card.

Examples:
  gitgauge repo octocat/hello-world
  gitgauge repo octocat/hello-world --json`,
		Args: cobra.ExactArgs(1),
		RunE: runRepo,
	}
}

func runRepo(cmd *cobra.Command, args []string) error {
	owner, name, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}

	fc, err := newForge()
	if err != nil {
		return err
	}

	stop := spin("Grading " + owner + "/" + name + "...")
	out, err := repossvc.New(fc).Analyze(cmd.Context(), owner, name)
	stop()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cmd, out)
	}
	renderRepo(cmd, out)
	return nil
}
