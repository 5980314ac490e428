package cli

import (
	stderrs "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gitgauge/internal/adapters/forge"
	"gitgauge/internal/core/readme"
)

var outputFile string

func newReadmeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readme OWNER/NAME",
		Short: "Generate an improved README for a repository",
		Long: `Fetch the repository's current README, fill in the canonical sections it
is missing, and print the result. A repository without a README gets a
complete starter document.

Examples:
  # Print to stdout (improvements go to stderr, so piping stays clean)
  gitgauge readme octocat/hello-world > README.md

  # Write straight to a file
  gitgauge readme octocat/hello-world -o README.md`,
		Args: cobra.ExactArgs(1),
		RunE: runReadme,
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the enhanced README to a file")

	return cmd
}

func runReadme(cmd *cobra.Command, args []string) error {
	owner, name, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}

	fc, err := newForge()
	if err != nil {
		return err
	}

	stop := spin("Fetching " + owner + "/" + name + "...")
	current, err := fc.Readme(cmd.Context(), owner, name)
	stop()
	if err != nil && !stderrs.Is(err, forge.ErrNoReadme) {
		return err
	}

	out := readme.Enhance(name, current)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(out.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputFile, err)
		}
		w := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(w, "✓ Wrote %s\n", outputFile)
		for _, imp := range out.Improvements {
			fmt.Fprintf(w, "  - %s\n", imp)
		}
		return nil
	}

	if jsonOut {
		return printJSON(cmd, out)
	}

	// content on stdout, change log on stderr, so redirection captures
	// only the document
	fmt.Fprint(cmd.OutOrStdout(), out.Content)
	for _, imp := range out.Improvements {
		fmt.Fprintf(cmd.ErrOrStderr(), "- %s\n", imp)
	}
	return nil
}
