package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/gitctx/internal/cli/ui"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Extract the full repository context",
	Long: `Extract the full repository context snapshot for an AI agent.

The snapshot combines repository info, branch tracking state, working
tree status, recent commits, and the parsed diff. By default every
string field is passed through the AI-safety sanitizer; pass
--no-sanitize to see the raw values.`,
	RunE: runContext,
}

var (
	maxCommits  int
	diffContext int
	noUntracked bool
	noSanitize  bool
)

func init() {
	contextCmd.Flags().IntVar(&maxCommits, "max-commits", 0, "Number of recent commits to include (default from config)")
	contextCmd.Flags().IntVar(&diffContext, "diff-context", -1, "Context lines per diff hunk (default from config)")
	contextCmd.Flags().BoolVar(&noUntracked, "no-untracked", false, "Exclude untracked files")
	contextCmd.Flags().BoolVar(&noSanitize, "no-sanitize", false, "Skip AI-safety sanitization")
}

func runContext(cmd *cobra.Command, args []string) error {
	ops, cfg, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	gc, err := ops.GetContext(cmd.Context(), contextOptions(cfg))
	if err != nil {
		return err
	}

	return ui.GlobalFormatter.Output(gc)
}
