package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/gitctx/internal/cli/ui"
	"github.com/aki/gitctx/internal/core/git"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show the parsed working tree diff",
	RunE:  runDiff,
}

var (
	diffStatOnly bool
	diffUnified  int
)

func init() {
	diffCmd.Flags().BoolVar(&diffStatOnly, "stat", false, "Show aggregate counts only (numstat fast path)")
	diffCmd.Flags().IntVarP(&diffUnified, "unified", "U", -1, "Context lines per hunk (default from config)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	ops, cfg, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	if diffStatOnly {
		stats, err := ops.GetDiffStats(cmd.Context())
		if err != nil {
			return err
		}
		return ui.GlobalFormatter.Output(stats)
	}

	contextLines := cfg.Extract.DiffContext
	if diffUnified >= 0 {
		contextLines = diffUnified
	}

	diff, err := ops.GetParsedDiff(cmd.Context(), git.DiffOptions{ContextLines: contextLines})
	if err != nil {
		return err
	}

	return ui.GlobalFormatter.Output(diff)
}
