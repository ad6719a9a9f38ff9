package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/gitctx/internal/cli/ui"
	"github.com/aki/gitctx/internal/core/git"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show sanitized recent commits",
	RunE:  runLog,
}

var (
	logCount   int
	logRawMsgs bool
)

func init() {
	logCmd.Flags().IntVarP(&logCount, "count", "n", 0, "Number of commits (default from config)")
	logCmd.Flags().BoolVar(&logRawMsgs, "no-sanitize", false, "Skip AI-safety sanitization")
}

func runLog(cmd *cobra.Command, args []string) error {
	ops, cfg, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	count := cfg.Extract.MaxCommits
	if logCount > 0 {
		count = logCount
	}

	commits, err := ops.GetRecentCommits(cmd.Context(), count)
	if err != nil {
		return err
	}

	if !logRawMsgs && *cfg.Extract.SanitizeForAI {
		gc := git.Context{RecentCommits: commits}
		git.SanitizeContext(&gc)
		commits = gc.RecentCommits
	}

	return ui.GlobalFormatter.Output(commits)
}
