package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/gitctx/internal/cli/ui"
	"github.com/aki/gitctx/internal/core/git"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the classified working tree status",
	RunE:  runStatus,
}

var statusNoUntracked bool

func init() {
	statusCmd.Flags().BoolVar(&statusNoUntracked, "no-untracked", false, "Exclude untracked files")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ops, _, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	files, err := ops.GetChangedFiles(cmd.Context(), git.StatusOptions{
		IncludeUntracked: !statusNoUntracked,
	})
	if err != nil {
		return err
	}

	return ui.GlobalFormatter.Output(files)
}
