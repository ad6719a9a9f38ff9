// Package commands implements the gitctx command-line interface.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/gitctx/internal/cli/ui"
)

var rootCmd = &cobra.Command{
	Use:   "gitctx",
	Short: "Safe git context extraction for AI agents",
	Long: `Gitctx extracts structured, sanitized git repository context for AI agents.

It shells out to git through a hardened executor, parses porcelain and
unified-diff output into typed records, and filters prompt-injection
patterns, credentials, and identifying paths before the snapshot is
handed to an agent.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return ui.SetGlobalFormatter(ui.FormatJSON)
		}
		return nil
	},
}

var (
	workDir    string
	jsonOutput bool
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "C", "", "Repository directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
