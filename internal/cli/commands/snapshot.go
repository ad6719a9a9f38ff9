package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aki/gitctx/internal/cli/ui"
	"github.com/aki/gitctx/internal/core/config"
	"github.com/aki/gitctx/internal/core/git"
	"github.com/aki/gitctx/internal/core/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage persisted context snapshots",
	Long: `Manage persisted context snapshots.

Snapshots record the repository context at a point in time under
.gitctx/snapshots/, so agent tooling can refer back to the state a
task started from.`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Capture and persist the current context",
	RunE:  runSnapshotSave,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted snapshots",
	RunE:  runSnapshotList,
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one snapshot as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotShow,
}

var snapshotRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotRemove,
}

var snapshotLabel string

func init() {
	snapshotSaveCmd.Flags().StringVarP(&snapshotLabel, "label", "l", "", "Human-readable snapshot label")

	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotRemoveCmd)
}

func openStore(ctx context.Context, ops *git.Operations) (*snapshot.Store, error) {
	info, err := ops.GetRepositoryInfo(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.NewStore(config.NewManager(info.Root).GetSnapshotsDir())
}

func runSnapshotSave(cmd *cobra.Command, args []string) error {
	ops, cfg, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	gc, err := ops.GetContext(cmd.Context(), contextOptions(cfg))
	if err != nil {
		return err
	}

	store, err := openStore(cmd.Context(), ops)
	if err != nil {
		return err
	}

	snap, err := store.Save(gc, snapshotLabel)
	if err != nil {
		return err
	}

	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(snap)
	}
	ui.Success("Saved snapshot %s", shortID(snap.ID))
	return nil
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	ops, _, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	store, err := openStore(cmd.Context(), ops)
	if err != nil {
		return err
	}

	snaps, err := store.List()
	if err != nil {
		return err
	}

	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(snaps)
	}

	if len(snaps) == 0 {
		ui.Info("No snapshots saved")
		return nil
	}

	tbl := ui.NewTable("ID", "BRANCH", "AGE", "LABEL")
	for _, s := range snaps {
		label := s.Label
		if label == "" {
			label = "-"
		}
		tbl.AddRow(shortID(s.ID), s.Context.Branch.Current, ui.FormatDuration(time.Since(s.CreatedAt)), label)
	}
	ui.PrintSectionHeader(ui.SnapshotIcon, "Snapshots", len(snaps))
	tbl.Print()
	fmt.Println()
	return nil
}

func runSnapshotShow(cmd *cobra.Command, args []string) error {
	ops, _, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	store, err := openStore(cmd.Context(), ops)
	if err != nil {
		return err
	}

	snap, err := store.Load(resolveSnapshotID(store, args[0]))
	if err != nil {
		return err
	}

	// Snapshots are structured data; always emit JSON.
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	ui.OutputLine("%s", data)
	return nil
}

func runSnapshotRemove(cmd *cobra.Command, args []string) error {
	ops, _, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	store, err := openStore(cmd.Context(), ops)
	if err != nil {
		return err
	}

	id := resolveSnapshotID(store, args[0])
	if err := store.Remove(id); err != nil {
		return err
	}
	ui.Success("Removed snapshot %s", shortID(id))
	return nil
}

// resolveSnapshotID expands a short ID prefix to the full UUID when it
// matches exactly one stored snapshot.
func resolveSnapshotID(store *snapshot.Store, id string) string {
	snaps, err := store.List()
	if err != nil {
		return id
	}
	match := id
	count := 0
	for _, s := range snaps {
		if s.ID == id {
			return id
		}
		if len(id) >= 8 && len(s.ID) > len(id) && s.ID[:len(id)] == id {
			match = s.ID
			count++
		}
	}
	if count == 1 {
		return match
	}
	return id
}
