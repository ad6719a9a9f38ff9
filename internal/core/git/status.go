package git

import (
	"context"
	"strconv"
	"strings"
)

// StatusOptions configures the status reader.
type StatusOptions struct {
	// IncludeUntracked includes untracked files. Default true via
	// DefaultStatusOptions.
	IncludeUntracked bool
}

// DefaultStatusOptions returns the standard status options.
func DefaultStatusOptions() StatusOptions {
	return StatusOptions{IncludeUntracked: true}
}

// GetStatus classifies every changed path by its two-letter porcelain
// code. The index column drives staged classification, the worktree
// column drives modified/deleted, and "??" is untracked.
func (o *Operations) GetStatus(ctx context.Context, opts StatusOptions) (*Status, error) {
	args := []string{"status", "--porcelain"}
	if !opts.IncludeUntracked {
		args = append(args, "--untracked-files=no")
	}
	out, err := o.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parseStatus(out), nil
}

// GetChangedFiles flattens the status into one entry per
// (path, category) pair.
func (o *Operations) GetChangedFiles(ctx context.Context, opts StatusOptions) ([]ChangedFile, error) {
	status, err := o.GetStatus(ctx, opts)
	if err != nil {
		return nil, err
	}
	return flattenStatus(status), nil
}

// parseStatus decodes `status --porcelain` output. The index and
// worktree columns are decoded independently, so a path can be both
// staged and worktree-deleted; a worktree "D" is recorded in Deleted
// exactly once.
func parseStatus(out string) *Status {
	status := &Status{
		Staged:    []string{},
		Modified:  []string{},
		Untracked: []string{},
		Deleted:   []string{},
	}

	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		index := line[0]
		worktree := line[1]
		path := parseStatusPath(line[3:])
		if path == "" {
			continue
		}

		if index == '?' && worktree == '?' {
			status.Untracked = append(status.Untracked, path)
			continue
		}

		if index != ' ' && index != '?' {
			status.Staged = append(status.Staged, path)
		}

		switch {
		case worktree == 'D':
			status.Deleted = append(status.Deleted, path)
		case worktree != ' ' && worktree != '?':
			status.Modified = append(status.Modified, path)
		}
	}

	return status
}

// parseStatusPath normalizes the path column: rename arrows keep the
// new name, and quoted paths are unquoted.
func parseStatusPath(raw string) string {
	path := strings.TrimSpace(raw)
	if idx := strings.LastIndex(path, " -> "); idx >= 0 {
		path = path[idx+4:]
	}
	if strings.HasPrefix(path, "\"") {
		if decoded, err := strconv.Unquote(path); err == nil {
			path = decoded
		}
	}
	return path
}

func flattenStatus(status *Status) []ChangedFile {
	files := make([]ChangedFile, 0,
		len(status.Staged)+len(status.Modified)+len(status.Untracked)+len(status.Deleted))
	for _, p := range status.Staged {
		files = append(files, ChangedFile{Path: p, Status: FileStaged})
	}
	for _, p := range status.Modified {
		files = append(files, ChangedFile{Path: p, Status: FileModified})
	}
	for _, p := range status.Untracked {
		files = append(files, ChangedFile{Path: p, Status: FileUntracked})
	}
	for _, p := range status.Deleted {
		files = append(files, ChangedFile{Path: p, Status: FileDeleted})
	}
	return files
}
