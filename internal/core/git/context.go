package git

import (
	"context"

	"github.com/aki/gitctx/internal/core/sanitize"
)

// ContextOptions configures a full context extraction.
type ContextOptions struct {
	IncludeUntracked bool
	MaxCommits       int
	DiffContext      int
	SanitizeForAI    bool
}

// DefaultContextOptions returns the standard extraction options:
// untracked files included, 10 commits, 3 lines of diff context,
// sanitization on.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{
		IncludeUntracked: true,
		MaxCommits:       10,
		DiffContext:      3,
		SanitizeForAI:    true,
	}
}

// GetContext assembles the full repository snapshot: repository,
// branch, status, recent commits, parsed diff, and the changed-file
// view derived from status. Readers run sequentially; a failure in
// any one aborts the whole call. The sanitization pass, when
// requested, is applied to the assembled result exactly once.
func (o *Operations) GetContext(ctx context.Context, opts ContextOptions) (*Context, error) {
	repo, err := o.GetRepositoryInfo(ctx)
	if err != nil {
		return nil, err
	}

	branch, err := o.GetCurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	status, err := o.GetStatus(ctx, StatusOptions{IncludeUntracked: opts.IncludeUntracked})
	if err != nil {
		return nil, err
	}

	commits, err := o.GetRecentCommits(ctx, opts.MaxCommits)
	if err != nil {
		return nil, err
	}

	diff, err := o.GetParsedDiff(ctx, DiffOptions{ContextLines: opts.DiffContext})
	if err != nil {
		return nil, err
	}

	gc := &Context{
		Repository:    *repo,
		Branch:        *branch,
		Status:        *status,
		RecentCommits: commits,
		Diff:          *diff,
		ChangedFiles:  flattenStatus(status),
	}

	if opts.SanitizeForAI {
		SanitizeContext(gc)
	}
	return gc, nil
}

// SanitizeContext deep-maps the sanitizer over every string field of
// the snapshot that can carry untrusted or identifying content:
// commit messages and authors, the remote URL, and filesystem paths.
func SanitizeContext(gc *Context) {
	gc.Repository.Root = sanitize.FilePath(gc.Repository.Root)
	gc.Repository.Remote = sanitize.RemoteURL(gc.Repository.Remote)

	for i := range gc.RecentCommits {
		c := &gc.RecentCommits[i]
		c.Subject = sanitize.CommitMessage(c.Subject)
		c.Body = sanitize.CommitMessage(c.Body)
		c.Message = sanitize.CommitMessage(c.Message)
		c.Author = sanitize.CommitMessage(c.Author)
		c.Email = sanitize.CommitMessage(c.Email)
	}

	gc.Status.Staged = sanitizePaths(gc.Status.Staged)
	gc.Status.Modified = sanitizePaths(gc.Status.Modified)
	gc.Status.Untracked = sanitizePaths(gc.Status.Untracked)
	gc.Status.Deleted = sanitizePaths(gc.Status.Deleted)

	for i := range gc.ChangedFiles {
		gc.ChangedFiles[i].Path = sanitize.FilePath(gc.ChangedFiles[i].Path)
	}
	for i := range gc.Diff.Files {
		gc.Diff.Files[i].Path = sanitize.FilePath(gc.Diff.Files[i].Path)
		gc.Diff.Files[i].OldPath = sanitize.FilePath(gc.Diff.Files[i].OldPath)
	}
}

func sanitizePaths(paths []string) []string {
	for i := range paths {
		paths[i] = sanitize.FilePath(paths[i])
	}
	return paths
}
