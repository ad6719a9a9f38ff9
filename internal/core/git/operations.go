package git

import (
	"context"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/aki/gitctx/internal/core/gitexec"
	"github.com/aki/gitctx/internal/core/logger"
)

// Operations provides git context extraction for a single repository
// path. Every method re-derives its answer from a fresh subprocess
// call; there is no caching and no shared mutable state.
type Operations struct {
	repoPath string
	log      logger.Logger
}

// Option configures an Operations instance.
type Option func(*Operations)

// WithLogger attaches a logger for redacted debug traces.
func WithLogger(log logger.Logger) Option {
	return func(o *Operations) {
		o.log = log
	}
}

// NewOperations creates a new git operations instance rooted at the
// given path. An empty path means the process working directory.
func NewOperations(repoPath string, opts ...Option) *Operations {
	o := &Operations{
		repoPath: repoPath,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// IsGitRepository checks if the path is inside a git repository
// without spawning a subprocess.
func (o *Operations) IsGitRepository() bool {
	_, err := gogit.PlainOpenWithOptions(o.path(), &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	return err == nil
}

// IsWorkingDirectoryClean reports whether the porcelain status is
// empty.
func (o *Operations) IsWorkingDirectoryClean(ctx context.Context) (bool, error) {
	out, err := o.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "", nil
}

func (o *Operations) path() string {
	if o.repoPath == "" {
		return "."
	}
	return o.repoPath
}

// run executes a git subcommand through the safe executor.
func (o *Operations) run(ctx context.Context, args ...string) (string, error) {
	return gitexec.Run(ctx, args, &gitexec.Options{
		Dir:    o.repoPath,
		Logger: o.log,
	})
}

// runTolerant executes a git subcommand, treating a non-zero exit as
// a valid "nothing there" outcome. Used by callers reading
// optional state such as a remote or an upstream.
func (o *Operations) runTolerant(ctx context.Context, args ...string) (string, int, error) {
	res, err := gitexec.RunDetailed(ctx, args, &gitexec.Options{
		Dir:              o.repoPath,
		AllowNonZeroExit: true,
		Logger:           o.log,
	})
	if err != nil {
		return "", 0, err
	}
	return res.Stdout, res.ExitCode, nil
}
