package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aki/gitctx/internal/core/config"
	"github.com/aki/gitctx/internal/core/git"
	"github.com/aki/gitctx/internal/core/logger"
)

// newLogger builds the CLI logger from config and the --verbose flag.
func newLogger(cfg *config.Config) logger.Logger {
	opts := []logger.Option{}
	switch cfg.Log.Level {
	case "debug":
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	case "warn":
		opts = append(opts, logger.WithLevel(slog.LevelWarn))
	case "error":
		opts = append(opts, logger.WithLevel(slog.LevelError))
	}
	if cfg.Log.Format == "json" {
		opts = append(opts, logger.WithFormat(logger.FormatJSON))
	}
	if verbose {
		opts = append(opts, logger.WithDebug())
	}
	return logger.New(opts...)
}

// setup resolves the repository, its configuration, and a ready
// Operations instance for the --dir flag (or the current directory).
func setup(ctx context.Context) (*git.Operations, *config.Config, error) {
	check := git.NewOperations(workDir)
	if !check.IsGitRepository() {
		return nil, nil, fmt.Errorf("not a git repository (run inside one or pass --dir)")
	}

	info, err := check.GetRepositoryInfo(ctx)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.NewManager(info.Root).Load()
	if err != nil {
		return nil, nil, err
	}

	ops := git.NewOperations(workDir, git.WithLogger(newLogger(cfg)))
	return ops, cfg, nil
}

// contextOptions maps config defaults and command flags onto
// extraction options.
func contextOptions(cfg *config.Config) git.ContextOptions {
	opts := git.ContextOptions{
		IncludeUntracked: *cfg.Extract.IncludeUntracked,
		MaxCommits:       cfg.Extract.MaxCommits,
		DiffContext:      cfg.Extract.DiffContext,
		SanitizeForAI:    *cfg.Extract.SanitizeForAI,
	}
	if maxCommits > 0 {
		opts.MaxCommits = maxCommits
	}
	if diffContext >= 0 {
		opts.DiffContext = diffContext
	}
	if noUntracked {
		opts.IncludeUntracked = false
	}
	if noSanitize {
		opts.SanitizeForAI = false
	}
	return opts
}

func shortID(id string) string {
	if idx := strings.Index(id, "-"); idx > 0 {
		return id[:idx]
	}
	return id
}
