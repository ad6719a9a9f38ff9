package config

import (
	"fmt"

	"github.com/aki/gitctx/internal/core/validate"
)

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validate.PositiveInt(cfg.Extract.MaxCommits, "extract.maxCommits"); err != nil {
		return err
	}
	if err := validate.NonNegativeInt(cfg.Extract.DiffContext, "extract.diffContext"); err != nil {
		return err
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", cfg.Log.Format)
	}

	return nil
}
