package config

// Config is the project configuration stored in .gitctx/config.yaml.
// Every field is optional; zero values are filled from defaults.
type Config struct {
	Version string  `yaml:"version"`
	Extract Extract `yaml:"extract"`
	Log     Log     `yaml:"log"`
}

// Extract holds defaults for context extraction.
type Extract struct {
	// MaxCommits is the number of recent commits to include.
	MaxCommits int `yaml:"maxCommits"`
	// DiffContext is the number of context lines per hunk.
	DiffContext int `yaml:"diffContext"`
	// IncludeUntracked includes untracked files in status.
	IncludeUntracked *bool `yaml:"includeUntracked"`
	// SanitizeForAI applies the AI-safety sanitizer to snapshots.
	SanitizeForAI *bool `yaml:"sanitizeForAI"`
}

// Log holds logging configuration.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is one of text, json.
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	on := true
	return &Config{
		Version: "1.0",
		Extract: Extract{
			MaxCommits:       10,
			DiffContext:      3,
			IncludeUntracked: &on,
			SanitizeForAI:    &on,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}
