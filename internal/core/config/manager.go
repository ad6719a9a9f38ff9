// Package config provides configuration management for gitctx
// projects.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// GitctxDir is the directory name for gitctx metadata
	GitctxDir = ".gitctx"
	// ConfigFile is the filename for the gitctx configuration
	ConfigFile = "config.yaml"
)

// Manager handles gitctx configuration
type Manager struct {
	projectRoot string
	configPath  string
}

// NewManager creates a new configuration manager
func NewManager(projectRoot string) *Manager {
	return &Manager{
		projectRoot: projectRoot,
		configPath:  filepath.Join(projectRoot, GitctxDir, ConfigFile),
	}
}

// Load reads the configuration from disk. A missing file is not an
// error: defaults apply.
func (m *Manager) Load() (*Config, error) {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to disk
func (m *Manager) Save(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetProjectRoot returns the project root directory
func (m *Manager) GetProjectRoot() string {
	return m.projectRoot
}

// GetGitctxDir returns the .gitctx directory path
func (m *Manager) GetGitctxDir() string {
	return filepath.Join(m.projectRoot, GitctxDir)
}

// GetSnapshotsDir returns the snapshots directory path
func (m *Manager) GetSnapshotsDir() string {
	return filepath.Join(m.projectRoot, GitctxDir, "snapshots")
}

// GetConfigPath returns the configuration file path
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// applyDefaults fills zero-value fields from DefaultConfig.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = def.Version
	}
	if cfg.Extract.MaxCommits == 0 {
		cfg.Extract.MaxCommits = def.Extract.MaxCommits
	}
	if cfg.Extract.DiffContext == 0 {
		cfg.Extract.DiffContext = def.Extract.DiffContext
	}
	if cfg.Extract.IncludeUntracked == nil {
		cfg.Extract.IncludeUntracked = def.Extract.IncludeUntracked
	}
	if cfg.Extract.SanitizeForAI == nil {
		cfg.Extract.SanitizeForAI = def.Extract.SanitizeForAI
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
}
