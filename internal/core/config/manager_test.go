package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	m := NewManager(t.TempDir())

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Extract.MaxCommits)
	assert.Equal(t, 3, cfg.Extract.DiffContext)
	assert.True(t, *cfg.Extract.IncludeUntracked)
	assert.True(t, *cfg.Extract.SanitizeForAI)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadPartialConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, GitctxDir), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, GitctxDir, ConfigFile),
		[]byte("extract:\n  maxCommits: 25\nlog:\n  level: debug\n"),
		0o644,
	))

	cfg, err := NewManager(root).Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Extract.MaxCommits)
	assert.Equal(t, 3, cfg.Extract.DiffContext, "unset field gets default")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, GitctxDir), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, GitctxDir, ConfigFile),
		[]byte("log:\n  level: loud\n"),
		0o644,
	))

	_, err := NewManager(root).Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root)

	cfg := DefaultConfig()
	cfg.Extract.MaxCommits = 42
	require.NoError(t, m.Save(cfg))

	loaded, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Extract.MaxCommits)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(*Config) {}},
		{name: "zero max commits", mutate: func(c *Config) { c.Extract.MaxCommits = 0 }, wantErr: true},
		{name: "negative diff context", mutate: func(c *Config) { c.Extract.DiffContext = -1 }, wantErr: true},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
