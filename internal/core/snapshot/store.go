// Package snapshot persists point-in-time git context snapshots so
// agent tooling can refer back to the state a task started from.
// Writes are guarded by a cross-process file lock because several CLI
// invocations may share one repository.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/aki/gitctx/internal/core/git"
	"github.com/aki/gitctx/internal/core/validate"
)

// Snapshot is a persisted context with identity and capture time.
type Snapshot struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	Label     string      `json:"label,omitempty"`
	Context   git.Context `json:"context"`
}

// ErrNotFound is returned when a snapshot ID does not exist.
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("snapshot not found: %s", e.ID)
}

// Store manages snapshots under a directory, one JSON file each.
type Store struct {
	dir  string
	lock *flock.Flock
}

// NewStore creates a snapshot store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &Store{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, ".lock")),
	}, nil
}

// Save persists a context under a fresh ID and returns the snapshot.
func (s *Store) Save(gc *git.Context, label string) (*Snapshot, error) {
	snap := &Snapshot{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Label:     label,
		Context:   *gc,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to acquire snapshot lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	if err := os.WriteFile(s.path(snap.ID), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}
	return snap, nil
}

// Load reads one snapshot by ID.
func (s *Store) Load(id string) (*Snapshot, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	if err := s.lock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to acquire snapshot lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snap := &Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return snap, nil
}

// List returns all snapshots, newest first.
func (s *Store) List() ([]*Snapshot, error) {
	if err := s.lock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to acquire snapshot lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	snapshots := []*Snapshot{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		snap := &Snapshot{}
		if err := json.Unmarshal(data, snap); err != nil {
			// Corrupt entries are skipped, not fatal.
			continue
		}
		snapshots = append(snapshots, snap)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].CreatedAt.After(snapshots[j].CreatedAt)
	})
	return snapshots, nil
}

// Remove deletes one snapshot by ID.
func (s *Store) Remove(id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire snapshot lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound{ID: id}
		}
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}
	return nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// validateID keeps snapshot IDs from escaping the store directory.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid snapshot ID: %w", err)
	}
	return validate.FilePath(id)
}
