package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aki/gitctx/internal/core/git"
)

func testContext(branch string) *git.Context {
	return &git.Context{
		Repository: git.RepositoryInfo{Root: "/repo", IsClean: true},
		Branch:     git.BranchInfo{Current: branch},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	snap, err := store.Save(testContext("main"), "before refactor")
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)
	assert.False(t, snap.CreatedAt.IsZero())

	loaded, err := store.Load(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, "before refactor", loaded.Label)
	assert.Equal(t, "main", loaded.Context.Branch.Current)
}

func TestStoreList(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(testContext("main"), "")
	require.NoError(t, err)
	second, err := store.Save(testContext("feature/x"), "")
	require.NoError(t, err)

	snaps, err := store.List()
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	ids := []string{snaps[0].ID, snaps[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestStoreRemove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	snap, err := store.Save(testContext("main"), "")
	require.NoError(t, err)
	require.NoError(t, store.Remove(snap.ID))

	_, err = store.Load(snap.ID)
	var notFound ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestStoreRejectsBadID(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("../escape")
	assert.Error(t, err)

	err = store.Remove("not-a-uuid")
	assert.Error(t, err)
}
