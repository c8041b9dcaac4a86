package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "pins.db")
	repo, err := NewRepository(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestRepository_ToggleMarked(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	pinned, err := repo.ToggleMarked(ctx, "conv-1", "2")
	require.NoError(t, err)
	assert.True(t, pinned)

	pinned, err = repo.ToggleMarked(ctx, "conv-1", "5")
	require.NoError(t, err)
	assert.True(t, pinned)

	marked, err := repo.LoadMarked(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"2": {}, "5": {}}, marked)

	pinned, err = repo.ToggleMarked(ctx, "conv-1", "2")
	require.NoError(t, err)
	assert.False(t, pinned)

	marked, err = repo.LoadMarked(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"5": {}}, marked)
}

func TestRepository_SessionsAreIsolated(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.ToggleMarked(ctx, "a", "0")
	require.NoError(t, err)

	marked, err := repo.LoadMarked(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, marked)
	assert.NotNil(t, marked)
}

func TestRepository_ListSessions(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.RememberSession(ctx, "a", "https://chatgpt.com/c/a"))
	require.NoError(t, repo.RememberSession(ctx, "a", "https://chatgpt.com/c/a?v=2"))
	for _, key := range []string{"0", "3"} {
		_, err := repo.ToggleMarked(ctx, "a", key)
		require.NoError(t, err)
	}
	_, err := repo.ToggleMarked(ctx, "b", "1")
	require.NoError(t, err)

	sessions, err := repo.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, "b", sessions[0].ID, "most recent pin first")
	assert.Equal(t, "", sessions[0].Location)
	assert.Equal(t, 1, sessions[0].Pins)

	assert.Equal(t, "a", sessions[1].ID)
	assert.Equal(t, "https://chatgpt.com/c/a?v=2", sessions[1].Location)
	assert.Equal(t, 2, sessions[1].Pins)
	assert.False(t, sessions[1].LastPinned.IsZero())
}

func TestRepository_CheckWritable(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.CheckWritable(context.Background()))

	sessions, err := repo.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions, "write check must not leave rows behind")
}

func TestRepository_InitCreatesDatabaseFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deep", "dir", "pins.db")
	repo, err := NewRepository(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.Init(context.Background()))
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestRepository_CloseNil(t *testing.T) {
	var repo *Repository
	assert.NoError(t, repo.Close())
}
