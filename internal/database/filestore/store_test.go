package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gardens")
	store, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.LoadSnapshot(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrGardenNotFound)

	require.NoError(t, store.SaveSnapshot(ctx, "alice", []byte(`{"xp":1}`)))
	require.NoError(t, store.SaveSnapshot(ctx, "alice", []byte(`{"xp":2}`)))

	got, err := store.LoadSnapshot(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, `{"xp":2}`, string(got))

	info, err := os.Stat(filepath.Join(dir, "alice.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	require.NoError(t, store.DeleteSnapshot(ctx, "alice"))
	require.NoError(t, store.DeleteSnapshot(ctx, "alice"))
	_, err = store.LoadSnapshot(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrGardenNotFound)
}

func TestStore_RejectsPathTraversal(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, id := range []string{"", ".", "..", "../escape", `a\b`, "nested/id"} {
		t.Run(id, func(t *testing.T) {
			_, err := store.LoadSnapshot(ctx, id)
			assert.ErrorIs(t, err, domain.ErrInvalidSession)
			assert.ErrorIs(t, store.SaveSnapshot(ctx, id, []byte(`{}`)), domain.ErrInvalidSession)
			assert.ErrorIs(t, store.DeleteSnapshot(ctx, id), domain.ErrInvalidSession)
		})
	}
}

func TestStore_Ping(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := New(dir)
	require.NoError(t, err)

	assert.NoError(t, store.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, store.Ping(context.Background()))
}

func TestStore_ListSessions(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	ids, err := store.ListSessions(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, ids)

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"old", "newest", "middle"} {
		require.NoError(t, store.SaveSnapshot(ctx, id, []byte(`{}`)))
		ts := base.Add(time.Duration([]int{1, 3, 2}[i]) * time.Minute)
		require.NoError(t, os.Chtimes(filepath.Join(dir, id+fileExt), ts, ts))
	}
	// Unrelated files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o750))

	ids, err = store.ListSessions(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "middle", "old"}, ids)

	ids, err = store.ListSessions(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "middle"}, ids)

	ids, err = store.ListSessions(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
