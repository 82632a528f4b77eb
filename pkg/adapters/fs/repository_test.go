package fs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aretw0/notes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Missing File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		repo := NewRepository(Config{Path: path})

		require.NoError(t, repo.Append(ctx, core.Note{Text: "hello"}))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(got))
	})

	t.Run("Preserves Order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		repo := NewRepository(Config{Path: path})

		require.NoError(t, repo.Append(ctx, core.Note{Text: "one"}))
		require.NoError(t, repo.Append(ctx, core.Note{Text: "two"}))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "one\ntwo\n", string(got))
	})

	t.Run("Never Truncates Existing Content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("kept\n"), 0644))
		repo := NewRepository(Config{Path: path})

		require.NoError(t, repo.Append(ctx, core.Note{Text: "new"}))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "kept\nnew\n", string(got))
	})

	t.Run("Fails When Path Is A Directory", func(t *testing.T) {
		path := t.TempDir()
		repo := NewRepository(Config{Path: path})

		err := repo.Append(ctx, core.Note{Text: "nope"})
		assert.Error(t, err)
	})

	t.Run("Fails When Parent Is Missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "notes.txt")
		repo := NewRepository(Config{Path: path})

		err := repo.Append(ctx, core.Note{Text: "nope"})
		assert.Error(t, err)
		assert.NoFileExists(t, path)
	})

	t.Run("Respects Cancelled Context", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		repo := NewRepository(Config{Path: path})
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := repo.Append(cctx, core.Note{Text: "late"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, path)
	})
}

func TestRepository_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing File", func(t *testing.T) {
		repo := NewRepository(Config{Path: filepath.Join(t.TempDir(), "notes.txt")})

		_, err := repo.Read(ctx)
		assert.ErrorIs(t, err, core.ErrStoreNotFound)
	})

	t.Run("Unreadable Path", func(t *testing.T) {
		repo := NewRepository(Config{Path: t.TempDir()})

		_, err := repo.Read(ctx)
		assert.ErrorIs(t, err, core.ErrStoreNotFound)
	})

	t.Run("Returns Raw Content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("a\n\nb\n"), 0644))
		repo := NewRepository(Config{Path: path})

		got, err := repo.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, "a\n\nb\n", got)
	})
}

func TestRepository_ConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	repo := NewRepository(Config{Path: path})
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Append(ctx, core.Note{Text: "line"}))
		}()
	}
	wg.Wait()

	content, err := repo.Read(ctx)
	require.NoError(t, err)
	notes := core.Listing{Content: content}.Notes()
	assert.Len(t, notes, writers)
}

func TestRepository_State(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	repo := NewRepository(Config{Path: path})

	state := repo.State().(RepositoryState)
	assert.False(t, state.Exists)

	require.NoError(t, repo.Append(context.Background(), core.Note{Text: "abc"}))
	state = repo.State().(RepositoryState)
	assert.True(t, state.Exists)
	assert.Equal(t, int64(4), state.Size)
	assert.Equal(t, "fs", repo.ComponentType())
}
