package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/jobpage"
	"github.com/fwojciec/jobpage/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var target = jobpage.Target{Repo: "local", Branch: "main"}

func TestRepository_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates directory and file", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		repo := fs.NewRepository(dir)

		err := repo.WriteFile(context.Background(), target, "a.html", "<html>A</html>")
		require.NoError(t, err)

		b, err := os.ReadFile(filepath.Join(dir, "a.html"))
		require.NoError(t, err)
		assert.Equal(t, "<html>A</html>", string(b))

		_, err = os.Stat(filepath.Join(dir, "a.html.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		repo := fs.NewRepository(t.TempDir())
		require.NoError(t, repo.WriteFile(context.Background(), target, "a.html", "old"))
		require.NoError(t, repo.WriteFile(context.Background(), target, "a.html", "new"))

		content, err := repo.ReadFile(context.Background(), target, "a.html")
		require.NoError(t, err)
		assert.Equal(t, "new", content)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		t.Parallel()

		repo := fs.NewRepository(t.TempDir())

		err := repo.WriteFile(context.Background(), target, "../escape.html", "x")

		assert.Equal(t, jobpage.EINVALID, jobpage.ErrorCode(err))
	})
}

func TestRepository_ListFiles(t *testing.T) {
	t.Parallel()

	t.Run("lists regular files sorted", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		repo := fs.NewRepository(dir)
		require.NoError(t, repo.WriteFile(context.Background(), target, "b.html", "B"))
		require.NoError(t, repo.WriteFile(context.Background(), target, "a.html", "A"))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "assets"), 0755))

		names, err := repo.ListFiles(context.Background(), target)

		require.NoError(t, err)
		assert.Equal(t, []string{"a.html", "b.html"}, names)
	})

	t.Run("missing directory has no files", func(t *testing.T) {
		t.Parallel()

		repo := fs.NewRepository(filepath.Join(t.TempDir(), "missing"))

		names, err := repo.ListFiles(context.Background(), target)

		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestRepository_ReadFile(t *testing.T) {
	t.Parallel()

	repo := fs.NewRepository(t.TempDir())

	_, err := repo.ReadFile(context.Background(), target, "missing.html")

	assert.Equal(t, jobpage.ENOTFOUND, jobpage.ErrorCode(err))
}

func TestRepository_LastModified(t *testing.T) {
	t.Parallel()

	t.Run("returns modification time", func(t *testing.T) {
		t.Parallel()

		repo := fs.NewRepository(t.TempDir())
		require.NoError(t, repo.WriteFile(context.Background(), target, "a.html", "A"))

		got, err := repo.LastModified(context.Background(), target, "a.html")

		require.NoError(t, err)
		assert.False(t, got.IsZero())
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		repo := fs.NewRepository(t.TempDir())

		_, err := repo.LastModified(context.Background(), target, "missing.html")

		assert.Equal(t, jobpage.ENOTFOUND, jobpage.ErrorCode(err))
	})
}
