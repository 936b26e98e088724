package resource

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	return fsys
}

func readAll(t *testing.T, streams []io.ReadCloser) []string {
	t.Helper()
	out := make([]string, 0, len(streams))
	for _, s := range streams {
		b, err := io.ReadAll(s)
		require.NoError(t, err)
		out = append(out, string(b))
	}
	require.NoError(t, CloseAll(streams))
	return out
}

func TestFSAccessorOpenStreams(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/project/changes/a.yaml": "project",
		"/shared/changes/a.yaml":  "shared",
		"/shared/changes/b.yaml":  "only shared",
	})
	acc := NewFSAccessor(fsys, "/project", "/shared")

	t.Run("one stream per root in order", func(t *testing.T) {
		streams, err := acc.OpenStreams("changes/a.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"project", "shared"}, readAll(t, streams))
	})

	t.Run("single root match", func(t *testing.T) {
		streams, err := acc.OpenStreams("changes/b.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"only shared"}, readAll(t, streams))
	})

	t.Run("absolute path is not joined to roots", func(t *testing.T) {
		streams, err := acc.OpenStreams("/shared/changes/b.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"only shared"}, readAll(t, streams))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := acc.OpenStreams("changes/missing.yaml")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("directory is not a stream", func(t *testing.T) {
		_, err := acc.OpenStreams("changes")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFuzzyAccessorOpenStreams(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/project/changes/a.yaml": "a",
	})
	acc := NewFuzzyAccessor(NewFSAccessor(fsys, "/project"))

	t.Run("exact path", func(t *testing.T) {
		streams, err := acc.OpenStreams("changes/a.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, readAll(t, streams))
	})

	t.Run("leading slash stripped", func(t *testing.T) {
		streams, err := acc.OpenStreams("/changes/a.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, readAll(t, streams))
	})

	t.Run("only one slash stripped", func(t *testing.T) {
		_, err := acc.OpenStreams("//changes/a.yaml")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("not found after all alternates", func(t *testing.T) {
		_, err := acc.OpenStreams("/changes/b.yaml")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("locate", func(t *testing.T) {
		files, err := acc.Locate("/changes/a.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"/project/changes/a.yaml"}, files)
	})
}

func TestAlternatePaths(t *testing.T) {
	assert.Equal(t, []string{"a/b.yaml"}, AlternatePaths("/a/b.yaml"))
	assert.Equal(t, []string{"/a.yaml"}, AlternatePaths("//a.yaml"))
	assert.Nil(t, AlternatePaths("a/b.yaml"))
}

func TestList(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/project/changes/a.yaml":        "",
		"/project/changes/nested/b.yaml": "",
		"/shared/changes/a.yaml":         "",
		"/shared/changes/c.yaml":         "",
	})
	acc := NewFSAccessor(fsys, "/project", "/shared")

	t.Run("files recursive, de-duplicated and sorted", func(t *testing.T) {
		got, err := acc.List("changes", true, false, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"changes/a.yaml", "changes/c.yaml", "changes/nested/b.yaml"}, got)
	})

	t.Run("non recursive with directories", func(t *testing.T) {
		got, err := acc.List("changes", true, true, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"changes/a.yaml", "changes/c.yaml", "changes/nested"}, got)
	})

	t.Run("empty is nil", func(t *testing.T) {
		got, err := acc.List("nothing", true, true, true)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("fuzzy union", func(t *testing.T) {
		got, err := NewFuzzyAccessor(acc).List("/changes", true, false, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"changes/a.yaml", "changes/c.yaml"}, got)
	})

	t.Run("fuzzy empty is nil", func(t *testing.T) {
		got, err := NewFuzzyAccessor(acc).List("/nothing", true, true, true)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
