package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paperext/paperext"
	"github.com/paperext/paperext/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("WritesNewFile", func(t *testing.T) {
		t.Parallel()
		store := fs.NewPDFStore(t.TempDir())

		path, existed, err := store.Save("my paper.pdf", []byte("%PDF"))
		require.NoError(t, err)
		assert.False(t, existed)
		assert.Equal(t, "my_paper.pdf", filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF"), data)
	})

	t.Run("ReusesExistingFile", func(t *testing.T) {
		t.Parallel()
		store := fs.NewPDFStore(t.TempDir())

		first, existed, err := store.Save("paper.pdf", []byte("%PDF v1"))
		require.NoError(t, err)
		assert.False(t, existed)

		second, existed, err := store.Save("paper.pdf", []byte("%PDF v2"))
		require.NoError(t, err)
		assert.True(t, existed)
		assert.Equal(t, first, second)

		// Original content is kept.
		data, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF v1"), data)
	})

	t.Run("StripsDirectoryComponents", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		store := fs.NewPDFStore(dir)

		path, _, err := store.Save("../../etc/passwd.pdf", []byte("%PDF"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "passwd.pdf"), path)
	})

	t.Run("RejectsEmptyFilename", func(t *testing.T) {
		t.Parallel()
		store := fs.NewPDFStore(t.TempDir())

		_, _, err := store.Save("  ", []byte("%PDF"))
		require.Error(t, err)
		assert.Equal(t, paperext.EINVALID, paperext.ErrorCode(err))
	})
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a_b.pdf", fs.SanitizeFilename("a b.pdf"))
	assert.Equal(t, "c.pdf", fs.SanitizeFilename("/tmp/up/c.pdf"))
	assert.Empty(t, fs.SanitizeFilename(""))
}

func TestTrimmedPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/data/paper_out.pdf", fs.TrimmedPath("/data/paper.pdf"))
	assert.Equal(t, "noext_out", fs.TrimmedPath("noext"))
}
