package pdfcpu_test

import (
	"path/filepath"
	"testing"

	"github.com/paperext/paperext"
	"github.com/paperext/paperext/pdfcpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimmer_Trim(t *testing.T) {
	t.Parallel()

	t.Run("RejectsNonPositivePages", func(t *testing.T) {
		t.Parallel()
		tr := pdfcpu.NewTrimmer()
		err := tr.Trim("in.pdf", "out.pdf", 0)
		require.Error(t, err)
		assert.Equal(t, paperext.EINVALID, paperext.ErrorCode(err))
	})

	t.Run("MissingSource", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		tr := pdfcpu.NewTrimmer()
		err := tr.Trim(filepath.Join(dir, "missing.pdf"), filepath.Join(dir, "out.pdf"), 2)
		require.Error(t, err)
	})
}
