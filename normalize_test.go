package paperext_test

import (
	"testing"

	"github.com/paperext/paperext"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("CollapsesWhitespace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "one two three", paperext.Normalize("one  two\n\tthree"))
	})

	t.Run("SpaceBeforePunctuation", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello, world.", paperext.Normalize("Hello , world ."))
	})

	t.Run("PipeSpacing", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 | Introduction", paperext.Normalize("1|Introduction"))
	})

	t.Run("TildeRemoved", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "approx 5 mg", paperext.Normalize("approx ~5 mg"))
	})

	t.Run("MissingSpaceAtCaseBoundary", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "the Introduction", paperext.Normalize("theIntroduction"))
	})

	t.Run("LigatureArtifactRemoved", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Flavonoids", paperext.Normalize("ŒFlavonoids"))
	})

	t.Run("RejoinsHyphenBreak", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "antiinflammatory", paperext.Normalize("anti-\n inflammatory"))
	})

	t.Run("TrimsResult", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "trimmed", paperext.Normalize("  trimmed  "))
	})

	t.Run("StableOnAssembledText", func(t *testing.T) {
		t.Parallel()
		in := "A  comparative study ,\nof lichen ~ extracts | from theAlps anti- oxidant screening"
		once := paperext.Normalize(in)
		assert.Equal(t, once, paperext.Normalize(once))
		assert.Equal(t, "A comparative study, of lichen extracts | from the Alps antioxidant screening", once)
	})

	t.Run("RejoinWinsOverCaseBoundary", func(t *testing.T) {
		t.Parallel()
		// Rejoining runs last, so a capitalized second half stays joined
		// after one pass even though a second pass would split it again.
		once := paperext.Normalize("anti- Inflammatory")
		assert.Equal(t, "antiInflammatory", once)
		assert.Equal(t, "anti Inflammatory", paperext.Normalize(once))
	})
}
