package docling_test

import (
	"testing"

	"github.com/paperext/paperext"
	"github.com/paperext/paperext/docling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	t.Run("MapsFields", func(t *testing.T) {
		t.Parallel()
		data := []byte(`{
			"schema_name": "DoclingDocument",
			"name": "paper.pdf",
			"texts": [
				{"text": "A title", "label": "section_header", "level": 1, "prov": [{"page_no": 1}]},
				{"text": "Body text", "label": "paragraph", "font_size": 9.5, "page_number": 2},
				{"text": "No page info", "label": "paragraph"}
			]
		}`)

		doc, err := docling.ParseDocument(data)
		require.NoError(t, err)

		assert.Equal(t, paperext.DoclingSchema, doc.Schema)
		assert.Equal(t, "paper.pdf", doc.Name)
		require.Len(t, doc.Blocks, 3)

		assert.Equal(t, "A title", doc.Blocks[0].Text)
		assert.Equal(t, paperext.LabelSectionHeader, doc.Blocks[0].Label)
		assert.Equal(t, 1, doc.Blocks[0].Level)
		assert.Equal(t, 1, doc.Blocks[0].Page())

		assert.Equal(t, 2, doc.Blocks[1].Page())
		assert.Equal(t, 9.5, doc.Blocks[1].FontSize)

		assert.Equal(t, 1, doc.Blocks[2].Page())
	})

	t.Run("ProvenancePageWins", func(t *testing.T) {
		t.Parallel()
		data := []byte(`{
			"schema_name": "DoclingDocument",
			"texts": [{"text": "x", "label": "paragraph", "page_number": 5, "prov": [{"page_no": 3}]}]
		}`)

		doc, err := docling.ParseDocument(data)
		require.NoError(t, err)
		require.Len(t, doc.Blocks, 1)
		assert.Equal(t, 3, doc.Blocks[0].Page())
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		t.Parallel()
		_, err := docling.ParseDocument([]byte("{not json"))
		require.Error(t, err)
		assert.Equal(t, paperext.EINVALIDFORMAT, paperext.ErrorCode(err))
	})
}
