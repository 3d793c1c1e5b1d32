package docling_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/paperext/paperext"
	"github.com/paperext/paperext/docling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paper.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0o644))
	return path
}

func TestClient_Convert(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/convert", r.URL.Path)

			file, hdr, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "paper.pdf", hdr.Filename)
			assert.Equal(t, "2", r.FormValue("pages"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"schema_name": "DoclingDocument",
				"name": "paper.pdf",
				"texts": [{"text": "Converted title", "label": "section_header", "level": 1}]
			}`))
		}))
		defer srv.Close()

		client := docling.NewClient(srv.URL, docling.WithPages(2))
		doc, err := client.Convert(context.Background(), writeTestPDF(t))
		require.NoError(t, err)

		assert.Equal(t, paperext.DoclingSchema, doc.Schema)
		require.Len(t, doc.Blocks, 1)
		assert.Equal(t, "Converted title", doc.Blocks[0].Text)
	})

	t.Run("ServiceError", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := docling.NewClient(srv.URL)
		_, err := client.Convert(context.Background(), writeTestPDF(t))
		require.Error(t, err)
		assert.Equal(t, paperext.EINTERNAL, paperext.ErrorCode(err))
	})

	t.Run("MissingFile", func(t *testing.T) {
		t.Parallel()

		client := docling.NewClient("http://localhost:0")
		_, err := client.Convert(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
		require.Error(t, err)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := docling.NewClient("http://localhost:0")
		_, err := client.Convert(ctx, writeTestPDF(t))
		require.Error(t, err)
	})
}
