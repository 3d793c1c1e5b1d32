// Package fs implements PDF file storage on the local filesystem.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paperext/paperext"
)

// PDFStore saves uploaded PDFs under a single directory, keyed by sanitized
// filename. An existing file with the same name is reused rather than
// overwritten, which lets callers skip re-processing repeat uploads.
type PDFStore struct {
	dir string
}

var _ paperext.FileStore = (*PDFStore)(nil)

// NewPDFStore returns a PDFStore rooted at dir.
func NewPDFStore(dir string) *PDFStore {
	return &PDFStore{dir: dir}
}

// Save writes data under the sanitized filename and returns the resulting
// path. When a file with that name already exists its path is returned
// unchanged with existed set.
func (s *PDFStore) Save(filename string, data []byte) (string, bool, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return "", false, paperext.Errorf(paperext.EINVALID, "invalid filename %q", filename)
	}
	path := filepath.Join(s.dir, name)

	if _, err := os.Stat(path); err == nil {
		return path, true, nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create storage dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", false, fmt.Errorf("write pdf: %w", err)
	}
	return path, false, nil
}

// SanitizeFilename strips any directory components and replaces spaces with
// underscores. Returns an empty string when nothing usable remains.
func SanitizeFilename(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return strings.ReplaceAll(name, " ", "_")
}

// TrimmedPath returns the path used for the page-trimmed copy of the PDF at
// path: the same name with an "_out" suffix before the extension.
func TrimmedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_out" + ext
}
