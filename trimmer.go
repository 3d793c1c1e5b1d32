package paperext

// PageTrimmer produces a copy of a PDF containing only its leading pages.
// Large documents are trimmed before conversion since only the early pages
// carry title, abstract, and introduction.
type PageTrimmer interface {
	// Trim writes the first pages of src to dst. Implementations copy the
	// whole document when it has fewer pages than requested.
	Trim(src, dst string, pages int) error
}
