package paperext

import "context"

// Converter converts a PDF file into a structured Document. The conversion
// backend is an opaque, potentially slow external collaborator; callers
// bound it with the context and the pipeline never retries it.
type Converter interface {
	// Convert sends the PDF at path to the conversion backend and returns
	// the ordered block sequence of its leading pages.
	Convert(ctx context.Context, path string) (*Document, error)
}
