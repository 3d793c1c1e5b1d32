package paperext

import (
	"context"
	"time"
)

// Paper represents the stored result of one extraction run, keyed by the
// sanitized filename of the uploaded PDF so repeat uploads can be served
// without reconversion.
type Paper struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentHash string    `json:"contentHash"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Pages       int       `json:"pages"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the paper contains invalid fields.
func (p *Paper) Validate() error {
	if p.Filename == "" {
		return Errorf(EINVALID, "paper filename required")
	}
	if p.Text == "" {
		return Errorf(EINVALID, "paper text required")
	}
	return nil
}

// PaperService represents a service for managing stored extractions.
type PaperService interface {
	// CreatePaper creates a new paper record.
	CreatePaper(ctx context.Context, paper *Paper) error

	// FindPaperByID retrieves a paper by ID.
	// Returns ENOTFOUND if the paper does not exist.
	FindPaperByID(ctx context.Context, id string) (*Paper, error)

	// FindPapers retrieves papers matching the filter, newest first.
	FindPapers(ctx context.Context, filter PaperFilter) ([]*Paper, error)

	// DeletePaper permanently removes a paper.
	// Returns ENOTFOUND if the paper does not exist.
	DeletePaper(ctx context.Context, id string) error
}

// PaperFilter represents a filter for FindPapers.
type PaperFilter struct {
	ID          *string `json:"id"`
	Filename    *string `json:"filename"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
