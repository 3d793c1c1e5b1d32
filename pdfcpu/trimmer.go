// Package pdfcpu implements PDF page trimming using the pdfcpu library.
package pdfcpu

import (
	"fmt"

	"github.com/paperext/paperext"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Trimmer writes a copy of a PDF containing only its leading pages.
// Conversion cost grows with page count, so trimming before conversion is
// the single biggest latency lever of the pipeline.
type Trimmer struct{}

var _ paperext.PageTrimmer = (*Trimmer)(nil)

// NewTrimmer returns a Trimmer.
func NewTrimmer() *Trimmer {
	return &Trimmer{}
}

// Trim writes the first pages of src to dst. Documents shorter than the
// requested page count are copied whole.
func (t *Trimmer) Trim(src, dst string, pages int) error {
	if pages < 1 {
		return paperext.Errorf(paperext.EINVALID, "page count must be positive, got %d", pages)
	}

	count, err := api.PageCountFile(src)
	if err != nil {
		return fmt.Errorf("count pages: %w", err)
	}
	if pages > count {
		pages = count
	}

	sel := []string{fmt.Sprintf("1-%d", pages)}
	if err := api.TrimFile(src, dst, sel, nil); err != nil {
		return fmt.Errorf("trim pdf: %w", err)
	}
	return nil
}
