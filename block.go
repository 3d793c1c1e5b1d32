package paperext

// Block labels assigned by the conversion backend. Only LabelSectionHeader
// carries section-boundary semantics; page headers and footers are never
// content.
const (
	LabelSectionHeader = "section_header"
	LabelParagraph     = "paragraph"
	LabelPageHeader    = "page_header"
	LabelPageFooter    = "page_footer"
	LabelOther         = "other"
)

// DoclingSchema is the schema tag carried by documents exported by the
// Docling conversion backend. Extraction refuses documents without it.
const DoclingSchema = "DoclingDocument"

// TextBlock is one structurally-labeled unit of converted document text.
// Blocks are produced once by the converter and are read-only afterwards;
// the pipeline copies their text but never mutates them.
type TextBlock struct {
	// Text is the raw block content; may be empty.
	Text string `json:"text"`

	// Label is one of the Label* constants.
	Label string `json:"label"`

	// Level is the heading depth for section headers; level 1 is the
	// strongest title signal. Zero when unknown.
	Level int `json:"level,omitempty"`

	// PageNo is the 1-based page the block appears on. Zero means unknown
	// and is treated as page 1.
	PageNo int `json:"pageNo,omitempty"`

	// FontSize is the dominant font size of the block, when the converter
	// reports one. Used only for title backfill.
	FontSize float64 `json:"fontSize,omitempty"`
}

// Page returns the block's 1-based page number, defaulting to 1 when the
// converter did not report one.
func (b *TextBlock) Page() int {
	if b.PageNo < 1 {
		return 1
	}
	return b.PageNo
}

// Document is the structured output of a PDF conversion: an ordered sequence
// of labeled text blocks plus the schema tag identifying the converter's
// export format.
type Document struct {
	Schema string      `json:"schema"`
	Name   string      `json:"name"`
	Blocks []TextBlock `json:"blocks"`
}
