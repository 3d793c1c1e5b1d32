package paperext

import (
	"regexp"
	"strings"
)

// Section-name keyword sets shared by the extraction passes. Matching is
// case-insensitive substring containment against header text.
var (
	titleExcludeSections = []string{"ABSTRACT", "INTRODUCTION", "EXPERIMENTAL", "METHODS", "RESULTS"}
	abstractStopSections = []string{"INTRODUCTION", "EXPERIMENTAL", "METHODS", "RESULTS"}
	mainAltStartSections = []string{"METHODOLOGY", "MATERIALS", "EXPERIMENTAL"}
	mainStopSections     = []string{"RESULTS", "REFERENCES", "BIBLIOGRAPHY", "ACKNOWLEDGMENT"}
)

// metadataMarkers flag obvious non-content inside otherwise collectable
// blocks. Blocks containing one are skipped, not terminal.
var metadataMarkers = []string{"correspondence:", "received:", "funding:", "doi:", "copyright"}

// inlineAbstractPattern matches an "ABSTRACT:" marker embedded mid-block.
// Matching runs on the original text, not an upper-cased copy, because case
// mapping can change byte lengths and the match offsets are used to slice.
var inlineAbstractPattern = regexp.MustCompile(`(?i)abstract:`)

// structuredAbstractMarkers identify the labeled parts of a structured
// abstract when no ABSTRACT header exists.
var structuredAbstractMarkers = []string{"introduction:", "objective:", "methodology:", "results:", "conclusion:"}

// Page ceilings bounding how deep into the document each pass reads, so
// malformed documents without terminating headers cannot balloon the output.
const (
	maxMainPage     = 6
	maxFallbackPage = 3
)

// Per-section collection states. Enumerated rather than boolean so illegal
// flag combinations are unrepresentable.
type collectState int

const (
	collectIdle collectState = iota
	collectActive
	collectDone
)

// Extract validates the document's schema tag and extracts title, abstract,
// and main text, backfilling empty fields from secondary signals. It returns
// an EINVALIDFORMAT error value, never a panic, when the input is not a
// recognized converter export, so callers can distinguish "not this document
// type" from internal failure.
func Extract(doc *Document) (Result, error) {
	if doc == nil || doc.Schema != DoclingSchema {
		return Result{}, Errorf(EINVALIDFORMAT, "not a valid Docling document")
	}

	res := ExtractPaper(doc)

	if res.Title == "" {
		res.Title = backfillTitle(doc.Blocks)
	}
	if res.Abstract == "" {
		res.Abstract = backfillAbstract(doc.Blocks)
	}

	return res, nil
}

// ExtractPaper runs the primary section extractor: independent forward scans
// for title, abstract, and main text over the same block sequence, plus one
// lenient early-page pass when both abstract and main text come up empty.
func ExtractPaper(doc *Document) Result {
	title := extractTitle(doc.Blocks)
	abstract := extractAbstract(doc.Blocks)
	main := extractMainText(doc.Blocks)

	if abstract == "" && len(main) == 0 {
		main = extractLenient(doc.Blocks)
	}

	return Result{
		Title:    title,
		Abstract: abstract,
		MainText: strings.Join(main, " "),
	}
}

// extractTitle looks for a level-1 section header first, then falls back to
// the first substantial header that is not a standard section name.
func extractTitle(blocks []TextBlock) string {
	for i := range blocks {
		b := &blocks[i]
		if b.Label != LabelSectionHeader || b.Level != 1 {
			continue
		}
		if !strings.Contains(strings.ToUpper(b.Text), "RESULTS") && len(b.Text) > 5 {
			return b.Text
		}
	}

	for i := range blocks {
		b := &blocks[i]
		if b.Label != LabelSectionHeader {
			continue
		}
		text := strings.TrimSpace(b.Text)
		if len(text) > 20 && !containsAnyFold(text, titleExcludeSections) {
			return text
		}
	}

	return ""
}

// extractAbstract collects blocks between an ABSTRACT header (or inline
// "ABSTRACT:" marker) and the next major section header.
func extractAbstract(blocks []TextBlock) string {
	var fragments []string
	state := collectIdle

	for i := range blocks {
		b := &blocks[i]
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}

		switch state {
		case collectIdle:
			if b.Label == LabelSectionHeader && strings.EqualFold(text, "ABSTRACT") {
				state = collectActive
				continue
			}
			// Inline "ABSTRACT: ..." keeps the remainder of the block.
			if loc := inlineAbstractPattern.FindStringIndex(text); loc != nil {
				rest := strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
				if rest != "" {
					fragments = append(fragments, rest)
				}
				state = collectActive
			}

		case collectActive:
			if b.Label == LabelSectionHeader && containsAnyFold(text, abstractStopSections) {
				state = collectDone
				break
			}
			if b.Label == LabelPageHeader || b.Label == LabelPageFooter {
				continue
			}
			if containsAnyLower(text, metadataMarkers) {
				continue
			}
			fragments = append(fragments, text)
		}

		if state == collectDone {
			break
		}
	}

	return strings.Join(fragments, " ")
}

// extractMainText collects everything from the introduction (or an alternate
// methodology/materials start point) up to the results or references
// section, bounded to the early pages. The triggering header itself is the
// first fragment.
func extractMainText(blocks []TextBlock) []string {
	var fragments []string
	state := collectIdle

	for i := range blocks {
		b := &blocks[i]
		text := strings.TrimSpace(b.Text)
		if text == "" || b.Label == LabelPageHeader || b.Label == LabelPageFooter {
			continue
		}

		if b.Label == LabelSectionHeader {
			upper := strings.ToUpper(text)
			if strings.Contains(upper, "INTRODUCTION") || containsAnyFold(text, mainAltStartSections) {
				state = collectActive
				fragments = append(fragments, text)
				continue
			}
			if state == collectActive && containsAnyFold(text, mainStopSections) {
				break
			}
		}

		if state == collectActive && b.Page() <= maxMainPage {
			if !containsAnyLower(text, metadataMarkers) {
				fragments = append(fragments, text)
			}
		}
	}

	return fragments
}

// extractLenient is the last resort of the primary extractor: any
// substantial early-page block that is not a header/footer or metadata.
func extractLenient(blocks []TextBlock) []string {
	var fragments []string

	for i := range blocks {
		b := &blocks[i]
		text := strings.TrimSpace(b.Text)
		if text == "" || b.Label == LabelPageHeader || b.Label == LabelPageFooter {
			continue
		}
		if len(text) < 5 || b.Page() > maxFallbackPage {
			continue
		}
		if containsAnyLower(text, metadataMarkers) {
			continue
		}
		fragments = append(fragments, text)
	}

	return fragments
}

// backfillTitle retries title detection with looser rules: any long
// non-section header, or a large-font first-page paragraph.
func backfillTitle(blocks []TextBlock) string {
	for i := range blocks {
		b := &blocks[i]
		text := strings.TrimSpace(b.Text)
		if b.Label == LabelSectionHeader && len(text) > 30 && !containsAnyFold(text, titleExcludeSections) {
			return text
		}
		if b.Label == LabelParagraph && b.Page() == 1 && b.FontSize > 12 {
			return text
		}
	}
	return ""
}

// backfillAbstract joins structured-abstract fragments found before the
// introduction header.
func backfillAbstract(blocks []TextBlock) string {
	var fragments []string

	for i := range blocks {
		b := &blocks[i]
		text := strings.TrimSpace(b.Text)
		if containsAnyLower(text, structuredAbstractMarkers) {
			fragments = append(fragments, text)
		}
		if b.Label == LabelSectionHeader && strings.Contains(strings.ToLower(text), "introduction") {
			break
		}
	}

	return strings.Join(fragments, " ")
}

// containsAnyFold reports whether text contains any keyword,
// case-insensitively. Keywords are stored upper-case.
func containsAnyFold(text string, keywords []string) bool {
	upper := strings.ToUpper(text)
	for _, kw := range keywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// containsAnyLower reports whether the lower-cased text contains any of the
// lower-cased keywords.
func containsAnyLower(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
