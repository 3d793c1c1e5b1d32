package paperext

import "strings"

// Sparse-result thresholds of the fallback cascade, in words of combined
// text. Empirically chosen; kept as named overridable values.
var (
	// SparseWordLimit is the word count at or below which the primary
	// result is abandoned for the full-page dump.
	SparseWordLimit = 10

	// EnhancedWordLimit is the word count below which the enhanced
	// extractor is tried as a replacement.
	EnhancedWordLimit = 100
)

// ProblemPhrases mark outputs known to be dominated by page furniture (the
// entries are journal names from the tuning corpus). Their presence triggers
// the enhanced extractor even on otherwise long results.
var ProblemPhrases = []string{"phytochemical analysis"}

// Combine joins a result's sections into one normalized paragraph: title
// first, then abstract, then main text, space-separated.
func Combine(res Result) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{res.Title, res.Abstract, res.MainText} {
		if t := strings.TrimSpace(s); t != "" {
			parts = append(parts, t)
		}
	}
	return Normalize(strings.Join(parts, " "))
}

// candidate is one extraction strategy's output with its quality score.
type candidate struct {
	text  string
	words int
}

func newCandidate(text string) candidate {
	return candidate{text: text, words: len(strings.Fields(text))}
}

// ExtractText runs the full extraction cascade: the primary section
// extractor, then, depending on how sparse its combined output is, the
// full-page dump or the enhanced extractor. Returns an EINVALIDFORMAT error
// when the document lacks the converter schema tag.
func ExtractText(doc *Document) (string, error) {
	res, err := Extract(doc)
	if err != nil {
		return "", err
	}
	return SelectText(doc, res), nil
}

// SelectText picks the best extraction for a document given the primary
// result. Candidates are compared by word count: the full-page dump replaces
// a near-empty primary outright, while the enhanced extraction is adopted
// only when strictly longer.
func SelectText(doc *Document, res Result) string {
	primary := newCandidate(Combine(res))

	if primary.words <= SparseWordLimit {
		if dump := newCandidate(ExtractFullPages(doc)); dump.text != "" {
			return dump.text
		}
		return primary.text
	}

	if needsEnhanced(primary) {
		if enhanced := newCandidate(ExtractEnhanced(doc)); enhanced.words > primary.words {
			return enhanced.text
		}
	}

	return primary.text
}

// needsEnhanced reports whether a primary candidate is suspect: too short,
// missing an introduction, or carrying a known problem phrase.
func needsEnhanced(c candidate) bool {
	if c.words < EnhancedWordLimit {
		return true
	}
	lower := strings.ToLower(c.text)
	if !strings.Contains(lower, "introduction") {
		return true
	}
	for _, phrase := range ProblemPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
