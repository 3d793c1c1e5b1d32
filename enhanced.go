package paperext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capture state of the enhanced extractor's single scan. States are mutually
// exclusive; main capture ends in captureEnded without restarting an earlier
// section.
type captureState int

const (
	captureNone captureState = iota
	captureAbstract
	captureIntro
	captureMain
	captureEnded
)

// Tunable limits of the enhanced extractor. The values are empirically
// chosen against the corpus the heuristics were developed on; override them
// rather than re-deriving.
var (
	// TitleOverlapThreshold is the word-set overlap above which a fragment
	// is considered a repeat of the title and dropped.
	TitleOverlapThreshold = 0.7

	// MaxMainFragments caps the main-content buffer to bound output size.
	MaxMainFragments = 8

	// MinFragments is the assembled-fragment count below which the enhanced
	// pass discards its result and rebuilds with a simpler filter.
	MinFragments = 5
)

const (
	maxAbstractPage   = 3
	maxIntroPage      = 5
	maxRebuildPage    = 4
	maxFallbackBlocks = 30
)

// enhancedMainSections start main-content capture.
var enhancedMainSections = []string{"METHODS", "METHODOLOGY", "MATERIALS", "EXPERIMENTAL", "DISCUSSION", "ANALYSIS"}

// structuredHeadings mark the labeled parts of a structured abstract.
// Matched case-sensitively: the colon-suffixed capitalized form is the
// structured-abstract convention.
var structuredHeadings = []string{
	"Introduction:", "Objective:", "Methodology:", "Results:", "Conclusion:",
	"Background:", "Methods:", "Purpose:", "Aim:", "Summary:",
}

// inlineMetadataKeywords filter author, contact, and institution fragments
// at every inclusion decision of the enhanced and full-page passes.
var inlineMetadataKeywords = []string{
	"correspondence:", "received:", "funding:", "doi:", "copyright",
	"@", "university", "institute", "department", "college", "school of",
	"faculty of", "laboratory", "lab ", "center for", "centre for",
	"hospital", "medical center", "research center", "orcid", "author",
	"affiliation",
}

// rebuildMetadataKeywords extend the inline filter with journal metadata for
// the section-unaware rebuild pass.
var rebuildMetadataKeywords = []string{
	"correspondence:", "received:", "funding:", "doi:", "copyright",
	"journal of", "volume", "issue",
	"@", "university", "institute", "department", "college", "school of",
	"faculty of", "laboratory", "lab ", "center for", "centre for",
	"hospital", "medical center", "research center", "orcid", "author",
	"affiliation",
}

// journalFragments are publisher names whose short mentions are page
// furniture, not content. Sample configuration from the tuning corpus.
var journalFragments = []string{
	"phytochemical analysis", "john wiley", "doi.org", "elsevier", "springer",
}

// ExtractEnhanced re-scans the document with four collection buffers and a
// single capture state, applying both noise classifiers and the inline
// metadata filter before accepting any block. It handles structured
// abstracts (Introduction:/Objective:/...) that the primary extractor
// misses, dedupes title repeats and near-identical sentences, and rebuilds
// from scratch with a simpler filter when too few fragments survive.
func ExtractEnhanced(doc *Document) string {
	blocks := doc.Blocks
	title := enhancedTitle(blocks)

	var abstractBuf, introBuf, mainBuf []string
	state := captureNone

	for i := range blocks {
		b := &blocks[i]
		text := strings.TrimSpace(b.Text)
		if text == "" || b.Label == LabelPageHeader || b.Label == LabelPageFooter {
			continue
		}
		if utf8.RuneCountInString(text) < 3 {
			continue
		}

		if b.Label == LabelSectionHeader {
			upper := strings.ToUpper(text)
			switch {
			case upper == "ABSTRACT":
				state = captureAbstract
				continue
			case strings.Contains(upper, "INTRODUCTION"):
				state = captureIntro
				continue
			case containsAnyFold(text, enhancedMainSections):
				state = captureMain
				continue
			case state == captureMain && containsAnyFold(text, mainStopSections):
				state = captureEnded
			}
		}

		switch state {
		case captureAbstract:
			if containsAny(text, structuredHeadings) {
				abstractBuf = append(abstractBuf, text)
				continue
			}
			if b.Page() <= maxAbstractPage && acceptBlock(text) {
				abstractBuf = append(abstractBuf, text)
			}
		case captureIntro:
			if b.Page() <= maxIntroPage && acceptBlock(text) {
				introBuf = append(introBuf, text)
			}
		case captureMain:
			if b.Page() <= maxMainPage && acceptBlock(text) {
				mainBuf = append(mainBuf, text)
			}
		}
	}

	var fragments []string
	if title != "" {
		fragments = append(fragments, title)
	}
	fragments = append(fragments, abstractBuf...)
	fragments = append(fragments, introBuf...)
	if len(mainBuf) > MaxMainFragments {
		mainBuf = mainBuf[:MaxMainFragments]
	}
	fragments = append(fragments, mainBuf...)

	if title != "" && len(fragments) > 1 {
		fragments = dropTitleRepeats(title, fragments)
	}

	if len(fragments) < MinFragments {
		fragments = rebuildLenient(blocks, title)
	}

	return Normalize(dedupeSentences(strings.Join(fragments, " ")))
}

// ExtractFullPages dumps every early-page block that survives both noise
// classifiers and the metadata filter; when that yields nothing it falls
// back to the first blocks in document order under the same filters.
func ExtractFullPages(doc *Document) string {
	fragments := collectFullPage(doc.Blocks, func(b *TextBlock) bool {
		return b.Page() <= maxFallbackPage
	})

	if len(fragments) == 0 && len(doc.Blocks) > 0 {
		head := doc.Blocks
		if len(head) > maxFallbackBlocks {
			head = head[:maxFallbackBlocks]
		}
		fragments = collectFullPage(head, func(*TextBlock) bool { return true })
	}

	return Normalize(strings.Join(fragments, " "))
}

func collectFullPage(blocks []TextBlock, include func(*TextBlock) bool) []string {
	var fragments []string
	for i := range blocks {
		b := &blocks[i]
		if !include(b) {
			continue
		}
		text := strings.TrimSpace(b.Text)
		if text == "" || b.Label == LabelPageHeader || b.Label == LabelPageFooter {
			continue
		}
		if acceptBlock(text) {
			fragments = append(fragments, text)
		}
	}
	return fragments
}

// acceptBlock applies the inline metadata filter and both noise classifiers.
func acceptBlock(text string) bool {
	return !containsAnyLower(text, inlineMetadataKeywords) &&
		!IsAuthorLine(text) &&
		!IsUnwantedContent(text)
}

// enhancedTitle finds the first substantial header that is not a standard
// section name.
func enhancedTitle(blocks []TextBlock) string {
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

// dropTitleRepeats removes every non-title fragment whose word set overlaps
// the title's beyond TitleOverlapThreshold, so the title does not recur
// verbatim inside the body.
func dropTitleRepeats(title string, fragments []string) []string {
	titleWords := wordSet(title)
	denom := len(titleWords)
	if denom == 0 {
		denom = 1
	}

	out := []string{title}
	for _, frag := range fragments[1:] {
		overlap := 0
		for w := range wordSet(frag) {
			if _, ok := titleWords[w]; ok {
				overlap++
			}
		}
		if float64(overlap)/float64(denom) < TitleOverlapThreshold {
			out = append(out, frag)
		}
	}
	return out
}

// rebuildLenient discards section-awareness and keeps every early-page block
// that passes the simpler noise/metadata filter and is not purely numeric or
// a short publisher-name fragment.
func rebuildLenient(blocks []TextBlock, title string) []string {
	var out []string
	if title != "" {
		out = append(out, title)
	}

	for i := range blocks {
		b := &blocks[i]
		if b.Page() > maxRebuildPage {
			continue
		}
		text := strings.TrimSpace(b.Text)
		if text == "" || text == title || b.Label == LabelPageHeader || b.Label == LabelPageFooter {
			continue
		}
		if utf8.RuneCountInString(text) < 5 {
			continue
		}
		if containsAnyLower(text, rebuildMetadataKeywords) || IsAuthorLine(text) || IsUnwantedContent(text) {
			continue
		}
		if isDigits(text) {
			continue
		}
		if utf8.RuneCountInString(text) < 50 && containsAnyLower(text, journalFragments) {
			continue
		}
		out = append(out, text)
	}

	return out
}

// dedupeSentences removes repeated sentences, keeping the first occurrence
// of each lower-cased form. Sentences of ten characters or fewer are
// dropped entirely as extraction debris.
func dedupeSentences(text string) string {
	sentences := strings.Split(text, ". ")
	seen := make(map[string]struct{}, len(sentences))
	out := make([]string, 0, len(sentences))

	for _, sentence := range sentences {
		clean := strings.ToLower(strings.TrimSpace(sentence))
		if utf8.RuneCountInString(clean) <= 10 {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, sentence)
	}

	return strings.Join(out, ". ")
}

// containsAny reports case-sensitive containment of any keyword.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// wordSet returns the set of lower-cased words in text.
func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
