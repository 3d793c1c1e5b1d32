package paperext

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun    = regexp.MustCompile(`\s+`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,;:?!])`)
	pipeSpacing      = regexp.MustCompile(`\s*\|\s*`)
	tildeSpacing     = regexp.MustCompile(`\s*~\s*`)
	missingSpace     = regexp.MustCompile(`([a-z])([A-Z])`)
	ligatureArtifact = regexp.MustCompile(`[ŒœŸÿ]`)
	brokenWord       = regexp.MustCompile(`(\w)-\s+(\w)`)
)

// Normalize repairs spacing, punctuation, hyphenation breaks, and OCR
// artifacts in assembled text. The repairs run once, in a fixed order:
// broken-word rejoining must run after whitespace collapsing, or words
// split across multiple spaces are missed, and it deliberately runs after
// the case-boundary repair so "anti- Inflammatory" rejoins to
// "antiInflammatory" rather than splitting at the new case boundary.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = spaceBeforePunct.ReplaceAllString(s, "$1")
	s = pipeSpacing.ReplaceAllString(s, " | ")
	s = tildeSpacing.ReplaceAllString(s, " ")
	// Missing inter-word space at a case boundary ("theIntroduction").
	s = missingSpace.ReplaceAllString(s, "$1 $2")
	s = ligatureArtifact.ReplaceAllString(s, "")
	// Words broken across a line by a trailing hyphen.
	s = brokenWord.ReplaceAllString(s, "$1$2")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
