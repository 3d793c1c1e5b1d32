package paperext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pattern and keyword tables for the noise classifiers. Kept as data rather
// than inline logic so they can be tested and extended independently.
// Several entries (city names, a journal title) come from the corpus the
// heuristics were tuned on; they are sample configuration, not universal
// rules.

// authorPatterns match the structural shapes of author and affiliation lines.
var authorPatterns = []*regexp.Regexp{
	// Multiple names separated by commas, the typical author list format.
	regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+(?:,\s*[A-Z][a-z]+ [A-Z][a-z]+)+`),
	// Names followed by superscript or footnote affiliation markers.
	regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+[¹²³⁴⁵⁶⁷⁸⁹⁰ᵃᵇᶜᵈᵉᶠᵍʰⁱʲᵏˡᵐⁿᵒᵖʳˢᵗᵘᵛʷˣʸᶻ*†‡§¶]+`),
	// Numbered affiliation lines.
	regexp.MustCompile(`^\d+\s*[A-Z][a-z]+ [A-Z][a-z]+`),
	// Names carrying academic titles or degrees.
	regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+,?\s*(PhD|Ph\.D\.|MD|Dr\.|Prof\.|Professor)`),
	// Italian street addresses ("Via Balbi 5"). Matched case-sensitively so
	// the preposition "via" in running text stays content.
	regexp.MustCompile(`\bVia\s+[A-Z][a-z]+`),
}

// authorKeywords are lower-cased substrings that mark author, affiliation,
// address, journal, or caption content.
var authorKeywords = []string{
	// Author-specific.
	"corresponding author", "equal contribution", "present address",
	"current address", "orcid:", "email:", "e-mail:", "tel:", "fax:",
	"phone:",
	// Institutions.
	"dipartimento", "universita", "università", "university", "institute",
	"institut", "department", "college", "school of", "faculty of",
	"laboratory", "lab ", "center for", "centre for", "hospital",
	"medical center", "research center",
	// Geography and addresses.
	"avenue", "street", "road", "blvd", "boulevard", "italy",
	"genova", "salerno", "bamako", "mali",
	// Journal and publication metadata.
	"received", "accepted", "published", "correspondence:", "funding:",
	"doi:", "copyright", "journal of", "volume", "issue", "page",
	// Tables and figures.
	"table ", "figure ", "fig ", "chart ", "scheme ", "plate ",
	"anti-inflammatory activity", "carrageenan-induced",
	// Compound and caption language.
	"compounds 1", "compounds ", "compound ", "structures of", "chemical",
	"synthesis", "analysis", "characterization",
	// Footnote symbols.
	"†", "‡", "§", "¶", "*", "**", "***",
	// Institutional domain suffixes.
	".it", ".edu", ".org", ".ac.", ".univ",
}

var (
	affiliationMarkers = regexp.MustCompile(`[†‡§¶*]{1,3}`)
	emailPattern       = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	postalPattern      = regexp.MustCompile(`\b\d{4,5}\s+[A-Z][a-z]+`)
)

// affiliationSymbols are counted toward the symbol-density check.
const affiliationSymbols = "†‡§¶*,()[]{}0123456789"

// symbolDensityLimit is the fraction of symbol characters above which a line
// is treated as an affiliation marker line.
const symbolDensityLimit = 0.3

// IsAuthorLine reports whether text looks like author or affiliation
// information rather than narrative content. Strings shorter than three
// characters are trivially not useful and also classified as noise. The
// predicate is pure and intentionally biased toward over-filtering.
func IsAuthorLine(text string) bool {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < 3 {
		return true
	}

	for _, pat := range authorPatterns {
		if pat.MatchString(text) {
			return true
		}
	}

	// Three or more proper-name-shaped tokens in a short line is likely an
	// author list even without commas.
	if countNameTokens(text) >= 3 && len(text) < 200 {
		return true
	}

	lower := strings.ToLower(text)
	for _, kw := range authorKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	if symbolDensity(text) > symbolDensityLimit {
		return true
	}
	if affiliationMarkers.MatchString(text) {
		return true
	}
	if emailPattern.MatchString(text) {
		return true
	}
	// Postal-code-style address fragments ("16132 Genova").
	if postalPattern.MatchString(text) {
		return true
	}

	return false
}

// countNameTokens counts words shaped like proper names: capitalized first
// letter, lowercase remainder, longer than two characters.
func countNameTokens(text string) int {
	count := 0
	for _, word := range strings.Fields(text) {
		clean := stripNonWord(word)
		if utf8.RuneCountInString(clean) <= 2 {
			continue
		}
		runes := []rune(clean)
		if !unicode.IsUpper(runes[0]) {
			continue
		}
		rest := runes[1:]
		hasLower := false
		shaped := true
		for _, r := range rest {
			if unicode.IsUpper(r) {
				shaped = false
				break
			}
			if unicode.IsLower(r) {
				hasLower = true
			}
		}
		if shaped && hasLower {
			count++
		}
	}
	return count
}

func stripNonWord(word string) string {
	var sb strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// symbolDensity returns the fraction of characters drawn from the
// affiliation symbol set.
func symbolDensity(text string) float64 {
	total := 0
	symbols := 0
	for _, r := range text {
		total++
		if strings.ContainsRune(affiliationSymbols, r) {
			symbols++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(symbols) / float64(total)
}

// unwantedPatterns match table/figure numbering and statistical captions in
// lower-cased text.
var unwantedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^table\s+\d+`),
	regexp.MustCompile(`^figure\s+\d+`),
	regexp.MustCompile(`^fig\s+\d+`),
	regexp.MustCompile(`^chart\s+\d+`),
	regexp.MustCompile(`^scheme\s+\d+`),
	regexp.MustCompile(`^plate\s+\d+`),
	regexp.MustCompile(`^\d+\s*[a-z]\s+values`),
	regexp.MustCompile(`^\d+\s*[a-z]\s+assignments`),
	regexp.MustCompile(`anti-inflammatory activity.*on.*edema`),
	regexp.MustCompile(`carrageenan-induced.*edema`),
	regexp.MustCompile(`mean.*sem.*n\s*[=(]`),
	regexp.MustCompile(`p\s*<\s*0\.`),
	regexp.MustCompile(`student.*test`),
	regexp.MustCompile(`\bpo\s*,`),
	regexp.MustCompile(`extraction yields?`),
	regexp.MustCompile(`fractionation yield`),
}

var (
	// Compound-range mentions ("compounds 3-7") are structure-list captions.
	compoundRangePattern = regexp.MustCompile(`compounds?\s+\d+\s*[-–—]\s*\d+`)
	// A bare numeric range standing alone is a citation artifact.
	bareRangePattern = regexp.MustCompile(`^\d+\s*[-–—]\s*\d+\s*$`)
)

// journalKeywords mark journal metadata in lower-cased text.
var journalKeywords = []string{
	"received", "accepted", "published online", "publication date", "doi:",
	"issn", "copyright", "journal of", "vol.", "volume", "issue", "pages",
	"pp.", "manuscript",
}

// IsUnwantedContent reports whether text is table, figure, citation, or
// journal metadata that should be filtered out of extracted content. Like
// IsAuthorLine it is pure, total, and biased toward over-filtering.
func IsUnwantedContent(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if utf8.RuneCountInString(lower) < 3 {
		return true
	}

	for _, pat := range unwantedPatterns {
		if pat.MatchString(lower) {
			return true
		}
	}
	if compoundRangePattern.MatchString(lower) {
		return true
	}
	if bareRangePattern.MatchString(lower) {
		return true
	}
	for _, kw := range journalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	// Very short content with a digit is stray page or figure numbering.
	if utf8.RuneCountInString(lower) < 10 && strings.ContainsAny(lower, "0123456789") {
		return true
	}

	return false
}
