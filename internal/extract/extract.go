// Package extract scans free text for taxonomy skill terms.
package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-match/internal/taxonomy"
	"github.com/jonathan/ats-match/internal/types"
)

// matchScore is the confidence assigned to any taxonomy hit. Matching is
// binary (present/absent); there is no partial-confidence scoring.
const matchScore = 1.0

var tokenSplit = regexp.MustCompile(`\W+`)

// Extractor finds taxonomy terms in text. It is stateless apart from the
// injected taxonomy and safe for concurrent use.
type Extractor struct {
	tax *taxonomy.Taxonomy
}

// New returns an Extractor backed by the given taxonomy, or the default
// taxonomy when nil.
func New(tax *taxonomy.Taxonomy) *Extractor {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Extractor{tax: tax}
}

// Extract returns every taxonomy term present in the text, in taxonomy
// declaration order. Single-word terms are matched against the set of
// tokens produced by splitting on non-word runs; compound terms (anything
// containing a space or punctuation, which tokenization would split) are
// matched by substring containment. Spans point at the first occurrence in
// the lower-cased text and are display-only.
func (e *Extractor) Extract(text string) []types.ExtractedKeyword {
	lowered := strings.ToLower(text)

	tokens := make(map[string]bool)
	for _, tok := range tokenSplit.Split(lowered, -1) {
		if tok != "" {
			tokens[tok] = true
		}
	}

	keywords := make([]types.ExtractedKeyword, 0)
	for _, term := range e.tax.Terms() {
		var hit bool
		if isCompound(term.Word) {
			hit = strings.Contains(lowered, term.Word)
		} else {
			hit = tokens[term.Word]
		}
		if !hit {
			continue
		}

		start := strings.Index(lowered, term.Word)
		keywords = append(keywords, types.ExtractedKeyword{
			Category: term.Category,
			Word:     term.Word,
			Score:    matchScore,
			Start:    start,
			End:      start + len(term.Word),
		})
	}

	return keywords
}

// isCompound reports whether a term cannot survive tokenization intact,
// e.g. "machine learning", "next.js", "c++".
func isCompound(word string) bool {
	for _, r := range word {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return true
		}
	}
	return false
}
