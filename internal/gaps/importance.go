package gaps

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-match/internal/types"
)

// proximityWindow is how many characters around a term count as "near" when
// scanning for requirement language.
const proximityWindow = 100

// Requirement-language patterns, checked in precedence order: explicit
// hard-requirement wording beats preference wording beats nice-to-have
// wording. "required" is matched exactly so that "requires N years" phrasing
// elsewhere in a sentence does not escalate every nearby skill.
var (
	criticalLanguage    = regexp.MustCompile(`\b(required|must[- ]have|essential|mandatory)\b`)
	recommendedLanguage = regexp.MustCompile(`\b(preferred|desired|desirable)\b`)
	niceToHaveLanguage  = regexp.MustCompile(`\b(nice to have|a plus|bonus)\b`)
)

// ExplicitImportance searches the job text for requirement language near the
// term. Returns false when the term is absent or no requirement wording
// appears in its window, leaving the decision to the missing-count heuristic.
func ExplicitImportance(jobText, term string) (types.Importance, bool) {
	lowered := strings.ToLower(jobText)
	idx := strings.Index(lowered, strings.ToLower(term))
	if idx < 0 {
		return "", false
	}

	start := idx - proximityWindow
	if start < 0 {
		start = 0
	}
	end := idx + len(term) + proximityWindow
	if end > len(lowered) {
		end = len(lowered)
	}
	window := lowered[start:end]

	switch {
	case criticalLanguage.MatchString(window):
		return types.ImportanceCritical, true
	case recommendedLanguage.MatchString(window):
		return types.ImportanceRecommended, true
	case niceToHaveLanguage.MatchString(window):
		return types.ImportanceNiceToHave, true
	default:
		return "", false
	}
}

// HeuristicImportance grades a category by how many of its skills are
// missing: a category the candidate is mostly lacking is probably the one the
// job cares about.
func HeuristicImportance(missingCount int) types.Importance {
	switch {
	case missingCount > 3:
		return types.ImportanceCritical
	case missingCount > 1:
		return types.ImportanceRecommended
	default:
		return types.ImportanceNiceToHave
	}
}
