package scoring

import (
	"regexp"
	"strconv"
)

// Years-of-experience defaults when no pattern and no seniority keyword match.
const (
	seniorYears  = 5
	juniorYears  = 1
	neutralYears = 3
)

// ExperienceExtractor infers a years-of-experience figure from free text.
// The regex implementation below is the default; it sits behind an interface
// so a proper tokenizer can replace it without touching aggregation.
type ExperienceExtractor interface {
	Years(text string) int
}

// RegexExperienceExtractor extracts years of experience using an ordered list
// of patterns, falling back to seniority-keyword heuristics when none match.
type RegexExperienceExtractor struct{}

// yearsPatterns are tried in order; the first match wins. The bare
// "<N> years" pattern comes last so the more specific phrasings take
// precedence.
var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+in\s+the\s+(?:field|industry)`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?(?:working|professional)`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\b`),
}

var (
	seniorityPattern = regexp.MustCompile(`(?i)\b(senior|lead|principal|manager|director)\b`)
	juniorityPattern = regexp.MustCompile(`(?i)\b(junior|entry|associate|assistant)\b`)
)

// Years returns the years of experience stated in the text, or a heuristic
// default derived from seniority keywords. It is total: every input maps to
// some value, never an error.
func (RegexExperienceExtractor) Years(text string) int {
	for _, pattern := range yearsPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				return years
			}
		}
	}

	if seniorityPattern.MatchString(text) {
		return seniorYears
	}
	if juniorityPattern.MatchString(text) {
		return juniorYears
	}
	return neutralYears
}

// ExperienceAlignment buckets how the candidate's years compare to the job's
// requirement. Boundaries use >= so exact ratios land in the higher bucket,
// which keeps the score monotonic in resume years.
func ExperienceAlignment(resumeYears, jobYears int) float64 {
	if jobYears <= 0 || resumeYears >= jobYears {
		return 1.0
	}

	ratio := float64(resumeYears) / float64(jobYears)
	switch {
	case ratio >= 0.8:
		return 0.8
	case ratio >= 0.6:
		return 0.6
	default:
		return 0.4
	}
}

// AlignExperience extracts years from both texts and buckets the comparison.
func AlignExperience(extractor ExperienceExtractor, resumeText, jobText string) float64 {
	if extractor == nil {
		extractor = RegexExperienceExtractor{}
	}
	return ExperienceAlignment(extractor.Years(resumeText), extractor.Years(jobText))
}
