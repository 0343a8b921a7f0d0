package gaps

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/ats-match/internal/types"
)

// ProficiencyClassifier infers how deep a candidate's experience with a
// specific skill runs. The regex implementation is the default; the interface
// lets a smarter tokenizer-based classifier slot in later.
type ProficiencyClassifier interface {
	Classify(text, skill string) types.ProficiencyLevel
}

// RegexProficiencyClassifier classifies proficiency with tiered patterns
// checked strongest-first; the first tier that matches wins, and text that
// matches nothing defaults to beginner.
type RegexProficiencyClassifier struct{}

// proficiencyTiers are checked in order. Each pattern is a printf template
// receiving the regex-quoted skill term.
var proficiencyTiers = []struct {
	level   types.ProficiencyLevel
	pattern string
}{
	{
		level:   types.ProficiencyExpert,
		pattern: `expert\s+(?:in|with)\s+%[1]s|%[1]s\s+expert|mastery\s+of\s+%[1]s|deep\s+expertise\s+(?:in|with)\s+%[1]s`,
	},
	{
		level:   types.ProficiencyAdvanced,
		pattern: `advanced\s+%[1]s|extensive\s+experience\s+(?:in|with)\s+%[1]s|proficient\s+(?:in|with)\s+%[1]s|strong\s+%[1]s`,
	},
	{
		level:   types.ProficiencyIntermediate,
		pattern: `experience\s+(?:in|with)\s+%[1]s|worked\s+with\s+%[1]s|familiar\s+with\s+%[1]s|knowledge\s+of\s+%[1]s|%[1]s\s+developer`,
	},
}

// Classify returns the strongest proficiency tier whose pattern matches the
// text for the given skill, defaulting to beginner. Total over all inputs.
func (RegexProficiencyClassifier) Classify(text, skill string) types.ProficiencyLevel {
	lowered := strings.ToLower(text)
	quoted := regexp.QuoteMeta(strings.ToLower(skill))

	for _, tier := range proficiencyTiers {
		pattern := regexp.MustCompile(fmt.Sprintf(tier.pattern, quoted))
		if pattern.MatchString(lowered) {
			return tier.level
		}
	}
	return types.ProficiencyBeginner
}

// skillYearsWindow bounds how far a years figure may sit from the skill term
// within one sentence fragment.
const skillYearsWindow = 40

// SkillYears extracts a years-of-experience figure scoped to one skill, e.g.
// "5 years of Python" or "Python (3 years)". Returns 0 when no scoped figure
// is present.
func SkillYears(text, skill string) int {
	lowered := strings.ToLower(text)
	quoted := regexp.QuoteMeta(strings.ToLower(skill))

	patterns := []*regexp.Regexp{
		regexp.MustCompile(fmt.Sprintf(`(\d+)\+?\s*years?[^.\n]{0,%d}?%s`, skillYearsWindow, quoted)),
		regexp.MustCompile(fmt.Sprintf(`%s[^.\n]{0,%d}?(\d+)\+?\s*years?`, quoted, skillYearsWindow)),
	}

	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(lowered); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				return years
			}
		}
	}
	return 0
}
