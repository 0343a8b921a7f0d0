package scoring

import "regexp"

// Partial weights for the four format checks; they sum to 1.0.
const (
	sectionHeaderWeight = 0.3
	bulletWeight        = 0.2
	quantifiedWeight    = 0.3
	actionVerbWeight    = 0.2
)

var (
	sectionHeaderPattern = regexp.MustCompile(`(?im)^\s*(work experience|professional experience|experience|education|skills|summary|objective|projects|certifications)\b`)
	bulletPattern        = regexp.MustCompile(`(?m)^\s*([-*•·]|\d+\.)\s+`)
	quantifiedPattern    = regexp.MustCompile(`(?i)(\d+(\.\d+)?\s*%|\$\s*\d[\d,]*|\d+\+?\s*(years?|months?|weeks?))`)
	actionVerbPattern    = regexp.MustCompile(`(?i)\b(led|built|developed|designed|implemented|launched|managed|created|improved|delivered|reduced|increased|automated|optimized|migrated|architected)\b`)
)

// FormatQuality scores resume formatting with four independent boolean
// checks: standard section headers, bullet markers, quantified achievements,
// and action verbs. Each present check contributes its fixed partial weight.
func FormatQuality(resumeText string) float64 {
	score := 0.0
	if sectionHeaderPattern.MatchString(resumeText) {
		score += sectionHeaderWeight
	}
	if bulletPattern.MatchString(resumeText) {
		score += bulletWeight
	}
	if quantifiedPattern.MatchString(resumeText) {
		score += quantifiedWeight
	}
	if actionVerbPattern.MatchString(resumeText) {
		score += actionVerbWeight
	}
	return score
}
