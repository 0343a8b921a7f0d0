// Package suggest turns factor gaps and missing skills into categorized,
// severity-ranked suggestion records ready for display.
package suggest

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-match/internal/types"
)

// generalTemplate is one static suggestion emitted after the skill-gap
// suggestions. Action items come from the matching breakdown improvement when
// the factor has significant headroom, otherwise from the template's own
// fallback items.
type generalTemplate struct {
	category    types.SuggestionCategory
	factorLabel string
	title       string
	description string
	actionItems []string
}

var generalTemplates = []generalTemplate{
	{
		category:    types.CategorySkills,
		factorLabel: "Skill Diversity",
		title:       "Broaden your skill coverage",
		description: "Your resume covers a narrow slice of the skills the posting asks for.",
		actionItems: []string{
			"Add the supporting tools and frameworks you used alongside your core stack",
		},
	},
	{
		category:    types.CategoryExperience,
		factorLabel: "Experience Alignment",
		title:       "Make your experience explicit",
		description: "Recruiters and screening systems look for a clear statement of how long you have worked in the field.",
		actionItems: []string{
			"State your total years of experience in your summary",
			"Lead each role with its duration and scope",
		},
	},
	{
		category:    types.CategoryFormat,
		factorLabel: "Resume Format",
		title:       "Tighten the resume structure",
		description: "A conventional structure with clear headings and bullet points parses cleanly in screening systems.",
		actionItems: []string{
			"Use standard section headings (Experience, Education, Skills)",
			"Convert paragraph descriptions into bullet points",
			"Quantify achievements with numbers, percentages, or amounts",
		},
	},
	{
		category:    types.CategoryEducation,
		factorLabel: "Education Match",
		title:       "Surface your credentials",
		description: "Degrees and certifications the posting names should be easy to find on your resume.",
		actionItems: []string{
			"List degrees and certifications using the posting's wording",
			"Include relevant in-progress coursework or certifications",
		},
	},
}

// severityFor maps a skill-gap category's importance to a suggestion severity.
func severityFor(importance types.Importance) types.Severity {
	switch importance {
	case types.ImportanceCritical:
		return types.SeverityHigh
	case types.ImportanceRecommended:
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}

// Generate builds the full suggestion list for one analysis: one suggestion
// per skill-gap category that has missing skills, then the general templates
// (minus the skills template, which would duplicate the gap suggestions),
// then a keyword-optimization suggestion listing every extracted job keyword.
func Generate(breakdown types.ScoreBreakdown, skillGaps []types.SkillGapCategory, jobKeywords []types.ExtractedKeyword) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, len(skillGaps)+len(generalTemplates))

	for _, gap := range skillGaps {
		if len(gap.Missing) == 0 {
			continue
		}
		suggestions = append(suggestions, gapSuggestion(gap))
	}

	improvementsByLabel := make(map[string]types.FactorImprovement, len(breakdown.Improvements))
	for _, imp := range breakdown.Improvements {
		improvementsByLabel[imp.Category] = imp
	}

	for _, tmpl := range generalTemplates {
		if tmpl.category == types.CategorySkills {
			continue
		}

		severity := types.SeverityLow
		items := tmpl.actionItems
		if imp, ok := improvementsByLabel[tmpl.factorLabel]; ok {
			severity = types.SeverityMedium
			if len(imp.SuggestedImprovements) > 0 {
				items = imp.SuggestedImprovements
			}
		}

		suggestions = append(suggestions, types.Suggestion{
			Title:       tmpl.title,
			Description: tmpl.description,
			Severity:    severity,
			Category:    tmpl.category,
			ActionItems: items,
		})
	}

	suggestions = append(suggestions, keywordSuggestion(jobKeywords))
	return suggestions
}

// gapSuggestion builds the suggestion for one category with missing skills.
func gapSuggestion(gap types.SkillGapCategory) types.Suggestion {
	missing := make([]string, len(gap.Missing))
	items := make([]string, len(gap.Missing))
	for i, skill := range gap.Missing {
		missing[i] = skill.Word
		items[i] = fmt.Sprintf("Add %s to your skills or experience sections if you have used it", skill.Word)
	}

	return types.Suggestion{
		Title:       fmt.Sprintf("Close the %s gap", gap.Category),
		Description: fmt.Sprintf("The posting mentions %s, which your resume does not", strings.Join(missing, ", ")),
		Severity:    severityFor(gap.Importance),
		Category:    types.CategorySkills,
		ActionItems: items,
	}
}

// keywordSuggestion lists every extracted job keyword as an action item. An
// empty keyword list yields empty action items, not an absent suggestion.
func keywordSuggestion(jobKeywords []types.ExtractedKeyword) types.Suggestion {
	items := make([]string, 0, len(jobKeywords))
	for _, kw := range jobKeywords {
		items = append(items, fmt.Sprintf("Include the term \"%s\" where it reflects real experience", kw.Word))
	}

	return types.Suggestion{
		Title:       "Optimize for the posting's keywords",
		Description: "Screening systems rank resumes that reuse the posting's own terminology higher.",
		Severity:    types.SeverityMedium,
		Category:    types.CategoryKeywords,
		ActionItems: items,
	}
}
