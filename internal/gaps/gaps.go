// Package gaps cross-references job-description skills against resume skills
// per taxonomy category, classifying each as matched or missing and inferring
// proficiency and importance.
package gaps

import (
	"fmt"

	"github.com/jonathan/ats-match/internal/extract"
	"github.com/jonathan/ats-match/internal/taxonomy"
	"github.com/jonathan/ats-match/internal/types"
)

// Analyzer performs skill-gap analysis. Construct with NewAnalyzer; the zero
// value is not usable.
type Analyzer struct {
	tax         *taxonomy.Taxonomy
	extractor   *extract.Extractor
	proficiency ProficiencyClassifier
}

// NewAnalyzer returns a gap analyzer over the given taxonomy (default
// taxonomy when nil) and proficiency classifier (regex classifier when nil).
func NewAnalyzer(tax *taxonomy.Taxonomy, classifier ProficiencyClassifier) *Analyzer {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if classifier == nil {
		classifier = RegexProficiencyClassifier{}
	}
	return &Analyzer{
		tax:         tax,
		extractor:   extract.New(tax),
		proficiency: classifier,
	}
}

// AnalyzeSkillGaps extracts skills from both texts and returns one category
// per distinct taxonomy category found in the job description, in first-seen
// order. A job skill is matched when the resume's extraction contains the
// identical term in the same category. A job with no taxonomy matches yields
// an empty list.
func (a *Analyzer) AnalyzeSkillGaps(resumeText, jobText string) []types.SkillGapCategory {
	jobKeywords := a.extractor.Extract(jobText)
	resumeKeywords := a.extractor.Extract(resumeText)

	resumeTerms := make(map[string]map[string]bool)
	for _, kw := range resumeKeywords {
		if resumeTerms[kw.Category] == nil {
			resumeTerms[kw.Category] = make(map[string]bool)
		}
		resumeTerms[kw.Category][kw.Word] = true
	}

	categoryOrder := make([]string, 0)
	byCategory := make(map[string][]types.ExtractedKeyword)
	for _, kw := range jobKeywords {
		if _, seen := byCategory[kw.Category]; !seen {
			categoryOrder = append(categoryOrder, kw.Category)
		}
		byCategory[kw.Category] = append(byCategory[kw.Category], kw)
	}

	result := make([]types.SkillGapCategory, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		keywords := byCategory[category]

		// First pass: partition so the missing count is known before
		// importance falls back to the heuristic.
		missingCount := 0
		for _, kw := range keywords {
			if !resumeTerms[category][kw.Word] {
				missingCount++
			}
		}

		matched := make([]types.EnhancedSkill, 0)
		missing := make([]types.EnhancedSkill, 0)
		for _, kw := range keywords {
			inResume := resumeTerms[category][kw.Word]
			skill := a.enhance(kw, resumeText, jobText, missingCount, inResume)
			if inResume {
				matched = append(matched, skill)
			} else {
				missing = append(missing, skill)
			}
		}

		result = append(result, types.SkillGapCategory{
			Category:   category,
			Matched:    matched,
			Missing:    missing,
			Importance: a.categoryImportance(jobText, category, keywords, missingCount),
		})
	}

	return result
}

// enhance builds the derived skill record for one job-description keyword.
// Proficiency and years are read from the resume; importance prefers explicit
// requirement language near the skill in the job text, then falls back to the
// category's missing-count heuristic.
func (a *Analyzer) enhance(kw types.ExtractedKeyword, resumeText, jobText string, missingCount int, inResume bool) types.EnhancedSkill {
	_, subcategory, _ := a.tax.Resolve(kw.Word)

	importance, ok := ExplicitImportance(jobText, kw.Word)
	if !ok {
		importance = HeuristicImportance(missingCount)
	}

	description := fmt.Sprintf("%s is mentioned in the job description but does not appear in your resume", kw.Word)
	if inResume {
		description = fmt.Sprintf("%s appears in both the job description and your resume", kw.Word)
	}

	return types.EnhancedSkill{
		ExtractedKeyword:  kw,
		ProficiencyLevel:  a.proficiency.Classify(resumeText, kw.Word),
		YearsOfExperience: SkillYears(resumeText, kw.Word),
		Subcategory:       subcategory,
		Importance:        importance,
		Description:       description,
	}
}

// categoryImportance grades a whole category: explicit language near the
// category name wins, then explicit language near any of the category's
// skills, then the missing-count heuristic. This precedence order is the
// component's contract.
func (a *Analyzer) categoryImportance(jobText, category string, keywords []types.ExtractedKeyword, missingCount int) types.Importance {
	if importance, ok := ExplicitImportance(jobText, category); ok {
		return importance
	}
	for _, kw := range keywords {
		if importance, ok := ExplicitImportance(jobText, kw.Word); ok {
			return importance
		}
	}
	return HeuristicImportance(missingCount)
}
