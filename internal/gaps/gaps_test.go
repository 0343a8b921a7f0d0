package gaps

import (
	"testing"

	"github.com/jonathan/ats-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCategory(t *testing.T, cats []types.SkillGapCategory, name string) types.SkillGapCategory {
	t.Helper()
	for _, cat := range cats {
		if cat.Category == name {
			return cat
		}
	}
	t.Fatalf("category %q not found in %v", name, cats)
	return types.SkillGapCategory{}
}

func skillWords(skills []types.EnhancedSkill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = s.Word
	}
	return out
}

func TestAnalyzeSkillGaps_MatchedAndMissing(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	job := "Requires 5 years experience with Python and SQL, React preferred"
	resume := "3 years Python developer"

	cats := a.AnalyzeSkillGaps(resume, job)

	programming := findCategory(t, cats, "programming")
	assert.ElementsMatch(t, []string{"python"}, skillWords(programming.Matched))
	assert.ElementsMatch(t, []string{"sql"}, skillWords(programming.Missing))

	frameworks := findCategory(t, cats, "frameworks")
	assert.Empty(t, frameworks.Matched)
	assert.ElementsMatch(t, []string{"react"}, skillWords(frameworks.Missing))
	assert.Equal(t, types.ImportanceRecommended, frameworks.Importance)
}

func TestAnalyzeSkillGaps_NoTaxonomyMatchesYieldsEmptyList(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	cats := a.AnalyzeSkillGaps("some resume", "we need a pastry chef")

	assert.Empty(t, cats)
}

func TestAnalyzeSkillGaps_CategoriesInFirstSeenOrder(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	job := "Python and React required, Docker a plus"

	cats := a.AnalyzeSkillGaps("", job)

	require.Len(t, cats, 3)
	assert.Equal(t, "programming", cats[0].Category)
	assert.Equal(t, "frameworks", cats[1].Category)
	assert.Equal(t, "cloud", cats[2].Category)
}

func TestAnalyzeSkillGaps_ExplicitCriticalLanguage(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	job := "Kubernetes experience is required for this role"

	cats := a.AnalyzeSkillGaps("", job)

	cloud := findCategory(t, cats, "cloud")
	assert.Equal(t, types.ImportanceCritical, cloud.Importance)
}

func TestAnalyzeSkillGaps_EnhancedSkillFields(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	job := "Python required"
	resume := "Expert in Python with 6 years of Python in production"

	cats := a.AnalyzeSkillGaps(resume, job)

	programming := findCategory(t, cats, "programming")
	require.Len(t, programming.Matched, 1)
	skill := programming.Matched[0]
	assert.Equal(t, types.ProficiencyExpert, skill.ProficiencyLevel)
	assert.Equal(t, 6, skill.YearsOfExperience)
	assert.Equal(t, "languages", skill.Subcategory)
	assert.Equal(t, types.ImportanceCritical, skill.Importance)
	assert.NotEmpty(t, skill.Description)
}

func TestAnalyzeSkillGaps_HeuristicImportanceFallback(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	// Four programming terms, no requirement language anywhere: the
	// missing-count heuristic grades the category critical.
	job := "We use Python, Java, Ruby and PHP"

	cats := a.AnalyzeSkillGaps("", job)

	programming := findCategory(t, cats, "programming")
	assert.Len(t, programming.Missing, 4)
	assert.Equal(t, types.ImportanceCritical, programming.Importance)
}

func TestAnalyzeSkillGaps_SingleMissingIsNiceToHave(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	job := "We use Python daily"

	cats := a.AnalyzeSkillGaps("", job)

	programming := findCategory(t, cats, "programming")
	assert.Equal(t, types.ImportanceNiceToHave, programming.Importance)
}

func TestAnalyzeSkillGaps_MatchIsCaseInsensitiveByConstruction(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	cats := a.AnalyzeSkillGaps("PYTHON enthusiast", "Python needed")

	programming := findCategory(t, cats, "programming")
	assert.Len(t, programming.Matched, 1)
	assert.Empty(t, programming.Missing)
}
