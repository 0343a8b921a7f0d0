package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-match/internal/types"
)

func TestValidateAnalysisResult_Valid(t *testing.T) {
	result := types.AnalysisResult{
		Score:          0.62,
		PotentialScore: 0.81,
		Suggestions: []types.Suggestion{
			{
				Title:       "Close the programming gap",
				Description: "The posting mentions sql, which your resume does not",
				Severity:    types.SeverityHigh,
				Category:    types.CategorySkills,
				ActionItems: []string{"Add sql to your skills section"},
			},
		},
		Keywords: []types.ExtractedKeyword{
			{Category: "programming", Word: "python", Score: 1.0, Start: 12, End: 18},
		},
		SkillGaps: []types.SkillGapCategory{
			{
				Category:   "programming",
				Matched:    []types.EnhancedSkill{},
				Missing:    []types.EnhancedSkill{},
				Importance: types.ImportanceCritical,
			},
		},
	}
	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateAnalysisResult(data))
}

func TestValidateAnalysisResult_MissingRequiredFields(t *testing.T) {
	err := ValidateAnalysisResult([]byte(`{"score": 0.5}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateAnalysisResult_ScoreOutOfRange(t *testing.T) {
	err := ValidateAnalysisResult([]byte(`{"score": 1.7, "suggestions": [], "keywords": []}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateAnalysisResult_BadSeverityEnum(t *testing.T) {
	err := ValidateAnalysisResult([]byte(`{
		"score": 0.5,
		"keywords": [],
		"suggestions": [{
			"title": "t", "description": "d",
			"severity": "urgent", "category": "skills",
			"action_items": []
		}]
	}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateAnalysisResult_NotJSON(t *testing.T) {
	err := ValidateAnalysisResult([]byte("not json"))

	require.Error(t, err)
	var ve *ValidationError
	assert.NotErrorAs(t, err, &ve)
}
