package gaps

import (
	"testing"

	"github.com/jonathan/ats-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExplicitImportance(t *testing.T) {
	cases := []struct {
		name    string
		jobText string
		term    string
		want    types.Importance
		found   bool
	}{
		{"required", "Python is required for this position", "python", types.ImportanceCritical, true},
		{"must-have", "Kubernetes is a must-have", "kubernetes", types.ImportanceCritical, true},
		{"preferred", "Experience with React preferred", "react", types.ImportanceRecommended, true},
		{"a plus", "Docker knowledge is a plus", "docker", types.ImportanceNiceToHave, true},
		{"requires does not escalate", "Requires strong communication. Python appears here", "python", "", false},
		{"term absent", "Python is required", "react", "", false},
		{"no wording near term", "We write a lot of Python", "python", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExplicitImportance(tc.jobText, tc.term)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExplicitImportance_CriticalBeatsWeakerWording(t *testing.T) {
	got, ok := ExplicitImportance("Python is required, though certifications are a plus", "python")

	assert.True(t, ok)
	assert.Equal(t, types.ImportanceCritical, got)
}

func TestExplicitImportance_WordingOutsideWindowIgnored(t *testing.T) {
	padding := ""
	for i := 0; i < 30; i++ {
		padding += "lorem "
	}
	jobText := "React is required. " + padding + "We also dabble in Python"

	_, ok := ExplicitImportance(jobText, "python")

	assert.False(t, ok)
}

func TestHeuristicImportance(t *testing.T) {
	assert.Equal(t, types.ImportanceNiceToHave, HeuristicImportance(0))
	assert.Equal(t, types.ImportanceNiceToHave, HeuristicImportance(1))
	assert.Equal(t, types.ImportanceRecommended, HeuristicImportance(2))
	assert.Equal(t, types.ImportanceRecommended, HeuristicImportance(3))
	assert.Equal(t, types.ImportanceCritical, HeuristicImportance(4))
}
