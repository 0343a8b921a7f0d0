package extract

import (
	"testing"

	"github.com/jonathan/ats-match/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractedWords(e *Extractor, text string) []string {
	kws := e.Extract(text)
	out := make([]string, len(kws))
	for i, kw := range kws {
		out[i] = kw.Word
	}
	return out
}

func TestExtract_SingleTokenTerms(t *testing.T) {
	e := New(nil)

	got := extractedWords(e, "Experienced Python and SQL developer")

	assert.ElementsMatch(t, []string{"python", "sql"}, got)
}

func TestExtract_CompoundTerms(t *testing.T) {
	e := New(nil)

	got := extractedWords(e, "Built machine learning pipelines with project management duties")

	assert.Contains(t, got, "machine learning")
	assert.Contains(t, got, "project management")
}

func TestExtract_PunctuatedTerms(t *testing.T) {
	e := New(nil)

	got := extractedWords(e, "Shipped services in C++ and Node.js behind CI/CD")

	assert.Contains(t, got, "c++")
	assert.Contains(t, got, "node.js")
	assert.Contains(t, got, "ci/cd")
}

func TestExtract_CaseInsensitive(t *testing.T) {
	e := New(nil)

	got := extractedWords(e, "REACT and TypeScript")

	assert.ElementsMatch(t, []string{"react", "typescript"}, got)
}

func TestExtract_NoMatches(t *testing.T) {
	e := New(nil)

	got := e.Extract("We are hiring a pastry chef for our bakery")

	assert.Empty(t, got)
}

func TestExtract_EmptyText(t *testing.T) {
	e := New(nil)

	got := e.Extract("")

	assert.Empty(t, got)
}

func TestExtract_ScoreIsAlwaysOne(t *testing.T) {
	e := New(nil)

	for _, kw := range e.Extract("python react sql docker") {
		assert.Equal(t, 1.0, kw.Score)
	}
}

func TestExtract_SpanPointsAtFirstOccurrence(t *testing.T) {
	e := New(nil)

	kws := e.Extract("Python first, then python again")

	require.Len(t, kws, 1)
	assert.Equal(t, 0, kws[0].Start)
	assert.Equal(t, len("python"), kws[0].End)
	assert.Equal(t, "python", kws[0].Word)
}

func TestExtract_DeduplicatesRepeatedTerms(t *testing.T) {
	e := New(nil)

	kws := e.Extract("sql sql sql")

	require.Len(t, kws, 1)
	assert.Equal(t, "programming", kws[0].Category)
}

func TestExtract_Idempotent(t *testing.T) {
	e := New(nil)
	text := "Senior Go engineer with React, PostgreSQL, Docker and machine learning exposure"

	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}

func TestExtract_CustomTaxonomy(t *testing.T) {
	tax := taxonomy.New([]taxonomy.Category{
		{Name: "cooking", Subcategories: []taxonomy.Subcategory{
			{Name: "baking", Skills: []string{"sourdough", "puff pastry"}},
		}},
	})
	e := New(tax)

	got := extractedWords(e, "Makes great sourdough and puff pastry")

	assert.ElementsMatch(t, []string{"sourdough", "puff pastry"}, got)
}

func TestExtract_CategoryResolution(t *testing.T) {
	e := New(nil)

	kws := e.Extract("react")

	require.Len(t, kws, 1)
	assert.Equal(t, "frameworks", kws[0].Category)
}
