// Package scoring computes the independent 0-1 factor scores for a
// resume/job-description pair and aggregates them into a weighted breakdown.
// Every calculator is a pure function of raw text and/or extracted keywords;
// no calculator depends on another calculator's output.
package scoring

import (
	"strings"

	"github.com/jonathan/ats-match/internal/types"
)

// coverageThreshold is the minimum keyword match score that counts toward
// coverage. The extractor assigns a flat 1.0 to every hit, so coverage
// degenerates to "any keywords were extracted"; this is preserved for
// compatibility with the display-side expectations.
const coverageThreshold = 0.7

// Classifier labels recognized by LabelRelevance.
const (
	LabelHighlyRelevant   = "highly relevant to job"
	LabelSomewhatRelevant = "somewhat relevant to job"
	LabelNotRelevant      = "not relevant to job"
)

// Skill diversity normalization constants.
const (
	expectedCategoryCount   = 6
	diversityTermCap        = 20
	categoryDiversityWeight = 0.4
	termDiversityWeight     = 0.6
)

// KeywordCoverage returns the fraction of job-description keywords whose match
// score exceeds the coverage threshold. An empty keyword list scores 0.
func KeywordCoverage(jobKeywords []types.ExtractedKeyword) float64 {
	if len(jobKeywords) == 0 {
		return 0.0
	}

	covered := 0
	for _, kw := range jobKeywords {
		if kw.Score > coverageThreshold {
			covered++
		}
	}

	return float64(covered) / float64(len(jobKeywords))
}

// LabelRelevance maps the remote classifier's top label to a fixed score.
// Absent or unrecognized labels score 0.2, which is also the fallback-path
// value when the classifier is unavailable.
func LabelRelevance(label string) float64 {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case LabelHighlyRelevant:
		return 1.0
	case LabelSomewhatRelevant:
		return 0.6
	default:
		return 0.2
	}
}

// SkillDiversity scores how broadly the matched skills spread across the
// taxonomy: 40% distinct categories (against a fixed expected count) plus 60%
// distinct terms (capped), each normalized and capped at 1.0.
func SkillDiversity(keywords []types.ExtractedKeyword) float64 {
	categories := make(map[string]bool)
	terms := make(map[string]bool)
	for _, kw := range keywords {
		categories[kw.Category] = true
		terms[kw.Word] = true
	}

	categoryScore := float64(len(categories)) / expectedCategoryCount
	if categoryScore > 1.0 {
		categoryScore = 1.0
	}
	termScore := float64(len(terms)) / diversityTermCap
	if termScore > 1.0 {
		termScore = 1.0
	}

	return categoryDiversityWeight*categoryScore + termDiversityWeight*termScore
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
