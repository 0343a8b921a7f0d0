// Package types defines the shared data structures exchanged between the
// analysis engine components.
package types

// ProficiencyLevel describes how deep a candidate's experience with a skill appears to be.
type ProficiencyLevel string

// Proficiency levels, ordered strongest first.
const (
	ProficiencyExpert       ProficiencyLevel = "expert"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyBeginner     ProficiencyLevel = "beginner"
)

// Importance describes how strongly a job description demands a skill.
type Importance string

// Importance tiers.
const (
	ImportanceCritical    Importance = "critical"
	ImportanceRecommended Importance = "recommended"
	ImportanceNiceToHave  Importance = "nice-to-have"
)

// Severity ranks a suggestion's urgency.
type Severity string

// Suggestion severities.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// SuggestionCategory groups suggestions for display.
type SuggestionCategory string

// Suggestion categories.
const (
	CategorySkills     SuggestionCategory = "skills"
	CategoryExperience SuggestionCategory = "experience"
	CategoryFormat     SuggestionCategory = "format"
	CategoryKeywords   SuggestionCategory = "keywords"
	CategoryEducation  SuggestionCategory = "education"
)

// Provenance tags whether an analysis was produced by the remote inference
// service or by the local heuristic fallback. It is internal bookkeeping and
// never serialized; the wire shape is identical either way.
type Provenance string

// Provenance values.
const (
	ProvenanceRemote   Provenance = "remote"
	ProvenanceFallback Provenance = "fallback"
)

// ExtractedKeyword is a taxonomy term found in a text. The span refers to the
// first occurrence in the lower-cased source text and is display-only.
type ExtractedKeyword struct {
	Category string  `json:"category"`
	Word     string  `json:"word"`
	Score    float64 `json:"score"`
	Start    int     `json:"start"`
	End      int     `json:"end"`
}

// EnhancedSkill is an extracted keyword enriched with inferred proficiency,
// experience, and importance. Instances are recomputed per analysis and never
// mutated in place.
type EnhancedSkill struct {
	ExtractedKeyword
	ProficiencyLevel  ProficiencyLevel `json:"proficiency_level"`
	YearsOfExperience int              `json:"years_of_experience,omitempty"`
	Subcategory       string           `json:"subcategory,omitempty"`
	Importance        Importance       `json:"importance"`
	Description       string           `json:"description"`
}

// SkillGapCategory groups matched and missing skills for one taxonomy category
// found in the job description.
type SkillGapCategory struct {
	Category   string          `json:"category"`
	Matched    []EnhancedSkill `json:"matched"`
	Missing    []EnhancedSkill `json:"missing"`
	Importance Importance      `json:"importance"`
}

// FactorImprovement reports the current and achievable score for one factor,
// with concrete steps to close the gap.
type FactorImprovement struct {
	Category              string   `json:"category"`
	Current               float64  `json:"current"`
	Potential             float64  `json:"potential"`
	SuggestedImprovements []string `json:"suggested_improvements"`
}

// ScoreBreakdown holds the weighted current and potential scores plus the
// per-factor improvements that clear the significance threshold.
// PotentialScore >= CurrentScore always holds.
type ScoreBreakdown struct {
	CurrentScore   float64             `json:"current_score"`
	PotentialScore float64             `json:"potential_score"`
	Improvements   []FactorImprovement `json:"improvements"`
}

// Suggestion is one actionable improvement recommendation. Ordering matters
// for display: skill-gap suggestions come before the general templates.
type Suggestion struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Severity    Severity           `json:"severity"`
	Category    SuggestionCategory `json:"category"`
	ActionItems []string           `json:"action_items"`
}

// AnalysisResult is the single aggregate returned to callers. Scores are in
// [0,1]; display layers scale by 100.
type AnalysisResult struct {
	Score          float64             `json:"score"`
	PotentialScore float64             `json:"potential_score,omitempty"`
	Improvements   []FactorImprovement `json:"improvements,omitempty"`
	Suggestions    []Suggestion        `json:"suggestions"`
	Keywords       []ExtractedKeyword  `json:"keywords"`
	SkillGaps      []SkillGapCategory  `json:"skill_gaps,omitempty"`

	// Provenance is set by the orchestrator and excluded from the wire shape.
	Provenance Provenance `json:"-"`
}
