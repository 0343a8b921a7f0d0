package scoring

import "github.com/jonathan/ats-match/internal/types"

// Factor identifies one scoring signal.
type Factor string

// The seven factors feeding the aggregate score.
const (
	FactorRelevance  Factor = "relevance"
	FactorKeywords   Factor = "keywords"
	FactorExperience Factor = "experience"
	FactorFormat     Factor = "format"
	FactorEducation  Factor = "education"
	FactorIndustry   Factor = "industry"
	FactorDiversity  Factor = "diversity"
)

// factorOrder fixes iteration order so breakdowns are deterministic.
var factorOrder = []Factor{
	FactorRelevance,
	FactorKeywords,
	FactorExperience,
	FactorFormat,
	FactorEducation,
	FactorIndustry,
	FactorDiversity,
}

// factorWeights sum to 1.0.
var factorWeights = map[Factor]float64{
	FactorRelevance:  0.20,
	FactorKeywords:   0.20,
	FactorExperience: 0.20,
	FactorFormat:     0.10,
	FactorEducation:  0.10,
	FactorIndustry:   0.10,
	FactorDiversity:  0.10,
}

// factorHeadroom is the maximum achievable improvement per factor; the
// potential factor score is current + headroom, clamped to 1.0.
var factorHeadroom = map[Factor]float64{
	FactorRelevance:  0.20,
	FactorKeywords:   0.30,
	FactorExperience: 0.20,
	FactorFormat:     0.40,
	FactorEducation:  0.20,
	FactorIndustry:   0.30,
	FactorDiversity:  0.30,
}

// factorLabels are the display names used in breakdown entries.
var factorLabels = map[Factor]string{
	FactorRelevance:  "Overall Relevance",
	FactorKeywords:   "Keyword Coverage",
	FactorExperience: "Experience Alignment",
	FactorFormat:     "Resume Format",
	FactorEducation:  "Education Match",
	FactorIndustry:   "Industry Alignment",
	FactorDiversity:  "Skill Diversity",
}

// factorAdvice holds the fixed improvement text emitted when a factor has
// significant headroom left.
var factorAdvice = map[Factor][]string{
	FactorRelevance: {
		"Mirror the job title and core responsibilities in your professional summary",
		"Reorder your experience so the most relevant roles appear first",
	},
	FactorKeywords: {
		"Work the job description's key terms naturally into your skills and experience sections",
		"Use the exact terminology from the posting rather than synonyms",
	},
	FactorExperience: {
		"State your total years of experience explicitly, e.g. \"6 years of experience\"",
		"Quantify the scope and duration of your most relevant roles",
	},
	FactorFormat: {
		"Use standard section headings (Experience, Education, Skills)",
		"Start bullet points with action verbs",
		"Quantify achievements with percentages, amounts, or durations",
	},
	FactorEducation: {
		"List your degrees and certifications with the wording the posting uses",
		"Add relevant certifications or in-progress coursework",
	},
	FactorIndustry: {
		"Reference the employer's industry and domain terminology in your summary",
		"Highlight projects from the same or an adjacent sector",
	},
	FactorDiversity: {
		"Broaden your skills section across tools, frameworks, and practices",
		"Include the supporting technologies you used alongside your core stack",
	},
}

// significanceThreshold is the minimum potential-minus-current gap that emits
// an improvement entry; factors already near their ceiling stay quiet.
const significanceThreshold = 0.1

// Aggregate combines per-factor scores into the weighted current and
// potential totals. Missing factors score 0. PotentialScore >= CurrentScore
// holds by construction since every potential factor score is at least the
// current one.
func Aggregate(scores map[Factor]float64) types.ScoreBreakdown {
	current := 0.0
	potential := 0.0
	improvements := make([]types.FactorImprovement, 0)

	for _, factor := range factorOrder {
		score := clamp01(scores[factor])
		potentialScore := clamp01(score + factorHeadroom[factor])

		weight := factorWeights[factor]
		current += weight * score
		potential += weight * potentialScore

		if potentialScore-score >= significanceThreshold {
			improvements = append(improvements, types.FactorImprovement{
				Category:              factorLabels[factor],
				Current:               score,
				Potential:             potentialScore,
				SuggestedImprovements: factorAdvice[factor],
			})
		}
	}

	return types.ScoreBreakdown{
		CurrentScore:   current,
		PotentialScore: potential,
		Improvements:   improvements,
	}
}
