package scoring

import "strings"

// industrySector maps a sector name to the vocabulary that signals it.
type industrySector struct {
	name  string
	terms []string
}

var industrySectors = []industrySector{
	{name: "technology", terms: []string{"saas", "software", "cloud computing", "cybersecurity", "startup"}},
	{name: "finance", terms: []string{"fintech", "banking", "trading", "insurance", "payments"}},
	{name: "healthcare", terms: []string{"healthcare", "clinical", "medical", "pharma", "biotech"}},
	{name: "commerce", terms: []string{"e-commerce", "retail", "marketplace", "logistics", "supply chain"}},
	{name: "media", terms: []string{"advertising", "marketing", "gaming", "streaming", "publishing"}},
}

// IndustryAlignment returns the fraction of industry terms named by the job
// description that also appear in the resume. When the job names no industry
// terms the score is a neutral 0.5: nothing to align against.
func IndustryAlignment(resumeText, jobText string) float64 {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)

	required := 0
	matched := 0
	for _, sector := range industrySectors {
		for _, term := range sector.terms {
			if !strings.Contains(jobLower, term) {
				continue
			}
			required++
			if strings.Contains(resumeLower, term) {
				matched++
			}
		}
	}

	if required == 0 {
		return 0.5
	}
	return float64(matched) / float64(required)
}
