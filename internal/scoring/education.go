package scoring

import "strings"

// educationTerms are the degree and certification keywords checked for
// education matching. Ordered most to least specific so reported gaps read
// sensibly; order does not affect the score.
var educationTerms = []string{
	"phd",
	"doctorate",
	"master's",
	"masters",
	"mba",
	"bachelor's",
	"bachelors",
	"bachelor",
	"associate degree",
	"degree",
	"diploma",
	"certification",
	"certified",
	"bootcamp",
}

// EducationMatch returns the fraction of education terms required by the job
// description that also appear in the resume. A job with no education terms
// scores a perfect 1.0: no requirement means no gap.
func EducationMatch(resumeText, jobText string) float64 {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)

	required := 0
	matched := 0
	for _, term := range educationTerms {
		if !strings.Contains(jobLower, term) {
			continue
		}
		required++
		if strings.Contains(resumeLower, term) {
			matched++
		}
	}

	if required == 0 {
		return 1.0
	}
	return float64(matched) / float64(required)
}
