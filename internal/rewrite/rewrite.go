// Package rewrite produces an improved version of a resume for a specific job
// description, preferring the remote generator and falling back to a local
// keyword-insertion strategy when it is unavailable.
package rewrite

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ats-match/internal/gaps"
	"github.com/jonathan/ats-match/internal/llm"
	"github.com/jonathan/ats-match/internal/types"
)

// additionalSkillsHeading introduces the section the local fallback appends.
const additionalSkillsHeading = "ADDITIONAL SKILLS RELEVANT TO THIS POSITION"

// Rewriter improves resumes. Construct with NewRewriter; a nil generator
// means every rewrite takes the local path.
type Rewriter struct {
	generator llm.Generator
	analyzer  *gaps.Analyzer
	logger    *zap.Logger
}

// Option customizes a Rewriter.
type Option func(*Rewriter)

// WithGapAnalyzer replaces the default skill-gap analyzer used by the local
// fallback.
func WithGapAnalyzer(a *gaps.Analyzer) Option {
	return func(r *Rewriter) { r.analyzer = a }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Rewriter) { r.logger = logger }
}

// NewRewriter creates a rewriter around the given generator, which may be nil.
func NewRewriter(generator llm.Generator, opts ...Option) *Rewriter {
	r := &Rewriter{
		generator: generator,
		analyzer:  gaps.NewAnalyzer(nil, nil),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Improve returns a rewritten resume targeting the job description, tagged
// with how it was produced. Generator failures are recovered locally and
// never surfaced to the caller.
func (r *Rewriter) Improve(ctx context.Context, resumeText, jobText string) (string, types.Provenance, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", "", fmt.Errorf("resume text is required")
	}
	if strings.TrimSpace(jobText) == "" {
		return "", "", fmt.Errorf("job description text is required")
	}

	if r.generator != nil {
		improved, err := r.generator.Generate(ctx, buildPrompt(resumeText, jobText), llm.TierAdvanced)
		if err == nil && strings.TrimSpace(improved) != "" {
			return improved, types.ProvenanceRemote, nil
		}
		r.logger.Warn("remote rewrite unavailable, using local fallback", zap.Error(err))
	}

	return r.improveLocal(resumeText, jobText), types.ProvenanceFallback, nil
}

// improveLocal appends the job's missing skills as an additional section. A
// resume already covering every extracted job skill is returned unchanged.
func (r *Rewriter) improveLocal(resumeText, jobText string) string {
	var missing []string
	seen := make(map[string]bool)
	for _, category := range r.analyzer.AnalyzeSkillGaps(resumeText, jobText) {
		for _, skill := range category.Missing {
			if !seen[skill.Word] {
				missing = append(missing, skill.Word)
				seen[skill.Word] = true
			}
		}
	}
	if len(missing) == 0 {
		return resumeText
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimRight(resumeText, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(additionalSkillsHeading)
	sb.WriteString("\n")
	for _, word := range missing {
		sb.WriteString("- ")
		sb.WriteString(word)
		sb.WriteString("\n")
	}
	return sb.String()
}

// buildPrompt assembles the generation prompt. The output contract matters:
// plain text only, no commentary, nothing invented.
func buildPrompt(resumeText, jobText string) string {
	var sb strings.Builder
	sb.WriteString("You are improving a resume so it better matches a specific job description.\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Keep every factual claim from the original resume; do not invent experience.\n")
	sb.WriteString("- Reuse the job description's terminology where the resume describes the same skill.\n")
	sb.WriteString("- Keep the original structure and length; adjust wording and emphasis only.\n")
	sb.WriteString("- Return ONLY the rewritten resume as plain text, no explanation.\n\n")
	sb.WriteString("Job description:\n")
	sb.WriteString(jobText)
	sb.WriteString("\n\nResume:\n")
	sb.WriteString(resumeText)
	return sb.String()
}
