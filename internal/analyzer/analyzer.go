// Package analyzer orchestrates a full resume/job-description analysis:
// extraction, remote classification with local fallback, factor scoring,
// skill-gap analysis, and suggestion generation.
package analyzer

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-match/internal/extract"
	"github.com/jonathan/ats-match/internal/gaps"
	"github.com/jonathan/ats-match/internal/llm"
	"github.com/jonathan/ats-match/internal/scoring"
	"github.com/jonathan/ats-match/internal/suggest"
	"github.com/jonathan/ats-match/internal/taxonomy"
	"github.com/jonathan/ats-match/internal/types"
)

// Store is the persistence collaborator a completed analysis is handed to.
type Store interface {
	SaveAnalysis(ctx context.Context, sessionKey string, result *types.AnalysisResult) error
}

// Analyzer runs analyses. It holds no per-request state; concurrent analyses
// are fully independent.
type Analyzer struct {
	classifier llm.Classifier
	extractor  *extract.Extractor
	gaps       *gaps.Analyzer
	experience scoring.ExperienceExtractor
	store      Store
	logger     *zap.Logger
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithTaxonomy replaces the default taxonomy.
func WithTaxonomy(tax *taxonomy.Taxonomy) Option {
	return func(a *Analyzer) {
		a.extractor = extract.New(tax)
		a.gaps = gaps.NewAnalyzer(tax, nil)
	}
}

// WithExperienceExtractor replaces the regex experience extractor.
func WithExperienceExtractor(e scoring.ExperienceExtractor) Option {
	return func(a *Analyzer) { a.experience = e }
}

// WithStore attaches the persistence collaborator; completed analyses are
// handed to it by AnalyzeSession.
func WithStore(store Store) Option {
	return func(a *Analyzer) { a.store = store }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// New creates an analyzer. A nil classifier means every analysis takes the
// local heuristic path.
func New(classifier llm.Classifier, opts ...Option) *Analyzer {
	a := &Analyzer{
		classifier: classifier,
		extractor:  extract.New(nil),
		gaps:       gaps.NewAnalyzer(nil, nil),
		experience: scoring.RegexExperienceExtractor{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// errNoClassifier marks analyses run without any remote classifier wired in.
var errNoClassifier = errors.New("no classifier configured")

// candidateLabels are the zero-shot labels the resume is scored against.
var candidateLabels = []string{
	scoring.LabelHighlyRelevant,
	scoring.LabelSomewhatRelevant,
	scoring.LabelNotRelevant,
}

// Analyze produces a complete result for the pair of texts. A well-formed
// non-empty pair always yields a result: remote classification failures
// switch the relevance factor to its local default and tag the result as
// fallback-derived rather than failing the analysis.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*types.AnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InputError{Field: "resume text"}
	}
	if strings.TrimSpace(jobText) == "" {
		return nil, &InputError{Field: "job description text"}
	}

	var (
		resumeKeywords []types.ExtractedKeyword
		jobKeywords    []types.ExtractedKeyword
		classification llm.Classification
		remoteErr      error
	)

	// Extraction is CPU-bound and the classification call blocks on the
	// network, so they run concurrently. The classification error is kept
	// out of the group: remote failure selects the fallback path instead
	// of failing the analysis.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resumeKeywords = a.extractor.Extract(resumeText)
		jobKeywords = a.extractor.Extract(jobText)
		return nil
	})
	g.Go(func() error {
		if a.classifier == nil {
			remoteErr = &llm.RemoteServiceError{Op: "classify", Err: errNoClassifier}
			return nil
		}
		classification, remoteErr = a.classifier.Classify(gctx, []string{resumeText}, candidateLabels)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	provenance := types.ProvenanceRemote
	topLabel := classification.TopLabel()
	if remoteErr != nil {
		provenance = types.ProvenanceFallback
		topLabel = ""
		a.logger.Warn("remote classification unavailable, using local heuristics",
			zap.Error(remoteErr))
	}

	factors := map[scoring.Factor]float64{
		scoring.FactorRelevance:  scoring.LabelRelevance(topLabel),
		scoring.FactorKeywords:   scoring.KeywordCoverage(jobKeywords),
		scoring.FactorExperience: scoring.AlignExperience(a.experience, resumeText, jobText),
		scoring.FactorFormat:     scoring.FormatQuality(resumeText),
		scoring.FactorEducation:  scoring.EducationMatch(resumeText, jobText),
		scoring.FactorIndustry:   scoring.IndustryAlignment(resumeText, jobText),
		scoring.FactorDiversity:  scoring.SkillDiversity(resumeKeywords),
	}

	breakdown := scoring.Aggregate(factors)
	skillGaps := a.gaps.AnalyzeSkillGaps(resumeText, jobText)
	suggestions := suggest.Generate(breakdown, skillGaps, jobKeywords)

	result := &types.AnalysisResult{
		Score:          breakdown.CurrentScore,
		PotentialScore: breakdown.PotentialScore,
		Improvements:   breakdown.Improvements,
		Suggestions:    suggestions,
		Keywords:       jobKeywords,
		SkillGaps:      skillGaps,
		Provenance:     provenance,
	}

	a.logger.Info("analysis completed",
		zap.String("provenance", string(provenance)),
		zap.Float64("score", result.Score),
		zap.Float64("potential_score", result.PotentialScore),
		zap.Int("job_keywords", len(jobKeywords)),
		zap.Int("skill_gap_categories", len(skillGaps)))

	return result, nil
}

// AnalyzeSession runs Analyze and hands the result to the configured store
// under the session key. A storage failure does not discard the analysis; it
// is logged and reported alongside the result as a StoreError.
func (a *Analyzer) AnalyzeSession(ctx context.Context, sessionKey, resumeText, jobText string) (*types.AnalysisResult, error) {
	result, err := a.Analyze(ctx, resumeText, jobText)
	if err != nil {
		return nil, err
	}

	if a.store != nil {
		if err := a.store.SaveAnalysis(ctx, sessionKey, result); err != nil {
			a.logger.Error("failed to persist analysis",
				zap.String("session_key", sessionKey),
				zap.Error(err))
			return result, &StoreError{SessionKey: sessionKey, Err: err}
		}
	}
	return result, nil
}
