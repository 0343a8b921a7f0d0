// Package llm provides the remote inference clients the analysis engine
// depends on: a zero-shot text classifier and a text generator, each behind
// an interface so the engine can run against fakes in tests and fall back to
// local heuristics when the service is down.
package llm

import (
	"context"
	"fmt"
)

// Classification is the result of a zero-shot classification call. Labels and
// Scores are parallel slices ordered by confidence descending.
type Classification struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// TopLabel returns the highest-confidence label, or "" when the
// classification is empty.
func (c Classification) TopLabel() string {
	if len(c.Labels) == 0 {
		return ""
	}
	return c.Labels[0]
}

// Classifier scores texts against a set of candidate labels.
type Classifier interface {
	Classify(ctx context.Context, texts []string, candidateLabels []string) (Classification, error)
}

// Generator produces free text from a prompt using the specified model tier.
type Generator interface {
	Generate(ctx context.Context, prompt string, tier ModelTier) (string, error)
	Close() error
}

// NewGenerator creates a generator for the configured provider.
func NewGenerator(ctx context.Context, config *Config, apiKey string) (Generator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiGenerator(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported generation provider %q", config.Provider)
	}
}
