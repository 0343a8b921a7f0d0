package rewrite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-match/internal/llm"
	"github.com/jonathan/ats-match/internal/types"
)

type fakeGenerator struct {
	output string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.output, f.err
}

func (f *fakeGenerator) Close() error { return nil }

func TestImprove_RemotePath(t *testing.T) {
	gen := &fakeGenerator{output: "Improved resume text"}
	r := NewRewriter(gen)

	got, provenance, err := r.Improve(context.Background(), "Python developer", "Python and SQL required")

	require.NoError(t, err)
	assert.Equal(t, "Improved resume text", got)
	assert.Equal(t, types.ProvenanceRemote, provenance)
	assert.Contains(t, gen.prompt, "Python and SQL required")
	assert.Contains(t, gen.prompt, "Python developer")
}

func TestImprove_GeneratorFailureFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	r := NewRewriter(gen)

	got, provenance, err := r.Improve(context.Background(), "Python developer", "Python and SQL required")

	require.NoError(t, err)
	assert.Equal(t, types.ProvenanceFallback, provenance)
	assert.Contains(t, got, "ADDITIONAL SKILLS RELEVANT TO THIS POSITION")
	assert.Contains(t, got, "- sql")
}

func TestImprove_BlankGeneratorOutputFallsBack(t *testing.T) {
	gen := &fakeGenerator{output: "   \n"}
	r := NewRewriter(gen)

	_, provenance, err := r.Improve(context.Background(), "Python developer", "SQL required")

	require.NoError(t, err)
	assert.Equal(t, types.ProvenanceFallback, provenance)
}

func TestImprove_NilGeneratorUsesLocalPath(t *testing.T) {
	r := NewRewriter(nil)

	got, provenance, err := r.Improve(context.Background(), "Python developer", "Requires Python, SQL and React")

	require.NoError(t, err)
	assert.Equal(t, types.ProvenanceFallback, provenance)
	assert.Contains(t, got, "- sql")
	assert.Contains(t, got, "- react")
	assert.NotContains(t, got, "- python")
	assert.True(t, strings.HasPrefix(got, "Python developer"))
}

func TestImprove_NoMissingSkillsReturnsResumeUnchanged(t *testing.T) {
	r := NewRewriter(nil)
	resume := "Python and SQL developer"

	got, provenance, err := r.Improve(context.Background(), resume, "We use Python and SQL")

	require.NoError(t, err)
	assert.Equal(t, types.ProvenanceFallback, provenance)
	assert.Equal(t, resume, got)
}

func TestImprove_EmptyInputs(t *testing.T) {
	r := NewRewriter(nil)

	_, _, err := r.Improve(context.Background(), "", "job")
	assert.Error(t, err)

	_, _, err = r.Improve(context.Background(), "resume", " ")
	assert.Error(t, err)
}
