package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-match/internal/types"
)

// Provenance travels in its own column, not inside the JSONB payload; the
// stored payload must not leak it.
func TestAnalysisPayloadExcludesProvenance(t *testing.T) {
	result := &types.AnalysisResult{
		Score:      0.72,
		Provenance: types.ProvenanceFallback,
	}

	payload, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "fallback")

	var decoded types.AnalysisResult
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Empty(t, decoded.Provenance)
	assert.Equal(t, 0.72, decoded.Score)
}
