package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-match/internal/types"
)

// SaveAnalysis stores a completed analysis under the session key, creating
// the session if it does not exist yet. Implements the orchestrator's
// persistence collaborator.
func (db *DB) SaveAnalysis(ctx context.Context, sessionKey string, result *types.AnalysisResult) error {
	session, err := db.EnsureSession(ctx, sessionKey)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (session_id, result, provenance) VALUES ($1, $2, $3)`,
		session.ID, payload, string(result.Provenance),
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis returns the most recent analysis stored for the session key.
func (db *DB) GetAnalysis(ctx context.Context, sessionKey string) (*types.AnalysisResult, error) {
	var (
		payload    []byte
		provenance string
	)
	err := db.pool.QueryRow(ctx,
		`SELECT a.result, a.provenance
		 FROM analyses a
		 JOIN sessions s ON s.id = a.session_id
		 WHERE s.session_key = $1
		 ORDER BY a.created_at DESC LIMIT 1`,
		sessionKey,
	).Scan(&payload, &provenance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	result.Provenance = types.Provenance(provenance)
	return &result, nil
}
