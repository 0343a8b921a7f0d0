package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Document is an uploaded resume or job description. SourceURL is set only
// for job descriptions ingested from a posting URL.
type Document struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Content   string
	SourceURL string
	CreatedAt time.Time
}

// SaveResume stores a resume for the session and returns its ID.
func (db *DB) SaveResume(ctx context.Context, sessionID uuid.UUID, content string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (session_id, content) VALUES ($1, $2) RETURNING id`,
		sessionID, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// LatestResume returns the session's most recently uploaded resume.
func (db *DB) LatestResume(ctx context.Context, sessionID uuid.UUID) (*Document, error) {
	return db.latestDocument(ctx,
		`SELECT id, session_id, content, '', created_at
		 FROM resumes WHERE session_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		sessionID, "resume")
}

// SaveJobDescription stores a job description for the session. sourceURL may
// be empty for pasted text.
func (db *DB) SaveJobDescription(ctx context.Context, sessionID uuid.UUID, content, sourceURL string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_descriptions (session_id, content, source_url)
		 VALUES ($1, $2, NULLIF($3, '')) RETURNING id`,
		sessionID, content, sourceURL,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job description: %w", err)
	}
	return id, nil
}

// LatestJobDescription returns the session's most recent job description.
func (db *DB) LatestJobDescription(ctx context.Context, sessionID uuid.UUID) (*Document, error) {
	return db.latestDocument(ctx,
		`SELECT id, session_id, content, COALESCE(source_url, ''), created_at
		 FROM job_descriptions WHERE session_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		sessionID, "job description")
}

func (db *DB) latestDocument(ctx context.Context, query string, sessionID uuid.UUID, kind string) (*Document, error) {
	var d Document
	err := db.pool.QueryRow(ctx, query, sessionID).
		Scan(&d.ID, &d.SessionID, &d.Content, &d.SourceURL, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	return &d, nil
}
