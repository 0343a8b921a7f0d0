package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Session is one anonymous analysis session, identified externally by its
// session key.
type Session struct {
	ID         uuid.UUID
	SessionKey string
	CreatedAt  time.Time
}

// EnsureSession returns the session for the key, creating it if needed.
func (db *DB) EnsureSession(ctx context.Context, sessionKey string) (*Session, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty")
	}

	var s Session
	err := db.pool.QueryRow(ctx,
		`INSERT INTO sessions (session_key)
		 VALUES ($1)
		 ON CONFLICT (session_key) DO UPDATE SET session_key = EXCLUDED.session_key
		 RETURNING id, session_key, created_at`,
		sessionKey,
	).Scan(&s.ID, &s.SessionKey, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure session: %w", err)
	}
	return &s, nil
}

// GetSession looks a session up by key.
func (db *DB) GetSession(ctx context.Context, sessionKey string) (*Session, error) {
	var s Session
	err := db.pool.QueryRow(ctx,
		`SELECT id, session_key, created_at FROM sessions WHERE session_key = $1`,
		sessionKey,
	).Scan(&s.ID, &s.SessionKey, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}
