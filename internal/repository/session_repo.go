package repository

import (
	"database/sql"
	"fmt"
	"time"

	"pyquest/internal/database"
	"pyquest/internal/models"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession stores a new session
func (r *SessionRepository) CreateSession(id string, accountID int64, expiresAt time.Time) (*models.Session, error) {
	_, err := r.db.Exec(
		"INSERT INTO sessions (id, account_id, expires_at) VALUES (?, ?, ?)",
		id, accountID, expiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &models.Session{
		ID:        id,
		AccountID: accountID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}, nil
}

// GetSession retrieves a session by id. Returns nil without error when no
// session matches.
func (r *SessionRepository) GetSession(id string) (*models.Session, error) {
	session := &models.Session{}
	err := r.db.QueryRow(
		"SELECT id, account_id, expires_at, created_at FROM sessions WHERE id = ?",
		id,
	).Scan(&session.ID, &session.AccountID, &session.ExpiresAt, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// DeleteSession ends a session; the account is untouched
func (r *SessionRepository) DeleteSession(id string) error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes all sessions past their expiry
func (r *SessionRepository) DeleteExpiredSessions() error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now()); err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
