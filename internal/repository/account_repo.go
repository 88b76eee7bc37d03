package repository

import (
	"database/sql"
	"fmt"
	"time"

	"pyquest/internal/database"
	"pyquest/internal/models"
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *database.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAccount inserts a new account together with its starting progress
// row. Username uniqueness is enforced by the schema; callers check for
// duplicates first to produce a friendly error.
func (r *AccountRepository) CreateAccount(username, passwordHash, avatar string) (*models.Account, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := tx.ExecReturningID(
		"INSERT INTO accounts (username, password_hash, avatar) VALUES (?, ?, ?)",
		username, passwordHash, avatar,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO progress (account_id, xp, coins, lives) VALUES (?, 0, 0, ?)",
		id, models.MaxLives,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit account creation: %w", err)
	}

	return &models.Account{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Avatar:       avatar,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// GetByUsername retrieves an account by its exact, case-sensitive username.
// Returns nil without error when no account matches.
func (r *AccountRepository) GetByUsername(username string) (*models.Account, error) {
	query := `
		SELECT id, username, password_hash, avatar, created_at, updated_at
		FROM accounts
		WHERE username = ?
	`
	return r.scanAccount(r.db.QueryRow(query, username))
}

// GetByID retrieves an account by id. Returns nil without error when no
// account matches.
func (r *AccountRepository) GetByID(id int64) (*models.Account, error) {
	query := `
		SELECT id, username, password_hash, avatar, created_at, updated_at
		FROM accounts
		WHERE id = ?
	`
	return r.scanAccount(r.db.QueryRow(query, id))
}

// UpdateAvatar changes an account's avatar
func (r *AccountRepository) UpdateAvatar(id int64, avatar string) error {
	query := "UPDATE accounts SET avatar = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, avatar, id); err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	return nil
}

// UpdatePassword replaces an account's password hash
func (r *AccountRepository) UpdatePassword(id int64, passwordHash string) error {
	query := "UPDATE accounts SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, passwordHash, id); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// DeleteAccount removes an account; progress, completions and sessions go
// with it via foreign keys
func (r *AccountRepository) DeleteAccount(id int64) error {
	if _, err := r.db.Exec("DELETE FROM accounts WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

func (r *AccountRepository) scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.Avatar,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}
