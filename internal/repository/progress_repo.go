package repository

import (
	"database/sql"
	"fmt"

	"pyquest/internal/database"
	"pyquest/internal/models"
)

// ProgressRepository handles database operations for progress records
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// GetProgress loads an account's progress including all completion records
func (r *ProgressRepository) GetProgress(accountID int64) (*models.Progress, error) {
	progress := &models.Progress{AccountID: accountID}

	err := r.db.QueryRow(
		"SELECT xp, coins, lives FROM progress WHERE account_id = ?",
		accountID,
	).Scan(&progress.XP, &progress.Coins, &progress.Lives)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	rows, err := r.db.Query(`
		SELECT lesson_id, xp_earned, coins_earned, attempts, time_spent_seconds, completed_at
		FROM completions
		WHERE account_id = ?
		ORDER BY completed_at ASC, lesson_id ASC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.LessonCompletion
		if err := rows.Scan(
			&c.LessonID,
			&c.XPEarned,
			&c.CoinsEarned,
			&c.Attempts,
			&c.TimeSpentSeconds,
			&c.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		progress.Completions = append(progress.Completions, c)
	}

	return progress, nil
}

// SaveProgress overwrites the counters and upserts every completion record
// in a single transaction, so a reload after the call always sees the full
// new state
func (r *ProgressRepository) SaveProgress(p *models.Progress) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"UPDATE progress SET xp = ?, coins = ?, lives = ?, updated_at = CURRENT_TIMESTAMP WHERE account_id = ?",
		p.XP, p.Coins, p.Lives, p.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no progress row for account %d", p.AccountID)
	}

	for _, c := range p.Completions {
		if err := upsertCompletion(tx, p.AccountID, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit progress: %w", err)
	}
	return nil
}

// upsertCompletion updates the row for (account, lesson) or inserts it.
// The schema's composite primary key keeps the at-most-one-per-lesson
// invariant even if two writers race.
func upsertCompletion(tx *database.Tx, accountID int64, c models.LessonCompletion) error {
	result, err := tx.Exec(`
		UPDATE completions
		SET xp_earned = ?, coins_earned = ?, attempts = ?, time_spent_seconds = ?, completed_at = ?
		WHERE account_id = ? AND lesson_id = ?
	`, c.XPEarned, c.CoinsEarned, c.Attempts, c.TimeSpentSeconds, c.CompletedAt, accountID, c.LessonID)
	if err != nil {
		return fmt.Errorf("failed to update completion: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	_, err = tx.Exec(`
		INSERT INTO completions (account_id, lesson_id, xp_earned, coins_earned, attempts, time_spent_seconds, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, accountID, c.LessonID, c.XPEarned, c.CoinsEarned, c.Attempts, c.TimeSpentSeconds, c.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}
