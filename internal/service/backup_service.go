package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"pyquest/internal/database"
	"pyquest/internal/models"
)

// BackupData is the complete exported state of the store
type BackupData struct {
	Version      string          `json:"version"`
	ExportedAt   time.Time       `json:"exported_at"`
	DatabaseType string          `json:"database_type"`
	Accounts     []AccountBackup `json:"accounts"`
}

// AccountBackup is one account with its progress and completions
type AccountBackup struct {
	Username     string                    `json:"username"`
	PasswordHash string                    `json:"password_hash"`
	Avatar       string                    `json:"avatar"`
	CreatedAt    time.Time                 `json:"created_at"`
	XP           int                       `json:"xp"`
	Coins        int                       `json:"coins"`
	Lives        int                       `json:"lives"`
	Completions  []models.LessonCompletion `json:"completions"`
}

// BackupService exports and imports the full account store as JSON
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes all accounts, progress and completions to w
func (s *BackupService) Export(w io.Writer, databaseType string) error {
	rows, err := s.db.Query(`
		SELECT a.id, a.username, a.password_hash, a.avatar, a.created_at, p.xp, p.coins, p.lives
		FROM accounts a
		JOIN progress p ON p.account_id = a.id
		ORDER BY a.id ASC
	`)
	if err != nil {
		return fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	backup := BackupData{
		Version:      "1",
		ExportedAt:   time.Now(),
		DatabaseType: databaseType,
	}

	var ids []int64
	for rows.Next() {
		var id int64
		var ab AccountBackup
		if err := rows.Scan(&id, &ab.Username, &ab.PasswordHash, &ab.Avatar, &ab.CreatedAt, &ab.XP, &ab.Coins, &ab.Lives); err != nil {
			return fmt.Errorf("failed to scan account: %w", err)
		}
		backup.Accounts = append(backup.Accounts, ab)
		ids = append(ids, id)
	}

	for i, id := range ids {
		completions, err := s.loadCompletions(id)
		if err != nil {
			return err
		}
		backup.Accounts[i].Completions = completions
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(backup)
}

// ExportToFile writes a backup to the given path
func (s *BackupService) ExportToFile(path, databaseType string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()
	return s.Export(f, databaseType)
}

// Import restores accounts from a backup. Existing usernames are skipped
// so an import never clobbers live data.
func (s *BackupService) Import(r io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	for _, ab := range backup.Accounts {
		var count int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM accounts WHERE username = ?", ab.Username).Scan(&count); err != nil {
			return fmt.Errorf("failed to check username %s: %w", ab.Username, err)
		}
		if count > 0 {
			log.Printf("Skipping existing account: %s", ab.Username)
			continue
		}

		if err := s.importAccount(ab); err != nil {
			return err
		}
	}

	return nil
}

// ImportFromFile restores accounts from a backup file
func (s *BackupService) ImportFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()
	return s.Import(f)
}

func (s *BackupService) importAccount(ab AccountBackup) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := tx.ExecReturningID(
		"INSERT INTO accounts (username, password_hash, avatar, created_at) VALUES (?, ?, ?, ?)",
		ab.Username, ab.PasswordHash, ab.Avatar, ab.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to import account %s: %w", ab.Username, err)
	}

	if _, err := tx.Exec(
		"INSERT INTO progress (account_id, xp, coins, lives) VALUES (?, ?, ?, ?)",
		id, ab.XP, ab.Coins, ab.Lives,
	); err != nil {
		return fmt.Errorf("failed to import progress for %s: %w", ab.Username, err)
	}

	for _, c := range ab.Completions {
		if _, err := tx.Exec(`
			INSERT INTO completions (account_id, lesson_id, xp_earned, coins_earned, attempts, time_spent_seconds, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, c.LessonID, c.XPEarned, c.CoinsEarned, c.Attempts, c.TimeSpentSeconds, c.CompletedAt); err != nil {
			return fmt.Errorf("failed to import completion for %s: %w", ab.Username, err)
		}
	}

	return tx.Commit()
}

func (s *BackupService) loadCompletions(accountID int64) ([]models.LessonCompletion, error) {
	rows, err := s.db.Query(`
		SELECT lesson_id, xp_earned, coins_earned, attempts, time_spent_seconds, completed_at
		FROM completions
		WHERE account_id = ?
		ORDER BY lesson_id ASC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	var out []models.LessonCompletion
	for rows.Next() {
		var c models.LessonCompletion
		if err := rows.Scan(&c.LessonID, &c.XPEarned, &c.CoinsEarned, &c.Attempts, &c.TimeSpentSeconds, &c.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}
