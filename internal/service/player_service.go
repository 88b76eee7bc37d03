package service

import (
	"errors"
	"fmt"
	"time"

	"pyquest/internal/catalog"
	"pyquest/internal/models"
	"pyquest/internal/progression"
	"pyquest/internal/repository"
	"pyquest/internal/validation"
)

// ErrAccountNotFound is returned when the account or its progress row is missing
var ErrAccountNotFound = errors.New("account not found")

// PlayerService is the facade the API layer talks to for everything about
// the current player. Every mutation is a whole read-modify-write-persist
// sequence inside one call, and every call returns a fresh snapshot, so
// the frontend always renders the stored state, never a stale copy.
type PlayerService struct {
	accountRepo  *repository.AccountRepository
	progressRepo *repository.ProgressRepository
}

// NewPlayerService creates a new player service
func NewPlayerService(accountRepo *repository.AccountRepository, progressRepo *repository.ProgressRepository) *PlayerService {
	return &PlayerService{
		accountRepo:  accountRepo,
		progressRepo: progressRepo,
	}
}

// LevelStatus combines a catalog level with the player's standing in it
type LevelStatus struct {
	catalog.Level
	Unlocked  bool `json:"unlocked"`
	Completed int  `json:"completed"`
	Total     int  `json:"total"`
}

// Snapshot is an immutable view of one player's full state
type Snapshot struct {
	Account        *models.Account  `json:"account"`
	Progress       *models.Progress `json:"progress"`
	OverallPercent int              `json:"overallPercent"`
	Rank           string           `json:"rank"`
	Levels         []LevelStatus    `json:"levels"`
	TotalLessons   int              `json:"totalLessons"`
}

// Snapshot loads the player's current state
func (s *PlayerService) Snapshot(accountID int64) (*Snapshot, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	progress, err := s.progressRepo.GetProgress(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if progress == nil {
		return nil, ErrAccountNotFound
	}

	return buildSnapshot(account, progress)
}

// UpdateAvatar changes the player's avatar
func (s *PlayerService) UpdateAvatar(accountID int64, avatar string) (*Snapshot, error) {
	if err := validation.ValidateAvatar(avatar); err != nil {
		return nil, err
	}
	if err := s.accountRepo.UpdateAvatar(accountID, avatar); err != nil {
		return nil, err
	}
	return s.Snapshot(accountID)
}

// AdjustLives applies a lives delta, clamped into [0, MaxLives]
func (s *PlayerService) AdjustLives(accountID int64, delta int) (*Snapshot, error) {
	return s.mutateProgress(accountID, func(p *models.Progress) error {
		progression.AdjustLives(p, delta)
		return nil
	})
}

// AddXPAndCoins awards XP and coins outside of lesson completion (quiz
// bonuses, streak rewards)
func (s *PlayerService) AddXPAndCoins(accountID int64, xp, coins int) (*Snapshot, error) {
	return s.mutateProgress(accountID, func(p *models.Progress) error {
		return progression.AwardXPAndCoins(p, xp, coins)
	})
}

// CompleteLesson records a lesson pass with its rewards
func (s *PlayerService) CompleteLesson(accountID int64, lessonID, xp, coins, attempts, timeSpentSeconds int) (*Snapshot, error) {
	return s.mutateProgress(accountID, func(p *models.Progress) error {
		return progression.RecordCompletion(p, models.LessonCompletion{
			LessonID:         lessonID,
			XPEarned:         xp,
			CoinsEarned:      coins,
			Attempts:         attempts,
			TimeSpentSeconds: timeSpentSeconds,
			CompletedAt:      time.Now(),
		})
	})
}

// mutateProgress runs one read-modify-write-persist cycle and returns the
// state re-read from the store
func (s *PlayerService) mutateProgress(accountID int64, mutate func(*models.Progress) error) (*Snapshot, error) {
	progress, err := s.progressRepo.GetProgress(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if progress == nil {
		return nil, ErrAccountNotFound
	}

	if err := mutate(progress); err != nil {
		return nil, err
	}

	if err := s.progressRepo.SaveProgress(progress); err != nil {
		return nil, fmt.Errorf("failed to persist progress: %w", err)
	}

	return s.Snapshot(accountID)
}

func buildSnapshot(account *models.Account, progress *models.Progress) (*Snapshot, error) {
	percent := progression.OverallPercent(progress.Completions)

	var levels []LevelStatus
	for _, level := range catalog.Levels() {
		unlocked, err := progression.LevelUnlocked(level.ID, progress.Completions)
		if err != nil {
			return nil, err
		}
		completed, err := progression.LevelProgress(level.ID, progress.Completions)
		if err != nil {
			return nil, err
		}
		levels = append(levels, LevelStatus{
			Level:     level,
			Unlocked:  unlocked,
			Completed: completed,
			Total:     level.LessonCount(),
		})
	}

	return &Snapshot{
		Account:        account,
		Progress:       progress,
		OverallPercent: percent,
		Rank:           progression.Rank(percent),
		Levels:         levels,
		TotalLessons:   catalog.TotalLessons(),
	}, nil
}
