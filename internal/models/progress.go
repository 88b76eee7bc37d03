package models

import "time"

// MaxLives is the upper bound on a player's lives
const MaxLives = 5

// Progress holds a player's gameplay state. One record per account.
type Progress struct {
	AccountID   int64              `json:"-"`
	XP          int                `json:"xp"`
	Coins       int                `json:"coins"`
	Lives       int                `json:"lives"`
	Completions []LessonCompletion `json:"completedLessons"`
}

// NewProgress returns the starting state for a fresh account
func NewProgress(accountID int64) *Progress {
	return &Progress{
		AccountID: accountID,
		XP:        0,
		Coins:     0,
		Lives:     MaxLives,
	}
}

// Completion returns the completion record for a lesson, or nil if the
// lesson has not been passed yet
func (p *Progress) Completion(lessonID int) *LessonCompletion {
	for i := range p.Completions {
		if p.Completions[i].LessonID == lessonID {
			return &p.Completions[i]
		}
	}
	return nil
}

// LessonCompletion is durable evidence that a player passed a lesson.
// Reward amounts are fixed at completion time for historical stats.
type LessonCompletion struct {
	LessonID         int       `json:"lessonId"`
	XPEarned         int       `json:"xpEarned"`
	CoinsEarned      int       `json:"coinsEarned"`
	Attempts         int       `json:"attempts"`
	TimeSpentSeconds int       `json:"timeSpentSeconds"`
	CompletedAt      time.Time `json:"completedAt"`
}
