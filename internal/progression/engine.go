// Package progression implements the gameplay rules: XP/coin rewards, the
// lives counter, completion records and level unlock gating. All functions
// are deterministic over their inputs; persistence is the caller's job.
package progression

import (
	"errors"
	"fmt"
	"math"
	"time"

	"pyquest/internal/catalog"
	"pyquest/internal/models"
)

// ErrInvalidAmount is returned when a reward amount is negative
var ErrInvalidAmount = errors.New("reward amounts must not be negative")

// AwardXPAndCoins adds rewards to a progress record. Negative amounts are
// rejected and leave the record untouched.
func AwardXPAndCoins(p *models.Progress, xp, coins int) error {
	if xp < 0 || coins < 0 {
		return fmt.Errorf("%w: xp=%d coins=%d", ErrInvalidAmount, xp, coins)
	}
	p.XP += xp
	p.Coins += coins
	return nil
}

// AdjustLives applies a delta to the lives counter, clamping the result
// into [0, MaxLives]. Clamping absorbs any excess silently so callers
// never need their own bounds checks.
func AdjustLives(p *models.Progress, delta int) {
	lives := p.Lives + delta
	if lives < 0 {
		lives = 0
	}
	if lives > models.MaxLives {
		lives = models.MaxLives
	}
	p.Lives = lives
}

// RecordCompletion awards the passed rewards and upserts the completion
// record for the lesson. A lesson keeps at most one record: replaying a
// completed lesson replaces the record in place rather than appending.
func RecordCompletion(p *models.Progress, rec models.LessonCompletion) error {
	if _, err := catalog.LevelByLesson(rec.LessonID); err != nil {
		return err
	}
	if rec.Attempts < 1 || rec.TimeSpentSeconds < 0 {
		return fmt.Errorf("%w: attempts=%d timeSpent=%d", ErrInvalidAmount, rec.Attempts, rec.TimeSpentSeconds)
	}

	if err := AwardXPAndCoins(p, rec.XPEarned, rec.CoinsEarned); err != nil {
		return err
	}

	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = time.Now()
	}

	if existing := p.Completion(rec.LessonID); existing != nil {
		*existing = rec
		return nil
	}
	p.Completions = append(p.Completions, rec)
	return nil
}

// LevelUnlocked reports whether a level is playable. Level 1 is always
// open; level N needs as many completions inside level N-1's lesson range
// as that range holds. The gate counts completions in the range, it does
// not require any specific subset of ids.
func LevelUnlocked(levelID int, completions []models.LessonCompletion) (bool, error) {
	if _, err := catalog.GetLevel(levelID); err != nil {
		return false, err
	}
	if levelID == 1 {
		return true, nil
	}

	prev, err := catalog.GetLevel(levelID - 1)
	if err != nil {
		return false, err
	}
	return countInRange(prev, completions) >= prev.LessonCount(), nil
}

// LevelProgress returns how many lessons of a level have been completed
func LevelProgress(levelID int, completions []models.LessonCompletion) (int, error) {
	level, err := catalog.GetLevel(levelID)
	if err != nil {
		return 0, err
	}
	return countInRange(level, completions), nil
}

// OverallPercent computes the rounded completion percentage across the
// whole catalog
func OverallPercent(completions []models.LessonCompletion) int {
	total := catalog.TotalLessons()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(completions)) / float64(total)))
}

// rankThresholds maps inclusive lower bounds of overall percentage to rank
// labels, evaluated top-down, first match wins
var rankThresholds = []struct {
	atLeast int
	label   string
}{
	{100, "Python Master"},
	{80, "Code Wizard"},
	{60, "Professional Coder"},
	{40, "Rising Developer"},
	{20, "Code Explorer"},
	{10, "Python Rookie"},
}

// Rank derives the coarse rank label from the overall completion percentage
func Rank(percent int) string {
	for _, r := range rankThresholds {
		if percent >= r.atLeast {
			return r.label
		}
	}
	return "Beginner"
}

func countInRange(level catalog.Level, completions []models.LessonCompletion) int {
	count := 0
	for _, c := range completions {
		if level.Contains(c.LessonID) {
			count++
		}
	}
	return count
}
