// Package catalog holds the static level and lesson tables. Lessons are
// numbered in one global flat space; each level owns a contiguous id range
// and that range is the join key against completion records.
package catalog

import (
	"errors"
	"fmt"
)

// Level describes one level of the learning path
type Level struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Route       string `json:"route"`
	LessonStart int    `json:"lessonStart"`
	LessonEnd   int    `json:"lessonEnd"`
}

// LessonCount is derived from the id range, which is the one source of
// truth (the range, not a separate count, drives unlock gating)
func (l Level) LessonCount() int {
	return l.LessonEnd - l.LessonStart + 1
}

// Contains reports whether a lesson id belongs to this level
func (l Level) Contains(lessonID int) bool {
	return lessonID >= l.LessonStart && lessonID <= l.LessonEnd
}

// levels is the fixed level table. Ranges tile 1..TotalLessons() with no
// gaps or overlaps.
var levels = []Level{
	{ID: 1, Name: "Python Basics", Emoji: "🐍", Route: "/levels/python-basics", LessonStart: 1, LessonEnd: 15},
	{ID: 2, Name: "Variables & Numbers", Emoji: "🔢", Route: "/levels/variables", LessonStart: 16, LessonEnd: 32},
	{ID: 3, Name: "Strings & Text", Emoji: "💬", Route: "/levels/strings", LessonStart: 33, LessonEnd: 49},
	{ID: 4, Name: "Lists & Collections", Emoji: "📦", Route: "/levels/lists", LessonStart: 50, LessonEnd: 62},
	{ID: 5, Name: "Dictionaries", Emoji: "📖", Route: "/levels/dictionaries", LessonStart: 63, LessonEnd: 75},
	{ID: 6, Name: "Math & Modules", Emoji: "➗", Route: "/levels/math-modules", LessonStart: 76, LessonEnd: 84},
	{ID: 7, Name: "Randomness", Emoji: "🎲", Route: "/levels/randomness", LessonStart: 85, LessonEnd: 96},
	{ID: 8, Name: "Dates & Time", Emoji: "⏰", Route: "/levels/dates", LessonStart: 97, LessonEnd: 108},
	{ID: 9, Name: "Loops & Logic", Emoji: "🔁", Route: "/levels/loops", LessonStart: 109, LessonEnd: 115},
	{ID: 10, Name: "Final Quest", Emoji: "🏆", Route: "/levels/final-quest", LessonStart: 116, LessonEnd: 130},
}

// ErrUnknownLevel is returned for level ids outside the table
var ErrUnknownLevel = errors.New("unknown level id")

// ErrUnknownLesson is returned for lesson ids outside every level's range
var ErrUnknownLesson = errors.New("unknown lesson id")

// Levels returns the full level table in order
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// GetLevel looks up a level by id
func GetLevel(id int) (Level, error) {
	for _, l := range levels {
		if l.ID == id {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
}

// LevelByLesson finds the level owning a lesson id
func LevelByLesson(lessonID int) (Level, error) {
	for _, l := range levels {
		if l.Contains(lessonID) {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %d", ErrUnknownLesson, lessonID)
}

// TotalLessons returns the number of lessons across all levels
func TotalLessons() int {
	total := 0
	for _, l := range levels {
		total += l.LessonCount()
	}
	return total
}

// LevelCount returns the number of levels
func LevelCount() int {
	return len(levels)
}
