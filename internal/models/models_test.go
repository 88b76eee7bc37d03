package models

import (
	"testing"
	"time"
)

func TestIsValidAvatar(t *testing.T) {
	tests := []struct {
		avatar string
		want   bool
	}{
		{"snake", true},
		{"rocket", true},
		{"unicorn", true},
		{"", false},
		{"Snake", false},
		{"tiger", false},
	}

	for _, tt := range tests {
		t.Run(tt.avatar, func(t *testing.T) {
			if got := IsValidAvatar(tt.avatar); got != tt.want {
				t.Errorf("IsValidAvatar(%q) = %v, want %v", tt.avatar, got, tt.want)
			}
		})
	}
}

func TestNewProgressStartsFull(t *testing.T) {
	p := NewProgress(42)

	if p.AccountID != 42 {
		t.Errorf("AccountID = %d, want 42", p.AccountID)
	}
	if p.XP != 0 || p.Coins != 0 {
		t.Errorf("expected zero XP and coins, got xp=%d coins=%d", p.XP, p.Coins)
	}
	if p.Lives != MaxLives {
		t.Errorf("Lives = %d, want %d", p.Lives, MaxLives)
	}
	if len(p.Completions) != 0 {
		t.Errorf("expected no completions, got %d", len(p.Completions))
	}
}

func TestProgressCompletion(t *testing.T) {
	p := NewProgress(1)
	p.Completions = append(p.Completions,
		LessonCompletion{LessonID: 1, XPEarned: 25},
		LessonCompletion{LessonID: 16, XPEarned: 30},
	)

	if c := p.Completion(16); c == nil || c.XPEarned != 30 {
		t.Errorf("Completion(16) = %+v, want record with XPEarned 30", c)
	}
	if c := p.Completion(99); c != nil {
		t.Errorf("Completion(99) = %+v, want nil", c)
	}

	// The pointer aliases the slice entry so callers can update in place
	p.Completion(1).Attempts = 3
	if p.Completions[0].Attempts != 3 {
		t.Error("Completion() should return a pointer into the slice")
	}
}

func TestSessionIsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"future", time.Now().Add(time.Hour), false},
		{"past", time.Now().Add(-time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{ID: "abc", AccountID: 1, ExpiresAt: tt.expiresAt}
			if got := s.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
