package models

import "time"

// Account represents a learner account in the system
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Avatars is the fixed set of avatar choices shown at signup
var Avatars = []string{
	"snake", "robot", "rocket", "wizard", "dragon", "astronaut", "ninja", "unicorn",
}

// IsValidAvatar reports whether the given tag is one of the allowed avatars
func IsValidAvatar(avatar string) bool {
	for _, a := range Avatars {
		if a == avatar {
			return true
		}
	}
	return false
}

// Session represents an authenticated session
type Session struct {
	ID        string
	AccountID int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
