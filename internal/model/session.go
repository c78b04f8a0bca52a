package model

import "time"

type Session struct {
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
	SudoExpiresAt *time.Time `json:"sudo_expires_at,omitempty"`
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
}

// SudoActive reports whether the session has a fresh elevation window at the
// given instant.
func (s *Session) SudoActive(now time.Time) bool {
	return s.SudoExpiresAt != nil && now.Before(*s.SudoExpiresAt)
}
