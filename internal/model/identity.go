package model

import "time"

// Identity is an external identity-provider binding for a user. Exposed only
// in the superuser view of another user's profile.
type Identity struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Provider   string    `json:"provider"`
	ExternalID string    `json:"external_id"`
	CreatedAt  time.Time `json:"created_at"`
}
