package model

import "time"

// Option keys persisted through the per-user preference store.
const (
	OptionSeenReleaseBroadcast = "seen_release_broadcast"
)

type UserOption struct {
	UserID    int64     `json:"user_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
