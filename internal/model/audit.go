package model

import "time"

// Audit event names recorded by sensitive account operations.
const (
	AuditUserDeactivate = "user.deactivate"
)

type AuditEvent struct {
	ID        int64     `json:"id"`
	Event     string    `json:"event"`
	ActorID   int64     `json:"actor_id"`
	IPAddress string    `json:"ip_address"`
	TargetID  int64     `json:"target_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
