package model

import "time"

// OrgStatus is the organization lifecycle state. Only active organizations
// participate in membership and ownership flows; the two deletion states mark
// teardown as requested and as in progress by the deletion worker.
type OrgStatus string

const (
	OrgStatusActive             OrgStatus = "active"
	OrgStatusPendingDeletion    OrgStatus = "pending_deletion"
	OrgStatusDeletionInProgress OrgStatus = "deletion_in_progress"
)

type Organization struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Status    OrgStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
