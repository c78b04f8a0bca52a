package model

import "time"

// Membership roles, lowest to highest. The owner role name is configurable
// at the service layer; these are the values stored by default deployments.
const (
	RoleMember  = "member"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleOwner   = "owner"
)

type OrganizationMember struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	UserID         int64     `json:"user_id"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}
