package store

import (
	"context"
	"errors"
	"time"

	"atlasorg.app/console/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	Create(ctx context.Context, user *model.User) error
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	// Deactivate flips is_active to false for exactly the given user row.
	Deactivate(ctx context.Context, id int64) error
}

// OrganizationStore defines the contract for organization data access
type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
	SetStatus(ctx context.Context, id int64, status model.OrgStatus) (*model.Organization, error)
	Delete(ctx context.Context, id int64) error
	// ListOwnedActive returns organizations where the user holds the given
	// role and the organization is active, ordered by name ascending.
	ListOwnedActive(ctx context.Context, userID int64, role string) ([]model.Organization, error)
}

// MemberStore defines the contract for organization membership data access
type MemberStore interface {
	Create(ctx context.Context, member *model.OrganizationMember) error
	Get(ctx context.Context, orgID, userID int64) (*model.OrganizationMember, error)
	CountWithRole(ctx context.Context, orgID int64, role string) (int64, error)
	// DeleteUserMemberships removes the user's membership rows in the given
	// organizations in one statement, scoped to that user only.
	DeleteUserMemberships(ctx context.Context, userID int64, orgIDs []int64) error
	DeleteByOrganization(ctx context.Context, orgID int64) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	SetSudo(ctx context.Context, id int64, until time.Time) (*model.Session, error)
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) error
}

// OptionStore defines the contract for the per-user preference store
type OptionStore interface {
	Get(ctx context.Context, userID int64, key string) (*model.UserOption, error)
	Set(ctx context.Context, userID int64, key, value string) error
}

// IdentityStore defines the contract for external identity bindings
type IdentityStore interface {
	Create(ctx context.Context, identity *model.Identity) error
	ListByUser(ctx context.Context, userID int64) ([]model.Identity, error)
}

// AuditStore defines the contract for the audit event log
type AuditStore interface {
	Record(ctx context.Context, event *model.AuditEvent) error
}
