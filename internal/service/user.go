package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/store"
)

// Profile fields a deployment may mark as externally managed via
// configuration. Anything else in the managed-fields list is ignored.
const (
	FieldName     = "name"
	FieldUsername = "username"
	FieldEmail    = "email"
)

// ProfileUpdate is a partial profile edit. Nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string
	Username *string
	Email    *string
	IsActive *bool

	SeenReleaseBroadcast *bool
}

// UserDetails is the detailed profile view. Identities is populated only for
// superusers viewing somebody else's profile.
type UserDetails struct {
	User       *model.User
	Identities []model.Identity
}

type UserService interface {
	Get(ctx context.Context, viewer *model.User, targetID int64) (*UserDetails, error)
	UpdateProfile(ctx context.Context, actor *model.User, targetID int64, update ProfileUpdate) (*model.User, error)
	CloseAccount(ctx context.Context, in CloseAccountInput) error
}

type userService struct {
	userStore     store.UserStore
	orgStore      store.OrganizationStore
	memberStore   store.MemberStore
	sessionStore  store.SessionStore
	optionStore   store.OptionStore
	identityStore store.IdentityStore
	auditStore    store.AuditStore
	orgDeleter    OrganizationDeleter

	ownerRole     string
	managedFields []string
}

type UserServiceConfig struct {
	Users      store.UserStore
	Orgs       store.OrganizationStore
	Members    store.MemberStore
	Sessions   store.SessionStore
	Options    store.OptionStore
	Identities store.IdentityStore
	Audit      store.AuditStore
	OrgDeleter OrganizationDeleter

	OwnerRole     string
	ManagedFields []string
}

func NewUserService(cfg UserServiceConfig) UserService {
	return &userService{
		userStore:     cfg.Users,
		orgStore:      cfg.Orgs,
		memberStore:   cfg.Members,
		sessionStore:  cfg.Sessions,
		optionStore:   cfg.Options,
		identityStore: cfg.Identities,
		auditStore:    cfg.Audit,
		orgDeleter:    cfg.OrgDeleter,
		ownerRole:     cfg.OwnerRole,
		managedFields: cfg.ManagedFields,
	}
}

func (s *userService) Get(ctx context.Context, viewer *model.User, targetID int64) (*UserDetails, error) {
	if targetID != viewer.ID && !viewer.IsSuperuser {
		return nil, ErrForbidden
	}

	user := viewer
	if targetID != viewer.ID {
		var err error
		user, err = s.userStore.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("getting user: %w", err)
		}
	}

	details := &UserDetails{User: user}

	// Identity bindings are sensitive; only the superuser view of another
	// account includes them.
	if viewer.IsSuperuser && targetID != viewer.ID {
		identities, err := s.identityStore.ListByUser(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("listing identities: %w", err)
		}
		if identities == nil {
			identities = []model.Identity{}
		}
		details.Identities = identities
	}

	return details, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor *model.User, targetID int64, update ProfileUpdate) (*model.User, error) {
	if targetID != actor.ID && !actor.IsSuperuser {
		return nil, ErrForbidden
	}

	target := actor
	if targetID != actor.ID {
		var err error
		target, err = s.userStore.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("getting user: %w", err)
		}
	}

	if !actor.IsSuperuser {
		update = s.stripManagedFields(update)
		update.IsActive = nil
	}

	if update.Username != nil && *update.Username != target.Username {
		taken, err := s.userStore.UsernameTaken(ctx, *update.Username, target.ID)
		if err != nil {
			return nil, fmt.Errorf("checking username: %w", err)
		}
		if taken {
			return nil, NewValidationError("username", "That username is already in use.")
		}
	}

	applyProfileUpdate(target, update)

	if err := s.userStore.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	if update.SeenReleaseBroadcast != nil && *update.SeenReleaseBroadcast {
		if err := s.optionStore.Set(ctx, target.ID, model.OptionSeenReleaseBroadcast, strconv.FormatBool(true)); err != nil {
			return nil, fmt.Errorf("saving user option: %w", err)
		}
	}

	slog.InfoContext(ctx, "user profile updated", "user_id", target.ID, "actor_id", actor.ID)
	return target, nil
}

// applyProfileUpdate mutates the user in place. The username/email coupling
// is an invariant, not incidental: accounts created through SSO start with
// email as username, and renaming the username on such an account moves the
// email with it unless a new email is given explicitly.
func applyProfileUpdate(user *model.User, update ProfileUpdate) {
	emailFollowsUsername := user.Email == user.Username

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Username != nil {
		if emailFollowsUsername && *update.Username != user.Username && update.Email == nil {
			user.Email = *update.Username
		}
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
}

func (s *userService) stripManagedFields(update ProfileUpdate) ProfileUpdate {
	for _, field := range s.managedFields {
		switch field {
		case FieldName:
			update.Name = nil
		case FieldUsername:
			update.Username = nil
		case FieldEmail:
			update.Email = nil
		}
	}
	return update
}
