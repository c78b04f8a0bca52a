package handler_test

import (
	"context"

	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/service"
)

type mockAuthService struct {
	validateSessionFn func(ctx context.Context, sessionID int64) (*model.User, *model.Session, error)
	sudoFn            func(ctx context.Context, user *model.User, session *model.Session, password string) error
	logoutFn          func(ctx context.Context, sessionID int64) error
}

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	return "https://auth.example.com/?state=" + state, nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	return nil, nil, nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, *model.Session, error) {
	if m.validateSessionFn != nil {
		return m.validateSessionFn(ctx, sessionID)
	}
	return nil, nil, service.ErrSessionExpired
}

func (m *mockAuthService) Sudo(ctx context.Context, user *model.User, session *model.Session, password string) error {
	if m.sudoFn != nil {
		return m.sudoFn(ctx, user, session, password)
	}
	return nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID int64) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sessionID)
	}
	return nil
}

type mockUserService struct {
	getFn           func(ctx context.Context, viewer *model.User, targetID int64) (*service.UserDetails, error)
	updateProfileFn func(ctx context.Context, actor *model.User, targetID int64, update service.ProfileUpdate) (*model.User, error)
	closeAccountFn  func(ctx context.Context, in service.CloseAccountInput) error
}

func (m *mockUserService) Get(ctx context.Context, viewer *model.User, targetID int64) (*service.UserDetails, error) {
	if m.getFn != nil {
		return m.getFn(ctx, viewer, targetID)
	}
	return &service.UserDetails{User: viewer}, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, actor *model.User, targetID int64, update service.ProfileUpdate) (*model.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, actor, targetID, update)
	}
	return actor, nil
}

func (m *mockUserService) CloseAccount(ctx context.Context, in service.CloseAccountInput) error {
	if m.closeAccountFn != nil {
		return m.closeAccountFn(ctx, in)
	}
	return nil
}

type mockOrganizationService struct {
	createFn            func(ctx context.Context, name string, slug *string, creatorID int64) (*model.Organization, error)
	requestDeletionFn   func(ctx context.Context, slug string) error
	requestDeletionByFn func(ctx context.Context, slug string, actor *model.User) error
}

func (m *mockOrganizationService) Create(ctx context.Context, name string, slug *string, creatorID int64) (*model.Organization, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, slug, creatorID)
	}
	return &model.Organization{ID: 1, Name: name, Slug: "acme", Status: model.OrgStatusActive}, nil
}

func (m *mockOrganizationService) RequestDeletion(ctx context.Context, slug string) error {
	if m.requestDeletionFn != nil {
		return m.requestDeletionFn(ctx, slug)
	}
	return nil
}

func (m *mockOrganizationService) RequestDeletionBy(ctx context.Context, slug string, actor *model.User) error {
	if m.requestDeletionByFn != nil {
		return m.requestDeletionByFn(ctx, slug, actor)
	}
	return nil
}
