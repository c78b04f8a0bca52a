package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"atlasorg.app/console/common/id"
	"atlasorg.app/console/core/config"
	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/store"
	"github.com/workos/workos-go/v6/pkg/usermanagement"
)

const sessionTTL = 7 * 24 * time.Hour

type AuthService interface {
	GetAuthorizationURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error)
	ValidateSession(ctx context.Context, sessionID int64) (*model.User, *model.Session, error)
	Sudo(ctx context.Context, user *model.User, session *model.Session, password string) error
	Logout(ctx context.Context, sessionID int64) error
}

type authService struct {
	userStore     store.UserStore
	sessionStore  store.SessionStore
	identityStore store.IdentityStore
	cfg           config.WorkOSConfig
	sudoTTL       time.Duration
}

func NewAuthService(
	userStore store.UserStore,
	sessionStore store.SessionStore,
	identityStore store.IdentityStore,
	cfg config.WorkOSConfig,
	sudoTTL time.Duration,
) AuthService {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &authService{
		userStore:     userStore,
		sessionStore:  sessionStore,
		identityStore: identityStore,
		cfg:           cfg,
		sudoTTL:       sudoTTL,
	}
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    s.cfg.ClientID,
		RedirectURI: s.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url.String(), nil
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	authResponse, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: s.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, nil, ErrInvalidCode
	}

	workosUser := authResponse.User

	// New accounts start with the email as username; the two stay in sync
	// until the user explicitly sets an email of their own.
	user := &model.User{
		ID:       id.New(),
		Name:     buildUserName(workosUser),
		Username: workosUser.Email,
		Email:    workosUser.Email,
		IsActive: true,
		WorkOSID: &workosUser.ID,
	}

	if err := s.userStore.UpsertByWorkOSID(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to upsert user",
			"error", err,
			"email", user.Email,
			"workos_id", workosUser.ID,
		)
		return nil, nil, fmt.Errorf("upserting user: %w", err)
	}

	if !user.IsActive {
		slog.WarnContext(ctx, "login rejected for deactivated user", "user_id", user.ID)
		return nil, nil, ErrUserNotFound
	}

	identity := &model.Identity{
		ID:         id.New(),
		UserID:     user.ID,
		Provider:   "workos",
		ExternalID: workosUser.ID,
	}
	if err := s.identityStore.Create(ctx, identity); err != nil {
		slog.ErrorContext(ctx, "failed to record identity",
			"error", err,
			"user_id", user.ID,
		)
		return nil, nil, fmt.Errorf("recording identity: %w", err)
	}

	session := &model.Session{
		ID:        id.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session",
			"error", err,
			"user_id", user.ID,
		)
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"email", user.Email,
		"session_id", session.ID,
	)

	return user, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, *model.Session, error) {
	session, err := s.sessionStore.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrSessionExpired
		}
		return nil, nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("getting user: %w", err)
	}

	if !user.IsActive {
		return nil, nil, ErrSessionExpired
	}

	return user, session, nil
}

// Sudo re-verifies the user's password and stamps a short elevation window
// onto the current session. Destructive account operations require it.
func (s *authService) Sudo(ctx context.Context, user *model.User, session *model.Session, password string) error {
	_, err := usermanagement.AuthenticateWithPassword(ctx, usermanagement.AuthenticateWithPasswordOpts{
		ClientID: s.cfg.ClientID,
		Email:    user.Email,
		Password: password,
	})
	if err != nil {
		slog.WarnContext(ctx, "sudo re-authentication failed", "user_id", user.ID)
		return ErrInvalidPassword
	}

	updated, err := s.sessionStore.SetSudo(ctx, session.ID, time.Now().Add(s.sudoTTL))
	if err != nil {
		return fmt.Errorf("elevating session: %w", err)
	}
	session.SudoExpiresAt = updated.SudoExpiresAt

	slog.InfoContext(ctx, "session elevated", "user_id", user.ID, "session_id", session.ID)
	return nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func buildUserName(user usermanagement.User) string {
	if user.FirstName != "" && user.LastName != "" {
		return user.FirstName + " " + user.LastName
	}
	if user.FirstName != "" {
		return user.FirstName
	}
	if user.LastName != "" {
		return user.LastName
	}
	return user.Email
}
