package store

import (
	"context"
	"errors"

	"atlasorg.app/console/core/db/sqlc"
	"atlasorg.app/console/internal/model"
	"github.com/jackc/pgx/v5"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error) {
	row, err := s.queries.GetUserByWorkOSID(ctx, &workosID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	return s.queries.UsernameTaken(ctx, sqlc.UsernameTakenParams{
		Username:  username,
		ExcludeID: excludeID,
	})
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:          user.ID,
		Name:        user.Name,
		Username:    user.Username,
		Email:       user.Email,
		IsSuperuser: user.IsSuperuser,
		WorkosID:    user.WorkOSID,
	})
	if err != nil {
		return err
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpsertUserByWorkOSID(ctx, sqlc.UpsertUserByWorkOSIDParams{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		WorkosID: user.WorkOSID,
	})
	if err != nil {
		return err
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) Update(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpdateUser(ctx, sqlc.UpdateUserParams{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		IsActive: user.IsActive,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) Deactivate(ctx context.Context, id int64) error {
	return s.queries.DeactivateUser(ctx, id)
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:          row.ID,
		Name:        row.Name,
		Username:    row.Username,
		Email:       row.Email,
		IsActive:    row.IsActive,
		IsSuperuser: row.IsSuperuser,
		WorkOSID:    row.WorkosID,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
