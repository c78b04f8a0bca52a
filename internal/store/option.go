package store

import (
	"context"
	"errors"

	"atlasorg.app/console/core/db/sqlc"
	"atlasorg.app/console/internal/model"
	"github.com/jackc/pgx/v5"
)

type optionStore struct {
	queries *sqlc.Queries
}

func newOptionStore(queries *sqlc.Queries) OptionStore {
	return &optionStore{queries: queries}
}

func (s *optionStore) Get(ctx context.Context, userID int64, key string) (*model.UserOption, error) {
	row, err := s.queries.GetUserOption(ctx, sqlc.GetUserOptionParams{
		UserID: userID,
		Key:    key,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.UserOption{
		UserID:    row.UserID,
		Key:       row.Key,
		Value:     row.Value,
		UpdatedAt: row.UpdatedAt.Time,
	}, nil
}

func (s *optionStore) Set(ctx context.Context, userID int64, key, value string) error {
	return s.queries.SetUserOption(ctx, sqlc.SetUserOptionParams{
		UserID: userID,
		Key:    key,
		Value:  value,
	})
}
