package store

import (
	"context"

	"atlasorg.app/console/core/db/sqlc"
	"atlasorg.app/console/internal/model"
)

type identityStore struct {
	queries *sqlc.Queries
}

func newIdentityStore(queries *sqlc.Queries) IdentityStore {
	return &identityStore{queries: queries}
}

func (s *identityStore) Create(ctx context.Context, identity *model.Identity) error {
	row, err := s.queries.CreateIdentity(ctx, sqlc.CreateIdentityParams{
		ID:         identity.ID,
		UserID:     identity.UserID,
		Provider:   identity.Provider,
		ExternalID: identity.ExternalID,
	})
	if err != nil {
		return err
	}
	*identity = *toIdentityModel(row)
	return nil
}

func (s *identityStore) ListByUser(ctx context.Context, userID int64) ([]model.Identity, error) {
	rows, err := s.queries.ListIdentitiesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Identity, len(rows))
	for i, row := range rows {
		result[i] = *toIdentityModel(row)
	}
	return result, nil
}

func toIdentityModel(row sqlc.Identity) *model.Identity {
	return &model.Identity{
		ID:         row.ID,
		UserID:     row.UserID,
		Provider:   row.Provider,
		ExternalID: row.ExternalID,
		CreatedAt:  row.CreatedAt.Time,
	}
}
