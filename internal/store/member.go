package store

import (
	"context"
	"errors"

	"atlasorg.app/console/core/db/sqlc"
	"atlasorg.app/console/internal/model"
	"github.com/jackc/pgx/v5"
)

type memberStore struct {
	queries *sqlc.Queries
}

func newMemberStore(queries *sqlc.Queries) MemberStore {
	return &memberStore{queries: queries}
}

func (s *memberStore) Create(ctx context.Context, member *model.OrganizationMember) error {
	row, err := s.queries.CreateOrganizationMember(ctx, sqlc.CreateOrganizationMemberParams{
		ID:             member.ID,
		OrganizationID: member.OrganizationID,
		UserID:         member.UserID,
		Role:           member.Role,
	})
	if err != nil {
		return err
	}
	*member = *toMemberModel(row)
	return nil
}

func (s *memberStore) Get(ctx context.Context, orgID, userID int64) (*model.OrganizationMember, error) {
	row, err := s.queries.GetOrganizationMember(ctx, sqlc.GetOrganizationMemberParams{
		OrganizationID: orgID,
		UserID:         userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMemberModel(row), nil
}

func (s *memberStore) CountWithRole(ctx context.Context, orgID int64, role string) (int64, error) {
	return s.queries.CountOrganizationOwners(ctx, sqlc.CountOrganizationOwnersParams{
		OrganizationID: orgID,
		Role:           role,
	})
}

func (s *memberStore) DeleteUserMemberships(ctx context.Context, userID int64, orgIDs []int64) error {
	if len(orgIDs) == 0 {
		return nil
	}
	return s.queries.DeleteUserMemberships(ctx, sqlc.DeleteUserMembershipsParams{
		UserID:          userID,
		OrganizationIds: orgIDs,
	})
}

func (s *memberStore) DeleteByOrganization(ctx context.Context, orgID int64) error {
	return s.queries.DeleteOrganizationMembers(ctx, orgID)
}

func toMemberModel(row sqlc.OrganizationMember) *model.OrganizationMember {
	return &model.OrganizationMember{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		UserID:         row.UserID,
		Role:           row.Role,
		CreatedAt:      row.CreatedAt.Time,
	}
}
