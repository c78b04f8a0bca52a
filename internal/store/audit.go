package store

import (
	"context"

	"atlasorg.app/console/common/id"
	"atlasorg.app/console/core/db/sqlc"
	"atlasorg.app/console/internal/model"
)

type auditStore struct {
	queries *sqlc.Queries
}

func newAuditStore(queries *sqlc.Queries) AuditStore {
	return &auditStore{queries: queries}
}

func (s *auditStore) Record(ctx context.Context, event *model.AuditEvent) error {
	created, err := s.queries.CreateAuditEvent(ctx, sqlc.CreateAuditEventParams{
		ID:        id.New(),
		Event:     event.Event,
		ActorID:   event.ActorID,
		IpAddress: event.IPAddress,
		TargetID:  event.TargetID,
		Note:      event.Note,
	})
	if err != nil {
		return err
	}
	event.ID = created.ID
	event.CreatedAt = created.CreatedAt.Time
	return nil
}
