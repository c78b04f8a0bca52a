package store

import (
	"atlasorg.app/console/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.queries)
}

func (s *Stores) Members() MemberStore {
	return newMemberStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Options() OptionStore {
	return newOptionStore(s.queries)
}

func (s *Stores) Identities() IdentityStore {
	return newIdentityStore(s.queries)
}

func (s *Stores) Audit() AuditStore {
	return newAuditStore(s.queries)
}
