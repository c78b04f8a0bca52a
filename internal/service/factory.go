package service

import (
	"atlasorg.app/console/core/config"
	"atlasorg.app/console/internal/queue"
	"atlasorg.app/console/internal/store"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	producer queue.Producer
	cfg      *config.Config
}

func NewServices(stores *store.Stores, txRunner TxRunner, producer queue.Producer, cfg *config.Config) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		producer: producer,
		cfg:      cfg,
	}
}

func (s *Services) Users() UserService {
	return NewUserService(UserServiceConfig{
		Users:      s.stores.Users(),
		Orgs:       s.stores.Organizations(),
		Members:    s.stores.Members(),
		Sessions:   s.stores.Sessions(),
		Options:    s.stores.Options(),
		Identities: s.stores.Identities(),
		Audit:      s.stores.Audit(),
		OrgDeleter: s.Organizations(),

		OwnerRole:     s.cfg.Accounts.OwnerRole,
		ManagedFields: s.cfg.Accounts.ManagedUserFields,
	})
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(s.stores.Organizations(), s.stores.Members(), s.txRunner, s.producer, s.cfg.Accounts.OwnerRole)
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Users(),
		s.stores.Sessions(),
		s.stores.Identities(),
		s.cfg.WorkOS,
		s.cfg.Accounts.SudoTTL,
	)
}
