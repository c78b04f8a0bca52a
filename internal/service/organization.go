package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"atlasorg.app/console/common"
	"atlasorg.app/console/common/id"
	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/queue"
	"atlasorg.app/console/internal/store"
	"go.opentelemetry.io/otel/trace"
)

// OrganizationDeleter is the deletion collaborator used by account closure.
// RequestDeletion marks the organization for teardown and hands the cascade
// to the deletion worker; it owns its own idempotence.
type OrganizationDeleter interface {
	RequestDeletion(ctx context.Context, slug string) error
}

type OrganizationService interface {
	OrganizationDeleter
	Create(ctx context.Context, name string, slug *string, creatorID int64) (*model.Organization, error)
	RequestDeletionBy(ctx context.Context, slug string, actor *model.User) error
}

type organizationService struct {
	orgStore    store.OrganizationStore
	memberStore store.MemberStore
	txRunner    TxRunner
	producer    queue.Producer
	ownerRole   string
}

func NewOrganizationService(orgStore store.OrganizationStore, memberStore store.MemberStore, txRunner TxRunner, producer queue.Producer, ownerRole string) OrganizationService {
	return &organizationService{
		orgStore:    orgStore,
		memberStore: memberStore,
		txRunner:    txRunner,
		producer:    producer,
		ownerRole:   ownerRole,
	}
}

func (s *organizationService) Create(ctx context.Context, name string, slug *string, creatorID int64) (*model.Organization, error) {
	finalSlug, err := s.ensureSlug(ctx, name, slug)
	if err != nil {
		return nil, err
	}

	org := &model.Organization{
		ID:   id.New(),
		Name: name,
		Slug: finalSlug,
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Organizations().Create(ctx, org); err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}
		member := &model.OrganizationMember{
			ID:             id.New(),
			OrganizationID: org.ID,
			UserID:         creatorID,
			Role:           s.ownerRole,
		}
		if err := stores.Members().Create(ctx, member); err != nil {
			return fmt.Errorf("creating owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization created",
		"organization_id", org.ID,
		"slug", org.Slug,
		"creator_id", creatorID,
	)
	return org, nil
}

// RequestDeletion moves the organization to pending_deletion and enqueues the
// cascade for the deletion worker. Re-requesting an organization that is
// already pending is harmless.
func (s *organizationService) RequestDeletion(ctx context.Context, slug string) error {
	org, err := s.orgStore.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("organization %q: %w", slug, store.ErrNotFound)
		}
		return fmt.Errorf("loading organization %q: %w", slug, err)
	}

	if org.Status == model.OrgStatusDeletionInProgress {
		slog.InfoContext(ctx, "organization deletion already in progress", "organization_id", org.ID, "slug", slug)
		return nil
	}

	if _, err := s.orgStore.SetStatus(ctx, org.ID, model.OrgStatusPendingDeletion); err != nil {
		return fmt.Errorf("marking organization %q pending deletion: %w", slug, err)
	}

	msg := queue.DeletionMessage{OrganizationID: org.ID}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		traceID := sc.TraceID().String()
		msg.TraceID = &traceID
	}

	if err := s.producer.Enqueue(ctx, msg); err != nil {
		// Status already flipped; the caller decides whether to retry.
		return fmt.Errorf("enqueueing deletion for %q: %w", slug, err)
	}

	slog.InfoContext(ctx, "organization deletion requested",
		"organization_id", org.ID,
		"slug", slug,
	)
	return nil
}

// RequestDeletionBy is the externally-triggered deletion path: the actor must
// hold the owner role in the organization unless they are a superuser.
func (s *organizationService) RequestDeletionBy(ctx context.Context, slug string, actor *model.User) error {
	if !actor.IsSuperuser {
		org, err := s.orgStore.GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("organization %q: %w", slug, store.ErrNotFound)
			}
			return fmt.Errorf("loading organization %q: %w", slug, err)
		}

		member, err := s.memberStore.Get(ctx, org.ID, actor.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrForbidden
			}
			return fmt.Errorf("loading membership: %w", err)
		}
		if member.Role != s.ownerRole {
			return ErrForbidden
		}
	}

	return s.RequestDeletion(ctx, slug)
}

func (s *organizationService) ensureSlug(ctx context.Context, name string, slug *string) (string, error) {
	input := name
	if slug != nil && *slug != "" {
		input = *slug
	}

	base, err := common.Slugify(input, "org")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	// Fast path
	if _, err := s.orgStore.GetBySlug(ctx, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	// Add numeric suffix until available
	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := s.orgStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}
