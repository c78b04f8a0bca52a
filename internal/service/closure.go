package service

import (
	"context"
	"fmt"
	"log/slog"

	"atlasorg.app/console/internal/model"
)

// CloseAccountInput carries everything the closure pipeline needs. Actor
// metadata goes into the audit trail before anything is mutated.
type CloseAccountInput struct {
	User *model.User

	// RequestedSlugs is the set of owned organizations the user asked to
	// delete alongside the account. Slugs outside the owned set are ignored.
	RequestedSlugs []string

	ActorID int64
	ActorIP string
}

// ownedOrg is one organization the closing user owns, classified by whether
// the user is its only owner.
type ownedOrg struct {
	Org         model.Organization
	SingleOwner bool
}

func (s *userService) CloseAccount(ctx context.Context, in CloseAccountInput) error {
	owned, err := s.orgStore.ListOwnedActive(ctx, in.User.ID, s.ownerRole)
	if err != nil {
		return fmt.Errorf("listing owned organizations: %w", err)
	}

	classified := make([]ownedOrg, 0, len(owned))
	for _, org := range owned {
		owners, err := s.memberStore.CountWithRole(ctx, org.ID, s.ownerRole)
		if err != nil {
			return fmt.Errorf("counting owners of %s: %w", org.Slug, err)
		}
		classified = append(classified, ownedOrg{Org: org, SingleOwner: owners == 1})
	}

	removeSlugs := resolveRemovalSet(classified, in.RequestedSlugs)

	s.recordClosure(ctx, in)

	// Past this point failures are logged and skipped. The account still
	// gets deactivated and logged out, and the caller reports success; a
	// stuck organization deletion is recoverable, a half-closed account
	// that the user retries against is worse.
	remove := make(map[string]bool, len(removeSlugs))
	for _, slug := range removeSlugs {
		remove[slug] = true
		if err := s.orgDeleter.RequestDeletion(ctx, slug); err != nil {
			slog.ErrorContext(ctx, "organization deletion request failed during account closure",
				"organization_slug", slug, "user_id", in.User.ID, "error", err)
		}
	}

	var demoted []int64
	for _, o := range classified {
		if !remove[o.Org.Slug] {
			demoted = append(demoted, o.Org.ID)
		}
	}
	if len(demoted) > 0 {
		if err := s.memberStore.DeleteUserMemberships(ctx, in.User.ID, demoted); err != nil {
			slog.ErrorContext(ctx, "removing memberships during account closure",
				"user_id", in.User.ID, "error", err)
		}
	}

	if err := s.userStore.Deactivate(ctx, in.User.ID); err != nil {
		return fmt.Errorf("deactivating user: %w", err)
	}

	if err := s.sessionStore.DeleteByUser(ctx, in.User.ID); err != nil {
		slog.ErrorContext(ctx, "invalidating sessions during account closure",
			"user_id", in.User.ID, "error", err)
	}

	slog.InfoContext(ctx, "account closed",
		"user_id", in.User.ID, "organizations_removed", len(removeSlugs), "organizations_demoted", len(demoted))
	return nil
}

// resolveRemovalSet picks which owned organizations get deleted with the
// account: everything the user asked for that they actually own, plus every
// organization where they are the only owner, requested or not. The rest are
// left standing and the user is simply removed from them.
func resolveRemovalSet(owned []ownedOrg, requested []string) []string {
	req := make(map[string]bool, len(requested))
	for _, slug := range requested {
		req[slug] = true
	}

	var out []string
	for _, o := range owned {
		if o.SingleOwner || req[o.Org.Slug] {
			out = append(out, o.Org.Slug)
		}
	}
	return out
}

// recordClosure writes the audit event before any destructive step. A failed
// audit write is logged but does not block the closure.
func (s *userService) recordClosure(ctx context.Context, in CloseAccountInput) {
	event := &model.AuditEvent{
		Event:     model.AuditUserDeactivate,
		ActorID:   in.ActorID,
		IPAddress: in.ActorIP,
		TargetID:  in.User.ID,
		Note:      fmt.Sprintf("Removed user %s", in.User.Username),
	}
	if err := s.auditStore.Record(ctx, event); err != nil {
		slog.WarnContext(ctx, "audit write failed during account closure",
			"user_id", in.User.ID, "error", err)
	}
}
