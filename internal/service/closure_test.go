package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/service"
)

var _ = Describe("CloseAccount", func() {
	var (
		svc        service.UserService
		userStore  *mockUserStore
		orgStore   *mockOrganizationStore
		members    *mockMemberStore
		sessions   *mockSessionStore
		options    *mockOptionStore
		identities *mockIdentityStore
		audit      *mockAuditStore
		deleter    *mockOrgDeleter
		ctx        context.Context
		user       *model.User
	)

	// Four owned organizations, modeled after the classic scenario: the
	// user solely owns A and B, co-owns C and D with another owner.
	owned := []model.Organization{
		{ID: 1, Name: "Alpha", Slug: "alpha", Status: model.OrgStatusActive},
		{ID: 2, Name: "Bravo", Slug: "bravo", Status: model.OrgStatusActive},
		{ID: 3, Name: "Charlie", Slug: "charlie", Status: model.OrgStatusActive},
		{ID: 4, Name: "Delta", Slug: "delta", Status: model.OrgStatusActive},
	}
	soleOwner := map[int64]bool{1: true, 2: true}

	newService := func() service.UserService {
		return service.NewUserService(service.UserServiceConfig{
			Users:      userStore,
			Orgs:       orgStore,
			Members:    members,
			Sessions:   sessions,
			Options:    options,
			Identities: identities,
			Audit:      audit,
			OrgDeleter: deleter,
			OwnerRole:  "owner",
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		userStore = &mockUserStore{}
		orgStore = &mockOrganizationStore{}
		members = &mockMemberStore{}
		sessions = &mockSessionStore{}
		options = &mockOptionStore{}
		identities = &mockIdentityStore{}
		audit = &mockAuditStore{}
		deleter = &mockOrgDeleter{}
		user = &model.User{ID: 100, Username: "jane", Email: "jane@example.com", IsActive: true}

		orgStore.listOwnedFn = func(_ context.Context, userID int64, role string) ([]model.Organization, error) {
			Expect(userID).To(Equal(user.ID))
			Expect(role).To(Equal("owner"))
			return owned, nil
		}
		members.countWithRoleFn = func(_ context.Context, orgID int64, _ string) (int64, error) {
			if soleOwner[orgID] {
				return 1, nil
			}
			return 2, nil
		}

		svc = newService()
	})

	closeAccount := func(requested ...string) error {
		return svc.CloseAccount(ctx, service.CloseAccountInput{
			User:           user,
			RequestedSlugs: requested,
			ActorID:        user.ID,
			ActorIP:        "203.0.113.7",
		})
	}

	It("deletes single-owner organizations even when none are requested", func() {
		Expect(closeAccount()).To(Succeed())
		Expect(deleter.requestedSlugs).To(ConsistOf("alpha", "bravo"))
	})

	It("deletes requested co-owned organizations on top of forced ones", func() {
		Expect(closeAccount("charlie")).To(Succeed())
		Expect(deleter.requestedSlugs).To(ConsistOf("alpha", "bravo", "charlie"))
	})

	It("ignores requested slugs the user does not own", func() {
		Expect(closeAccount("someone-elses-org")).To(Succeed())
		Expect(deleter.requestedSlugs).To(ConsistOf("alpha", "bravo"))
	})

	It("removes the user from surviving co-owned organizations", func() {
		Expect(closeAccount("charlie")).To(Succeed())
		// delta survives; charlie, alpha, bravo are deleted wholesale
		Expect(members.deletedOrgIDs).To(ConsistOf(int64(4)))
	})

	It("deactivates only the closing user's row", func() {
		Expect(closeAccount()).To(Succeed())
		Expect(userStore.deactivateCalls).To(Equal([]int64{user.ID}))
	})

	It("invalidates all of the user's sessions", func() {
		Expect(closeAccount()).To(Succeed())
		Expect(sessions.deleteByUserCalls).To(Equal([]int64{user.ID}))
	})

	It("records the audit event before any mutation", func() {
		var orderedCalls []string
		audit.recordFn = func(_ context.Context, _ *model.AuditEvent) error {
			orderedCalls = append(orderedCalls, "audit")
			return nil
		}
		deleter.requestFn = func(_ context.Context, _ string) error {
			orderedCalls = append(orderedCalls, "delete")
			return nil
		}
		userStore.deactivateFn = func(_ context.Context, _ int64) error {
			orderedCalls = append(orderedCalls, "deactivate")
			return nil
		}

		Expect(closeAccount()).To(Succeed())
		Expect(orderedCalls[0]).To(Equal("audit"))

		Expect(audit.recorded).To(HaveLen(1))
		event := audit.recorded[0]
		Expect(event.Event).To(Equal(model.AuditUserDeactivate))
		Expect(event.ActorID).To(Equal(user.ID))
		Expect(event.TargetID).To(Equal(user.ID))
		Expect(event.IPAddress).To(Equal("203.0.113.7"))
		Expect(event.Note).To(ContainSubstring("jane"))
	})

	It("still closes the account when an audit write fails", func() {
		audit.recordFn = func(_ context.Context, _ *model.AuditEvent) error {
			return errors.New("audit log unavailable")
		}

		Expect(closeAccount()).To(Succeed())
		Expect(userStore.deactivateCalls).To(Equal([]int64{user.ID}))
	})

	It("still deactivates and logs out when an organization deletion fails", func() {
		deleter.requestFn = func(_ context.Context, slug string) error {
			if slug == "alpha" {
				return errors.New("queue unavailable")
			}
			return nil
		}

		Expect(closeAccount()).To(Succeed())
		Expect(userStore.deactivateCalls).To(Equal([]int64{user.ID}))
		Expect(sessions.deleteByUserCalls).To(Equal([]int64{user.ID}))
	})

	It("succeeds for a user who owns nothing", func() {
		orgStore.listOwnedFn = func(_ context.Context, _ int64, _ string) ([]model.Organization, error) {
			return nil, nil
		}

		Expect(closeAccount()).To(Succeed())
		Expect(deleter.requestedSlugs).To(BeEmpty())
		Expect(members.deletedOrgIDs).To(BeEmpty())
		Expect(userStore.deactivateCalls).To(Equal([]int64{user.ID}))
	})

	It("fails before mutating anything when owned organizations cannot be listed", func() {
		orgStore.listOwnedFn = func(_ context.Context, _ int64, _ string) ([]model.Organization, error) {
			return nil, errors.New("db down")
		}

		Expect(closeAccount()).NotTo(Succeed())
		Expect(audit.recorded).To(BeEmpty())
		Expect(userStore.deactivateCalls).To(BeEmpty())
	})
})
