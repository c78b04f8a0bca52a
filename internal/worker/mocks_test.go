package worker_test

import (
	"context"

	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/queue"
	"atlasorg.app/console/internal/store"
	"atlasorg.app/console/internal/worker"
)

type mockConsumer struct {
	readFn func(ctx context.Context) ([]queue.Message, error)

	acked    []string
	requeued []string
	dlq      []string
	lastErr  string
}

func (m *mockConsumer) Read(ctx context.Context) ([]queue.Message, error) {
	if m.readFn != nil {
		return m.readFn(ctx)
	}
	return nil, nil
}

func (m *mockConsumer) Ack(_ context.Context, msg queue.Message) error {
	m.acked = append(m.acked, msg.ID)
	return nil
}

func (m *mockConsumer) Requeue(_ context.Context, msg queue.Message, errMsg string) error {
	m.requeued = append(m.requeued, msg.ID)
	m.lastErr = errMsg
	return nil
}

func (m *mockConsumer) SendDLQ(_ context.Context, msg queue.Message, errMsg string) error {
	m.dlq = append(m.dlq, msg.ID)
	m.lastErr = errMsg
	return nil
}

type mockOrganizationStore struct {
	getByIDFn   func(ctx context.Context, id int64) (*model.Organization, error)
	setStatusFn func(ctx context.Context, id int64, status model.OrgStatus) (*model.Organization, error)
	deleteFn    func(ctx context.Context, id int64) error

	setStatusCalls []model.OrgStatus
	deletedIDs     []int64
}

func (m *mockOrganizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrganizationStore) GetBySlug(_ context.Context, _ string) (*model.Organization, error) {
	return nil, store.ErrNotFound
}

func (m *mockOrganizationStore) Create(_ context.Context, _ *model.Organization) error {
	return nil
}

func (m *mockOrganizationStore) SetStatus(ctx context.Context, id int64, status model.OrgStatus) (*model.Organization, error) {
	m.setStatusCalls = append(m.setStatusCalls, status)
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, id, status)
	}
	return &model.Organization{ID: id, Status: status}, nil
}

func (m *mockOrganizationStore) Delete(ctx context.Context, id int64) error {
	m.deletedIDs = append(m.deletedIDs, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockOrganizationStore) ListOwnedActive(_ context.Context, _ int64, _ string) ([]model.Organization, error) {
	return nil, nil
}

type mockMemberStore struct {
	deleteByOrgFn func(ctx context.Context, orgID int64) error

	deletedOrgIDs []int64
}

func (m *mockMemberStore) Create(_ context.Context, _ *model.OrganizationMember) error {
	return nil
}

func (m *mockMemberStore) Get(_ context.Context, _, _ int64) (*model.OrganizationMember, error) {
	return nil, store.ErrNotFound
}

func (m *mockMemberStore) CountWithRole(_ context.Context, _ int64, _ string) (int64, error) {
	return 0, nil
}

func (m *mockMemberStore) DeleteUserMemberships(_ context.Context, _ int64, _ []int64) error {
	return nil
}

func (m *mockMemberStore) DeleteByOrganization(ctx context.Context, orgID int64) error {
	m.deletedOrgIDs = append(m.deletedOrgIDs, orgID)
	if m.deleteByOrgFn != nil {
		return m.deleteByOrgFn(ctx, orgID)
	}
	return nil
}

// mockTxRunner runs the transaction body directly against the mock stores and
// reports whether it committed or rolled back.
type mockTxRunner struct {
	orgs    *mockOrganizationStore
	members *mockMemberStore

	commits   int
	rollbacks int
}

func (m *mockTxRunner) WithTx(_ context.Context, fn func(stores worker.StoreProvider) error) error {
	if err := fn(m); err != nil {
		m.rollbacks++
		return err
	}
	m.commits++
	return nil
}

func (m *mockTxRunner) Organizations() store.OrganizationStore { return m.orgs }
func (m *mockTxRunner) Members() store.MemberStore             { return m.members }
