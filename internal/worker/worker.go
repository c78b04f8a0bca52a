package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"atlasorg.app/console/common/logger"
	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/queue"
	"atlasorg.app/console/internal/store"
	"go.opentelemetry.io/otel/trace"
)

// Mirrors service.StoreProvider - defined here to avoid import cycles.
type StoreProvider interface {
	Organizations() store.OrganizationStore
	Members() store.MemberStore
}

// Mirrors service.TxRunner - defined here to avoid import cycles.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type Config struct {
	MaxAttempts int
}

// Worker drains the organization-deletion stream and runs the teardown
// cascade for each message.
type Worker struct {
	consumer Consumer
	txRunner TxRunner
	cfg      Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer Consumer, txRunner TxRunner, cfg Config) *Worker {
	return &Worker{
		consumer:  consumer,
		txRunner:  txRunner,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.ProcessBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

// ProcessBatch reads one batch from the stream and routes each message
// through the cascade, requeuing or dead-lettering failures.
func (w *Worker) ProcessBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "message processing failed",
				"error", err,
				"message_id", msg.ID,
				"organization_id", msg.OrganizationID)
			w.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing",
				"panic", r,
				"message_id", msg.ID,
				"organization_id", msg.OrganizationID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// Exported so it can be reused by the reclaimer.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	sc := logger.StartSpanFromTraceID(ctx, msg.TraceID, "worker.delete_organization",
		trace.WithSpanKind(trace.SpanKindConsumer))
	defer sc.End()
	ctx = sc.Context()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OrganizationID: &msg.OrganizationID,
		Component:      "console.worker.orgdelete",
	})

	slog.InfoContext(ctx, "processing organization deletion",
		"message_id", msg.ID,
		"organization_id", msg.OrganizationID,
		"attempt", msg.Attempt)

	// Single transaction: claim -> cascade -> drop. If it rolls back the
	// message is not acked and Redis redelivers.
	txErr := w.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		org, err := sp.Organizations().GetByID(ctx, msg.OrganizationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Already gone, nothing to do.
				slog.InfoContext(ctx, "organization already deleted",
					"organization_id", msg.OrganizationID)
				return nil
			}
			return fmt.Errorf("loading organization: %w", err)
		}

		// An organization restored to active after the request was queued
		// must not be torn down.
		if org.Status == model.OrgStatusActive {
			slog.InfoContext(ctx, "organization no longer pending deletion, skipping",
				"organization_id", org.ID,
				"slug", org.Slug)
			return nil
		}

		if org.Status != model.OrgStatusDeletionInProgress {
			if _, err := sp.Organizations().SetStatus(ctx, org.ID, model.OrgStatusDeletionInProgress); err != nil {
				return fmt.Errorf("marking deletion in progress: %w", err)
			}
		}

		if err := sp.Members().DeleteByOrganization(ctx, org.ID); err != nil {
			return fmt.Errorf("deleting memberships: %w", err)
		}

		if err := sp.Organizations().Delete(ctx, org.ID); err != nil {
			return fmt.Errorf("deleting organization: %w", err)
		}

		slog.InfoContext(ctx, "organization deleted",
			"organization_id", org.ID,
			"slug", org.Slug)
		return nil
	})
	if txErr != nil {
		sc.RecordError(txErr)
		return fmt.Errorf("transaction failed: %w", txErr)
	}

	if err := w.consumer.Ack(ctx, msg); err != nil {
		// Log but don't fail - message will be reclaimed but the cascade
		// is idempotent.
		slog.WarnContext(ctx, "failed to ACK message",
			"error", err,
			"message_id", msg.ID)
	}

	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Attempt >= w.cfg.MaxAttempts {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"message_id", msg.ID,
			"organization_id", msg.OrganizationID,
			"attempts", msg.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message",
		"message_id", msg.ID,
		"organization_id", msg.OrganizationID,
		"attempt", msg.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}
