package worker

import (
	"context"
	"fmt"

	"landlordheaven/internal/documents"
	"landlordheaven/internal/orders"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/logger"
	"landlordheaven/pkg/serrors"
	"landlordheaven/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// FulfillmentWorker is a River worker that generates the final documents for
// a paid order. Jobs for orders that are gone, unpaid or canceled are
// canceled permanently; an already fulfilled order is a successful no-op so
// webhook redeliveries and retries stay harmless.
type FulfillmentWorker struct {
	river.WorkerDefaults[orders.FulfillmentJobArgs]

	storage   storage.Storage
	documents documents.Documents
}

// NewFulfillmentWorker constructs a FulfillmentWorker using the provided
// storage and document service.
func NewFulfillmentWorker(store storage.Storage, docs documents.Documents) *FulfillmentWorker {
	return &FulfillmentWorker{
		storage:   store,
		documents: docs,
	}
}

// Work fulfills a single order: it renders and stores the final documents of
// the purchased product, then marks the order fulfilled. On the last
// permitted attempt a failure is also recorded on the order so support can
// see why delivery stopped.
func (w *FulfillmentWorker) Work(ctx context.Context, job *river.Job[orders.FulfillmentJobArgs]) error {
	orderID := job.Args.OrderID
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("orderID", orderID.String()))

	order, err := w.storage.OrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("could not get order: %w", err)
	}
	if order == nil {
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "order no longer exists")) //nolint: wrapcheck
	}
	if order.PaymentStatus != domain.PaymentStatusPaid {
		return river.JobCancel(serrors.With(serrors.ErrConflict, //nolint: wrapcheck
			"order is %s, not paid", order.PaymentStatus))
	}
	if order.FulfillmentStatus == domain.FulfillmentStatusCompleted {
		return nil
	}

	info, ok := domain.ProductByCode(order.Product)
	if !ok {
		return river.JobCancel(serrors.With(serrors.ErrConflict, //nolint: wrapcheck
			"order references unknown product %q", order.Product))
	}

	if _, err := w.documents.Generate(ctx, order.CaseID, order.ID, info.Documents); err != nil {
		logger.Error(ctx, "error generating order documents", zap.Error(err))
		if job.Attempt >= job.MaxAttempts {
			w.markFailed(ctx, orderID, err)
		}

		return fmt.Errorf("could not generate documents: %w", err)
	}

	noError := ""
	if _, err := w.storage.UpdateOrderByID(ctx, orderID, storage.OrderUpdates{
		FulfillmentStatus: domain.FulfillmentStatusCompleted,
		LastError:         &noError,
	}); err != nil {
		return fmt.Errorf("could not mark order fulfilled: %w", err)
	}

	logger.Info(ctx, "order fulfilled")

	return nil
}

// markFailed records the terminal fulfillment failure on the order, best
// effort: the job error is what River reports either way.
func (w *FulfillmentWorker) markFailed(ctx context.Context, orderID domain.OrderID, cause error) {
	msg := cause.Error()
	if _, err := w.storage.UpdateOrderByID(ctx, orderID, storage.OrderUpdates{
		FulfillmentStatus: domain.FulfillmentStatusFailed,
		LastError:         &msg,
	}); err != nil {
		logger.Error(ctx, "error marking order fulfillment failed", zap.Error(err))
	}
}
