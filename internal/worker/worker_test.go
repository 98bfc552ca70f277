package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdocuments "landlordheaven/internal/documents/mock"
	"landlordheaven/internal/orders"
	"landlordheaven/internal/worker"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/logger"
	"landlordheaven/pkg/storage"
	mockstorage "landlordheaven/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeFulfillmentJob(id int64, orderID domain.OrderID, attempt, maxAttempts int) *river.Job[orders.FulfillmentJobArgs] {
	return &river.Job[orders.FulfillmentJobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: attempt, MaxAttempts: maxAttempts},
		Args:   orders.NewFulfillmentJobArgs(orderID, maxAttempts),
	}
}

func paidOrder(orderID domain.OrderID, caseID domain.CaseID) *domain.Order {
	return &domain.Order{
		ID:                orderID,
		CaseID:            caseID,
		Product:           domain.ProductEvictionPack,
		PaymentStatus:     domain.PaymentStatusPaid,
		FulfillmentStatus: domain.FulfillmentStatusUnfulfilled,
	}
}

func TestFulfillmentWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	docs := mockdocuments.NewMockDocuments(ctrl)
	w := worker.NewFulfillmentWorker(st, docs)

	orderID := domain.OrderID(uuid.New())
	caseID := domain.CaseID(uuid.New())

	st.EXPECT().OrderByID(gomock.Any(), orderID).Return(paidOrder(orderID, caseID), nil)
	// the eviction pack delivers both notices
	docs.EXPECT().Generate(gomock.Any(), caseID, orderID,
		[]domain.DocumentType{domain.DocumentTypeSection8Notice, domain.DocumentTypeSection21Notice}).
		Return([]domain.Document{{}, {}}, nil)
	st.EXPECT().UpdateOrderByID(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.OrderID, updates storage.OrderUpdates) (*domain.Order, error) {
			require.Equal(t, domain.FulfillmentStatusCompleted, updates.FulfillmentStatus)
			require.NotNil(t, updates.LastError)
			require.Empty(t, *updates.LastError)

			return &domain.Order{ID: id}, nil
		},
	)

	require.NoError(t, w.Work(context.Background(), makeFulfillmentJob(1, orderID, 1, 5)))
}

func TestFulfillmentWorker_Work_UnpaidCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewFulfillmentWorker(st, mockdocuments.NewMockDocuments(ctrl))

	orderID := domain.OrderID(uuid.New())
	st.EXPECT().OrderByID(gomock.Any(), orderID).Return(&domain.Order{
		ID:            orderID,
		PaymentStatus: domain.PaymentStatusCanceled,
	}, nil)

	err := w.Work(context.Background(), makeFulfillmentJob(2, orderID, 1, 5))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestFulfillmentWorker_Work_MissingOrderCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewFulfillmentWorker(st, mockdocuments.NewMockDocuments(ctrl))

	orderID := domain.OrderID(uuid.New())
	st.EXPECT().OrderByID(gomock.Any(), orderID).Return(nil, nil)

	err := w.Work(context.Background(), makeFulfillmentJob(3, orderID, 1, 5))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestFulfillmentWorker_Work_AlreadyFulfilled(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewFulfillmentWorker(st, mockdocuments.NewMockDocuments(ctrl))

	orderID := domain.OrderID(uuid.New())
	st.EXPECT().OrderByID(gomock.Any(), orderID).Return(&domain.Order{
		ID:                orderID,
		PaymentStatus:     domain.PaymentStatusPaid,
		FulfillmentStatus: domain.FulfillmentStatusCompleted,
	}, nil)

	require.NoError(t, w.Work(context.Background(), makeFulfillmentJob(4, orderID, 2, 5)))
}

func TestFulfillmentWorker_Work_LastAttemptMarksFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	docs := mockdocuments.NewMockDocuments(ctrl)
	w := worker.NewFulfillmentWorker(st, docs)

	orderID := domain.OrderID(uuid.New())
	caseID := domain.CaseID(uuid.New())
	renderErr := errors.New("render exploded")

	st.EXPECT().OrderByID(gomock.Any(), orderID).Return(paidOrder(orderID, caseID), nil)
	docs.EXPECT().Generate(gomock.Any(), caseID, orderID, gomock.Any()).Return(nil, renderErr)
	st.EXPECT().UpdateOrderByID(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.OrderID, updates storage.OrderUpdates) (*domain.Order, error) {
			require.Equal(t, domain.FulfillmentStatusFailed, updates.FulfillmentStatus)
			require.NotNil(t, updates.LastError)
			require.Contains(t, *updates.LastError, "render exploded")

			return &domain.Order{ID: id}, nil
		},
	)

	err := w.Work(context.Background(), makeFulfillmentJob(5, orderID, 5, 5))
	require.ErrorIs(t, err, renderErr)
}

func TestFulfillmentWorker_Work_RetriableFailureKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	docs := mockdocuments.NewMockDocuments(ctrl)
	w := worker.NewFulfillmentWorker(st, docs)

	orderID := domain.OrderID(uuid.New())
	caseID := domain.CaseID(uuid.New())

	st.EXPECT().OrderByID(gomock.Any(), orderID).Return(paidOrder(orderID, caseID), nil)
	// attempts remain, so the order must not be marked failed yet
	docs.EXPECT().Generate(gomock.Any(), caseID, orderID, gomock.Any()).
		Return(nil, errors.New("transient"))

	err := w.Work(context.Background(), makeFulfillmentJob(6, orderID, 2, 5))
	require.Error(t, err)
}

func TestSweepWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	retention := 30 * 24 * time.Hour
	w := worker.NewSweepWorker(st, retention)

	staleA := domain.CaseID(uuid.New())
	staleB := domain.CaseID(uuid.New())

	st.EXPECT().ArchiveStaleAnonymousCases(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, before time.Time) ([]domain.CaseID, error) {
			require.WithinDuration(t, time.Now().Add(-retention), before, time.Minute)

			return []domain.CaseID{staleA, staleB}, nil
		},
	)
	st.EXPECT().DeleteCasePreviews(gomock.Any(), staleA, domain.DocumentType("")).Return(int64(2), nil)
	st.EXPECT().DeleteCasePreviews(gomock.Any(), staleB, domain.DocumentType("")).Return(int64(0), nil)

	job := &river.Job[worker.SweepJobArgs]{
		JobRow: &rivertype.JobRow{ID: 7},
		Args:   worker.SweepJobArgs{},
	}
	require.NoError(t, w.Work(context.Background(), job))
}

func TestSweepWorker_Work_NothingStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewSweepWorker(st, 30*24*time.Hour)

	st.EXPECT().ArchiveStaleAnonymousCases(gomock.Any(), gomock.Any()).Return(nil, nil)

	job := &river.Job[worker.SweepJobArgs]{
		JobRow: &rivertype.JobRow{ID: 8},
		Args:   worker.SweepJobArgs{},
	}
	require.NoError(t, w.Work(context.Background(), job))
}
