package documents_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"landlordheaven/internal/documents"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/serrors"
	"landlordheaven/pkg/storage"

	mockblobstore "landlordheaven/pkg/blobstore/mock"
	mockstorage "landlordheaven/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const presignTTL = 15 * time.Minute

func newTestDocuments(t *testing.T) (*gomock.Controller,
	*mockstorage.MockStorage,
	*mockblobstore.MockStore,
	documents.Documents) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	blobs := mockblobstore.NewMockStore(ctrl)
	s := documents.New(st, blobs, documents.Options{PresignTTL: presignTTL})

	return ctrl, st, blobs, s
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func boolPtr(b bool) *bool { return &b }

// tenancyCase has the facts a tenancy agreement needs, which keeps the render
// inside these tests cheap.
func tenancyCase(caseID domain.CaseID, userID domain.UserID) *domain.Case {
	return &domain.Case{
		ID:     caseID,
		UserID: userID,
		Type:   domain.CaseTypeTenancyAgreement,
		Status: domain.CaseStatusCompleted,
		Facts: domain.CaseFacts{
			Landlord: &domain.LandlordFacts{
				Name:         "Harriet Vane",
				AddressLines: []string{"1 Paternoster Row"},
				Postcode:     "EC4M 7DX",
			},
			Tenant:   &domain.TenantFacts{Names: []string{"Peter Wimsey"}},
			Property: &domain.PropertyFacts{AddressLines: []string{"110A Piccadilly"}, Postcode: "W1J 7BX"},
			Tenancy: &domain.TenancyFacts{
				Type:             domain.TenancyTypeAST,
				StartDate:        domain.NewDate(2026, time.January, 1),
				RentPence:        120000,
				RentPeriod:       domain.RentPeriodMonthly,
				DepositPence:     138000,
				DepositProtected: boolPtr(true),
			},
		},
	}
}

func TestDocuments_Preview(t *testing.T) {
	ctrl, st, blobs, s := newTestDocuments(t)
	userID := domain.UserID(uuid.New())
	caseID := domain.CaseID(uuid.New())

	st.EXPECT().CaseByID(gomock.Any(), caseID).Return(tenancyCase(caseID, userID), nil)
	blobs.EXPECT().Put(gomock.Any(), gomock.Any(), "application/pdf", gomock.Any()).DoAndReturn(
		func(_ context.Context, key, _ string, body []byte) error {
			require.Contains(t, key, "cases/"+caseID.String()+"/preview/")
			require.Equal(t, "%PDF", string(body[:4]))

			return nil
		},
	)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteCasePreviews(gomock.Any(), caseID, domain.DocumentTypeTenancyAgreement).
			Return(int64(1), nil)
		tx.EXPECT().StoreDocuments(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, docs ...domain.Document) ([]domain.Document, error) {
				require.Len(t, docs, 1)
				require.True(t, docs[0].IsPreview)
				require.True(t, docs[0].OrderID.IsZero())
				require.NotEmpty(t, docs[0].ContentSHA256)
				require.Positive(t, docs[0].SizeBytes)
				docs[0].ID = domain.DocumentID(uuid.New())

				return docs, nil
			},
		)
	})

	doc, err := s.Preview(context.Background(),
		domain.Actor{UserID: userID}, caseID, domain.DocumentTypeTenancyAgreement)
	require.NoError(t, err)
	require.True(t, doc.IsPreview)
}

func TestDocuments_Preview_ForeignCase(t *testing.T) {
	_, st, _, s := newTestDocuments(t)
	caseID := domain.CaseID(uuid.New())

	st.EXPECT().CaseByID(gomock.Any(), caseID).
		Return(tenancyCase(caseID, domain.UserID(uuid.New())), nil)

	_, err := s.Preview(context.Background(),
		domain.Actor{UserID: domain.UserID(uuid.New())}, caseID, domain.DocumentTypeTenancyAgreement)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestDocuments_Generate(t *testing.T) {
	ctrl, st, blobs, s := newTestDocuments(t)
	caseID := domain.CaseID(uuid.New())
	orderID := domain.OrderID(uuid.New())

	st.EXPECT().CaseByID(gomock.Any(), caseID).
		Return(tenancyCase(caseID, domain.UserID(uuid.New())), nil)
	blobs.EXPECT().Put(gomock.Any(), gomock.Any(), "application/pdf", gomock.Any()).Return(nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteOrderDocuments(gomock.Any(), orderID).Return(int64(0), nil)
		tx.EXPECT().StoreDocuments(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, docs ...domain.Document) ([]domain.Document, error) {
				require.Len(t, docs, 1)
				require.False(t, docs[0].IsPreview)
				require.Equal(t, orderID, docs[0].OrderID)

				return docs, nil
			},
		)
	})

	docs, err := s.Generate(context.Background(), caseID, orderID,
		[]domain.DocumentType{domain.DocumentTypeTenancyAgreement})
	require.NoError(t, err)
	require.Len(t, docs, 1)
}

func TestDocuments_List_HidesUnpaidFinals(t *testing.T) {
	_, st, _, s := newTestDocuments(t)
	userID := domain.UserID(uuid.New())
	caseID := domain.CaseID(uuid.New())
	paidOrder := domain.OrderID(uuid.New())
	pendingOrder := domain.OrderID(uuid.New())

	st.EXPECT().CaseByID(gomock.Any(), caseID).Return(tenancyCase(caseID, userID), nil)
	st.EXPECT().CaseDocuments(gomock.Any(), caseID).Return([]domain.Document{
		{ID: domain.DocumentID(uuid.New()), CaseID: caseID, IsPreview: true},
		{ID: domain.DocumentID(uuid.New()), CaseID: caseID, OrderID: paidOrder},
		{ID: domain.DocumentID(uuid.New()), CaseID: caseID, OrderID: pendingOrder},
	}, nil)
	st.EXPECT().CaseOrders(gomock.Any(), caseID).Return([]domain.Order{
		{ID: paidOrder, PaymentStatus: domain.PaymentStatusPaid},
		{ID: pendingOrder, PaymentStatus: domain.PaymentStatusPending},
	}, nil)

	docs, err := s.List(context.Background(), domain.Actor{UserID: userID}, caseID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	for _, d := range docs {
		require.True(t, d.IsPreview || d.OrderID == paidOrder)
	}
}

func TestDocuments_DownloadURL_PaymentGate(t *testing.T) {
	_, st, _, s := newTestDocuments(t)
	userID := domain.UserID(uuid.New())
	caseID := domain.CaseID(uuid.New())
	orderID := domain.OrderID(uuid.New())
	docID := domain.DocumentID(uuid.New())

	st.EXPECT().DocumentByID(gomock.Any(), docID).Return(&domain.Document{
		ID:        docID,
		CaseID:    caseID,
		OrderID:   orderID,
		Type:      domain.DocumentTypeSection8Notice,
		ObjectKey: "cases/x/final/doc.pdf",
	}, nil)
	st.EXPECT().CaseByID(gomock.Any(), caseID).Return(tenancyCase(caseID, userID), nil)
	st.EXPECT().OrderByID(gomock.Any(), orderID).Return(&domain.Order{
		ID:            orderID,
		PaymentStatus: domain.PaymentStatusPending,
	}, nil)

	_, err := s.DownloadURL(context.Background(), domain.Actor{UserID: userID}, docID)
	require.True(t, errors.Is(err, serrors.ErrPaymentRequired))
}

func TestDocuments_DownloadURL_Preview(t *testing.T) {
	_, st, blobs, s := newTestDocuments(t)
	userID := domain.UserID(uuid.New())
	caseID := domain.CaseID(uuid.New())
	docID := domain.DocumentID(uuid.New())

	st.EXPECT().DocumentByID(gomock.Any(), docID).Return(&domain.Document{
		ID:        docID,
		CaseID:    caseID,
		Type:      domain.DocumentTypeSection21Notice,
		IsPreview: true,
		ObjectKey: "cases/x/preview/doc.pdf",
	}, nil)
	st.EXPECT().CaseByID(gomock.Any(), caseID).Return(tenancyCase(caseID, userID), nil)
	blobs.EXPECT().PresignGet(gomock.Any(), "cases/x/preview/doc.pdf",
		"section21_notice-preview.pdf", presignTTL).
		Return("https://blobs.example.com/signed", nil)

	url, err := s.DownloadURL(context.Background(), domain.Actor{UserID: userID}, docID)
	require.NoError(t, err)
	require.Equal(t, "https://blobs.example.com/signed", url)
}

func TestDocuments_Get_UnpaidFinalHidden(t *testing.T) {
	_, st, _, s := newTestDocuments(t)
	userID := domain.UserID(uuid.New())
	caseID := domain.CaseID(uuid.New())
	orderID := domain.OrderID(uuid.New())
	docID := domain.DocumentID(uuid.New())

	st.EXPECT().DocumentByID(gomock.Any(), docID).Return(&domain.Document{
		ID:      docID,
		CaseID:  caseID,
		OrderID: orderID,
	}, nil)
	st.EXPECT().CaseByID(gomock.Any(), caseID).Return(tenancyCase(caseID, userID), nil)
	st.EXPECT().OrderByID(gomock.Any(), orderID).Return(&domain.Order{
		ID:            orderID,
		PaymentStatus: domain.PaymentStatusPending,
	}, nil)

	_, err := s.Get(context.Background(), domain.Actor{UserID: userID}, docID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
