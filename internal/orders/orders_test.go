package orders_test

import (
	"context"
	"errors"
	"testing"

	"landlordheaven/internal/orders"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/payments"
	"landlordheaven/pkg/serrors"
	"landlordheaven/pkg/storage"

	mockpayments "landlordheaven/pkg/payments/mock"
	mockstorage "landlordheaven/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newTestOrders(t *testing.T) (*gomock.Controller,
	*mockstorage.MockStorage,
	*mockpayments.MockProvider,
	orders.Orders) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	provider := mockpayments.NewMockProvider(ctrl)
	s := orders.New(st, provider, orders.Options{
		SuccessURL:         "https://example.com/success",
		CancelURL:          "https://example.com/cancel",
		FulfillMaxAttempts: 3,
	})

	return ctrl, st, provider, s
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

func newSessionID() domain.SessionID { return domain.SessionID(uuid.New()) }
func newUserID() domain.UserID       { return domain.UserID(uuid.New()) }
func newCaseID() domain.CaseID       { return domain.CaseID(uuid.New()) }
func newOrderID() domain.OrderID     { return domain.OrderID(uuid.New()) }

func completedCase(caseID domain.CaseID, userID domain.UserID) *domain.Case {
	return &domain.Case{
		ID:       caseID,
		UserID:   userID,
		Type:     domain.CaseTypeEviction,
		Status:   domain.CaseStatusCompleted,
		Progress: domain.WizardProgress{Complete: true},
	}
}

func TestOrders_Checkout(t *testing.T) {
	_, st, provider, s := newTestOrders(t)
	userID := newUserID()
	caseID := newCaseID()
	orderID := newOrderID()

	st.EXPECT().CaseByID(gomock.Any(), caseID).Return(completedCase(caseID, userID), nil)
	st.EXPECT().CaseOrders(gomock.Any(), caseID).Return(nil, nil)
	st.EXPECT().StoreOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o domain.Order) (*domain.Order, error) {
			if o.Product != domain.ProductSection8Notice {
				t.Fatalf("expected section8_notice, got %s", o.Product)
			}
			if o.AmountPence != 3999 || o.Currency != "gbp" {
				t.Fatalf("expected catalog price, got %d %s", o.AmountPence, o.Currency)
			}
			if o.PaymentStatus != domain.PaymentStatusPending {
				t.Fatalf("expected pending order, got %s", o.PaymentStatus)
			}
			if o.UserID != userID {
				t.Fatalf("expected order to carry the case owner")
			}
			o.ID = orderID

			return &o, nil
		},
	)
	st.EXPECT().UserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Email: "alice@example.com"}, nil)
	provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params payments.CheckoutParams) (payments.CheckoutSession, error) {
			if params.OrderID != orderID {
				t.Fatalf("expected the stored order to be referenced")
			}
			if params.CustomerEmail != "alice@example.com" {
				t.Fatalf("expected the owner email to prefill checkout")
			}

			return payments.CheckoutSession{ID: "cs_123", URL: "https://pay.example.com/cs_123"}, nil
		},
	)
	st.EXPECT().UpdateOrderByID(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.OrderID, updates storage.OrderUpdates) (*domain.Order, error) {
			if updates.CheckoutSessionID == nil || *updates.CheckoutSessionID != "cs_123" {
				t.Fatalf("expected the checkout session to be attached")
			}

			return &domain.Order{ID: id, CheckoutSessionID: "cs_123"}, nil
		},
	)

	order, url, err := s.Checkout(context.Background(),
		domain.Actor{UserID: userID}, caseID, domain.ProductSection8Notice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != orderID {
		t.Fatalf("expected order %s, got %s", orderID, order.ID)
	}
	if url != "https://pay.example.com/cs_123" {
		t.Fatalf("unexpected redirect URL %q", url)
	}
}

func TestOrders_Checkout_ProviderFailure(t *testing.T) {
	_, st, provider, s := newTestOrders(t)
	userID := newUserID()
	caseID := newCaseID()
	orderID := newOrderID()

	st.EXPECT().CaseByID(gomock.Any(), caseID).Return(completedCase(caseID, userID), nil)
	st.EXPECT().CaseOrders(gomock.Any(), caseID).Return(nil, nil)
	st.EXPECT().StoreOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o domain.Order) (*domain.Order, error) {
			o.ID = orderID

			return &o, nil
		},
	)
	st.EXPECT().UserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Email: "alice@example.com"}, nil)
	provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(payments.CheckoutSession{}, errors.New("stripe is down"))

	// the pending row must be canceled, never left waiting for a webhook that
	// cannot arrive
	st.EXPECT().UpdateOrderByID(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.OrderID, updates storage.OrderUpdates) (*domain.Order, error) {
			if updates.PaymentStatus != domain.PaymentStatusCanceled {
				t.Fatalf("expected the order to be canceled, got %q", updates.PaymentStatus)
			}

			return &domain.Order{ID: id, PaymentStatus: domain.PaymentStatusCanceled}, nil
		},
	)

	_, _, err := s.Checkout(context.Background(),
		domain.Actor{UserID: userID}, caseID, domain.ProductSection8Notice)
	if err == nil {
		t.Fatal("expected the provider failure to surface")
	}
}

func TestOrders_Checkout_UnknownProduct(t *testing.T) {
	_, _, _, s := newTestOrders(t)

	_, _, err := s.Checkout(context.Background(),
		domain.Actor{UserID: newUserID()}, newCaseID(), domain.Product("gold_bars"))
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestOrders_Checkout_WizardIncomplete(t *testing.T) {
	_, st, _, s := newTestOrders(t)
	userID := newUserID()
	caseID := newCaseID()

	st.EXPECT().CaseByID(gomock.Any(), caseID).Return(&domain.Case{
		ID:     caseID,
		UserID: userID,
		Status: domain.CaseStatusInProgress,
	}, nil)

	_, _, err := s.Checkout(context.Background(),
		domain.Actor{UserID: userID}, caseID, domain.ProductSection8Notice)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestOrders_Checkout_ForeignCase(t *testing.T) {
	_, st, _, s := newTestOrders(t)
	caseID := newCaseID()

	st.EXPECT().CaseByID(gomock.Any(), caseID).
		Return(completedCase(caseID, newUserID()), nil)

	_, _, err := s.Checkout(context.Background(),
		domain.Actor{UserID: newUserID()}, caseID, domain.ProductSection8Notice)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected foreign cases to read as not found, got %v", err)
	}
}

func TestOrders_Checkout_AlreadyPurchased(t *testing.T) {
	_, st, _, s := newTestOrders(t)
	userID := newUserID()
	caseID := newCaseID()

	st.EXPECT().CaseByID(gomock.Any(), caseID).Return(completedCase(caseID, userID), nil)
	st.EXPECT().CaseOrders(gomock.Any(), caseID).Return([]domain.Order{{
		ID:            newOrderID(),
		CaseID:        caseID,
		Product:       domain.ProductSection8Notice,
		PaymentStatus: domain.PaymentStatusPaid,
	}}, nil)

	_, _, err := s.Checkout(context.Background(),
		domain.Actor{UserID: userID}, caseID, domain.ProductSection8Notice)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestOrders_HandleWebhookEvent_Completed(t *testing.T) {
	ctrl, st, _, s := newTestOrders(t)
	orderID := newOrderID()

	st.EXPECT().OrderByCheckoutSession(gomock.Any(), "cs_123").Return(&domain.Order{
		ID:            orderID,
		Product:       domain.ProductSection8Notice,
		PaymentStatus: domain.PaymentStatusPending,
	}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateOrderByID(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
			func(_ context.Context, id domain.OrderID, updates storage.OrderUpdates) (*domain.Order, error) {
				if updates.PaymentStatus != domain.PaymentStatusPaid {
					t.Fatalf("expected order to be marked paid, got %q", updates.PaymentStatus)
				}
				if updates.PaymentIntentID == nil || *updates.PaymentIntentID != "pi_456" {
					t.Fatalf("expected the payment intent to be recorded")
				}

				return &domain.Order{ID: id, PaymentStatus: domain.PaymentStatusPaid}, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), orders.NewFulfillmentJobArgs(orderID, 3), nil).
			Return(true, nil)
	})

	err := s.HandleWebhookEvent(context.Background(), payments.WebhookEvent{
		ID:                "evt_1",
		Type:              payments.EventCheckoutCompleted,
		CheckoutSessionID: "cs_123",
		PaymentIntentID:   "pi_456",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrders_HandleWebhookEvent_CompletedRedelivery(t *testing.T) {
	_, st, _, s := newTestOrders(t)

	// already paid: the redelivered event must not touch the order again
	st.EXPECT().OrderByCheckoutSession(gomock.Any(), "cs_123").Return(&domain.Order{
		ID:            newOrderID(),
		PaymentStatus: domain.PaymentStatusPaid,
	}, nil)

	err := s.HandleWebhookEvent(context.Background(), payments.WebhookEvent{
		Type:              payments.EventCheckoutCompleted,
		CheckoutSessionID: "cs_123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrders_HandleWebhookEvent_Expired(t *testing.T) {
	_, st, _, s := newTestOrders(t)
	orderID := newOrderID()

	st.EXPECT().OrderByCheckoutSession(gomock.Any(), "cs_123").Return(&domain.Order{
		ID:            orderID,
		PaymentStatus: domain.PaymentStatusPending,
	}, nil)
	st.EXPECT().UpdateOrderByID(gomock.Any(), orderID, storage.OrderUpdates{
		PaymentStatus: domain.PaymentStatusCanceled,
	}).Return(&domain.Order{ID: orderID, PaymentStatus: domain.PaymentStatusCanceled}, nil)

	err := s.HandleWebhookEvent(context.Background(), payments.WebhookEvent{
		Type:              payments.EventCheckoutExpired,
		CheckoutSessionID: "cs_123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrders_HandleWebhookEvent_ExpiredAfterPaid(t *testing.T) {
	_, st, _, s := newTestOrders(t)

	st.EXPECT().OrderByCheckoutSession(gomock.Any(), "cs_123").Return(&domain.Order{
		ID:            newOrderID(),
		PaymentStatus: domain.PaymentStatusPaid,
	}, nil)

	err := s.HandleWebhookEvent(context.Background(), payments.WebhookEvent{
		Type:              payments.EventCheckoutExpired,
		CheckoutSessionID: "cs_123",
	})
	if err != nil {
		t.Fatalf("a paid order must survive a late expiry event: %v", err)
	}
}

func TestOrders_HandleWebhookEvent_UnknownSession(t *testing.T) {
	_, st, _, s := newTestOrders(t)

	st.EXPECT().OrderByCheckoutSession(gomock.Any(), "cs_unknown").Return(nil, nil)

	err := s.HandleWebhookEvent(context.Background(), payments.WebhookEvent{
		Type:              payments.EventCheckoutCompleted,
		CheckoutSessionID: "cs_unknown",
	})
	if err != nil {
		t.Fatalf("events for unknown sessions must be acknowledged: %v", err)
	}
}

func TestOrders_Get_ForeignOrder(t *testing.T) {
	_, st, _, s := newTestOrders(t)
	caseID := newCaseID()
	orderID := newOrderID()

	st.EXPECT().OrderByID(gomock.Any(), orderID).
		Return(&domain.Order{ID: orderID, CaseID: caseID}, nil)
	st.EXPECT().CaseByID(gomock.Any(), caseID).
		Return(completedCase(caseID, newUserID()), nil)

	_, err := s.Get(context.Background(), domain.Actor{UserID: newUserID()}, orderID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected foreign orders to read as not found, got %v", err)
	}
}

func TestOrders_List_SessionVisibility(t *testing.T) {
	_, st, _, s := newTestOrders(t)
	sessionID := newSessionID()

	st.EXPECT().SessionOrders(gomock.Any(), sessionID, gomock.Any(), uint(20)).
		Return(storage.UserOrders{Orders: []domain.Order{{ID: newOrderID()}}}, nil)

	// limit 0 falls back to the default page size
	list, next, err := s.List(context.Background(), domain.Actor{SessionID: sessionID}, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || next != "" {
		t.Fatalf("unexpected page: %d orders, next %q", len(list), next)
	}
}

func TestOrders_List_InvalidCursor(t *testing.T) {
	_, _, _, s := newTestOrders(t)

	_, _, err := s.List(context.Background(), domain.Actor{UserID: newUserID()}, "yesterday", 10)
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}
