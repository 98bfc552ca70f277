// Package orders sells the document products: it opens hosted checkouts,
// reacts to payment provider webhooks and hands paid orders to the
// fulfillment worker.
package orders

import (
	"context"
	"fmt"
	"time"

	"landlordheaven/internal/config"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/logger"
	"landlordheaven/pkg/payments"
	"landlordheaven/pkg/serrors"
	"landlordheaven/pkg/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var paidOrders = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Name: "orders_paid_total",
	Help: "Number of orders confirmed paid by the payment provider, labeled by product.",
}, []string{"product"})

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Options configure checkout redirects and fulfillment retries. These settings
// are typically derived from application configuration.
type Options struct {
	// SuccessURL is where the provider redirects the browser after a paid
	// checkout.
	SuccessURL string
	// CancelURL is where the provider redirects the browser after an abandoned
	// checkout.
	CancelURL string
	// FulfillMaxAttempts is the maximum number of attempts for fulfillment jobs
	// enqueued when an order is paid.
	FulfillMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SuccessURL:         cfg.Stripe.SuccessURL,
		CancelURL:          cfg.Stripe.CancelURL,
		FulfillMaxAttempts: cfg.Worker.FulfillMaxAttempts,
	}
}

// orders is the concrete implementation of the Orders interface. It
// coordinates the storage layer with the payment provider.
type orders struct {
	options  Options
	storage  storage.Storage
	payments payments.Provider
}

// Checkout validates the purchase and opens a hosted checkout session. The
// order is stored as pending before the provider is called, so a webhook that
// races the response still finds its order.
func (s orders) Checkout(ctx context.Context,
	actor domain.Actor,
	caseID domain.CaseID,
	product domain.Product) (*domain.Order, string, error) {
	info, ok := domain.ProductByCode(product)
	if !ok {
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown product %q", product)
	}

	c, err := s.caseForActor(ctx, actor, caseID)
	if err != nil {
		return nil, "", err
	}
	if c.Status == domain.CaseStatusArchived {
		return nil, "", serrors.With(serrors.ErrConflict, "case is archived")
	}
	if !c.Progress.Complete {
		return nil, "", serrors.With(serrors.ErrConflict,
			"the wizard must be completed before checkout")
	}

	existing, err := s.storage.CaseOrders(ctx, caseID)
	if err != nil {
		return nil, "", fmt.Errorf("could not get case orders: %w", err)
	}
	for _, o := range existing {
		if o.Product == product && o.PaymentStatus == domain.PaymentStatusPaid {
			return nil, "", serrors.With(serrors.ErrConflict,
				"this product has already been purchased for this case")
		}
	}

	order, err := s.storage.StoreOrder(ctx, domain.Order{
		CaseID:            caseID,
		UserID:            c.UserID,
		Product:           product,
		AmountPence:       info.AmountPence,
		Currency:          info.Currency,
		PaymentStatus:     domain.PaymentStatusPending,
		FulfillmentStatus: domain.FulfillmentStatusUnfulfilled,
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not store order: %w", err)
	}

	session, err := s.payments.CreateCheckoutSession(ctx, payments.CheckoutParams{
		OrderID:       order.ID,
		CaseID:        caseID,
		Product:       info,
		CustomerEmail: s.customerEmail(ctx, actor),
		SuccessURL:    s.options.SuccessURL,
		CancelURL:     s.options.CancelURL,
	})
	if err != nil {
		// the pending row must not linger: no webhook will ever complete or
		// expire an order that has no checkout session
		if _, cerr := s.storage.UpdateOrderByID(ctx, order.ID, storage.OrderUpdates{
			PaymentStatus: domain.PaymentStatusCanceled,
		}); cerr != nil {
			logger.Error(ctx, "error canceling order after checkout failure", zap.Error(cerr))
		}

		return nil, "", fmt.Errorf("could not create checkout session: %w", err)
	}

	order, err = s.storage.UpdateOrderByID(ctx, order.ID, storage.OrderUpdates{
		CheckoutSessionID: &session.ID,
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not attach checkout session: %w", err)
	}

	return order, session.URL, nil
}

// HandleWebhookEvent applies a verified provider event to its order. Paid
// sessions transition the order from pending to paid and enqueue fulfillment
// in the same transaction, so a crash between the two cannot lose the job.
// Redelivered events find the order already paid and return without effect.
func (s orders) HandleWebhookEvent(ctx context.Context, event payments.WebhookEvent) error {
	if event.Type == payments.EventUnknown {
		return nil
	}

	order, err := s.orderForEvent(ctx, event)
	if err != nil {
		return err
	}
	if order == nil {
		// acknowledge so the provider stops redelivering; there is no order
		// this event could ever apply to
		logger.Warn(ctx, "webhook event for unknown checkout session",
			zap.String("eventId", event.ID),
			zap.String("checkoutSessionId", event.CheckoutSessionID))

		return nil
	}

	switch event.Type {
	case payments.EventCheckoutCompleted:
		return s.markPaid(ctx, order, event)
	case payments.EventCheckoutExpired:
		return s.markCanceled(ctx, order)
	default:
		return nil
	}
}

func (s orders) markPaid(ctx context.Context, order *domain.Order, event payments.WebhookEvent) error {
	if order.PaymentStatus == domain.PaymentStatusPaid {
		return nil
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updates := storage.OrderUpdates{
			PaymentStatus: domain.PaymentStatusPaid,
		}
		if event.PaymentIntentID != "" {
			updates.PaymentIntentID = &event.PaymentIntentID
		}

		updated, err := tx.UpdateOrderByID(ctx, order.ID, updates)
		if err != nil {
			return fmt.Errorf("could not mark order paid: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "order not found")
		}

		if _, err := tx.AddJob(ctx,
			NewFulfillmentJobArgs(order.ID, s.options.FulfillMaxAttempts), nil); err != nil {
			return fmt.Errorf("could not add fulfillment job: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not handle paid checkout: %w", err)
	}

	paidOrders.WithLabelValues(string(order.Product)).Inc()

	return nil
}

func (s orders) markCanceled(ctx context.Context, order *domain.Order) error {
	// a paid order stays paid even if the provider later expires the session
	if order.PaymentStatus != domain.PaymentStatusPending {
		return nil
	}

	if _, err := s.storage.UpdateOrderByID(ctx, order.ID, storage.OrderUpdates{
		PaymentStatus: domain.PaymentStatusCanceled,
	}); err != nil {
		return fmt.Errorf("could not cancel order: %w", err)
	}

	return nil
}

// orderForEvent resolves the order an event refers to, preferring the checkout
// session ID and falling back to the client reference.
func (s orders) orderForEvent(ctx context.Context, event payments.WebhookEvent) (*domain.Order, error) {
	if event.CheckoutSessionID != "" {
		order, err := s.storage.OrderByCheckoutSession(ctx, event.CheckoutSessionID)
		if err != nil {
			return nil, fmt.Errorf("could not get order by checkout session: %w", err)
		}
		if order != nil {
			return order, nil
		}
	}
	if !event.OrderID.IsZero() {
		order, err := s.storage.OrderByID(ctx, event.OrderID)
		if err != nil {
			return nil, fmt.Errorf("could not get order by id: %w", err)
		}

		return order, nil
	}

	return nil, nil
}

// Get fetches a single order. Ownership follows the case: whoever may see the
// case may see its orders. Foreign orders read as not found.
func (s orders) Get(ctx context.Context, actor domain.Actor, orderID domain.OrderID) (*domain.Order, error) {
	order, err := s.storage.OrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("could not get order: %w", err)
	}
	if order == nil {
		return nil, serrors.With(serrors.ErrNotFound, "order not found")
	}

	if _, err := s.caseForActor(ctx, actor, order.CaseID); err != nil {
		return nil, serrors.With(serrors.ErrNotFound, "order not found")
	}

	return order, nil
}

// List returns a page of the actor's orders, newest first. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (s orders) List(ctx context.Context,
	actor domain.Actor,
	cursor string,
	limit uint) ([]domain.Order, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}
	limit = clampPageSize(limit)

	var (
		page storage.UserOrders
		err  error
	)
	switch {
	case actor.Authenticated():
		page, err = s.storage.UserOrders(ctx, actor.UserID, cursorTime, limit)
	case !actor.SessionID.IsZero():
		page, err = s.storage.SessionOrders(ctx, actor.SessionID, cursorTime, limit)
	default:
		return nil, "", serrors.With(serrors.ErrBadRequest, "a session is required to list orders")
	}
	if err != nil {
		return nil, "", fmt.Errorf("could not get orders: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Orders, next, nil
}

// caseForActor fetches a case and checks the actor may act on it. Missing and
// foreign cases are both reported as not found.
func (s orders) caseForActor(ctx context.Context, actor domain.Actor, caseID domain.CaseID) (*domain.Case, error) {
	c, err := s.storage.CaseByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("could not get case: %w", err)
	}
	if c == nil || !actor.Owns(c) {
		return nil, serrors.With(serrors.ErrNotFound, "case not found")
	}

	return c, nil
}

// customerEmail returns the actor's email for prefilling the payment page,
// best effort.
func (s orders) customerEmail(ctx context.Context, actor domain.Actor) string {
	if !actor.Authenticated() {
		return ""
	}

	u, err := s.storage.UserByID(ctx, actor.UserID)
	if err != nil || u == nil {
		return ""
	}

	return u.Email
}

// clampPageSize bounds a requested page size, defaulting when unset.
func clampPageSize(limit uint) uint {
	if limit == 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}

	return limit
}

// New creates a new Orders instance backed by the provided storage and
// payment provider.
func New(storage storage.Storage, provider payments.Provider, options Options) Orders {
	return &orders{
		options:  options,
		storage:  storage,
		payments: provider,
	}
}
