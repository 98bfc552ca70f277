package orders

import (
	"context"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/payments"
)

//go:generate mockgen -package mockorders -source=interface.go -destination=mock/mockorders.go *
type Orders interface {
	// Checkout opens a hosted checkout for purchasing the given product on the
	// given case. It returns the pending order together with the payment page
	// URL the client should redirect to.
	Checkout(ctx context.Context,
		actor domain.Actor,
		caseID domain.CaseID,
		product domain.Product) (*domain.Order, string, error)
	// HandleWebhookEvent applies a verified payment provider event. Completed
	// checkouts mark the order paid and enqueue fulfillment; expired checkouts
	// cancel the order. Events for unknown sessions are acknowledged and
	// dropped. The handler is idempotent across redeliveries.
	HandleWebhookEvent(ctx context.Context, event payments.WebhookEvent) error
	// Get fetches a single order. Orders whose case the actor does not own are
	// reported as not found.
	Get(ctx context.Context, actor domain.Actor, orderID domain.OrderID) (*domain.Order, error)
	// List returns a page of the actor's orders, newest first, with an RFC3339
	// cursor for pagination.
	List(ctx context.Context,
		actor domain.Actor,
		cursor string,
		limit uint) ([]domain.Order, string, error)
}
