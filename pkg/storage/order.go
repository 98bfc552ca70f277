package storage

import (
	"context"
	"time"

	"landlordheaven/pkg/domain"
)

// OrderUpdates describes a set of optional fields that can be applied to an
// existing order during an update. Only provided fields are changed.
type OrderUpdates struct {
	// PaymentStatus is the new payment status. Empty means unchanged. Setting
	// it to Paid also stamps paid_at.
	PaymentStatus domain.PaymentStatus
	// FulfillmentStatus is the new fulfillment status. Empty means unchanged.
	// Setting it to Completed also stamps fulfilled_at.
	FulfillmentStatus domain.FulfillmentStatus
	// CheckoutSessionID, when provided, sets the provider checkout session.
	CheckoutSessionID *string
	// PaymentIntentID, when provided, sets the provider payment identifier.
	PaymentIntentID *string
	// LastError, when provided, sets the last fulfillment error text. An empty
	// string value clears it (sets NULL).
	LastError *string
}

// UserOrders groups a page of orders together with an optional NextCursor
// used for pagination.
type UserOrders struct {
	// Orders contains the current page of order records.
	Orders []domain.Order
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// OrderStorage defines persistence operations for orders.
type OrderStorage interface {
	// StoreOrder inserts an order and returns the stored row as it exists in
	// the database (including generated fields).
	StoreOrder(ctx context.Context, o domain.Order) (*domain.Order, error)
	// OrderByID fetches an order by its ID, excluding soft-deleted rows.
	// Returns nil when not found.
	OrderByID(ctx context.Context, ID domain.OrderID) (*domain.Order, error)
	// OrderByCheckoutSession fetches the order holding the given provider
	// checkout session ID. Returns nil when no order matches.
	OrderByCheckoutSession(ctx context.Context, sessionID string) (*domain.Order, error)
	// CaseOrders returns all live orders of a case, newest first.
	CaseOrders(ctx context.Context, caseID domain.CaseID) ([]domain.Order, error)
	// UserOrders returns a page of a user's orders created before the optional
	// cursor time, newest first.
	UserOrders(ctx context.Context,
		userID domain.UserID,
		cursor time.Time,
		limit uint) (UserOrders, error)
	// SessionOrders is UserOrders for anonymous sessions: it returns unclaimed
	// orders whose case is bound to the given session.
	SessionOrders(ctx context.Context,
		sessionID domain.SessionID,
		cursor time.Time,
		limit uint) (UserOrders, error)
	// UpdateOrderByID updates a single order and returns the updated row. The
	// update ignores soft-deleted rows and sets updated_at automatically.
	// Returns nil when no row matched.
	UpdateOrderByID(ctx context.Context, ID domain.OrderID, updates OrderUpdates) (*domain.Order, error)
	// LinkSessionOrders stamps the user onto all unclaimed orders whose case
	// belongs to the given session. Used alongside LinkSessionCases when an
	// anonymous session signs up. Returns the number of orders linked.
	LinkSessionOrders(ctx context.Context, sessionID domain.SessionID, userID domain.UserID) (int64, error)
}
