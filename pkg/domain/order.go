package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderID uniquely identifies an order.
type OrderID uuid.UUID

// IsZero reports whether the ID is unset.
func (id OrderID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id OrderID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the ID as its canonical UUID string.
func (id OrderID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the ID from its canonical UUID string.
func (id *OrderID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = OrderID(u)

	return nil
}

// PaymentStatus is the payment lifecycle state of an order.
type PaymentStatus string

const (
	// PaymentStatusPending indicates a checkout session exists but has not
	// been paid.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusPaid indicates the provider confirmed payment.
	PaymentStatusPaid PaymentStatus = "paid"
	// PaymentStatusCanceled indicates the checkout session expired or was
	// abandoned.
	PaymentStatusCanceled PaymentStatus = "canceled"
)

// FulfillmentStatus tracks delivery of the purchased documents.
type FulfillmentStatus string

const (
	// FulfillmentStatusUnfulfilled indicates final documents have not been
	// generated yet.
	FulfillmentStatusUnfulfilled FulfillmentStatus = "unfulfilled"
	// FulfillmentStatusCompleted indicates all documents for the product have
	// been generated and stored.
	FulfillmentStatusCompleted FulfillmentStatus = "completed"
	// FulfillmentStatusFailed indicates fulfillment gave up after exhausting
	// retries; see LastError.
	FulfillmentStatusFailed FulfillmentStatus = "failed"
)

// Order represents a purchase of one product for one case. Orders created
// from anonymous cases have no user until the case is claimed.
type Order struct {
	// ID is the unique identifier of the order.
	ID OrderID `json:"id"`
	// CaseID is the case the purchase is for.
	CaseID CaseID `json:"caseId"`
	// UserID is the purchasing user, zero while the case is anonymous.
	UserID UserID `json:"userId,omitzero"`

	// Product is the catalog product purchased.
	Product Product `json:"product"`
	// AmountPence is the charged amount in minor units.
	AmountPence int64 `json:"amountPence"`
	// Currency is the ISO 4217 code, lowercased. Always "gbp" today.
	Currency string `json:"currency"`

	// PaymentStatus is the payment lifecycle state.
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	// FulfillmentStatus tracks generation of the purchased documents.
	FulfillmentStatus FulfillmentStatus `json:"fulfillmentStatus"`

	// CheckoutSessionID is the provider's checkout session identifier.
	CheckoutSessionID string `json:"-"`
	// PaymentIntentID is the provider's payment identifier, set once paid.
	PaymentIntentID string `json:"-"`

	// PaidAt is when payment was confirmed.
	PaidAt time.Time `json:"paidAt,omitzero"`
	// FulfilledAt is when fulfillment completed.
	FulfilledAt time.Time `json:"fulfilledAt,omitzero"`
	// LastError stores the most recent fulfillment error, if any.
	LastError string `json:"-"`

	// CreatedAt is the time when the order was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the order was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the order was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
