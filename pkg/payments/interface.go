// Package payments defines interfaces and data types used to start hosted
// checkouts and verify webhook callbacks from a backing payment provider.
package payments

import (
	"context"

	"landlordheaven/pkg/domain"
)

// CheckoutParams carries everything the provider needs to open a hosted
// checkout for a single order.
type CheckoutParams struct {
	// OrderID is the order being paid for. It travels to the provider as the
	// client reference so webhooks can be tied back to the order.
	OrderID domain.OrderID
	// CaseID is the case the order belongs to, attached as metadata.
	CaseID domain.CaseID
	// Product is the catalog entry being purchased; its name and price appear
	// on the payment page.
	Product domain.ProductInfo
	// CustomerEmail, when known, prefills the payment page.
	CustomerEmail string
	// SuccessURL is where the provider redirects after a successful payment.
	SuccessURL string
	// CancelURL is where the provider redirects when the user backs out.
	CancelURL string
}

// CheckoutSession represents a created hosted-checkout session.
type CheckoutSession struct {
	// ID is the provider's session identifier.
	ID string
	// URL is the hosted payment page the client is redirected to.
	URL string
}

// EventType enumerates the webhook events the backend reacts to. Anything
// else a provider sends is reported as EventUnknown and ignored upstream.
type EventType string

const (
	// EventCheckoutCompleted fires when a checkout session was paid.
	EventCheckoutCompleted EventType = "checkout_completed"
	// EventCheckoutExpired fires when a checkout session expired unpaid.
	EventCheckoutExpired EventType = "checkout_expired"
	// EventUnknown covers event kinds the backend does not handle.
	EventUnknown EventType = "unknown"
)

// WebhookEvent is a verified provider callback reduced to the fields
// fulfillment needs.
type WebhookEvent struct {
	// ID is the provider's event identifier, usable for idempotency.
	ID string
	// Type classifies the event.
	Type EventType
	// CheckoutSessionID is the checkout session the event refers to.
	CheckoutSessionID string
	// PaymentIntentID is the provider's payment identifier, when present.
	PaymentIntentID string
	// OrderID is the order the session was opened for, recovered from the
	// client reference. Zero when the event carries none.
	OrderID domain.OrderID
}

// Provider is the abstraction for payment providers. Implementations open
// hosted checkout sessions and authenticate incoming webhooks.
//
//go:generate mockgen -package mockpayments -source=interface.go -destination=mock/mockpayments.go *
type Provider interface {
	// CreateCheckoutSession opens a hosted checkout for the given order and
	// returns the session ID and redirect URL.
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (CheckoutSession, error)
	// VerifyWebhook authenticates a raw webhook payload against its signature
	// header and decodes it. A payload that fails verification returns an
	// error; an authentic payload of an unhandled kind returns EventUnknown.
	VerifyWebhook(payload []byte, signature string) (WebhookEvent, error)
}
