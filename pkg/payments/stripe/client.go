// Package stripe provides a payments.Provider implementation backed by the
// Stripe Checkout and webhook APIs.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/payments"
	"landlordheaven/pkg/serrors"

	"github.com/google/uuid"
	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Client talks to the Stripe API and fulfills the payments.Provider
// interface. It is safe for concurrent use.
type Client struct {
	api           *client.API // api is the Stripe SDK client
	webhookSecret string      // webhookSecret signs incoming webhook payloads
}

// CreateCheckoutSession opens a Stripe Checkout session in payment mode for
// the given order. The order ID is carried as the client reference and in the
// session metadata so completed sessions can be matched back to the order.
func (c *Client) CreateCheckoutSession(ctx context.Context,
	p payments.CheckoutParams) (payments.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{
		Params: stripego.Params{
			Context: ctx,
			Metadata: map[string]string{
				"order_id": p.OrderID.String(),
				"case_id":  p.CaseID.String(),
			},
		},
		Mode:              stripego.String(string(stripego.CheckoutSessionModePayment)),
		ClientReferenceID: stripego.String(p.OrderID.String()),
		SuccessURL:        stripego.String(p.SuccessURL),
		CancelURL:         stripego.String(p.CancelURL),
		LineItems: []*stripego.CheckoutSessionLineItemParams{{
			Quantity: stripego.Int64(1),
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripego.String(p.Product.Currency),
				UnitAmount: stripego.Int64(p.Product.AmountPence),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripego.String(p.Product.Name),
				},
			},
		}},
	}
	if p.CustomerEmail != "" {
		params.CustomerEmail = stripego.String(p.CustomerEmail)
	}

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		var stripeErr *stripego.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusTooManyRequests {
			return payments.CheckoutSession{}, serrors.With(serrors.ErrRateLimited,
				"rate limited by stripe: %s", stripeErr.Msg)
		}

		return payments.CheckoutSession{}, fmt.Errorf("could not create checkout session: %w", err)
	}

	return payments.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// VerifyWebhook checks the Stripe-Signature header against the endpoint
// secret and reduces the event to what fulfillment needs. Verification
// failures come back as BAD_REQUEST so the HTTP layer rejects the delivery.
func (c *Client) VerifyWebhook(payload []byte, signature string) (payments.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return payments.WebhookEvent{}, serrors.With(serrors.ErrBadRequest,
			"could not verify webhook signature: %s", err)
	}

	out := payments.WebhookEvent{ID: event.ID, Type: payments.EventUnknown}

	switch event.Type {
	case stripego.EventTypeCheckoutSessionCompleted:
		out.Type = payments.EventCheckoutCompleted
	case stripego.EventTypeCheckoutSessionExpired:
		out.Type = payments.EventCheckoutExpired
	default:
		return out, nil
	}

	var sess stripego.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return payments.WebhookEvent{}, serrors.With(serrors.ErrBadRequest,
			"could not decode checkout session: %s", err)
	}

	out.CheckoutSessionID = sess.ID
	if sess.PaymentIntent != nil {
		out.PaymentIntentID = sess.PaymentIntent.ID
	}

	ref := sess.ClientReferenceID
	if ref == "" {
		ref = sess.Metadata["order_id"]
	}
	if id, err := uuid.Parse(ref); err == nil {
		out.OrderID = domain.OrderID(id)
	}

	return out, nil
}

// Ensure Client conforms to the payments.Provider interface at compile time.
var _ payments.Provider = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, API key and
// webhook endpoint secret to interact with the Stripe API.
func New(httpClient *http.Client, apiKey, webhookSecret string) *Client {
	backends := stripego.NewBackendsWithConfig(&stripego.BackendConfig{
		HTTPClient:    httpClient,
		LeveledLogger: &stripego.LeveledLogger{Level: stripego.LevelError},
	})

	return &Client{
		api:           client.New(apiKey, backends),
		webhookSecret: webhookSecret,
	}
}
