package stripe_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/payments"
	stripepay "landlordheaven/pkg/payments/stripe"
	"landlordheaven/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test_secret"

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *stripepay.Client {
	return stripepay.New(&http.Client{Transport: fn}, "sk_test_key", testWebhookSecret)
}

func TestClient_CreateCheckoutSession_success(t *testing.T) {
	orderID := domain.OrderID(uuid.New())
	caseID := domain.CaseID(uuid.New())
	product, ok := domain.ProductByCode(domain.ProductSection8Notice)
	require.True(t, ok)

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/checkout/sessions", r.URL.Path)

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		form, err := url.ParseQuery(string(b))
		require.NoError(t, err)
		require.Equal(t, "payment", form.Get("mode"))
		require.Equal(t, orderID.String(), form.Get("client_reference_id"))
		require.Equal(t, orderID.String(), form.Get("metadata[order_id]"))
		require.Equal(t, caseID.String(), form.Get("metadata[case_id]"))
		require.Equal(t, "gbp", form.Get("line_items[0][price_data][currency]"))
		require.Equal(t, "3999", form.Get("line_items[0][price_data][unit_amount]"))
		require.Equal(t, "landlord@example.test", form.Get("customer_email"))
		require.Equal(t, "https://app.example.test/paid", form.Get("success_url"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body: io.NopCloser(strings.NewReader(
				`{"id":"cs_test_123","url":"https://checkout.stripe.com/c/pay/cs_test_123"}`)),
		}, nil
	})

	sess, err := c.CreateCheckoutSession(context.Background(), payments.CheckoutParams{
		OrderID:       orderID,
		CaseID:        caseID,
		Product:       product,
		CustomerEmail: "landlord@example.test",
		SuccessURL:    "https://app.example.test/paid",
		CancelURL:     "https://app.example.test/canceled",
	})
	require.NoError(t, err)
	require.Equal(t, "cs_test_123", sess.ID)
	require.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", sess.URL)
}

func TestClient_CreateCheckoutSession_rateLimited429(t *testing.T) {
	product, ok := domain.ProductByCode(domain.ProductSection8Notice)
	require.True(t, ok)

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body: io.NopCloser(strings.NewReader(
				`{"error":{"type":"rate_limit_error","message":"Too many requests"}}`)),
		}, nil
	})

	_, err := c.CreateCheckoutSession(context.Background(), payments.CheckoutParams{
		OrderID:    domain.OrderID(uuid.New()),
		CaseID:     domain.CaseID(uuid.New()),
		Product:    product,
		SuccessURL: "https://app.example.test/paid",
		CancelURL:  "https://app.example.test/canceled",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func signedEvent(t *testing.T, eventType string, object map[string]any) ([]byte, string) {
	t.Helper()

	payload, err := json.Marshal(map[string]any{
		"id":   "evt_123",
		"type": eventType,
		"data": map[string]any{"object": object},
	})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})

	return signed.Payload, signed.Header
}

func TestClient_VerifyWebhook_checkoutCompleted(t *testing.T) {
	c := newTestClient(nil)
	orderID := domain.OrderID(uuid.New())

	payload, header := signedEvent(t, "checkout.session.completed", map[string]any{
		"id":                  "cs_test_123",
		"object":              "checkout.session",
		"client_reference_id": orderID.String(),
		"payment_intent":      "pi_123",
	})

	event, err := c.VerifyWebhook(payload, header)
	require.NoError(t, err)
	require.Equal(t, "evt_123", event.ID)
	require.Equal(t, payments.EventCheckoutCompleted, event.Type)
	require.Equal(t, "cs_test_123", event.CheckoutSessionID)
	require.Equal(t, "pi_123", event.PaymentIntentID)
	require.Equal(t, orderID, event.OrderID)
}

func TestClient_VerifyWebhook_checkoutExpired(t *testing.T) {
	c := newTestClient(nil)

	payload, header := signedEvent(t, "checkout.session.expired", map[string]any{
		"id":     "cs_test_456",
		"object": "checkout.session",
	})

	event, err := c.VerifyWebhook(payload, header)
	require.NoError(t, err)
	require.Equal(t, payments.EventCheckoutExpired, event.Type)
	require.Equal(t, "cs_test_456", event.CheckoutSessionID)
	require.True(t, event.OrderID.IsZero())
}

func TestClient_VerifyWebhook_unhandledType(t *testing.T) {
	c := newTestClient(nil)

	payload, header := signedEvent(t, "payment_intent.created", map[string]any{
		"id":     "pi_789",
		"object": "payment_intent",
	})

	event, err := c.VerifyWebhook(payload, header)
	require.NoError(t, err)
	require.Equal(t, payments.EventUnknown, event.Type)
	require.Equal(t, "evt_123", event.ID)
	require.Empty(t, event.CheckoutSessionID)
}

func TestClient_VerifyWebhook_badSignature(t *testing.T) {
	c := newTestClient(nil)

	payload, _ := signedEvent(t, "checkout.session.completed", map[string]any{
		"id": "cs_test_123",
	})

	_, err := c.VerifyWebhook(payload, "t=1,v1=deadbeef")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
