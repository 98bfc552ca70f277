package v1handler

import (
	"io"
	"net/http"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/serrors"
)

type checkoutRequest struct {
	CaseID  domain.CaseID  `json:"caseId"`
	Product domain.Product `json:"product"`
}

type checkoutResponse struct {
	Order       *domain.Order `json:"order"`
	CheckoutURL string        `json:"checkoutUrl"`
}

type listOrdersResponse struct {
	Orders     []domain.Order `json:"orders"`
	NextCursor string         `json:"nextCursor,omitempty"`
}

// Checkout creates a pending order for a product on a completed case and
// returns the payment page URL to redirect the buyer to.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	order, checkoutURL, err := h.deps.Orders.Checkout(r.Context(), ActorFrom(r.Context()),
		req.CaseID, req.Product)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, checkoutResponse{Order: order, CheckoutURL: checkoutURL})
}

// ListOrders returns the actor's orders, newest first, with cursor
// pagination.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	items, next, err := h.deps.Orders.List(r.Context(), ActorFrom(r.Context()),
		r.URL.Query().Get("cursor"), limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, listOrdersResponse{Orders: items, NextCursor: next})
}

// GetOrder returns a single order whose case the actor owns.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	order, err := h.deps.Orders.Get(r.Context(), ActorFrom(r.Context()), domain.OrderID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, order)
}

// StripeWebhook receives payment events. The raw body is verified against the
// Stripe-Signature header before anything is acted on; a 2xx acknowledges the
// delivery, anything else makes Stripe retry.
func (h *Handler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read webhook payload"))

		return
	}

	event, err := h.deps.Payments.VerifyWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Orders.HandleWebhookEvent(r.Context(), event); err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, map[string]bool{"received": true})
}
