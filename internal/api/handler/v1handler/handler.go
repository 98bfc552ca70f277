// Package v1handler implements the v1 HTTP API: JSON handlers over net/http
// method patterns, backed by the domain services and guarded by the security
// handler.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"landlordheaven/internal/auth"
	"landlordheaven/internal/cases"
	"landlordheaven/internal/documents"
	"landlordheaven/internal/leads"
	"landlordheaven/internal/orders"
	"landlordheaven/pkg/logger"
	"landlordheaven/pkg/payments"
	"landlordheaven/pkg/serrors"
	"landlordheaven/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies. Webhook payloads are the largest thing
// the API accepts and stay well under this.
const maxBodyBytes = 1 << 20

// Deps bundles the services the handlers dispatch to.
type Deps struct {
	Auth      auth.Auth
	Cases     cases.Cases
	Documents documents.Documents
	Orders    orders.Orders
	Leads     leads.Leads
	Payments  payments.Provider
	Storage   storage.Storage
}

// Handler holds the v1 route implementations.
type Handler struct {
	deps Deps
}

// New creates a new Handler backed by the given services.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers every v1 endpoint on the mux. The security handler has
// already resolved the actor by the time these run.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/auth/signup", h.Signup)
	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.HandleFunc("GET /v1/auth/me", h.Me)

	mux.HandleFunc("POST /v1/wizard/analyze", h.AnalyzeWizard)

	mux.HandleFunc("POST /v1/cases", h.CreateCase)
	mux.HandleFunc("GET /v1/cases", h.ListCases)
	mux.HandleFunc("POST /v1/cases/claim", h.ClaimCases)
	mux.HandleFunc("GET /v1/cases/{id}", h.GetCase)
	mux.HandleFunc("PATCH /v1/cases/{id}", h.UpdateCaseFacts)
	mux.HandleFunc("DELETE /v1/cases/{id}", h.DeleteCase)
	mux.HandleFunc("POST /v1/cases/{id}/archive", h.ArchiveCase)
	mux.HandleFunc("POST /v1/cases/{id}/restore", h.RestoreCase)

	mux.HandleFunc("POST /v1/cases/{id}/documents/preview", h.PreviewDocument)
	mux.HandleFunc("GET /v1/cases/{id}/documents", h.ListCaseDocuments)
	mux.HandleFunc("GET /v1/documents/{id}", h.GetDocument)
	mux.HandleFunc("GET /v1/documents/{id}/download", h.DownloadDocument)

	mux.HandleFunc("POST /v1/checkout", h.Checkout)
	mux.HandleFunc("GET /v1/orders", h.ListOrders)
	mux.HandleFunc("GET /v1/orders/{id}", h.GetOrder)
	mux.HandleFunc("POST /v1/webhooks/stripe", h.StripeWebhook)

	mux.HandleFunc("POST /v1/leads", h.CaptureLead)
	mux.HandleFunc("GET /v1/products", h.ListProducts)
	mux.HandleFunc("GET /v1/healthz", h.Health)
}

// errorResponse is the uniform error body: a stable machine-readable code and
// a human-readable message.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusOf maps semantic error kinds onto HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrPaymentRequired):
		return http.StatusPaymentRequired
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders an error as the uniform JSON error body. Internal errors
// are logged and their details withheld from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)

	resp := errorResponse{Code: "INTERNAL", Message: "internal server error"}
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	} else {
		var serr *serrors.Error
		if errors.As(err, &serr) && serr.Kind() != nil {
			resp = errorResponse{Code: serr.Kind().Error(), Message: serr.Message()}
		} else {
			resp = errorResponse{Code: "ERROR", Message: err.Error()}
		}
	}

	writeJSON(w, r, status, resp)
}

// writeJSON renders v as the response body with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "could not encode response", zap.Error(err))
	}
}

// decodeJSON parses the request body into v, rejecting unknown fields so
// typos in payloads surface instead of silently dropping data.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// pathID parses the {id} path segment as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "invalid id %q", r.PathValue("id"))
	}

	return id, nil
}

// queryLimit parses the optional limit query parameter.
func queryLimit(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid limit %q", raw)
	}

	return uint(limit), nil
}
