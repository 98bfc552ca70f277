package v1handler

import (
	"net/http"

	"landlordheaven/pkg/domain"
)

type listProductsResponse struct {
	Products []domain.ProductInfo `json:"products"`
}

// ListProducts returns the product catalog with prices in pence.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, listProductsResponse{Products: domain.Products()})
}
