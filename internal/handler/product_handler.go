package handler

import (
	"net/http"

	"vending-machine/internal/model"
	"vending-machine/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product inventory HTTP requests.
type ProductHandler struct {
	service service.VendingService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.VendingService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeDomainError(w, r, err, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Restock handles POST /api/products requests.
func (h *ProductHandler) Restock(w http.ResponseWriter, r *http.Request) {
	var req model.RestockRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	items, err := h.service.AddProducts(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, "failed to restock products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}
