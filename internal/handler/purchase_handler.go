package handler

import (
	"net/http"

	"vending-machine/internal/model"
	"vending-machine/internal/service"

	"github.com/rs/zerolog"
)

// PurchaseHandler handles purchase HTTP requests.
type PurchaseHandler struct {
	service service.VendingService
	logger  zerolog.Logger
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(service service.VendingService, logger zerolog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
		logger:  logger.With().Str("handler", "purchase").Logger(),
	}
}

// Create handles POST /api/purchases requests.
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.PurchaseRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	receipt, err := h.service.Buy(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, "failed to complete purchase", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, receipt)
}
