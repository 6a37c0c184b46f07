package handler

import (
	"net/http"

	"vending-machine/internal/model"
	"vending-machine/internal/service"

	"github.com/rs/zerolog"
)

// ChangeHandler handles change inventory HTTP requests.
type ChangeHandler struct {
	service service.VendingService
	logger  zerolog.Logger
}

// NewChangeHandler creates a new change handler.
func NewChangeHandler(service service.VendingService, logger zerolog.Logger) *ChangeHandler {
	return &ChangeHandler{
		service: service,
		logger:  logger.With().Str("handler", "change").Logger(),
	}
}

// List handles GET /api/change requests.
func (h *ChangeHandler) List(w http.ResponseWriter, r *http.Request) {
	coins, err := h.service.ListChange(r.Context())
	if err != nil {
		writeDomainError(w, r, err, "failed to retrieve change", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, coins)
}

// Add handles POST /api/change requests.
func (h *ChangeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.ChangeRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	coins, err := h.service.AddChange(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, "failed to add change", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, coins)
}
