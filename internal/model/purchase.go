package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt records a completed purchase.
type Receipt struct {
	ID        uuid.UUID
	Product   Product
	Paid      decimal.Decimal
	ChangeDue decimal.Decimal
	Dispensed ChangeInventory
	CreatedAt time.Time
}

// PurchaseRequest represents the request payload for buying a product.
type PurchaseRequest struct {
	Product string            `json:"product"`
	Coins   []decimal.Decimal `json:"coins"`
}

// RestockRequest represents the request payload for adding products.
type RestockRequest struct {
	Items []RestockItem `json:"items"`
}

// RestockItem represents a single product line in a restock request.
type RestockItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// ChangeRequest represents the request payload for adding coins.
type ChangeRequest struct {
	Coins []ChangeItem `json:"coins"`
}

// ChangeItem represents a single denomination in a change request.
type ChangeItem struct {
	Value    decimal.Decimal `json:"value"`
	Quantity int             `json:"quantity"`
}

// ReceiptResponse represents the response payload for a purchase.
type ReceiptResponse struct {
	ID        uuid.UUID       `json:"id"`
	Product   string          `json:"product"`
	Price     decimal.Decimal `json:"price"`
	Paid      decimal.Decimal `json:"paid"`
	ChangeDue decimal.Decimal `json:"changeDue"`
	Change    []CoinStock     `json:"change"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewReceiptResponse converts a receipt into its response payload.
func NewReceiptResponse(r *Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		ID:        r.ID,
		Product:   r.Product.Name(),
		Price:     r.Product.Price(),
		Paid:      r.Paid,
		ChangeDue: r.ChangeDue,
		Change:    r.Dispensed.CoinStocks(),
		CreatedAt: r.CreatedAt,
	}
}
