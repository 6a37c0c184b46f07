package service

import (
	"context"

	"vending-machine/internal/model"
)

// Machine is the vending machine core the service drives.
type Machine interface {
	Buy(product model.Product, inserted []model.Coin) (*model.Receipt, error)
	AddProducts(products model.ProductInventory)
	AddChange(coins model.ChangeInventory)
	Products() model.ProductInventory
	Change() model.ChangeInventory
}

// VendingService defines the operations exposed over the API.
type VendingService interface {
	// ListProducts returns the product inventory.
	ListProducts(ctx context.Context) ([]model.StockItem, error)

	// ListChange returns the change inventory.
	ListChange(ctx context.Context) ([]model.CoinStock, error)

	// Buy sells one unit of the named product.
	Buy(ctx context.Context, req *model.PurchaseRequest) (*model.ReceiptResponse, error)

	// AddProducts restocks products and returns the resulting inventory.
	AddProducts(ctx context.Context, req *model.RestockRequest) ([]model.StockItem, error)

	// AddChange adds coins and returns the resulting change inventory.
	AddChange(ctx context.Context, req *model.ChangeRequest) ([]model.CoinStock, error)
}
