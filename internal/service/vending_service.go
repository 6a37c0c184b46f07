package service

import (
	"context"
	"fmt"

	"vending-machine/internal/model"

	"github.com/rs/zerolog"
)

// vendingService implements VendingService.
type vendingService struct {
	machine Machine
	logger  zerolog.Logger
}

// NewVendingService creates a new vending service.
func NewVendingService(machine Machine, logger zerolog.Logger) VendingService {
	return &vendingService{
		machine: machine,
		logger:  logger.With().Str("service", "vending").Logger(),
	}
}

// ListProducts returns the product inventory ordered by name.
func (s *vendingService) ListProducts(ctx context.Context) ([]model.StockItem, error) {
	return s.machine.Products().StockItems(), nil
}

// ListChange returns the change inventory ordered by denomination.
func (s *vendingService) ListChange(ctx context.Context) ([]model.CoinStock, error) {
	return s.machine.Change().CoinStocks(), nil
}

// Buy validates the request, resolves the product by name and delegates the
// purchase to the machine.
func (s *vendingService) Buy(ctx context.Context, req *model.PurchaseRequest) (*model.ReceiptResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: purchase request is nil", model.ErrMissingField)
	}

	if req.Product == "" {
		return nil, fmt.Errorf("%w: product name is required", model.ErrMissingField)
	}

	inserted := make([]model.Coin, len(req.Coins))
	for i, value := range req.Coins {
		coin, err := model.NewCoin(value)
		if err != nil {
			s.logger.Warn().
				Int("coin_index", i).
				Str("value", value.String()).
				Msg("rejected inserted coin")
			return nil, fmt.Errorf("coin %d: %w", i, err)
		}
		inserted[i] = coin
	}

	product, ok := s.findProduct(req.Product)
	if !ok {
		s.logger.Debug().Str("product", req.Product).Msg("product not stocked")
		return nil, fmt.Errorf("%w: %s", model.ErrProductUnavailable, req.Product)
	}

	receipt, err := s.machine.Buy(product, inserted)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("product", req.Product).
			Int("coin_count", len(inserted)).
			Msg("purchase rejected")
		return nil, err
	}

	s.logger.Info().
		Str("receipt_id", receipt.ID.String()).
		Str("product", req.Product).
		Str("change_due", receipt.ChangeDue.StringFixed(2)).
		Msg("purchase completed")

	return model.NewReceiptResponse(receipt), nil
}

// findProduct resolves a product by name, preferring a line with stock when
// the same name is stocked at several prices.
func (s *vendingService) findProduct(name string) (model.Product, bool) {
	var (
		found model.Product
		ok    bool
	)
	for _, item := range s.machine.Products().StockItems() {
		if item.Name != name {
			continue
		}
		if item.Quantity > 0 {
			return item.Product(), true
		}
		if !ok {
			found, ok = item.Product(), true
		}
	}
	return found, ok
}

// AddProducts validates every line before adding any of them.
func (s *vendingService) AddProducts(ctx context.Context, req *model.RestockRequest) ([]model.StockItem, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: restock must contain at least one item", model.ErrMissingField)
	}

	products := make(model.ProductInventory, len(req.Items))
	for i, item := range req.Items {
		if item.Name == "" {
			return nil, fmt.Errorf("item %d: %w: product name is required", i, model.ErrMissingField)
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product", item.Name).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return nil, fmt.Errorf("item %d: %w", i, model.ErrInvalidQuantity)
		}

		product, err := model.NewProduct(item.Name, item.Price)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		products[product] += item.Quantity
	}

	s.machine.AddProducts(products)

	s.logger.Info().Int("item_count", len(req.Items)).Msg("products restocked")

	return s.machine.Products().StockItems(), nil
}

// AddChange validates every denomination before adding any of them.
func (s *vendingService) AddChange(ctx context.Context, req *model.ChangeRequest) ([]model.CoinStock, error) {
	if req == nil || len(req.Coins) == 0 {
		return nil, fmt.Errorf("%w: change must contain at least one coin", model.ErrMissingField)
	}

	coins := make(model.ChangeInventory, len(req.Coins))
	for i, item := range req.Coins {
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("value", item.Value.String()).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return nil, fmt.Errorf("coin %d: %w", i, model.ErrInvalidQuantity)
		}

		coin, err := model.NewCoin(item.Value)
		if err != nil {
			return nil, fmt.Errorf("coin %d: %w", i, err)
		}
		coins[coin] += item.Quantity
	}

	s.machine.AddChange(coins)

	s.logger.Info().Int("denominations", len(coins)).Msg("change added")

	return s.machine.Change().CoinStocks(), nil
}
