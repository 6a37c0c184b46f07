package vending

import (
	"fmt"
	"sync"
	"time"

	"vending-machine/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Machine holds the product and change inventories and processes purchases.
// It is safe for concurrent use; every operation runs under a single lock.
type Machine struct {
	mu       sync.Mutex
	products model.ProductInventory
	change   model.ChangeInventory
	logger   zerolog.Logger
	now      func() time.Time
}

// New creates a machine stocked with copies of products and change.
// Nil inventories start empty. Negative quantities and products without a
// positive price are dropped.
func New(products model.ProductInventory, change model.ChangeInventory, logger zerolog.Logger) *Machine {
	m := &Machine{
		products: make(model.ProductInventory, len(products)),
		change:   make(model.ChangeInventory, len(change)),
		logger:   logger.With().Str("component", "vending-machine").Logger(),
		now:      time.Now,
	}

	for p, qty := range products {
		if qty < 0 {
			m.logger.Warn().Str("product", p.Name()).Int("quantity", qty).Msg("dropping negative product quantity")
			continue
		}
		if p.PriceMinorUnits() <= 0 {
			m.logger.Warn().Str("product", p.Name()).Msg("dropping product without a positive price")
			continue
		}
		m.products[p] = qty
	}

	for c, qty := range change {
		if qty < 0 {
			m.logger.Warn().Str("coin", c.String()).Int("quantity", qty).Msg("dropping negative coin quantity")
			continue
		}
		m.change[c] = qty
	}

	return m
}

// Buy sells one unit of product paid for with inserted and dispenses the
// change from the machine's coins. Checks run in this order and fail with
// model.ErrProductUnavailable, model.ErrInsufficientMoney or
// model.ErrInsufficientChange. The inventories are unchanged on failure.
//
// Inserted coins are not added to the change inventory.
func (m *Machine) Buy(product model.Product, inserted []model.Coin) (*model.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.products[product] <= 0 {
		m.logger.Debug().Str("product", product.Name()).Msg("product unavailable")
		return nil, fmt.Errorf("%w: %s", model.ErrProductUnavailable, product.Name())
	}

	var paid int64
	for _, coin := range inserted {
		paid += coin.MinorUnits()
	}

	price := product.PriceMinorUnits()
	if paid < price {
		m.logger.Debug().
			Str("product", product.Name()).
			Int64("price", price).
			Int64("paid", paid).
			Msg("insufficient money")
		return nil, fmt.Errorf("%w: %s costs %s, inserted %s",
			model.ErrInsufficientMoney, product.Name(), product.Price().StringFixed(2), model.FromMinorUnits(paid).StringFixed(2))
	}

	due := paid - price
	dispensed, err := selectChange(m.change, due)
	if err != nil {
		m.logger.Warn().
			Err(err).
			Str("product", product.Name()).
			Int64("change_due", due).
			Msg("cannot dispense change")
		return nil, err
	}

	m.products[product]--
	for coin, n := range dispensed {
		m.change[coin] -= n
	}

	receipt := &model.Receipt{
		ID:        uuid.New(),
		Product:   product,
		Paid:      model.FromMinorUnits(paid),
		ChangeDue: model.FromMinorUnits(due),
		Dispensed: dispensed,
		CreatedAt: m.now(),
	}

	m.logger.Info().
		Str("receipt_id", receipt.ID.String()).
		Str("product", product.Name()).
		Int64("paid", paid).
		Int64("change_due", due).
		Int("coins_dispensed", dispensed.Count()).
		Msg("purchase completed")

	return receipt, nil
}

// AddChange merges coins into the change inventory, summing quantities of
// denominations already held. Negative quantities are ignored.
func (m *Machine) AddChange(coins model.ChangeInventory) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for coin, qty := range coins {
		if qty < 0 {
			continue
		}
		m.change[coin] += qty
	}

	m.logger.Info().Int("denominations", len(coins)).Msg("change added")
}

// AddProducts merges products into the product inventory, summing
// quantities of products already stocked. Negative quantities and products
// without a positive price are ignored.
func (m *Machine) AddProducts(products model.ProductInventory) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for product, qty := range products {
		if qty < 0 || product.PriceMinorUnits() <= 0 {
			continue
		}
		m.products[product] += qty
	}

	m.logger.Info().Int("products", len(products)).Msg("products added")
}

// Products returns a snapshot of the product inventory.
func (m *Machine) Products() model.ProductInventory {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products.Clone()
}

// Change returns a snapshot of the change inventory.
func (m *Machine) Change() model.ChangeInventory {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.change.Clone()
}
