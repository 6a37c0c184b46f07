package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ProductInventory maps each product to the number of units in stock.
type ProductInventory map[Product]int

// ChangeInventory maps each denomination to the number of coins held.
type ChangeInventory map[Coin]int

// Clone returns an independent copy of the inventory.
func (inv ProductInventory) Clone() ProductInventory {
	out := make(ProductInventory, len(inv))
	for p, qty := range inv {
		out[p] = qty
	}
	return out
}

// Clone returns an independent copy of the inventory.
func (inv ChangeInventory) Clone() ChangeInventory {
	out := make(ChangeInventory, len(inv))
	for c, qty := range inv {
		out[c] = qty
	}
	return out
}

// TotalMinorUnits returns the combined value of every coin held, in minor units.
func (inv ChangeInventory) TotalMinorUnits() int64 {
	var total int64
	for c, qty := range inv {
		if qty > 0 {
			total += c.MinorUnits() * int64(qty)
		}
	}
	return total
}

// Total returns the combined value of every coin held.
func (inv ChangeInventory) Total() decimal.Decimal {
	return FromMinorUnits(inv.TotalMinorUnits())
}

// Count returns the number of coins held.
func (inv ChangeInventory) Count() int {
	n := 0
	for _, qty := range inv {
		if qty > 0 {
			n += qty
		}
	}
	return n
}

// StockItems lists the inventory ordered by name, then price.
func (inv ProductInventory) StockItems() []StockItem {
	items := make([]StockItem, 0, len(inv))
	for p, qty := range inv {
		items = append(items, StockItem{Name: p.Name(), Price: p.Price(), Quantity: qty, product: p})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].product.price < items[j].product.price
	})
	return items
}

// CoinStocks lists the inventory ordered by denomination, smallest first.
func (inv ChangeInventory) CoinStocks() []CoinStock {
	stocks := make([]CoinStock, 0, len(inv))
	for c, qty := range inv {
		stocks = append(stocks, CoinStock{Value: c.Value(), Quantity: qty, coin: c})
	}
	sort.Slice(stocks, func(i, j int) bool {
		return stocks[i].coin.minor < stocks[j].coin.minor
	})
	return stocks
}

// StockItem is one product line of the inventory.
type StockItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`

	product Product
}

// Product returns the product the line refers to.
func (s StockItem) Product() Product {
	return s.product
}

// CoinStock is one denomination line of the change inventory.
type CoinStock struct {
	Value    decimal.Decimal `json:"value"`
	Quantity int             `json:"quantity"`

	coin Coin
}
