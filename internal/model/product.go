package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is an item the machine sells.
// Products are comparable: equal name and price address the same stock slot.
type Product struct {
	name  string
	price int64
}

// NewProduct creates a product. It returns ErrInvalidPrice unless price is
// strictly positive and expressible in minor units.
func NewProduct(name string, price decimal.Decimal) (Product, error) {
	if !price.IsPositive() {
		return Product{}, fmt.Errorf("%w: %s", ErrInvalidPrice, price.String())
	}

	minor, ok := toMinorUnits(price)
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrInvalidPrice, price.String())
	}

	return Product{name: name, price: minor}, nil
}

// MustProduct is like NewProduct but takes a textual price and panics on
// error. Intended for tests and package-level fixtures.
func MustProduct(name, price string) Product {
	p, err := NewProduct(name, decimal.RequireFromString(price))
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the product name.
func (p Product) Name() string {
	return p.name
}

// Price returns the product price.
func (p Product) Price() decimal.Decimal {
	return FromMinorUnits(p.price)
}

// PriceMinorUnits returns the product price in minor units.
func (p Product) PriceMinorUnits() int64 {
	return p.price
}

func (p Product) String() string {
	return fmt.Sprintf("%s (%s)", p.name, p.Price().StringFixed(minorUnitExponent))
}
