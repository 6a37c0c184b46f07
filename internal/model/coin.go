package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// minorUnitExponent is the number of decimal places of the currency.
const minorUnitExponent = 2

// acceptedMinorUnits lists every accepted denomination in minor units,
// smallest first. Coin validation and change selection both read it.
var acceptedMinorUnits = [...]int64{1, 2, 5, 10, 20, 50, 100, 200}

// Coin is a monetary denomination from the accepted set.
// Coins are comparable: two coins of the same value are the same map key.
type Coin struct {
	minor int64
}

// NewCoin creates a coin of the given value.
// It returns ErrInvalidValue if the value is not an accepted denomination.
func NewCoin(value decimal.Decimal) (Coin, error) {
	minor, ok := toMinorUnits(value)
	if !ok {
		return Coin{}, fmt.Errorf("%w: %s", ErrInvalidValue, value.String())
	}

	coin, ok := CoinOf(minor)
	if !ok {
		return Coin{}, fmt.Errorf("%w: %s", ErrInvalidValue, value.String())
	}

	return coin, nil
}

// ParseCoin creates a coin from its textual value, e.g. "0.50".
func ParseCoin(s string) (Coin, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Coin{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return NewCoin(value)
}

// MustCoin is like ParseCoin but panics on error. Intended for tests and
// package-level fixtures.
func MustCoin(s string) Coin {
	coin, err := ParseCoin(s)
	if err != nil {
		panic(err)
	}
	return coin
}

// CoinOf returns the accepted coin worth exactly minor units.
func CoinOf(minor int64) (Coin, bool) {
	for _, accepted := range acceptedMinorUnits {
		if accepted == minor {
			return Coin{minor: minor}, true
		}
	}
	return Coin{}, false
}

// Denominations returns every accepted coin, smallest first.
func Denominations() []Coin {
	coins := make([]Coin, len(acceptedMinorUnits))
	for i, minor := range acceptedMinorUnits {
		coins[i] = Coin{minor: minor}
	}
	return coins
}

// Value returns the face value of the coin.
func (c Coin) Value() decimal.Decimal {
	return decimal.New(c.minor, -minorUnitExponent)
}

// MinorUnits returns the face value of the coin in minor units.
func (c Coin) MinorUnits() int64 {
	return c.minor
}

func (c Coin) String() string {
	return c.Value().StringFixed(minorUnitExponent)
}

// MarshalText lets coins key JSON objects, e.g. {"0.50": 3}.
func (c Coin) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses and validates a coin value.
func (c *Coin) UnmarshalText(text []byte) error {
	coin, err := ParseCoin(string(text))
	if err != nil {
		return err
	}
	*c = coin
	return nil
}

// toMinorUnits converts an amount to minor units. It reports false when the
// amount has more precision than the currency allows or does not fit in an
// int64.
func toMinorUnits(amount decimal.Decimal) (int64, bool) {
	shifted := amount.Shift(minorUnitExponent)
	if !shifted.IsInteger() {
		return 0, false
	}

	minor := shifted.BigInt()
	if !minor.IsInt64() {
		return 0, false
	}
	return minor.Int64(), true
}

// FromMinorUnits converts an amount in minor units to a decimal.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -minorUnitExponent)
}
