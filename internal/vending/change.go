package vending

import (
	"fmt"

	"vending-machine/internal/model"
)

// selectChange picks the coins that make up due from held. It never modifies
// held; the caller debits the returned coins once the whole plan is known.
//
// A held coin worth exactly due is preferred. Otherwise the largest accepted
// denomination that is in stock and not larger than the remaining amount is
// taken, one coin at a time, re-reading stock after every pick.
func selectChange(held model.ChangeInventory, due int64) (model.ChangeInventory, error) {
	dispensed := model.ChangeInventory{}
	if due <= 0 {
		return dispensed, nil
	}

	if total := held.TotalMinorUnits(); due > total {
		return nil, fmt.Errorf("%w: %s due, %s held",
			model.ErrInsufficientChange, model.FromMinorUnits(due).StringFixed(2), model.FromMinorUnits(total).StringFixed(2))
	}

	if coin, ok := model.CoinOf(due); ok && held[coin] > 0 {
		dispensed[coin] = 1
		return dispensed, nil
	}

	remaining := held.Clone()
	left := due
	for left > 0 {
		coin, ok := largestAvailable(remaining, left)
		if !ok {
			return nil, fmt.Errorf("%w: cannot make %s from stock, %s left over",
				model.ErrInsufficientChange, model.FromMinorUnits(due).StringFixed(2), model.FromMinorUnits(left).StringFixed(2))
		}
		remaining[coin]--
		dispensed[coin]++
		left -= coin.MinorUnits()
	}

	return dispensed, nil
}

// largestAvailable returns the largest accepted coin in stock worth at most limit.
func largestAvailable(held model.ChangeInventory, limit int64) (model.Coin, bool) {
	denominations := model.Denominations()
	for i := len(denominations) - 1; i >= 0; i-- {
		coin := denominations[i]
		if coin.MinorUnits() <= limit && held[coin] > 0 {
			return coin, true
		}
	}
	return model.Coin{}, false
}
