// Package vending implements the vending machine core: the product and
// change inventories and the purchase transaction that dispenses exact
// change.
//
// All amounts are handled in minor units, so the change computation is exact
// and never needs intermediate rounding. A purchase either commits completely
// or leaves both inventories untouched.
package vending
