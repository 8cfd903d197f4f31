// Package ticks implements price-tick rounding: snapping a price to the
// number of significant figures and decimal places the exchange accepts
// for a given market, and rounding in the direction that disadvantages
// the caller when requested.
package ticks

import (
	"github.com/uhyunpark/hyperwire/pkg/decimal"
)

// Side is the side of the book a price rounds conservatively against.
type Side int

const (
	Buy Side = iota
	Sell
)

// PriceTick computes the tick size for prices in a market with the given
// maximum decimal places (8 - size_decimals for spot markets, 6 -
// size_decimals for perpetuals).
type PriceTick struct {
	MaxDecimals int
}

// SpotTick returns the PriceTick for a spot market with the given number
// of size decimals.
func SpotTick(sizeDecimals int) PriceTick {
	return PriceTick{MaxDecimals: clamp(8-sizeDecimals, 0, 8)}
}

// PerpTick returns the PriceTick for a perpetual market with the given
// number of size decimals.
func PerpTick(sizeDecimals int) PriceTick {
	return PriceTick{MaxDecimals: clamp(6-sizeDecimals, 0, 6)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// decimals returns the number of fractional digits this tick rounds price
// to: clamp(5 - sig_figs, 0, max_decimals), where sig_figs =
// floor(log10|price|) + 1.
func (t PriceTick) decimals(price decimal.Decimal) int {
	log10, ok := price.FloorLog10Abs()
	if !ok {
		return t.MaxDecimals
	}
	sigFigs := log10 + 1
	return clamp(5-sigFigs, 0, t.MaxDecimals)
}

// Round rounds price to the nearest tick using round-half-away-from-zero.
func (t PriceTick) Round(price decimal.Decimal) decimal.Decimal {
	return price.RoundToScale(uint8(t.decimals(price)))
}

// RoundBySide rounds price in the direction that disadvantages the
// caller when conservative is true: ask-conservative (Sell) rounds up,
// bid-conservative (Buy) rounds down. When conservative is false the
// direction reverses.
func (t PriceTick) RoundBySide(side Side, price decimal.Decimal, conservative bool) decimal.Decimal {
	decimals := t.decimals(price)
	roundUp := (side == Sell) == conservative
	if roundUp {
		return price.RoundUpToScale(uint8(decimals))
	}
	return price.RoundDownToScale(uint8(decimals))
}
