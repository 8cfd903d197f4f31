package ticks

import (
	"testing"

	"github.com/uhyunpark/hyperwire/pkg/decimal"
)

func TestPerpTickDecimalsForTypicalPrice(t *testing.T) {
	tick := PerpTick(3)
	price := decimal.MustParse("1234.5678")
	rounded := tick.Round(price)
	// sig_figs = 4 (floor(log10(1234))+1), decimals = clamp(5-4,0,3) = 1
	if rounded.String() != "1234.6" {
		t.Fatalf("rounded = %s, want 1234.6", rounded.String())
	}
}

func TestSpotTickMaxDecimalsClampsHigh(t *testing.T) {
	tick := SpotTick(0)
	if tick.MaxDecimals != 8 {
		t.Fatalf("max decimals = %d, want 8", tick.MaxDecimals)
	}
}

func TestRoundBySideConservative(t *testing.T) {
	tick := PriceTick{MaxDecimals: 2}
	price := decimal.MustParse("1.005")
	ask := tick.RoundBySide(Sell, price, true)
	bid := tick.RoundBySide(Buy, price, true)
	if ask.Cmp(bid) <= 0 {
		t.Fatalf("conservative ask rounding (%s) should exceed bid rounding (%s)", ask, bid)
	}
}
