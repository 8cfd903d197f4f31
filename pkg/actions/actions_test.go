package actions

import (
	"testing"

	"github.com/uhyunpark/hyperwire/pkg/codec"
	"github.com/uhyunpark/hyperwire/pkg/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func sampleOrder(t *testing.T) OrderRequest {
	return OrderRequest{
		Asset:      0,
		IsBuy:      true,
		LimitPrice: mustDecimal(t, "50000"),
		Size:       mustDecimal(t, "0.1"),
		ReduceOnly: false,
		OrderType:  LimitOrder(Gtc),
	}
}

func TestBatchOrderBinaryStartsWithTypeKey(t *testing.T) {
	b := BatchOrder{Orders: []OrderRequest{sampleOrder(t)}, Grouping: Na}
	buf := make([]byte, 512)
	enc := codec.NewEncoder(buf)
	if err := b.EncodeBinary(enc); err != nil {
		t.Fatal(err)
	}
	out := enc.Bytes()
	// fixmap(3) then fixstr(4) "type"
	if out[0] != 0x83 {
		t.Fatalf("expected 3-entry fixmap, got %#x", out[0])
	}
	if out[1] != 0xa4 {
		t.Fatalf("expected fixstr(4) for first key, got %#x", out[1])
	}
	if string(out[2:6]) != "type" {
		t.Fatalf("first key = %q, want \"type\"", out[2:6])
	}
}

func TestBatchOrderBinaryOverflowsSmallBuffer(t *testing.T) {
	b := BatchOrder{Orders: []OrderRequest{sampleOrder(t)}, Grouping: Na}
	buf := make([]byte, 4)
	enc := codec.NewEncoder(buf)
	if err := b.EncodeBinary(enc); err == nil {
		t.Fatal("expected buffer overflow error")
	}
}

func TestClientOrderIdAllZeroStillRendered(t *testing.T) {
	var o OrderRequest
	o.Cloid = ClientOrderId{}
	if o.Cloid.hex() != "0x00000000000000000000000000000000" {
		t.Fatalf("unexpected zero-cloid rendering: %s", o.Cloid.hex())
	}
}

func TestScheduleCancelNullTime(t *testing.T) {
	s := ScheduleCancel{HasTime: false}
	got := string(s.JSON())
	want := `{"type":"scheduleCancel","time":null}`
	if got != want {
		t.Fatalf("JSON = %s, want %s", got, want)
	}

	buf := make([]byte, 128)
	enc := codec.NewEncoder(buf)
	if err := s.EncodeBinary(enc); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateLeverageFieldOrder(t *testing.T) {
	u := UpdateLeverage{Asset: 0, IsCross: true, Leverage: 10}
	got := string(u.JSON())
	want := `{"type":"updateLeverage","asset":0,"isCross":true,"leverage":10}`
	if got != want {
		t.Fatalf("JSON = %s, want %s", got, want)
	}
}

func TestBatchOrderNormalizesPriceAndSize(t *testing.T) {
	o := sampleOrder(t)
	o.LimitPrice = mustDecimal(t, "10.00")
	b := BatchOrder{Orders: []OrderRequest{o}, Grouping: Na}
	got := string(b.JSON())
	if !contains(got, `"p":"10"`) {
		t.Fatalf("expected normalized price in JSON: %s", got)
	}
}

func TestMarketOrderUsesExtremePriceBySide(t *testing.T) {
	buy := MarketOrder(0, true, mustDecimal(t, "1"), false, ClientOrderId{})
	if buy.OrderType.Tif != FrontendMarket {
		t.Fatalf("buy.OrderType.Tif = %v, want FrontendMarket", buy.OrderType.Tif)
	}
	if buy.LimitPrice.Cmp(mustDecimal(t, "1")) <= 0 {
		t.Fatalf("buy limit price should be the extreme high price, got %s", buy.LimitPrice)
	}

	sell := MarketOrder(0, false, mustDecimal(t, "1"), false, ClientOrderId{})
	if sell.LimitPrice.Cmp(mustDecimal(t, "1")) != 0 {
		t.Fatalf("sell limit price = %s, want 1", sell.LimitPrice)
	}
}

func contains(haystack, needle string) bool {
	return len(haystack) >= len(needle) && indexOf(haystack, needle) >= 0
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
