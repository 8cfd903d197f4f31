// Package actions implements the exchange action data model and its two
// wire serializations: the byte-exact binary form consumed only by the
// RMP signing path, and the canonical wire-JSON form embedded in every
// exchange request body. Both serializations are hand-written per
// variant rather than derived by reflection, because key order and
// abbreviated field names are part of the wire contract.
package actions

import "github.com/uhyunpark/hyperwire/pkg/decimal"

// TimeInForce selects how a limit order rests or cancels against the
// book. FrontendMarket is a distinct variant, not IOC with an extreme
// price — the exchange treats the two differently.
type TimeInForce int

const (
	Alo TimeInForce = iota
	Ioc
	Gtc
	FrontendMarket
)

func (t TimeInForce) wireTag() string {
	switch t {
	case Alo:
		return "Alo"
	case Ioc:
		return "Ioc"
	case Gtc:
		return "Gtc"
	case FrontendMarket:
		return "FrontendMarket"
	default:
		return "Gtc"
	}
}

// TpSl distinguishes a take-profit trigger from a stop-loss trigger.
type TpSl int

const (
	Tp TpSl = iota
	Sl
)

func (k TpSl) wireTag() string {
	if k == Sl {
		return "sl"
	}
	return "tp"
}

// OrderGrouping describes how a batch's child orders relate to one
// another.
type OrderGrouping int

const (
	Na OrderGrouping = iota
	NormalTpsl
	PositionTpsl
)

func (g OrderGrouping) wireTag() string {
	switch g {
	case NormalTpsl:
		return "normalTpsl"
	case PositionTpsl:
		return "positionTpsl"
	default:
		return "na"
	}
}

// OrderType is either a resting limit order or a trigger order; exactly
// one of Limit/Trigger is populated, selected by IsTrigger.
type OrderType struct {
	IsTrigger bool

	// Limit fields (IsTrigger == false).
	Tif TimeInForce

	// Trigger fields (IsTrigger == true).
	IsMarket     bool
	TriggerPrice decimal.Decimal
	TpSl         TpSl
}

// LimitOrder constructs a resting-limit OrderType.
func LimitOrder(tif TimeInForce) OrderType {
	return OrderType{IsTrigger: false, Tif: tif}
}

// maxRepresentablePrice is the largest magnitude a Decimal at scale 0
// can hold (2^127 - 1), used as the extreme buy-side limit price for
// FrontendMarket orders.
var maxRepresentablePrice = decimal.MustParse("170141183460469231731687303715884105727")

// MarketPrice returns the extreme limit price FrontendMarket orders
// use in place of a real limit: the largest representable price on a
// buy, or 1 on a sell. FrontendMarket is a distinct TIF from IOC, not
// IOC dressed up with an extreme price — the exchange treats them
// differently.
func MarketPrice(isBuy bool) decimal.Decimal {
	if isBuy {
		return maxRepresentablePrice
	}
	return decimal.MustParse("1")
}

// MarketOrder constructs a FrontendMarket OrderRequest: a limit order
// whose price is the extreme MarketPrice for side, so it crosses the
// book immediately up to the fillable depth.
func MarketOrder(asset uint32, isBuy bool, size decimal.Decimal, reduceOnly bool, cloid ClientOrderId) OrderRequest {
	return OrderRequest{
		Asset:      asset,
		IsBuy:      isBuy,
		LimitPrice: MarketPrice(isBuy),
		Size:       size,
		ReduceOnly: reduceOnly,
		OrderType:  LimitOrder(FrontendMarket),
		Cloid:      cloid,
	}
}

// TriggerOrder constructs a trigger OrderType.
func TriggerOrder(isMarket bool, triggerPrice decimal.Decimal, kind TpSl) OrderType {
	return OrderType{IsTrigger: true, IsMarket: isMarket, TriggerPrice: triggerPrice, TpSl: kind}
}

// ClientOrderId is 16 opaque bytes, rendered "0x" + 32 hex. The all-zero
// value means "unset" and is still rendered, never omitted.
type ClientOrderId [16]byte

// OrderRequest is a single order leg. Asset is the exchange's integer
// asset index, not a symbol.
type OrderRequest struct {
	Asset      uint32
	IsBuy      bool
	LimitPrice decimal.Decimal
	Size       decimal.Decimal
	ReduceOnly bool
	OrderType  OrderType
	Cloid      ClientOrderId
}

// BatchOrder is one or more orders submitted atomically under a single
// grouping tag. When HasBuilder is set, Builder names an address earning
// BuilderFee on the fills this batch produces.
type BatchOrder struct {
	Orders     []OrderRequest
	Grouping   OrderGrouping
	Builder    [20]byte
	HasBuilder bool
	BuilderFee uint32 // tenths of a basis point
}

// Cancel targets a resting order by its exchange-assigned order id.
type Cancel struct {
	Asset uint32
	Oid   uint64
}

// CancelByCloid targets a resting order by client order id.
type CancelByCloid struct {
	Asset uint32
	Cloid ClientOrderId
}

// BatchCancel cancels an ordered sequence of orders by exchange id.
type BatchCancel struct {
	Cancels []Cancel
}

// BatchCancelCloid cancels an ordered sequence of orders by client order
// id.
type BatchCancelCloid struct {
	Cancels []CancelByCloid
}

// ModifyTarget identifies the order being modified, by exchange order id
// or by client order id — never both.
type ModifyTarget struct {
	HasCloid bool
	Oid      uint64
	Cloid    ClientOrderId
}

// Modify replaces the resting order named by Target with NewOrder.
type Modify struct {
	Target   ModifyTarget
	NewOrder OrderRequest
}

// BatchModify is an ordered sequence of Modify operations.
type BatchModify struct {
	Modifies []Modify
}

// ScheduleCancel schedules (or clears, if Time is absent) a dead-man's
// switch that cancels all resting orders at the given wall-clock time.
type ScheduleCancel struct {
	HasTime bool
	Time    uint64
}

// UpdateLeverage sets the leverage multiplier for an asset.
type UpdateLeverage struct {
	Asset    uint32
	IsCross  bool
	Leverage uint32
}

// UpdateIsolatedMargin adjusts the isolated margin allocated to a
// position.
type UpdateIsolatedMargin struct {
	Asset uint32
	IsBuy bool
	Ntli  uint64
}

// SetReferrer attaches a referral code to the account.
type SetReferrer struct {
	Code string
}

// Noop is an action with no effect, used to advance the nonce.
type Noop struct{}

// EvmUserModify toggles the account's EVM big-block usage.
type EvmUserModify struct {
	UsingBigBlocks bool
}
