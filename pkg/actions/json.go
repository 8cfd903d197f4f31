package actions

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// hex renders the cloid as "0x" + 32 lowercase hex digits. The all-zero
// value is still rendered, never omitted or sent as JSON null.
func (c ClientOrderId) hex() string { return "0x" + hex.EncodeToString(c[:]) }

func hexAddress(a [20]byte) string { return "0x" + hex.EncodeToString(a[:]) }

// jsonString appends a double-quoted, minimally escaped JSON string. The
// action vocabulary never contains characters outside printable ASCII, so
// only the quote and backslash need escaping.
func jsonString(buf *strings.Builder, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			buf.WriteByte('\\')
			buf.WriteRune(r)
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}

func jsonBool(buf *strings.Builder, b bool) {
	if b {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
}

func jsonUint(buf *strings.Builder, u uint64) {
	buf.WriteString(strconv.FormatUint(u, 10))
}

func writeOrderTypeJSON(buf *strings.Builder, t OrderType) {
	buf.WriteByte('{')
	if !t.IsTrigger {
		buf.WriteString(`"limit":{"tif":`)
		jsonString(buf, t.Tif.wireTag())
		buf.WriteByte('}')
	} else {
		buf.WriteString(`"trigger":{"isMarket":`)
		jsonBool(buf, t.IsMarket)
		buf.WriteString(`,"triggerPx":`)
		jsonString(buf, t.TriggerPrice.Normalize().String())
		buf.WriteString(`,"tpsl":`)
		jsonString(buf, t.TpSl.wireTag())
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
}

func writeOrderRequestJSON(buf *strings.Builder, o OrderRequest) {
	buf.WriteByte('{')
	buf.WriteString(`"a":`)
	jsonUint(buf, uint64(o.Asset))
	buf.WriteString(`,"b":`)
	jsonBool(buf, o.IsBuy)
	buf.WriteString(`,"p":`)
	jsonString(buf, o.LimitPrice.Normalize().String())
	buf.WriteString(`,"s":`)
	jsonString(buf, o.Size.Normalize().String())
	buf.WriteString(`,"r":`)
	jsonBool(buf, o.ReduceOnly)
	buf.WriteString(`,"t":`)
	writeOrderTypeJSON(buf, o.OrderType)
	buf.WriteString(`,"c":`)
	jsonString(buf, o.Cloid.hex())
	buf.WriteByte('}')
}

// JSON renders the order-placement action's canonical wire-JSON body.
func (b BatchOrder) JSON() []byte {
	var buf strings.Builder
	buf.WriteString(`{"type":"order","orders":[`)
	for i, o := range b.Orders {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeOrderRequestJSON(&buf, o)
	}
	buf.WriteString(`],"grouping":`)
	jsonString(&buf, b.Grouping.wireTag())
	if b.HasBuilder {
		buf.WriteString(`,"builder":{"b":`)
		jsonString(&buf, hexAddress(b.Builder))
		buf.WriteString(`,"f":`)
		jsonUint(&buf, uint64(b.BuilderFee))
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return []byte(buf.String())
}

// JSON renders the cancel-by-order-id action's wire-JSON body.
func (b BatchCancel) JSON() []byte {
	var buf strings.Builder
	buf.WriteString(`{"type":"cancel","cancels":[`)
	for i, c := range b.Cancels {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"a":`)
		jsonUint(&buf, uint64(c.Asset))
		buf.WriteString(`,"o":`)
		jsonUint(&buf, c.Oid)
		buf.WriteByte('}')
	}
	buf.WriteString(`]}`)
	return []byte(buf.String())
}

// JSON renders the cancel-by-cloid action's wire-JSON body.
func (b BatchCancelCloid) JSON() []byte {
	var buf strings.Builder
	buf.WriteString(`{"type":"cancelByCloid","cancels":[`)
	for i, c := range b.Cancels {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"asset":`)
		jsonUint(&buf, uint64(c.Asset))
		buf.WriteString(`,"cloid":`)
		jsonString(&buf, c.Cloid.hex())
		buf.WriteByte('}')
	}
	buf.WriteString(`]}`)
	return []byte(buf.String())
}

// JSON renders the batch-modify action's wire-JSON body.
func (b BatchModify) JSON() []byte {
	var buf strings.Builder
	buf.WriteString(`{"type":"batchModify","modifies":[`)
	for i, m := range b.Modifies {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"oid":`)
		if m.Target.HasCloid {
			jsonString(&buf, m.Target.Cloid.hex())
		} else {
			jsonUint(&buf, m.Target.Oid)
		}
		buf.WriteString(`,"order":`)
		writeOrderRequestJSON(&buf, m.NewOrder)
		buf.WriteByte('}')
	}
	buf.WriteString(`]}`)
	return []byte(buf.String())
}

// JSON renders {"type":"scheduleCancel","time":u64|null}.
func (s ScheduleCancel) JSON() []byte {
	var buf strings.Builder
	buf.WriteString(`{"type":"scheduleCancel","time":`)
	if s.HasTime {
		jsonUint(&buf, s.Time)
	} else {
		buf.WriteString("null")
	}
	buf.WriteByte('}')
	return []byte(buf.String())
}

// JSON renders {"type":"updateLeverage","asset","isCross","leverage"}.
func (u UpdateLeverage) JSON() []byte {
	var buf strings.Builder
	buf.WriteString(`{"type":"updateLeverage","asset":`)
	jsonUint(&buf, uint64(u.Asset))
	buf.WriteString(`,"isCross":`)
	jsonBool(&buf, u.IsCross)
	buf.WriteString(`,"leverage":`)
	jsonUint(&buf, uint64(u.Leverage))
	buf.WriteByte('}')
	return []byte(buf.String())
}

// JSON renders {"type":"updateIsolatedMargin","asset","isBuy","ntli"}.
func (u UpdateIsolatedMargin) JSON() []byte {
	var buf strings.Builder
	buf.WriteString(`{"type":"updateIsolatedMargin","asset":`)
	jsonUint(&buf, uint64(u.Asset))
	buf.WriteString(`,"isBuy":`)
	jsonBool(&buf, u.IsBuy)
	buf.WriteString(`,"ntli":`)
	jsonUint(&buf, u.Ntli)
	buf.WriteByte('}')
	return []byte(buf.String())
}

// JSON renders {"type":"setReferrer","code"}.
func (s SetReferrer) JSON() []byte {
	var buf strings.Builder
	buf.WriteString(`{"type":"setReferrer","code":`)
	jsonString(&buf, s.Code)
	buf.WriteByte('}')
	return []byte(buf.String())
}

// JSON renders {"type":"noop"}.
func (Noop) JSON() []byte { return []byte(`{"type":"noop"}`) }

// JSON renders {"type":"evmUserModify","usingBigBlocks"}.
func (e EvmUserModify) JSON() []byte {
	var buf strings.Builder
	buf.WriteString(`{"type":"evmUserModify","usingBigBlocks":`)
	jsonBool(&buf, e.UsingBigBlocks)
	buf.WriteByte('}')
	return []byte(buf.String())
}
