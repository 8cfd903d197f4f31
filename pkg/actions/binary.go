package actions

import (
	"github.com/uhyunpark/hyperwire/pkg/codec"
)

func encodeOrderRequest(enc *codec.Encoder, o OrderRequest) error {
	if err := enc.WriteMapHeader(7); err != nil {
		return err
	}
	if err := enc.WriteString("a"); err != nil {
		return err
	}
	if err := enc.WriteUint(uint64(o.Asset)); err != nil {
		return err
	}
	if err := enc.WriteString("b"); err != nil {
		return err
	}
	if err := enc.WriteBool(o.IsBuy); err != nil {
		return err
	}
	if err := enc.WriteString("p"); err != nil {
		return err
	}
	if err := enc.WriteString(o.LimitPrice.Normalize().String()); err != nil {
		return err
	}
	if err := enc.WriteString("s"); err != nil {
		return err
	}
	if err := enc.WriteString(o.Size.Normalize().String()); err != nil {
		return err
	}
	if err := enc.WriteString("r"); err != nil {
		return err
	}
	if err := enc.WriteBool(o.ReduceOnly); err != nil {
		return err
	}
	if err := enc.WriteString("t"); err != nil {
		return err
	}
	if err := encodeOrderType(enc, o.OrderType); err != nil {
		return err
	}
	if err := enc.WriteString("c"); err != nil {
		return err
	}
	return enc.WriteString(o.Cloid.hex())
}

func encodeOrderType(enc *codec.Encoder, t OrderType) error {
	if err := enc.WriteMapHeader(1); err != nil {
		return err
	}
	if !t.IsTrigger {
		if err := enc.WriteString("limit"); err != nil {
			return err
		}
		if err := enc.WriteMapHeader(1); err != nil {
			return err
		}
		if err := enc.WriteString("tif"); err != nil {
			return err
		}
		return enc.WriteString(t.Tif.wireTag())
	}
	if err := enc.WriteString("trigger"); err != nil {
		return err
	}
	if err := enc.WriteMapHeader(3); err != nil {
		return err
	}
	if err := enc.WriteString("isMarket"); err != nil {
		return err
	}
	if err := enc.WriteBool(t.IsMarket); err != nil {
		return err
	}
	if err := enc.WriteString("triggerPx"); err != nil {
		return err
	}
	if err := enc.WriteString(t.TriggerPrice.Normalize().String()); err != nil {
		return err
	}
	if err := enc.WriteString("tpsl"); err != nil {
		return err
	}
	return enc.WriteString(t.TpSl.wireTag())
}

// EncodeBinary writes the order-placement action: top-level
// {"type":"order","orders":[...],"grouping":<tag>}, optionally followed by
// a builder-fee field when the batch names a builder.
func (b BatchOrder) EncodeBinary(enc *codec.Encoder) error {
	fields := 3
	if b.HasBuilder {
		fields = 4
	}
	if err := enc.WriteMapHeader(fields); err != nil {
		return err
	}
	if err := enc.WriteString("type"); err != nil {
		return err
	}
	if err := enc.WriteString("order"); err != nil {
		return err
	}
	if err := enc.WriteString("orders"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(len(b.Orders)); err != nil {
		return err
	}
	for _, o := range b.Orders {
		if err := encodeOrderRequest(enc, o); err != nil {
			return err
		}
	}
	if err := enc.WriteString("grouping"); err != nil {
		return err
	}
	if err := enc.WriteString(b.Grouping.wireTag()); err != nil {
		return err
	}
	if b.HasBuilder {
		if err := enc.WriteString("builder"); err != nil {
			return err
		}
		if err := enc.WriteMapHeader(2); err != nil {
			return err
		}
		if err := enc.WriteString("b"); err != nil {
			return err
		}
		if err := enc.WriteString(hexAddress(b.Builder)); err != nil {
			return err
		}
		if err := enc.WriteString("f"); err != nil {
			return err
		}
		if err := enc.WriteUint(uint64(b.BuilderFee)); err != nil {
			return err
		}
	}
	return nil
}

// EncodeBinary writes {"type":"cancel","cancels":[{a,o}]}.
func (b BatchCancel) EncodeBinary(enc *codec.Encoder) error {
	if err := enc.WriteMapHeader(2); err != nil {
		return err
	}
	if err := enc.WriteString("type"); err != nil {
		return err
	}
	if err := enc.WriteString("cancel"); err != nil {
		return err
	}
	if err := enc.WriteString("cancels"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(len(b.Cancels)); err != nil {
		return err
	}
	for _, c := range b.Cancels {
		if err := enc.WriteMapHeader(2); err != nil {
			return err
		}
		if err := enc.WriteString("a"); err != nil {
			return err
		}
		if err := enc.WriteUint(uint64(c.Asset)); err != nil {
			return err
		}
		if err := enc.WriteString("o"); err != nil {
			return err
		}
		if err := enc.WriteUint(c.Oid); err != nil {
			return err
		}
	}
	return nil
}

// EncodeBinary writes {"type":"cancelByCloid","cancels":[{asset,cloid}]}.
func (b BatchCancelCloid) EncodeBinary(enc *codec.Encoder) error {
	if err := enc.WriteMapHeader(2); err != nil {
		return err
	}
	if err := enc.WriteString("type"); err != nil {
		return err
	}
	if err := enc.WriteString("cancelByCloid"); err != nil {
		return err
	}
	if err := enc.WriteString("cancels"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(len(b.Cancels)); err != nil {
		return err
	}
	for _, c := range b.Cancels {
		if err := enc.WriteMapHeader(2); err != nil {
			return err
		}
		if err := enc.WriteString("asset"); err != nil {
			return err
		}
		if err := enc.WriteUint(uint64(c.Asset)); err != nil {
			return err
		}
		if err := enc.WriteString("cloid"); err != nil {
			return err
		}
		if err := enc.WriteString(c.Cloid.hex()); err != nil {
			return err
		}
	}
	return nil
}

// EncodeBinary writes {"type":"batchModify","modifies":[{oid,order}]}.
func (b BatchModify) EncodeBinary(enc *codec.Encoder) error {
	if err := enc.WriteMapHeader(2); err != nil {
		return err
	}
	if err := enc.WriteString("type"); err != nil {
		return err
	}
	if err := enc.WriteString("batchModify"); err != nil {
		return err
	}
	if err := enc.WriteString("modifies"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(len(b.Modifies)); err != nil {
		return err
	}
	for _, m := range b.Modifies {
		if err := enc.WriteMapHeader(2); err != nil {
			return err
		}
		if err := enc.WriteString("oid"); err != nil {
			return err
		}
		if m.Target.HasCloid {
			if err := enc.WriteString(m.Target.Cloid.hex()); err != nil {
				return err
			}
		} else {
			if err := enc.WriteUint(m.Target.Oid); err != nil {
				return err
			}
		}
		if err := enc.WriteString("order"); err != nil {
			return err
		}
		if err := encodeOrderRequest(enc, m.NewOrder); err != nil {
			return err
		}
	}
	return nil
}

// EncodeBinary writes {"type":"scheduleCancel","time":u64|null}.
func (s ScheduleCancel) EncodeBinary(enc *codec.Encoder) error {
	if err := enc.WriteMapHeader(2); err != nil {
		return err
	}
	if err := enc.WriteString("type"); err != nil {
		return err
	}
	if err := enc.WriteString("scheduleCancel"); err != nil {
		return err
	}
	if err := enc.WriteString("time"); err != nil {
		return err
	}
	if !s.HasTime {
		return enc.WriteNil()
	}
	return enc.WriteUint(s.Time)
}

// EncodeBinary writes {"type":"updateLeverage","asset","isCross","leverage"}.
func (u UpdateLeverage) EncodeBinary(enc *codec.Encoder) error {
	if err := enc.WriteMapHeader(4); err != nil {
		return err
	}
	if err := enc.WriteString("type"); err != nil {
		return err
	}
	if err := enc.WriteString("updateLeverage"); err != nil {
		return err
	}
	if err := enc.WriteString("asset"); err != nil {
		return err
	}
	if err := enc.WriteUint(uint64(u.Asset)); err != nil {
		return err
	}
	if err := enc.WriteString("isCross"); err != nil {
		return err
	}
	if err := enc.WriteBool(u.IsCross); err != nil {
		return err
	}
	if err := enc.WriteString("leverage"); err != nil {
		return err
	}
	return enc.WriteUint(uint64(u.Leverage))
}

// EncodeBinary writes {"type":"updateIsolatedMargin","asset","isBuy","ntli"}.
func (u UpdateIsolatedMargin) EncodeBinary(enc *codec.Encoder) error {
	if err := enc.WriteMapHeader(4); err != nil {
		return err
	}
	if err := enc.WriteString("type"); err != nil {
		return err
	}
	if err := enc.WriteString("updateIsolatedMargin"); err != nil {
		return err
	}
	if err := enc.WriteString("asset"); err != nil {
		return err
	}
	if err := enc.WriteUint(uint64(u.Asset)); err != nil {
		return err
	}
	if err := enc.WriteString("isBuy"); err != nil {
		return err
	}
	if err := enc.WriteBool(u.IsBuy); err != nil {
		return err
	}
	if err := enc.WriteString("ntli"); err != nil {
		return err
	}
	return enc.WriteUint(u.Ntli)
}

// EncodeBinary writes {"type":"setReferrer","code"}.
func (s SetReferrer) EncodeBinary(enc *codec.Encoder) error {
	if err := enc.WriteMapHeader(2); err != nil {
		return err
	}
	if err := enc.WriteString("type"); err != nil {
		return err
	}
	if err := enc.WriteString("setReferrer"); err != nil {
		return err
	}
	if err := enc.WriteString("code"); err != nil {
		return err
	}
	return enc.WriteString(s.Code)
}

// EncodeBinary writes {"type":"noop"}.
func (Noop) EncodeBinary(enc *codec.Encoder) error {
	if err := enc.WriteMapHeader(1); err != nil {
		return err
	}
	if err := enc.WriteString("type"); err != nil {
		return err
	}
	return enc.WriteString("noop")
}

// EncodeBinary writes {"type":"evmUserModify","usingBigBlocks"}.
func (e EvmUserModify) EncodeBinary(enc *codec.Encoder) error {
	if err := enc.WriteMapHeader(2); err != nil {
		return err
	}
	if err := enc.WriteString("type"); err != nil {
		return err
	}
	if err := enc.WriteString("evmUserModify"); err != nil {
		return err
	}
	if err := enc.WriteString("usingBigBlocks"); err != nil {
		return err
	}
	return enc.WriteBool(e.UsingBigBlocks)
}
