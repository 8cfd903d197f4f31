package eip712

import "strings"

func jstr(buf *strings.Builder, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
	}
	buf.WriteByte('"')
}

func jbool(buf *strings.Builder, b bool) {
	if b {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
}

func juint(buf *strings.Builder, u uint64) {
	buf.WriteString(itoa(u))
}

func itoa(u uint64) string {
	if u == 0 {
		return "0"
	}
	var b [20]byte
	i := len(b)
	for u > 0 {
		i--
		b[i] = byte('0' + u%10)
		u /= 10
	}
	return string(b[i:])
}

func jaddr(buf *strings.Builder, a [20]byte) {
	const hexDigits = "0123456789abcdef"
	buf.WriteString(`"0x`)
	for _, bb := range a {
		buf.WriteByte(hexDigits[bb>>4])
		buf.WriteByte(hexDigits[bb&0xf])
	}
	buf.WriteByte('"')
}

// JSON renders the action body embedded in a typed-data request: its own
// fields, in schema order, with no extra wrapping.
func (a UsdSend) JSON() []byte {
	var b strings.Builder
	b.WriteString(`{"signatureChainId":`)
	jstr(&b, a.SignatureChainId)
	b.WriteString(`,"hyperliquidChain":`)
	jstr(&b, a.HyperliquidChain)
	b.WriteString(`,"destination":`)
	jstr(&b, a.Destination)
	b.WriteString(`,"amount":`)
	jstr(&b, a.Amount)
	b.WriteString(`,"time":`)
	juint(&b, a.Time)
	b.WriteByte('}')
	return []byte(b.String())
}

// JSON renders the action body for a SpotSend.
func (a SpotSend) JSON() []byte {
	var b strings.Builder
	b.WriteString(`{"signatureChainId":`)
	jstr(&b, a.SignatureChainId)
	b.WriteString(`,"hyperliquidChain":`)
	jstr(&b, a.HyperliquidChain)
	b.WriteString(`,"destination":`)
	jstr(&b, a.Destination)
	b.WriteString(`,"token":`)
	jstr(&b, a.Token)
	b.WriteString(`,"amount":`)
	jstr(&b, a.Amount)
	b.WriteString(`,"time":`)
	juint(&b, a.Time)
	b.WriteByte('}')
	return []byte(b.String())
}

// JSON renders the action body for a SendAsset.
func (a SendAsset) JSON() []byte {
	var b strings.Builder
	b.WriteString(`{"signatureChainId":`)
	jstr(&b, a.SignatureChainId)
	b.WriteString(`,"hyperliquidChain":`)
	jstr(&b, a.HyperliquidChain)
	b.WriteString(`,"destination":`)
	jstr(&b, a.Destination)
	b.WriteString(`,"sourceDex":`)
	jstr(&b, a.SourceDex)
	b.WriteString(`,"destinationDex":`)
	jstr(&b, a.DestinationDex)
	b.WriteString(`,"token":`)
	jstr(&b, a.Token)
	b.WriteString(`,"amount":`)
	jstr(&b, a.Amount)
	b.WriteString(`,"fromSubAccount":`)
	jstr(&b, a.FromSubAccount)
	b.WriteString(`,"nonce":`)
	juint(&b, a.Nonce)
	b.WriteByte('}')
	return []byte(b.String())
}

// JSON renders the action body for a UsdClassTransfer.
func (a UsdClassTransfer) JSON() []byte {
	var b strings.Builder
	b.WriteString(`{"signatureChainId":`)
	jstr(&b, a.SignatureChainId)
	b.WriteString(`,"hyperliquidChain":`)
	jstr(&b, a.HyperliquidChain)
	b.WriteString(`,"amount":`)
	jstr(&b, a.Amount)
	b.WriteString(`,"toPerp":`)
	jbool(&b, a.ToPerp)
	b.WriteString(`,"nonce":`)
	juint(&b, a.Nonce)
	b.WriteByte('}')
	return []byte(b.String())
}

// JSON renders the action body for an ApproveAgent.
func (a ApproveAgent) JSON() []byte {
	var b strings.Builder
	b.WriteString(`{"signatureChainId":`)
	jstr(&b, a.SignatureChainId)
	b.WriteString(`,"hyperliquidChain":`)
	jstr(&b, a.HyperliquidChain)
	b.WriteString(`,"agentAddress":`)
	jaddr(&b, a.AgentAddress)
	b.WriteString(`,"agentName":`)
	jstr(&b, a.AgentName)
	b.WriteString(`,"nonce":`)
	juint(&b, a.Nonce)
	b.WriteByte('}')
	return []byte(b.String())
}

// JSON renders the action body for an ApproveBuilderFee.
func (a ApproveBuilderFee) JSON() []byte {
	var b strings.Builder
	b.WriteString(`{"signatureChainId":`)
	jstr(&b, a.SignatureChainId)
	b.WriteString(`,"hyperliquidChain":`)
	jstr(&b, a.HyperliquidChain)
	b.WriteString(`,"maxFeeRate":`)
	jstr(&b, a.MaxFeeRate)
	b.WriteString(`,"builder":`)
	jaddr(&b, a.Builder)
	b.WriteString(`,"nonce":`)
	juint(&b, a.Nonce)
	b.WriteByte('}')
	return []byte(b.String())
}

// JSON renders the action body for a Withdraw.
func (a Withdraw) JSON() []byte {
	var b strings.Builder
	b.WriteString(`{"signatureChainId":`)
	jstr(&b, a.SignatureChainId)
	b.WriteString(`,"hyperliquidChain":`)
	jstr(&b, a.HyperliquidChain)
	b.WriteString(`,"destination":`)
	jstr(&b, a.Destination)
	b.WriteString(`,"amount":`)
	jstr(&b, a.Amount)
	b.WriteString(`,"time":`)
	juint(&b, a.Time)
	b.WriteByte('}')
	return []byte(b.String())
}

// JSON renders the action body for a ConvertToMultiSigUser.
func (a ConvertToMultiSigUser) JSON() []byte {
	var b strings.Builder
	b.WriteString(`{"signatureChainId":`)
	jstr(&b, a.SignatureChainId)
	b.WriteString(`,"hyperliquidChain":`)
	jstr(&b, a.HyperliquidChain)
	b.WriteString(`,"signers":`)
	jstr(&b, a.Signers)
	b.WriteString(`,"nonce":`)
	juint(&b, a.Nonce)
	b.WriteByte('}')
	return []byte(b.String())
}
