package signing

import (
	"strconv"
	"strings"

	"github.com/uhyunpark/hyperwire/pkg/signer"
)

// signatureJSON renders {"r":"0x...64hex...","s":"0x...64hex...","v":27|28}.
func signatureJSON(sig signer.Signature) string {
	var b strings.Builder
	b.WriteString(`{"r":"0x`)
	b.WriteString(hexLower(sig.R[:]))
	b.WriteString(`","s":"0x`)
	b.WriteString(hexLower(sig.S[:]))
	b.WriteString(`","v":`)
	b.WriteString(strconv.Itoa(int(sig.V) + 27))
	b.WriteByte('}')
	return b.String()
}

func hexLower(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = digits[c>>4]
		out[i*2+1] = digits[c&0xf]
	}
	return string(out)
}

// renderEnvelope wraps an encoded action body with the outer request
// fields every signed request carries: nonce, signature, vaultAddress
// (null when absent), expiresAfter (null when absent).
func renderEnvelope(actionJSON []byte, env RequestEnvelope) []byte {
	var b strings.Builder
	b.WriteString(`{"action":`)
	b.Write(actionJSON)
	b.WriteString(`,"nonce":`)
	b.WriteString(strconv.FormatUint(env.Nonce, 10))
	b.WriteString(`,"signature":`)
	b.WriteString(signatureJSON(env.Signature))
	b.WriteString(`,"vaultAddress":`)
	if env.VaultAddress == nil {
		b.WriteString("null")
	} else {
		b.WriteString(`"0x`)
		b.WriteString(hexLower(env.VaultAddress[:]))
		b.WriteString(`"`)
	}
	b.WriteString(`,"expiresAfter":`)
	if env.ExpiresAfter == nil {
		b.WriteString("null")
	} else {
		b.WriteString(strconv.FormatUint(*env.ExpiresAfter, 10))
	}
	b.WriteByte('}')
	return []byte(b.String())
}
