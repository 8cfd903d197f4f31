// Package hltypes defines the small value types shared across the signing
// core: addresses, hashes, client order ids, and the chain enum that
// selects the host-chain EIP-712 domain.
package hltypes

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Address is a 20-byte Ethereum-style account address.
type Address [20]byte

// Hex renders the address as 0x-prefixed EIP-55 checksummed (mixed-case)
// hex via go-ethereum's common.Address, so formatting matches the rest of
// the ecosystem this module interoperates with.
func (a Address) Hex() string {
	return common.Address(a).Hex()
}

// ParseAddress parses a 0x-prefixed or bare 40-hex-digit address.
func ParseAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return Address{}, fmt.Errorf("hltypes: invalid address %q", s)
	}
	return Address(common.HexToAddress(s)), nil
}

// Hash256 is a 32-byte digest.
type Hash256 [32]byte

// Hex renders the hash as 0x-prefixed lowercase hex.
func (h Hash256) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// ClientOrderId is a 16-byte opaque client order identifier. The all-zero
// value means "unset" but is still rendered explicitly — it is never
// omitted or sent as JSON null.
type ClientOrderId [16]byte

// Hex renders the cloid as "0x" followed by 32 lowercase hex digits.
func (c ClientOrderId) Hex() string { return "0x" + hex.EncodeToString(c[:]) }

// ParseClientOrderId parses a "0x"-prefixed, 32-hex-digit client order id.
func ParseClientOrderId(s string) (ClientOrderId, error) {
	if len(s) != 34 || s[0:2] != "0x" {
		return ClientOrderId{}, fmt.Errorf("hltypes: invalid cloid %q", s)
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return ClientOrderId{}, fmt.Errorf("hltypes: invalid cloid %q: %w", s, err)
	}
	var c ClientOrderId
	copy(c[:], b)
	return c, nil
}

// Chain selects which host-chain EIP-712 domain a typed-data action signs
// under. It has no bearing on the Agent domain used by the RMP path, which
// is fixed at chain id 1337 regardless of Chain.
type Chain int

const (
	Mainnet Chain = iota
	Testnet
)

// IsMainnet reports whether c is Mainnet.
func (c Chain) IsMainnet() bool { return c == Mainnet }

// HyperliquidChainName returns the textual tag embedded in typed-data
// wire bodies: "Mainnet" or "Testnet".
func (c Chain) HyperliquidChainName() string {
	if c == Mainnet {
		return "Mainnet"
	}
	return "Testnet"
}

// SignatureChainId returns the hex-encoded host-chain id used in the
// typed-data domain: 42161 (Arbitrum One) for Mainnet, 421614 (Arbitrum
// Sepolia) for Testnet.
func (c Chain) SignatureChainId() string {
	if c == Mainnet {
		return "0xa4b1"
	}
	return "0x66eee"
}

// ChainId returns the numeric host-chain id used in the EIP-712 domain.
func (c Chain) ChainId() uint64 {
	if c == Mainnet {
		return 42161
	}
	return 421614
}

// AgentSource returns the Agent struct's "source" field: "a" on mainnet,
// "b" on testnet.
func (c Chain) AgentSource() string {
	if c == Mainnet {
		return "a"
	}
	return "b"
}
