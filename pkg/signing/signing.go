// Package signing orchestrates the two request-signing pipelines the
// exchange accepts: the RMP path, which binary-encodes a trading action
// and signs its connection hash under the fixed Agent EIP-712 domain, and
// the typed-data path, which struct-hashes a transfer/approval action
// directly under the host-chain domain. Both paths return the raw
// Signature together with the canonical wire-JSON request body.
package signing

import (
	"encoding/binary"
	"fmt"

	"github.com/uhyunpark/hyperwire/pkg/codec"
	"github.com/uhyunpark/hyperwire/pkg/eip712"
	"github.com/uhyunpark/hyperwire/pkg/hltypes"
	"github.com/uhyunpark/hyperwire/pkg/keccak"
	"github.com/uhyunpark/hyperwire/pkg/signer"
)

// RMPAction is anything the binary-encode-then-sign path accepts: every
// trading action variant.
type RMPAction interface {
	EncodeBinary(enc *codec.Encoder) error
	JSON() []byte
}

// RequestEnvelope is the outer wrapper every signed request body carries:
// the action object, the nonce that pins it, the signature, and the
// optional vault/expiry fields.
type RequestEnvelope struct {
	Nonce        uint64
	Signature    signer.Signature
	VaultAddress *hltypes.Address
	ExpiresAfter *uint64
}

// connectionHash computes keccak256(binary_action ‖ nonce_be8 ‖
// vault_byte_and_address ‖ expires_after_byte_and_value), the input to the
// Agent struct hash.
func connectionHash(binaryAction []byte, nonce uint64, vault *hltypes.Address, expiresAfter *uint64) [32]byte {
	buf := make([]byte, 0, len(binaryAction)+8+21+9)
	buf = append(buf, binaryAction...)
	var nonceBytes [8]byte
	binary.BigEndian.PutUint64(nonceBytes[:], nonce)
	buf = append(buf, nonceBytes[:]...)
	if vault == nil {
		buf = append(buf, 0x00)
	} else {
		buf = append(buf, 0x01)
		buf = append(buf, vault[:]...)
	}
	if expiresAfter != nil {
		buf = append(buf, 0x00)
		var eb [8]byte
		binary.BigEndian.PutUint64(eb[:], *expiresAfter)
		buf = append(buf, eb[:]...)
	}
	return keccak.Sum256(buf)
}

// SignAction runs the RMP path: binary-encode action into buf, compute the
// connection hash, build and struct-hash the Agent, sign under the Agent
// domain (chain id 1337), and render the wire-JSON request body.
func SignAction(key *signer.PrivateKey, chain hltypes.Chain, action RMPAction, nonce uint64, vault *hltypes.Address, expiresAfter *uint64, buf []byte) (signer.Signature, []byte, error) {
	enc := codec.NewEncoder(buf)
	if err := action.EncodeBinary(enc); err != nil {
		return signer.Signature{}, nil, fmt.Errorf("signing: encode action: %w", err)
	}

	connHash := connectionHash(enc.Bytes(), nonce, vault, expiresAfter)
	structHash := eip712.AgentStructHash(chain.AgentSource(), connHash)
	signingHash := eip712.SigningHash(eip712.AgentDomainSeparator, structHash)

	sig, err := key.Sign(signingHash)
	if err != nil {
		return signer.Signature{}, nil, fmt.Errorf("signing: sign: %w", err)
	}

	body := renderEnvelope(action.JSON(), RequestEnvelope{
		Nonce:        nonce,
		Signature:    sig,
		VaultAddress: vault,
		ExpiresAfter: expiresAfter,
	})
	return sig, body, nil
}

// TypedAction is anything the typed-data path accepts: every
// transfer/approval action variant.
type TypedAction interface {
	StructHash() [32]byte
	JSON() []byte
}

// SignTyped runs the typed-data path: struct-hash action per its schema,
// sign under the host-chain domain for chain, and render the wire-JSON
// request body. nonceOrTime is echoed into the envelope as the request's
// nonce field (the typed-data schemas carry their own time/nonce field
// inside the action body).
func SignTyped(key *signer.PrivateKey, chain hltypes.Chain, action TypedAction, nonceOrTime uint64) (signer.Signature, []byte, error) {
	structHash := action.StructHash()
	domainSep := eip712.HostChainDomainSeparator(chain.ChainId())
	signingHash := eip712.SigningHash(domainSep, structHash)

	sig, err := key.Sign(signingHash)
	if err != nil {
		return signer.Signature{}, nil, fmt.Errorf("signing: sign: %w", err)
	}

	body := renderEnvelope(action.JSON(), RequestEnvelope{
		Nonce:        nonceOrTime,
		Signature:    sig,
		VaultAddress: nil,
		ExpiresAfter: nil,
	})
	return sig, body, nil
}
