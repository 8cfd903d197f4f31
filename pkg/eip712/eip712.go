// Package eip712 implements the EIP-712-style typed-structured-data
// hashing scheme used by the signing core: compile-time type hashes for
// every supported struct schema, domain separators for the fixed Agent
// domain and the per-Chain host domain, and the final signing-hash
// construction. Scalar fields are zero-left-padded to 32 bytes, bool as
// 32-byte 0x00..01, and string/bytes fields as keccak256 of their raw
// bytes — exactly EIP-712's ABI-style struct encoding, without a
// reflection-based encoder walking arbitrary Go structs.
package eip712

import (
	"encoding/binary"

	"github.com/uhyunpark/hyperwire/pkg/hltypes"
	"github.com/uhyunpark/hyperwire/pkg/keccak"
)

// typeHash returns keccak256 of the canonical EIP-712 type string. It is
// called only at package init time, for every schema below, so the
// resulting hashes are effectively compile-time constants.
func typeHash(typeString string) [32]byte {
	return keccak.Sum256([]byte(typeString))
}

var (
	eip712DomainTypeHash = typeHash("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)")
	agentTypeHash        = typeHash("Agent(string source,bytes32 connectionId)")

	usdSendTypeHash = typeHash("HyperliquidTransaction:UsdSend(string hyperliquidChain,string destination,string amount,uint64 time)")
	spotSendTypeHash = typeHash("HyperliquidTransaction:SpotSend(string hyperliquidChain,string destination,string token,string amount,uint64 time)")
	sendAssetTypeHash = typeHash("HyperliquidTransaction:SendAsset(string hyperliquidChain,string destination,string sourceDex,string destinationDex,string token,string amount,string fromSubAccount,uint64 nonce)")
	usdClassTransferTypeHash = typeHash("HyperliquidTransaction:UsdClassTransfer(string hyperliquidChain,string amount,bool toPerp,uint64 nonce)")
	approveAgentTypeHash = typeHash("HyperliquidTransaction:ApproveAgent(string hyperliquidChain,address agentAddress,string agentName,uint64 nonce)")
	approveBuilderFeeTypeHash = typeHash("HyperliquidTransaction:ApproveBuilderFee(string hyperliquidChain,string maxFeeRate,address builder,uint64 nonce)")
	withdrawTypeHash = typeHash("HyperliquidTransaction:Withdraw(string hyperliquidChain,string destination,string amount,uint64 time)")
	convertToMultiSigUserTypeHash = typeHash("HyperliquidTransaction:ConvertToMultiSigUser(string hyperliquidChain,string signers,uint64 nonce)")
)

const agentChainId uint64 = 1337

var zeroAddress [32]byte

// name_hash / version_hash are themselves struct-encoded string fields:
// keccak256 of the raw bytes.
var (
	exchangeNameHash = keccak.Sum256([]byte("Exchange"))
	version1Hash     = keccak.Sum256([]byte("1"))
)

func encodeUint64(v uint64) [32]byte {
	var out [32]byte
	binary.BigEndian.PutUint64(out[24:], v)
	return out
}

func encodeAddress(a [20]byte) [32]byte {
	var out [32]byte
	copy(out[12:], a[:])
	return out
}

func encodeBool(b bool) [32]byte {
	var out [32]byte
	if b {
		out[31] = 1
	}
	return out
}

func domainSeparator(chainId uint64, verifyingContract [32]byte) [32]byte {
	buf := make([]byte, 0, 32*4)
	buf = append(buf, eip712DomainTypeHash[:]...)
	buf = append(buf, exchangeNameHash[:]...)
	buf = append(buf, version1Hash[:]...)
	chainIdBytes := encodeUint64(chainId)
	buf = append(buf, chainIdBytes[:]...)
	buf = append(buf, verifyingContract[:]...)
	return keccak.Sum256(buf)
}

// AgentDomainSeparator is the fixed EIP-712 domain used by the RMP path,
// chain id 1337 regardless of mainnet/testnet.
var AgentDomainSeparator = domainSeparator(agentChainId, zeroAddress)

// HostChainDomainSeparator returns the typed-data domain separator for the
// given host-chain id (42161 mainnet, 421614 testnet).
func HostChainDomainSeparator(chainId uint64) [32]byte {
	return domainSeparator(chainId, zeroAddress)
}

// SigningHash computes keccak256(0x19 ‖ 0x01 ‖ domainSeparator ‖ structHash),
// the final digest that gets signed.
func SigningHash(domainSep, structHash [32]byte) [32]byte {
	buf := make([]byte, 0, 2+32+32)
	buf = append(buf, 0x19, 0x01)
	buf = append(buf, domainSep[:]...)
	buf = append(buf, structHash[:]...)
	return keccak.Sum256(buf)
}

// AgentStructHash computes the struct hash of Agent(string source, bytes32
// connectionId).
func AgentStructHash(source string, connectionId [32]byte) [32]byte {
	sourceHash := keccak.Sum256([]byte(source))
	buf := make([]byte, 0, 32*3)
	buf = append(buf, agentTypeHash[:]...)
	buf = append(buf, sourceHash[:]...)
	buf = append(buf, connectionId[:]...)
	return keccak.Sum256(buf)
}

func encodeStringField(s string) [32]byte { return keccak.Sum256([]byte(s)) }

func hashFields(typeHash [32]byte, fields ...[32]byte) [32]byte {
	buf := make([]byte, 0, 32*(len(fields)+1))
	buf = append(buf, typeHash[:]...)
	for _, f := range fields {
		buf = append(buf, f[:]...)
	}
	return keccak.Sum256(buf)
}

// UsdSend is the field set of HyperliquidTransaction:UsdSend.
// SignatureChainId is carried for the wire JSON only — it selects the
// EIP-712 domain at the pkg/signing layer, but it is not itself one of
// the struct's hashed fields.
type UsdSend struct {
	SignatureChainId string
	HyperliquidChain string
	Destination      string
	Amount           string
	Time             uint64
}

// NewUsdSend populates SignatureChainId/HyperliquidChain from chain.
func NewUsdSend(chain hltypes.Chain, destination, amount string, t uint64) UsdSend {
	return UsdSend{
		SignatureChainId: chain.SignatureChainId(),
		HyperliquidChain: chain.HyperliquidChainName(),
		Destination:      destination,
		Amount:           amount,
		Time:             t,
	}
}

// StructHash computes the EIP-712 struct hash for a UsdSend action.
func (a UsdSend) StructHash() [32]byte {
	return hashFields(usdSendTypeHash,
		encodeStringField(a.HyperliquidChain),
		encodeStringField(a.Destination),
		encodeStringField(a.Amount),
		encodeUint64(a.Time),
	)
}

// SpotSend is the field set of HyperliquidTransaction:SpotSend.
// SignatureChainId is wire-only, see UsdSend.
type SpotSend struct {
	SignatureChainId string
	HyperliquidChain string
	Destination      string
	Token            string
	Amount           string
	Time             uint64
}

// NewSpotSend populates SignatureChainId/HyperliquidChain from chain.
func NewSpotSend(chain hltypes.Chain, destination, token, amount string, t uint64) SpotSend {
	return SpotSend{
		SignatureChainId: chain.SignatureChainId(),
		HyperliquidChain: chain.HyperliquidChainName(),
		Destination:      destination,
		Token:            token,
		Amount:           amount,
		Time:             t,
	}
}

// StructHash computes the EIP-712 struct hash for a SpotSend action.
func (a SpotSend) StructHash() [32]byte {
	return hashFields(spotSendTypeHash,
		encodeStringField(a.HyperliquidChain),
		encodeStringField(a.Destination),
		encodeStringField(a.Token),
		encodeStringField(a.Amount),
		encodeUint64(a.Time),
	)
}

// SendAsset is the field set of HyperliquidTransaction:SendAsset.
// SignatureChainId is wire-only, see UsdSend.
type SendAsset struct {
	SignatureChainId string
	HyperliquidChain string
	Destination      string
	SourceDex        string
	DestinationDex   string
	Token            string
	Amount           string
	FromSubAccount   string
	Nonce            uint64
}

// NewSendAsset populates SignatureChainId/HyperliquidChain from chain.
func NewSendAsset(chain hltypes.Chain, destination, sourceDex, destinationDex, token, amount, fromSubAccount string, nonce uint64) SendAsset {
	return SendAsset{
		SignatureChainId: chain.SignatureChainId(),
		HyperliquidChain: chain.HyperliquidChainName(),
		Destination:      destination,
		SourceDex:        sourceDex,
		DestinationDex:   destinationDex,
		Token:            token,
		Amount:           amount,
		FromSubAccount:   fromSubAccount,
		Nonce:            nonce,
	}
}

// StructHash computes the EIP-712 struct hash for a SendAsset action.
func (a SendAsset) StructHash() [32]byte {
	return hashFields(sendAssetTypeHash,
		encodeStringField(a.HyperliquidChain),
		encodeStringField(a.Destination),
		encodeStringField(a.SourceDex),
		encodeStringField(a.DestinationDex),
		encodeStringField(a.Token),
		encodeStringField(a.Amount),
		encodeStringField(a.FromSubAccount),
		encodeUint64(a.Nonce),
	)
}

// UsdClassTransfer is the field set of HyperliquidTransaction:UsdClassTransfer.
// SignatureChainId is wire-only, see UsdSend.
type UsdClassTransfer struct {
	SignatureChainId string
	HyperliquidChain string
	Amount           string
	ToPerp           bool
	Nonce            uint64
}

// NewUsdClassTransfer populates SignatureChainId/HyperliquidChain from chain.
func NewUsdClassTransfer(chain hltypes.Chain, amount string, toPerp bool, nonce uint64) UsdClassTransfer {
	return UsdClassTransfer{
		SignatureChainId: chain.SignatureChainId(),
		HyperliquidChain: chain.HyperliquidChainName(),
		Amount:           amount,
		ToPerp:           toPerp,
		Nonce:            nonce,
	}
}

// StructHash computes the EIP-712 struct hash for a UsdClassTransfer action.
func (a UsdClassTransfer) StructHash() [32]byte {
	return hashFields(usdClassTransferTypeHash,
		encodeStringField(a.HyperliquidChain),
		encodeStringField(a.Amount),
		encodeBool(a.ToPerp),
		encodeUint64(a.Nonce),
	)
}

// ApproveAgent is the field set of HyperliquidTransaction:ApproveAgent.
// SignatureChainId is wire-only, see UsdSend.
type ApproveAgent struct {
	SignatureChainId string
	HyperliquidChain string
	AgentAddress     [20]byte
	AgentName        string
	Nonce            uint64
}

// NewApproveAgent populates SignatureChainId/HyperliquidChain from chain.
func NewApproveAgent(chain hltypes.Chain, agentAddress [20]byte, agentName string, nonce uint64) ApproveAgent {
	return ApproveAgent{
		SignatureChainId: chain.SignatureChainId(),
		HyperliquidChain: chain.HyperliquidChainName(),
		AgentAddress:     agentAddress,
		AgentName:        agentName,
		Nonce:            nonce,
	}
}

// StructHash computes the EIP-712 struct hash for an ApproveAgent action.
func (a ApproveAgent) StructHash() [32]byte {
	return hashFields(approveAgentTypeHash,
		encodeStringField(a.HyperliquidChain),
		encodeAddress(a.AgentAddress),
		encodeStringField(a.AgentName),
		encodeUint64(a.Nonce),
	)
}

// ApproveBuilderFee is the field set of HyperliquidTransaction:ApproveBuilderFee.
// SignatureChainId is wire-only, see UsdSend.
type ApproveBuilderFee struct {
	SignatureChainId string
	HyperliquidChain string
	MaxFeeRate       string
	Builder          [20]byte
	Nonce            uint64
}

// NewApproveBuilderFee populates SignatureChainId/HyperliquidChain from chain.
func NewApproveBuilderFee(chain hltypes.Chain, maxFeeRate string, builder [20]byte, nonce uint64) ApproveBuilderFee {
	return ApproveBuilderFee{
		SignatureChainId: chain.SignatureChainId(),
		HyperliquidChain: chain.HyperliquidChainName(),
		MaxFeeRate:       maxFeeRate,
		Builder:          builder,
		Nonce:            nonce,
	}
}

// StructHash computes the EIP-712 struct hash for an ApproveBuilderFee action.
func (a ApproveBuilderFee) StructHash() [32]byte {
	return hashFields(approveBuilderFeeTypeHash,
		encodeStringField(a.HyperliquidChain),
		encodeStringField(a.MaxFeeRate),
		encodeAddress(a.Builder),
		encodeUint64(a.Nonce),
	)
}

// Withdraw is the field set of HyperliquidTransaction:Withdraw.
// SignatureChainId is wire-only, see UsdSend.
type Withdraw struct {
	SignatureChainId string
	HyperliquidChain string
	Destination      string
	Amount           string
	Time             uint64
}

// NewWithdraw populates SignatureChainId/HyperliquidChain from chain.
func NewWithdraw(chain hltypes.Chain, destination, amount string, t uint64) Withdraw {
	return Withdraw{
		SignatureChainId: chain.SignatureChainId(),
		HyperliquidChain: chain.HyperliquidChainName(),
		Destination:      destination,
		Amount:           amount,
		Time:             t,
	}
}

// StructHash computes the EIP-712 struct hash for a Withdraw action.
func (a Withdraw) StructHash() [32]byte {
	return hashFields(withdrawTypeHash,
		encodeStringField(a.HyperliquidChain),
		encodeStringField(a.Destination),
		encodeStringField(a.Amount),
		encodeUint64(a.Time),
	)
}

// ConvertToMultiSigUser is the field set of
// HyperliquidTransaction:ConvertToMultiSigUser. SignatureChainId is
// wire-only, see UsdSend.
type ConvertToMultiSigUser struct {
	SignatureChainId string
	HyperliquidChain string
	Signers          string
	Nonce            uint64
}

// NewConvertToMultiSigUser populates SignatureChainId/HyperliquidChain from chain.
func NewConvertToMultiSigUser(chain hltypes.Chain, signers string, nonce uint64) ConvertToMultiSigUser {
	return ConvertToMultiSigUser{
		SignatureChainId: chain.SignatureChainId(),
		HyperliquidChain: chain.HyperliquidChainName(),
		Signers:          signers,
		Nonce:            nonce,
	}
}

// StructHash computes the EIP-712 struct hash for a ConvertToMultiSigUser
// action.
func (a ConvertToMultiSigUser) StructHash() [32]byte {
	return hashFields(convertToMultiSigUserTypeHash,
		encodeStringField(a.HyperliquidChain),
		encodeStringField(a.Signers),
		encodeUint64(a.Nonce),
	)
}
