package signer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/uhyunpark/hyperwire/pkg/curve"
	"github.com/uhyunpark/hyperwire/pkg/hlerrors"
	"github.com/uhyunpark/hyperwire/pkg/keccak"
)

func TestGenerateAndAddress(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	addr := key.Address()
	var zero [20]byte
	if addr == zero {
		t.Fatal("generated zero address")
	}
}

func TestNewRejectsZeroAndOutOfRange(t *testing.T) {
	var zero [32]byte
	if _, err := New(zero); !errors.Is(err, hlerrors.ErrIdentityElement) {
		t.Fatalf("zero private key: got %v, want ErrIdentityElement", err)
	}

	var tooBig [32]byte
	for i := range tooBig {
		tooBig[i] = 0xff
	}
	if _, err := New(tooBig); !errors.Is(err, hlerrors.ErrIdentityElement) {
		t.Fatalf("out-of-range private key: got %v, want ErrIdentityElement", err)
	}
}

func TestSignIsDeterministic(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	hash := keccak.Sum256([]byte("deterministic signing"))

	sig1, err := key.Sign(hash)
	if err != nil {
		t.Fatal(err)
	}
	sig2, err := key.Sign(hash)
	if err != nil {
		t.Fatal(err)
	}
	if sig1.Bytes() != sig2.Bytes() {
		t.Fatal("signing the same hash twice produced different signatures")
	}
}

func TestSignatureIsLowS(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	hash := keccak.Sum256([]byte("low-s check"))
	sig, err := key.Sign(hash)
	if err != nil {
		t.Fatal(err)
	}
	s := curve.ScalarFromBeBytes(sig.S)
	if s.Cmp(curve.ScalarFromUint256(curve.HalfN)) > 0 {
		t.Fatalf("s = %x exceeds n/2, not low-S canonical", sig.S)
	}
	if sig.V > 1 {
		t.Fatalf("recovery id out of range: %d", sig.V)
	}
}

func TestToEthBytesOffsetsRecoveryByte(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	hash := keccak.Sum256([]byte("eth byte form"))
	sig, err := key.Sign(hash)
	if err != nil {
		t.Fatal(err)
	}
	raw := sig.Bytes()
	eth := sig.ToEthBytes()
	if eth[64] != raw[64]+27 {
		t.Fatalf("ToEthBytes v = %d, want %d", eth[64], raw[64]+27)
	}
	if !bytes.Equal(eth[:64], raw[:64]) {
		t.Fatal("ToEthBytes must leave r||s unchanged")
	}
	if eth[64] != 27 && eth[64] != 28 {
		t.Fatalf("ToEthBytes v = %d, want 27 or 28", eth[64])
	}
}

func TestSignAndRecoverAddress(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	message := []byte("hyperwire signing core")
	sig, err := key.SignMessage(message)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	hash := keccak.Sum256(message)
	recovered, err := RecoverAddress(hash, sig)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if recovered != key.Address() {
		t.Fatalf("recovered address = %x, want %x", recovered, key.Address())
	}
}

func TestRecoverAddressRejectsTamperedSignature(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	message := []byte("tamper test")
	sig, err := key.SignMessage(message)
	if err != nil {
		t.Fatal(err)
	}
	hash := keccak.Sum256(message)

	tampered := sig
	tampered.S[31] ^= 0x01

	recovered, err := RecoverAddress(hash, tampered)
	if err == nil && recovered == key.Address() {
		t.Fatal("tampered signature must not recover the original address")
	}
}

func TestPublicKeyAffineMatchesAddress(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	x, y := key.PublicKeyAffine()
	var uncompressed [64]byte
	copy(uncompressed[0:32], x[:])
	copy(uncompressed[32:64], y[:])
	addrHash := keccak.Sum256(uncompressed[:])

	addr := key.Address()
	if !bytes.Equal(addr[:], addrHash[12:]) {
		t.Fatal("address does not match keccak256 of uncompressed public key")
	}
}
