// Package signer implements deterministic ECDSA signing and public-key
// recovery over secp256k1, matching Ethereum's signature conventions
// (low-S canonicalization, a single recovery byte appended to R||S).
// Nonce generation follows RFC 6979 so that signing the same message with
// the same key always produces the same signature, with no dependency on
// an external randomness source at sign time.
package signer

import (
	"crypto/rand"
	"fmt"

	"github.com/uhyunpark/hyperwire/pkg/curve"
	"github.com/uhyunpark/hyperwire/pkg/field"
	"github.com/uhyunpark/hyperwire/pkg/hlerrors"
	"github.com/uhyunpark/hyperwire/pkg/keccak"
)

// Signature is a 65-byte Ethereum-style ECDSA signature: 32-byte r, 32-byte
// s, and a one-byte recovery id in {0, 1} (not yet offset by 27).
type Signature struct {
	R [32]byte
	S [32]byte
	V byte
}

// Bytes renders the signature as r||s||v, with v in {0, 1}.
func (sig Signature) Bytes() [65]byte {
	var out [65]byte
	copy(out[0:32], sig.R[:])
	copy(out[32:64], sig.S[:])
	out[64] = sig.V
	return out
}

// ToEthBytes renders the signature as Ethereum's r||s||v wire form, with v
// offset to {27, 28}.
func (sig Signature) ToEthBytes() [65]byte {
	out := sig.Bytes()
	out[64] += 27
	return out
}

// PrivateKey holds a secp256k1 scalar and its derived public point, ready to
// sign message hashes.
type PrivateKey struct {
	d       curve.Scalar
	pub     curve.Point
	address [20]byte
}

// New constructs a PrivateKey from a 32-byte big-endian scalar. It rejects
// d = 0 and d >= n, both as hlerrors.ErrIdentityElement.
func New(d [32]byte) (*PrivateKey, error) {
	s := curve.ScalarFromBeBytes(d)
	if s.IsZero() {
		return nil, hlerrors.ErrIdentityElement
	}
	if s.ToBeBytes() != d {
		return nil, hlerrors.ErrIdentityElement
	}
	pub, err := curve.ScalarMultGeneratorGLV(s)
	if err != nil {
		return nil, fmt.Errorf("signer: derive public key: %w", err)
	}
	return newFromParts(s, pub), nil
}

// Generate creates a new private key using a cryptographically secure
// random source, retrying on the (astronomically unlikely) chance of a
// zero or out-of-range draw.
func Generate() (*PrivateKey, error) {
	for {
		var b [32]byte
		if _, err := rand.Read(b[:]); err != nil {
			return nil, fmt.Errorf("signer: generate key: %w", err)
		}
		key, err := New(b)
		if err == nil {
			return key, nil
		}
	}
}

func newFromParts(d curve.Scalar, pub curve.Point) *PrivateKey {
	x, y, _ := pub.ToAffine()
	xb, yb := x.ToBeBytes(), y.ToBeBytes()
	var uncompressed [64]byte
	copy(uncompressed[0:32], xb[:])
	copy(uncompressed[32:64], yb[:])
	addrHash := keccak.Sum256(uncompressed[:])
	var addr [20]byte
	copy(addr[:], addrHash[12:])
	return &PrivateKey{d: d, pub: pub, address: addr}
}

// Address returns the 20-byte Ethereum-style address derived from the
// public key: the low 20 bytes of keccak256(uncompressed_pubkey_xy).
func (k *PrivateKey) Address() [20]byte { return k.address }

// PublicKeyAffine returns the public key's affine (x, y) coordinates as
// 32-byte big-endian buffers.
func (k *PrivateKey) PublicKeyAffine() (x, y [32]byte) {
	fx, fy, _ := k.pub.ToAffine()
	return fx.ToBeBytes(), fy.ToBeBytes()
}

// Sign produces a deterministic, low-S-canonicalized signature over a
// 32-byte message hash, following RFC 6979 algorithm 4.29 as specialized by
// Ethereum's signing convention (low-S, recovery id in {0,1}). It returns
// hlerrors.ErrIdentityElement when r or s comes out zero.
func (k *PrivateKey) Sign(hash [32]byte) (Signature, error) {
	privBytes := k.d.ToBeBytes()
	for iteration := 0; ; iteration++ {
		kNonce := nonceRFC6979(privBytes, hash, iteration)

		R, err := curve.ScalarMultGeneratorGLV(kNonce)
		if err != nil {
			continue
		}
		rx, ry, ok := R.ToAffine()
		if !ok {
			continue
		}
		rBytes := rx.ToBeBytes()
		r := curve.ScalarFromBeBytes(rBytes)
		if r.IsZero() {
			return Signature{}, hlerrors.ErrIdentityElement
		}

		e := curve.ScalarFromBeBytes(hash)
		kInv := kNonce.Invert()
		s := kInv.Multiply(r.Multiply(k.d).Add(e))
		if s.IsZero() {
			return Signature{}, hlerrors.ErrIdentityElement
		}

		yParity := ry.IsOdd()
		if s.Cmp(curve.ScalarFromUint256(curve.HalfN)) > 0 {
			s = s.Negate()
			yParity = !yParity
		}

		var v byte
		if yParity {
			v = 1
		}
		return Signature{R: rBytes, S: s.ToBeBytes(), V: v}, nil
	}
}

// SignMessage hashes message with Keccak-256 before signing — the path
// used whenever the caller has raw bytes rather than a precomputed digest.
func (k *PrivateKey) SignMessage(message []byte) (Signature, error) {
	return k.Sign(keccak.Sum256(message))
}

// RecoverAddress recovers the 20-byte address of the key that produced sig
// over hash, without needing the public key. It returns
// hlerrors.ErrInvalidMessageHash when hash reduces to zero,
// hlerrors.ErrNonCanonical when r or s is zero or out of range, and
// hlerrors.ErrCurveDecodeFailure when r does not correspond to a point on
// the curve.
func RecoverAddress(hash [32]byte, sig Signature) ([20]byte, error) {
	var zero [20]byte

	e := curve.ScalarFromBeBytes(hash)
	if e.IsZero() {
		return zero, hlerrors.ErrInvalidMessageHash
	}
	r := curve.ScalarFromBeBytes(sig.R)
	s := curve.ScalarFromBeBytes(sig.S)
	if r.IsZero() || r.ToBeBytes() != sig.R {
		return zero, hlerrors.ErrNonCanonical
	}
	if s.IsZero() || s.ToBeBytes() != sig.S {
		return zero, hlerrors.ErrNonCanonical
	}

	fx := field.FromBeBytes(r.ToBeBytes())
	R, ok := curve.PointFromX(fx, sig.V&1 == 1)
	if !ok {
		return zero, hlerrors.ErrCurveDecodeFailure
	}

	rInv := r.Invert()
	negE := e.Negate()

	u1 := negE.Multiply(rInv)
	u2 := s.Multiply(rInv)

	var u1G curve.Point
	if u1.IsZero() {
		u1G = curve.Identity
	} else {
		var err error
		u1G, err = curve.ScalarMultGeneratorGLV(u1)
		if err != nil {
			return zero, err
		}
	}
	u2R := R.ScalarMult(u2)
	Q := u1G.Add(u2R)
	if Q.IsIdentity() {
		return zero, hlerrors.ErrIdentityElement
	}

	qx, qy, ok := Q.ToAffine()
	if !ok {
		return zero, hlerrors.ErrIdentityElement
	}
	xb, yb := qx.ToBeBytes(), qy.ToBeBytes()
	var uncompressed [64]byte
	copy(uncompressed[0:32], xb[:])
	copy(uncompressed[32:64], yb[:])
	addrHash := keccak.Sum256(uncompressed[:])
	var addr [20]byte
	copy(addr[:], addrHash[12:])
	return addr, nil
}
