package signer

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/uhyunpark/hyperwire/pkg/curve"
)

// nonceRFC6979 derives a deterministic nonce k in [1, n-1] from the private
// key and message hash using the HMAC-DRBG construction of RFC 6979 section
// 3.2, specialized to SHA-256 and the secp256k1 order. iteration selects the
// i-th candidate in the deterministic sequence; Sign moves to the next one
// only when k*G for a candidate yields no affine point.
func nonceRFC6979(privKey [32]byte, hash [32]byte, iteration int) curve.Scalar {
	v := make([]byte, 32)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, 32)

	mac := hmac.New(sha256.New, k)
	mac.Write(v)
	mac.Write([]byte{0x00})
	mac.Write(privKey[:])
	mac.Write(hash[:])
	k = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	v = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	mac.Write([]byte{0x01})
	mac.Write(privKey[:])
	mac.Write(hash[:])
	k = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	v = mac.Sum(nil)

	for attempt := 0; ; attempt++ {
		mac = hmac.New(sha256.New, k)
		mac.Write(v)
		v = mac.Sum(nil)

		var candidate [32]byte
		copy(candidate[:], v)
		s := curve.ScalarFromBeBytes(candidate)

		if attempt >= iteration && !s.IsZero() && isCandidateInRange(candidate) {
			return s
		}

		mac = hmac.New(sha256.New, k)
		mac.Write(v)
		mac.Write([]byte{0x00})
		k = mac.Sum(nil)

		mac = hmac.New(sha256.New, k)
		mac.Write(v)
		v = mac.Sum(nil)
	}
}

// isCandidateInRange reports whether the raw 32-byte candidate, read as an
// unsigned integer, is below the group order without reduction — RFC 6979
// requires rejecting an out-of-range candidate rather than reducing it.
func isCandidateInRange(b [32]byte) bool {
	s := curve.ScalarFromBeBytes(b)
	return s.ToBeBytes() == b
}
