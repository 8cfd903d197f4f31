// Package keccak wraps Keccak-256, the only hash function the signing core
// depends on besides SHA-256. It uses golang.org/x/crypto/sha3's legacy
// Keccak implementation directly (the pre-NIST-padding variant Ethereum
// standardized on) rather than pulling in a full go-ethereum/crypto
// dependency for one hash call — the same choice the teacher repo makes in
// its own address-derivation helper.
package keccak

import "golang.org/x/crypto/sha3"

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
