// Package field implements arithmetic over Fp for the secp256k1 base field
// p = 2^256 - 2^32 - 977. Elements are stored as a 256-bit unsigned integer
// (github.com/holiman/uint256.Int) kept fully reduced after every
// operation. The public operation set mirrors the lazy-carry, five-limb
// scheme established secp256k1 libraries use internally
// (from_be_bytes/to_be_bytes, add/sub/negate, multiply/square/double,
// invert, sqrt, conditional_swap, normalize/normalize_weak); this module
// keeps every value canonically reduced rather than carrying lazy,
// unreduced magnitudes between operations, which makes Normalize and
// NormalizeWeak no-ops here — see DESIGN.md for the rationale.
package field

import (
	"github.com/holiman/uint256"
)

// P is the secp256k1 base field prime, 2^256 - 2^32 - 977.
var P = uint256.MustFromHex("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

// pMinus2 and pPlus1Over4 are the fixed Fermat exponents for Invert
// (a^(p-2) = a^-1) and Sqrt (a^((p+1)/4), valid since p ≡ 3 mod 4),
// big-endian, consumed bit by bit by pow.
var (
	pMinus2     = [32]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe, 0xff, 0xff, 0xfc, 0x2d}
	pPlus1Over4 = [32]byte{0x3f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xbf, 0xff, 0xff, 0x0c}
)

// Element is a value in Fp, always held in canonical [0, P) form.
type Element struct {
	v uint256.Int
}

// Zero is the additive identity.
var Zero = Element{}

// One is the multiplicative identity.
var One = Element{v: *uint256.NewInt(1)}

// FromUint64 lifts a small integer into Fp.
func FromUint64(n uint64) Element {
	return Element{v: *uint256.NewInt(n)}
}

// FromBeBytes interprets a 32-byte big-endian buffer as an integer and
// reduces it modulo P.
func FromBeBytes(b [32]byte) Element {
	var v uint256.Int
	v.SetBytes(b[:])
	v.Mod(&v, P)
	return Element{v: v}
}

// ToBeBytes renders e as 32 big-endian bytes. The caller must have ensured
// e is normalized (always true for values produced by this package).
func (e Element) ToBeBytes() [32]byte {
	return e.v.Bytes32()
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.v.IsZero() }

// IsOdd reports whether e, viewed as an integer in [0, P), is odd.
func (e Element) IsOdd() bool { return e.v.Bit(0) == 1 }

// Normalize is a no-op: values are always stored canonically reduced.
func (e Element) Normalize() Element { return e }

// NormalizeWeak is a no-op for the same reason as Normalize.
func (e Element) NormalizeWeak() Element { return e }

// EqualAfterNormalize compares two elements; since both are already
// canonical this is a direct comparison.
func (a Element) EqualAfterNormalize(b Element) bool {
	return a.v.Eq(&b.v)
}

// Add returns a + b mod P.
func (a Element) Add(b Element) Element {
	var r uint256.Int
	r.AddMod(&a.v, &b.v, P)
	return Element{v: r}
}

// Double returns 2*a mod P.
func (a Element) Double() Element {
	return a.Add(a)
}

// Negate returns -a mod P. The magnitude parameter exists for API parity
// with lazy-carry field implementations that must track how many multiples
// of P to add back; it has no effect here since a is already canonical.
func (a Element) Negate(magnitude int) Element {
	if a.v.IsZero() {
		return Zero
	}
	var r uint256.Int
	r.Sub(P, &a.v)
	return Element{v: r}
}

// Sub returns a - b mod P.
func (a Element) Sub(b Element) Element {
	return a.Add(b.Negate(1))
}

// Multiply returns a * b mod P.
func (a Element) Multiply(b Element) Element {
	var r uint256.Int
	r.MulMod(&a.v, &b.v, P)
	return Element{v: r}
}

// Square returns a * a mod P.
func (a Element) Square() Element {
	return a.Multiply(a)
}

// MultiplySmall returns a * n mod P for a small non-negative integer n.
func (a Element) MultiplySmall(n uint64) Element {
	return a.Multiply(FromUint64(n))
}

// pow raises base to the fixed public exponent given as 32 big-endian
// bytes, by binary square-and-multiply entirely over field.Element
// operations. The exponent is a compile-time constant identical on every
// call, so the fixed sequence of squarings and multiplies carries no
// data-dependent branch on the secret input base.
func pow(base Element, exponent [32]byte) Element {
	result := One
	for _, byt := range exponent {
		for bit := 7; bit >= 0; bit-- {
			result = result.Square()
			if byt&(1<<uint(bit)) != 0 {
				result = result.Multiply(base)
			}
		}
	}
	return result
}

// Invert returns a^-1 mod P via Fermat's little theorem (a^(p-2)), computed
// by the fixed addition chain in pow rather than big.Int's extended
// Euclidean algorithm. a must be nonzero; Invert(0) returns Zero.
func (a Element) Invert() Element {
	if a.v.IsZero() {
		return Zero
	}
	return pow(a, pMinus2)
}

// Sqrt returns (sqrt(a), true) if a is a quadratic residue mod P, using
// a^((P+1)/4) mod P (valid since P ≡ 3 mod 4), and (Zero, false) otherwise.
func (a Element) Sqrt() (Element, bool) {
	if a.v.IsZero() {
		return Zero, true
	}
	cand := pow(a, pPlus1Over4)
	if cand.Square().EqualAfterNormalize(a) {
		return cand, true
	}
	return Zero, false
}

// ConditionalSwap swaps a and b (by value) when flag is true, without a
// data-dependent branch on the contents of a or b.
func ConditionalSwap(a, b *Element, flag bool) {
	var mask uint64
	if flag {
		mask = ^uint64(0)
	}
	for i := 0; i < 4; i++ {
		ai, bi := a.v[i], b.v[i]
		x := (ai ^ bi) & mask
		a.v[i] = ai ^ x
		b.v[i] = bi ^ x
	}
}

// String renders e in hex, for debugging and test failure messages.
func (e Element) String() string { return e.v.Hex() }
