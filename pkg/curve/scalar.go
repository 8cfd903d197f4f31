package curve

import (
	"github.com/holiman/uint256"
)

// N is the secp256k1 group order.
var N = uint256.MustFromHex("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

var bigN = N.ToBig()

// HalfN is n/2, used for low-S canonicalization by the signer package.
var HalfN = func() *uint256.Int {
	h := new(uint256.Int).Rsh(N, 1)
	return h
}()

// Scalar is an element of Z/nZ, always held canonically reduced.
type Scalar struct {
	v uint256.Int
}

// ScalarZero is the additive identity.
var ScalarZero = Scalar{}

// ScalarFromUint64 lifts a small integer into Z/nZ.
func ScalarFromUint64(u uint64) Scalar {
	return Scalar{v: *uint256.NewInt(u)}
}

// ScalarFromBeBytes reduces a 32-byte big-endian buffer modulo n.
func ScalarFromBeBytes(b [32]byte) Scalar {
	var v uint256.Int
	v.SetBytes(b[:])
	v.Mod(&v, N)
	return Scalar{v: v}
}

// ScalarFromUint256 reduces a full-width integer modulo n.
func ScalarFromUint256(x *uint256.Int) Scalar {
	var v uint256.Int
	v.Mod(x, N)
	return Scalar{v: v}
}

// IsZero reports whether s is zero.
func (s Scalar) IsZero() bool { return s.v.IsZero() }

// IsOdd reports whether s is odd.
func (s Scalar) IsOdd() bool { return s.v.Bit(0) == 1 }

// Cmp compares s and o as unsigned 256-bit integers.
func (s Scalar) Cmp(o Scalar) int { return s.v.Cmp(&o.v) }

// ToBeBytes renders s as 32 big-endian bytes.
func (s Scalar) ToBeBytes() [32]byte { return s.v.Bytes32() }

// Uint256 exposes the underlying value for callers (e.g. the GLV splitter)
// that need full-width arithmetic outside Z/nZ.
func (s Scalar) Uint256() uint256.Int { return s.v }

// Add returns s + o mod n.
func (s Scalar) Add(o Scalar) Scalar {
	var r uint256.Int
	r.AddMod(&s.v, &o.v, N)
	return Scalar{v: r}
}

// Negate returns -s mod n.
func (s Scalar) Negate() Scalar {
	if s.v.IsZero() {
		return ScalarZero
	}
	var r uint256.Int
	r.Sub(N, &s.v)
	return Scalar{v: r}
}

// Sub returns s - o mod n.
func (s Scalar) Sub(o Scalar) Scalar { return s.Add(o.Negate()) }

// Multiply returns s * o mod n.
func (s Scalar) Multiply(o Scalar) Scalar {
	var r uint256.Int
	r.MulMod(&s.v, &o.v, N)
	return Scalar{v: r}
}

// Square returns s * s mod n.
func (s Scalar) Square() Scalar {
	return s.Multiply(s)
}

// nMinus2 is n-2, the fixed Fermat exponent for Invert (s^(n-2) = s^-1),
// big-endian, consumed bit by bit by scalarPow.
var nMinus2 = [32]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe, 0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b, 0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x3f}

// scalarPow raises base to the fixed public exponent given as 32
// big-endian bytes, by binary square-and-multiply entirely over Scalar
// operations.
func scalarPow(base Scalar, exponent [32]byte) Scalar {
	result := ScalarFromUint64(1)
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

// Invert returns s^-1 mod n via Fermat's little theorem (s^(n-2)), computed
// by the fixed addition chain in scalarPow rather than big.Int's extended
// Euclidean algorithm. Invert(0) is zero.
func (s Scalar) Invert() Scalar {
	if s.v.IsZero() {
		return ScalarZero
	}
	return scalarPow(s, nMinus2)
}
