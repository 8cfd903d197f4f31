// GLV endomorphism accelerator for scalar multiplication of the generator.
// secp256k1 admits an efficiently computable endomorphism
// psi(x, y) = (beta*x, y) satisfying psi(P) = lambda*P for a cube root of
// unity lambda modulo n (and beta modulo p). Any scalar k can be split as
// k = k1 + k2*lambda (mod n) with |k1|, |k2| < 2^128 using a short basis of
// the lattice {(x, y): x + y*lambda == 0 (mod n)}, found once via the
// extended Euclidean algorithm and hardcoded below. k*G then reduces to
// k1*G + k2*psi(G), each a half-width scalar multiplication, computed with
// the same windowed table technique as the baseline routine.
package curve

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/uhyunpark/hyperwire/pkg/field"
	"github.com/uhyunpark/hyperwire/pkg/hlerrors"
)

var errIdentity = hlerrors.ErrIdentityElement

// lambda is a cube root of unity mod n; beta is its companion cube root of
// unity mod p, defining psi(x, y) = (beta*x, y) = lambda*(x, y). Both are
// exported for the testable property lambda^3 == 1 (mod n), beta^3 == 1
// (mod p), and psi(G) == lambda*G.
const lambdaHex = "5363ad4cc05c30e0a5261c028812645a122e22ea20816678df02967c1b23bd72"
const betaHex = "7ae96a2b657c07106e64479eac3434e99cf0497512f58995c1396c28719501ee"

// Lambda is the GLV cube root of unity modulo n.
var Lambda = ScalarFromBeBytes(hexTo32(lambdaHex))

// Beta is the GLV cube root of unity modulo p.
var Beta = field.FromBeBytes(hexTo32(betaHex))

// Lattice basis vectors (a1, b1) and (a2, b2) of {(x,y): x+y*lambda == 0 mod n},
// found via the extended Euclidean algorithm on (n, lambda) and stopping at
// the first remainder below sqrt(n); these are the standard secp256k1 GLV
// constants.
var (
	glvA1 = mustBig("3086d221a7d46bcde86c90e49284eb15")
	glvB1 = new(big.Int).Neg(mustBig("e4437ed6010e88286f547fa90abfe4c3"))
	glvA2 = mustBig("114ca50f7a8e2f3f657c1108d9d44cfd8")
	glvB2 = mustBig("3086d221a7d46bcde86c90e49284eb15")
)

func mustBig(hexStr string) *big.Int {
	b, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("curve: bad constant " + hexStr)
	}
	return b
}

// roundDiv computes round(num/den) using exact integer arithmetic,
// rounding halves away from zero.
func roundDiv(num, den *big.Int) *big.Int {
	sign := 1
	if (num.Sign() < 0) != (den.Sign() < 0) {
		sign = -1
	}
	n := new(big.Int).Abs(num)
	d := new(big.Int).Abs(den)
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	twice := new(big.Int).Lsh(r, 1)
	if twice.Cmp(d) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	return q.Mul(q, big.NewInt(int64(sign)))
}

// glvSplit decomposes k (0 <= k < n) into k1, k2 with k = k1 + k2*lambda
// (mod n), each of absolute value below 2^128, returning their magnitudes
// and sign bits.
func glvSplit(k Scalar) (k1Mag uint256.Int, k1Neg bool, k2Mag uint256.Int, k2Neg bool) {
	kBig := k.v.ToBig()
	c1 := roundDiv(new(big.Int).Mul(glvB2, kBig), bigN)
	c2 := roundDiv(new(big.Int).Neg(new(big.Int).Mul(glvB1, kBig)), bigN)

	k1 := new(big.Int).Sub(kBig, new(big.Int).Mul(c1, glvA1))
	k1.Sub(k1, new(big.Int).Mul(c2, glvA2))

	k2 := new(big.Int).Neg(new(big.Int).Mul(c1, glvB1))
	k2.Sub(k2, new(big.Int).Mul(c2, glvB2))

	k1Neg = k1.Sign() < 0
	k2Neg = k2.Sign() < 0
	var m1, m2 uint256.Int
	m1.SetFromBig(new(big.Int).Abs(k1))
	m2.SetFromBig(new(big.Int).Abs(k2))
	return m1, k1Neg, m2, k2Neg
}

// psiTable holds {psi(0*G), psi(1*G), ..., psi(15*G)} = {0, lambda*G, ...},
// derived from baselineTableG via the endomorphism rather than by a second
// round of scalar multiplication.
var psiTable [16]Point

func init() {
	for i := 0; i < 16; i++ {
		p := baselineTableG[i]
		psiTable[i] = Point{X: Beta.Multiply(p.X), Y: p.Y, Z: p.Z}
	}
}

// negateIf returns -p if flag is true, p otherwise, using branch-free
// field negation on the Y coordinate.
func negateIf(p Point, flag bool) Point {
	return Point{X: p.X, Y: choose(p.Y, p.Y.Negate(1), flag), Z: p.Z}
}

// ScalarMultGeneratorGLV computes k*G using the GLV endomorphism
// accelerator. For every valid nonzero scalar it produces the same
// projective-equivalent point as ScalarMultGenerator. It rejects the zero
// scalar with the same error.
func ScalarMultGeneratorGLV(k Scalar) (Point, error) {
	if k.IsZero() {
		return Identity, errIdentity
	}
	m1, neg1, m2, neg2 := glvSplit(k)

	b1 := m1.Bytes32()
	b2 := m2.Bytes32()
	// m1, m2 < 2^128: only the low 16 bytes (32 nibbles) carry content.
	acc := Identity
	for i := 16; i < 32; i++ {
		n1hi := int(b1[i] >> 4)
		n1lo := int(b1[i] & 0x0f)
		n2hi := int(b2[i] >> 4)
		n2lo := int(b2[i] & 0x0f)

		acc = acc.Double().Double().Double().Double()
		t1 := negateIf(selectTable(&baselineTableG, n1hi), neg1)
		t2 := negateIf(selectTable(&psiTable, n2hi), neg2)
		acc = acc.Add(t1).Add(t2)

		acc = acc.Double().Double().Double().Double()
		t1 = negateIf(selectTable(&baselineTableG, n1lo), neg1)
		t2 = negateIf(selectTable(&psiTable, n2lo), neg2)
		acc = acc.Add(t1).Add(t2)
	}
	if acc.IsIdentity() {
		return Identity, errIdentity
	}
	return acc, nil
}
