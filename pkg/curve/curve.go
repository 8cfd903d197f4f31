// Package curve implements point arithmetic for the Koblitz curve
// y^2 = x^3 + 7 over the secp256k1 base field, in projective (X, Y, Z)
// coordinates representing affine (X/Z, Y/Z). Addition uses the complete
// formulas of Renes, Costello and Batina for curves with a=0, so the same
// routine handles doubling, adding the identity, and adding a point to
// itself without a separate case split. A windowed scalar-multiplication
// routine for the generator is provided in two forms: a baseline routine
// and a GLV-endomorphism accelerator (see glv.go) that is a strict
// drop-in replacement for it.
package curve

import (
	"encoding/hex"

	"github.com/uhyunpark/hyperwire/pkg/field"
	"github.com/uhyunpark/hyperwire/pkg/hlerrors"
)

// curveB3 is 3*b, the constant the complete addition formula multiplies by.
var curveB3 = field.FromUint64(7).MultiplySmall(3)

// Point is a projective point on the curve. The identity is represented by
// Z == 0.
type Point struct {
	X, Y, Z field.Element
}

// Identity is the point at infinity.
var Identity = Point{X: field.Zero, Y: field.One, Z: field.Zero}

const gxHex = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
const gyHex = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"

var gx = field.FromBeBytes(hexTo32(gxHex))
var gy = field.FromBeBytes(hexTo32(gyHex))

// G is the curve's standard generator.
var G = Point{X: gx, Y: gy, Z: field.One}

func hexTo32(s string) [32]byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	var out [32]byte
	copy(out[32-len(b):], b)
	return out
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool { return p.Z.IsZero() }

// Negate returns -p.
func (p Point) Negate() Point {
	return Point{X: p.X, Y: p.Y.Negate(1), Z: p.Z}
}

// choose returns a if flag is false, b if flag is true, without branching
// on flag (it flows through field.ConditionalSwap's mask-based swap).
func choose(a, b field.Element, flag bool) field.Element {
	x, y := a, b
	field.ConditionalSwap(&x, &y, flag)
	return x
}

// ConditionalMove sets *p = q when flag is true, leaving it unchanged
// otherwise, without a data-dependent branch.
func ConditionalMove(p *Point, q Point, flag bool) {
	p.X = choose(p.X, q.X, flag)
	p.Y = choose(p.Y, q.Y, flag)
	p.Z = choose(p.Z, q.Z, flag)
}

// Double returns 2p using the complete addition formula.
func (p Point) Double() Point {
	return p.Add(p)
}

// Add returns p+q using the complete addition formula for short
// Weierstrass curves with a=0 (Algorithm 7, Renes-Costello-Batina). It
// handles p==q, either operand at infinity, and p==-q without branching
// on those cases.
func (p Point) Add(q Point) Point {
	x1, y1, z1 := p.X, p.Y, p.Z
	x2, y2, z2 := q.X, q.Y, q.Z

	t0 := x1.Multiply(x2)
	t1 := y1.Multiply(y2)
	t2 := z1.Multiply(z2)
	t3 := x1.Add(y1)
	t4 := x2.Add(y2)
	t3 = t3.Multiply(t4)
	t4 = t0.Add(t1)
	t3 = t3.Sub(t4)
	t4 = y1.Add(z1)
	x3 := y2.Add(z2)
	t4 = t4.Multiply(x3)
	x3 = t1.Add(t2)
	t4 = t4.Sub(x3)
	x3 = x1.Add(z1)
	y3 := x2.Add(z2)
	x3 = x3.Multiply(y3)
	y3 = t0.Add(t2)
	y3 = x3.Sub(y3)
	x3 = t0.Add(t0)
	t0 = x3.Add(t0)
	t2 = curveB3.Multiply(t2)
	z3 := t1.Add(t2)
	t1 = t1.Sub(t2)
	y3 = curveB3.Multiply(y3)
	x3 = t4.Multiply(y3)
	t2 = t3.Multiply(t1)
	x3 = t2.Sub(x3)
	y3 = y3.Multiply(t0)
	t1 = t1.Multiply(z3)
	y3 = t1.Add(y3)
	t0 = t0.Multiply(t3)
	z3 = z3.Multiply(t4)
	z3 = z3.Add(t0)

	return Point{X: x3, Y: y3, Z: z3}
}

// PointFromX recovers the affine point with the given x-coordinate and the
// requested y parity, evaluating y^2 = x^3 + 7 and taking its square root.
// ok is false when x does not lie on the curve.
func PointFromX(x field.Element, yOdd bool) (Point, bool) {
	rhs := x.Square().Multiply(x).Add(field.FromUint64(7))
	y, ok := rhs.Sqrt()
	if !ok {
		return Point{}, false
	}
	if y.IsOdd() != yOdd {
		y = y.Negate(1)
	}
	return Point{X: x, Y: y, Z: field.One}, true
}

// AddAffine adds an affine operand (x, y) to p (mixed addition).
func (p Point) AddAffine(x, y field.Element) Point {
	return p.Add(Point{X: x, Y: y, Z: field.One})
}

// ToAffine returns the affine (x, y) coordinates of p. ok is false when p
// is the point at infinity.
func (p Point) ToAffine() (x, y field.Element, ok bool) {
	if p.Z.IsZero() {
		return field.Zero, field.Zero, false
	}
	zInv := p.Z.Invert()
	return p.X.Multiply(zInv), p.Y.Multiply(zInv), true
}

// Equal reports whether p and q represent the same affine point, without
// requiring either to be normalized to Z==1 first.
func (p Point) Equal(q Point) bool {
	if p.Z.IsZero() || q.Z.IsZero() {
		return p.Z.IsZero() == q.Z.IsZero()
	}
	return p.X.Multiply(q.Z).EqualAfterNormalize(q.X.Multiply(p.Z)) &&
		p.Y.Multiply(q.Z).EqualAfterNormalize(q.Y.Multiply(p.Z))
}

// baselineTableG holds {0*G, 1*G, ..., 15*G}, built once at package init
// rather than emitted as a literal table by a separate build step.
var baselineTableG [16]Point

func init() {
	baselineTableG[0] = Identity
	baselineTableG[1] = G
	for i := 2; i < 16; i++ {
		baselineTableG[i] = baselineTableG[i-1].Add(G)
	}
}

// selectTable performs a branch-free selection of table[idx]: it visits
// every entry and conditionally moves, so the memory access pattern does
// not depend on idx.
func selectTable(table *[16]Point, idx int) Point {
	result := table[0]
	for i := 1; i < 16; i++ {
		ConditionalMove(&result, table[i], i == idx)
	}
	return result
}

// ScalarMult computes k*p for an arbitrary point p via constant-iteration
// double-and-add over the 256 bits of k. Unlike ScalarMultGenerator it does
// not benefit from a precomputed table or the GLV accelerator, since p is
// not known until call time; it exists for public-key recovery, where the
// point being scaled is the candidate ephemeral point R rather than G.
func (p Point) ScalarMult(k Scalar) Point {
	acc := Identity
	bytes := k.ToBeBytes()
	for _, b := range bytes {
		for bit := 7; bit >= 0; bit-- {
			acc = acc.Double()
			if (b>>uint(bit))&1 == 1 {
				acc = acc.Add(p)
			}
		}
	}
	return acc
}

// ScalarMultGenerator computes k*G with a constant-iteration, 4-bit
// windowed double-and-add routine: 64 nibbles, each consumed by four
// doublings and one branch-free table lookup. It rejects the zero scalar.
func ScalarMultGenerator(k Scalar) (Point, error) {
	if k.IsZero() {
		return Identity, hlerrors.ErrIdentityElement
	}
	bytes := k.ToBeBytes()
	acc := Identity
	for _, b := range bytes {
		hi := int(b >> 4)
		lo := int(b & 0x0f)
		acc = acc.Double().Double().Double().Double()
		acc = acc.Add(selectTable(&baselineTableG, hi))
		acc = acc.Double().Double().Double().Double()
		acc = acc.Add(selectTable(&baselineTableG, lo))
	}
	if acc.IsIdentity() {
		return Identity, hlerrors.ErrIdentityElement
	}
	return acc, nil
}
