// Package decimal implements the fixed-point rational type used for every
// price and size field that crosses the signing boundary. A Decimal is a
// signed 128-bit significand together with a non-negative scale (number of
// digits after the decimal point, capped at 28). Parsing never reduces the
// scale, so format(parse(t)) == t for any valid input t; Normalize strips
// trailing fractional zeros to produce the canonical form the signing core
// hashes.
package decimal

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// MaxScale is the largest scale a Decimal may carry.
const MaxScale = 28

// maxMagnitudeBits bounds the significand to the signed 128-bit range.
const maxMagnitudeBits = 127

// Decimal is neg * mag * 10^-scale. A zero-valued Decimal (its Go zero value)
// represents 0 at scale 0.
type Decimal struct {
	neg   bool
	mag   uint256.Int
	scale uint8
}

// Zero is the additive identity at scale 0.
var Zero = Decimal{}

func newDecimal(neg bool, mag uint256.Int, scale uint8) Decimal {
	d := Decimal{neg: neg, mag: mag, scale: scale}
	if d.mag.IsZero() {
		d.neg = false
	}
	return d
}

// Parse reads a decimal string: an optional leading sign, at least one
// digit, and at most one decimal point. The scale is exactly the number of
// digits after the point; trailing zeros are preserved, not stripped.
func Parse(s string) (Decimal, error) {
	if s == "" {
		return Decimal{}, fmt.Errorf("decimal: %w: empty string", ErrInvalidInput)
	}
	rest := s
	neg := false
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		neg = true
		rest = rest[1:]
	}
	if rest == "" {
		return Decimal{}, fmt.Errorf("decimal: %w: %q has no digits", ErrInvalidInput, s)
	}

	intPart := rest
	fracPart := ""
	if idx := strings.IndexByte(rest, '.'); idx >= 0 {
		intPart = rest[:idx]
		fracPart = rest[idx+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return Decimal{}, fmt.Errorf("decimal: %w: %q has more than one point", ErrInvalidInput, s)
		}
	}
	if intPart == "" && fracPart == "" {
		return Decimal{}, fmt.Errorf("decimal: %w: %q has no digits", ErrInvalidInput, s)
	}
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return Decimal{}, fmt.Errorf("decimal: %w: %q is not a digit string", ErrInvalidInput, s)
		}
	}
	for _, c := range fracPart {
		if c < '0' || c > '9' {
			return Decimal{}, fmt.Errorf("decimal: %w: %q is not a digit string", ErrInvalidInput, s)
		}
	}

	scale := len(fracPart)
	if scale > MaxScale {
		return Decimal{}, fmt.Errorf("decimal: %w: scale %d exceeds %d", ErrOverflow, scale, MaxScale)
	}

	digits := intPart + fracPart
	var mag uint256.Int
	ten := uint256.NewInt(10)
	for _, c := range digits {
		mag.Mul(&mag, ten)
		mag.Add(&mag, uint256.NewInt(uint64(c-'0')))
	}
	if mag.BitLen() > maxMagnitudeBits {
		return Decimal{}, fmt.Errorf("decimal: %w: significand overflows 128 bits", ErrOverflow)
	}

	return newDecimal(neg, mag, uint8(scale)), nil
}

// MustParse is Parse but panics on error; useful for constants in tests.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() uint8 { return d.scale }

// IsZero reports whether d is the additive identity.
func (d Decimal) IsZero() bool { return d.mag.IsZero() }

// Sign returns -1, 0, or 1.
func (d Decimal) Sign() int {
	if d.mag.IsZero() {
		return 0
	}
	if d.neg {
		return -1
	}
	return 1
}

// String formats d per the Format rules: sign if negative, the integer part,
// and if scale > 0 a '.' followed by zero-padded fractional digits.
func (d Decimal) String() string {
	digits := d.mag.Dec()
	scale := int(d.scale)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	split := len(digits) - scale
	intPart := digits[:split]
	var sb strings.Builder
	if d.neg && !d.mag.IsZero() {
		sb.WriteByte('-')
	}
	sb.WriteString(intPart)
	if scale > 0 {
		sb.WriteByte('.')
		sb.WriteString(digits[split:])
	}
	return sb.String()
}

// Normalize strips trailing fractional zeros, producing the canonical form
// hashed by the signing core. Zero normalizes to scale 0 regardless of its
// input scale.
func (d Decimal) Normalize() Decimal {
	if d.mag.IsZero() {
		return Decimal{}
	}
	mag := d.mag
	scale := d.scale
	ten := uint256.NewInt(10)
	var q, r uint256.Int
	for scale > 0 {
		q.DivMod(&mag, ten, &r)
		if !r.IsZero() {
			break
		}
		mag = q
		scale--
	}
	return newDecimal(d.neg, mag, scale)
}

func rescale(d Decimal, scale uint8) Decimal {
	if d.scale == scale {
		return d
	}
	mag := d.mag
	if scale > d.scale {
		diff := int(scale) - int(d.scale)
		pow := pow10(diff)
		mag.Mul(&mag, &pow)
	} else {
		diff := int(d.scale) - int(scale)
		pow := pow10(diff)
		var r uint256.Int
		mag.DivMod(&mag, &pow, &r)
	}
	return newDecimal(d.neg, mag, scale)
}

func pow10(n int) uint256.Int {
	p := *uint256.NewInt(1)
	ten := uint256.NewInt(10)
	for i := 0; i < n; i++ {
		p.Mul(&p, ten)
	}
	return p
}

func maxScale(a, b Decimal) uint8 {
	if a.scale > b.scale {
		return a.scale
	}
	return b.scale
}

// Add returns a + b, rescaling both operands to max(a.Scale(), b.Scale()).
func (a Decimal) Add(b Decimal) (Decimal, error) {
	scale := maxScale(a, b)
	ra, rb := rescale(a, scale), rescale(b, scale)
	return signedAdd(ra, rb)
}

// Sub returns a - b, rescaling both operands to max(a.Scale(), b.Scale()).
func (a Decimal) Sub(b Decimal) (Decimal, error) {
	return a.Add(b.Neg())
}

func signedAdd(a, b Decimal) (Decimal, error) {
	var mag uint256.Int
	var neg bool
	switch {
	case a.neg == b.neg:
		mag.Add(&a.mag, &b.mag)
		neg = a.neg
	case a.mag.Cmp(&b.mag) >= 0:
		mag.Sub(&a.mag, &b.mag)
		neg = a.neg
	default:
		mag.Sub(&b.mag, &a.mag)
		neg = b.neg
	}
	if mag.BitLen() > maxMagnitudeBits {
		return Decimal{}, fmt.Errorf("decimal: %w: addition overflowed 128 bits", ErrOverflow)
	}
	return newDecimal(neg, mag, a.scale), nil
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	return newDecimal(!d.neg, d.mag, d.scale)
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	return newDecimal(false, d.mag, d.scale)
}

// Mul returns a * b. The result scale is a.Scale() + b.Scale().
func (a Decimal) Mul(b Decimal) (Decimal, error) {
	scale := int(a.scale) + int(b.scale)
	if scale > MaxScale {
		return Decimal{}, fmt.Errorf("decimal: %w: product scale %d exceeds %d", ErrOverflow, scale, MaxScale)
	}
	var mag uint256.Int
	mag.Mul(&a.mag, &b.mag)
	if mag.BitLen() > maxMagnitudeBits {
		return Decimal{}, fmt.Errorf("decimal: %w: multiplication overflowed 128 bits", ErrOverflow)
	}
	return newDecimal(a.neg != b.neg, mag, uint8(scale)), nil
}

// DivScale divides a by b, producing a result at the requested scale by
// rescaling the numerator up to resultScale+b.Scale() and truncating.
func (a Decimal) DivScale(b Decimal, resultScale uint8) (Decimal, error) {
	if b.mag.IsZero() {
		return Decimal{}, fmt.Errorf("decimal: %w: division by zero", ErrInvalidInput)
	}
	shift := int(resultScale) + int(b.scale) - int(a.scale)
	num := a.mag
	if shift > 0 {
		pow := pow10(shift)
		num.Mul(&num, &pow)
	} else if shift < 0 {
		pow := pow10(-shift)
		var r uint256.Int
		num.DivMod(&num, &pow, &r)
	}
	var q, r uint256.Int
	q.DivMod(&num, &b.mag, &r)
	if q.BitLen() > maxMagnitudeBits {
		return Decimal{}, fmt.Errorf("decimal: %w: division overflowed 128 bits", ErrOverflow)
	}
	return newDecimal(a.neg != b.neg, q, resultScale), nil
}

// RoundToScale rounds d to the given number of fractional digits using
// round-half-away-from-zero.
func (d Decimal) RoundToScale(scale uint8) Decimal {
	if scale >= d.scale {
		return rescale(d, scale)
	}
	diff := int(d.scale) - int(scale)
	pow := pow10(diff)
	var q, r uint256.Int
	q.DivMod(&d.mag, &pow, &r)
	// round half away from zero: bump up if remainder*2 >= divisor
	var twice uint256.Int
	twice.Lsh(&r, 1)
	if twice.Cmp(&pow) >= 0 {
		q.Add(&q, uint256.NewInt(1))
	}
	return newDecimal(d.neg, q, scale)
}

// RoundUpToScale rounds d to the given number of fractional digits toward
// positive infinity (truncate for negative values, round away from zero
// for positive ones on an inexact remainder).
func (d Decimal) RoundUpToScale(scale uint8) Decimal {
	if scale >= d.scale {
		return rescale(d, scale)
	}
	diff := int(d.scale) - int(scale)
	pow := pow10(diff)
	var q, r uint256.Int
	q.DivMod(&d.mag, &pow, &r)
	if !r.IsZero() && !d.neg {
		q.Add(&q, uint256.NewInt(1))
	}
	return newDecimal(d.neg, q, scale)
}

// RoundDownToScale rounds d to the given number of fractional digits
// toward negative infinity (truncate for positive values, round away from
// zero for negative ones on an inexact remainder).
func (d Decimal) RoundDownToScale(scale uint8) Decimal {
	if scale >= d.scale {
		return rescale(d, scale)
	}
	diff := int(d.scale) - int(scale)
	pow := pow10(diff)
	var q, r uint256.Int
	q.DivMod(&d.mag, &pow, &r)
	if !r.IsZero() && d.neg {
		q.Add(&q, uint256.NewInt(1))
	}
	return newDecimal(d.neg, q, scale)
}

// Cmp returns -1, 0, or 1 comparing a to b numerically, independent of
// scale (1.0 == 1.00).
func (a Decimal) Cmp(b Decimal) int {
	scale := maxScale(a, b)
	ra, rb := rescale(a, scale), rescale(b, scale)
	as, bs := ra.Sign(), rb.Sign()
	if as != bs {
		if as < bs {
			return -1
		}
		return 1
	}
	c := ra.mag.Cmp(&rb.mag)
	if as < 0 {
		c = -c
	}
	return c
}

// FloorLog10Abs returns floor(log10(|d|)); ok is false for zero, which has
// no defined logarithm.
func (d Decimal) FloorLog10Abs() (value int, ok bool) {
	if d.mag.IsZero() {
		return 0, false
	}
	digits := d.mag.Dec()
	// digits represents mag as an integer; |d| = mag * 10^-scale, so
	// floor(log10(mag)) == len(digits)-1, then subtract scale.
	return len(digits) - 1 - int(d.scale), true
}
