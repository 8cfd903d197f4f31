package field

import (
	"crypto/rand"
	"testing"
)

func randomElement(t *testing.T) Element {
	t.Helper()
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		t.Fatal(err)
	}
	return FromBeBytes(b)
}

func TestMultiplyCommutativeAssociative(t *testing.T) {
	for i := 0; i < 10000; i++ {
		a := randomElement(t)
		b := randomElement(t)
		c := randomElement(t)

		if !a.Multiply(b).EqualAfterNormalize(b.Multiply(a)) {
			t.Fatalf("multiplication not commutative: a=%s b=%s", a, b)
		}
		lhs := a.Multiply(b).Multiply(c)
		rhs := a.Multiply(b.Multiply(c))
		if !lhs.EqualAfterNormalize(rhs) {
			t.Fatalf("multiplication not associative: a=%s b=%s c=%s", a, b, c)
		}
	}
}

func TestInverse(t *testing.T) {
	for i := 0; i < 2000; i++ {
		a := randomElement(t)
		if a.IsZero() {
			continue
		}
		inv := a.Invert()
		if !a.Multiply(inv).EqualAfterNormalize(One) {
			t.Fatalf("a * a^-1 != 1 for a=%s", a)
		}
	}
}

func TestAddNegate(t *testing.T) {
	for i := 0; i < 2000; i++ {
		a := randomElement(t)
		if !a.Add(a.Negate(1)).IsZero() {
			t.Fatalf("a + (-a) != 0 for a=%s", a)
		}
	}
}

func TestSqrt(t *testing.T) {
	for i := 0; i < 2000; i++ {
		a := randomElement(t)
		sq := a.Square()
		root, ok := sq.Sqrt()
		if !ok {
			t.Fatalf("sqrt(a^2) reported no root for a=%s", a)
		}
		if !root.Square().EqualAfterNormalize(sq) {
			t.Fatalf("sqrt(a^2)^2 != a^2 for a=%s", a)
		}
	}
}

func TestConditionalSwap(t *testing.T) {
	a := FromUint64(1)
	b := FromUint64(2)
	ConditionalSwap(&a, &b, false)
	if !a.EqualAfterNormalize(FromUint64(1)) || !b.EqualAfterNormalize(FromUint64(2)) {
		t.Fatalf("swap happened when flag was false")
	}
	ConditionalSwap(&a, &b, true)
	if !a.EqualAfterNormalize(FromUint64(2)) || !b.EqualAfterNormalize(FromUint64(1)) {
		t.Fatalf("swap did not happen when flag was true")
	}
}

func TestIsOddRoundTrip(t *testing.T) {
	if FromUint64(2).IsOdd() {
		t.Fatal("2 should not be odd")
	}
	if !FromUint64(3).IsOdd() {
		t.Fatal("3 should be odd")
	}
}

func TestToBeBytesRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := randomElement(t)
		b := a.ToBeBytes()
		if got := FromBeBytes(b); !got.EqualAfterNormalize(a) {
			t.Fatalf("round trip mismatch for a=%s", a)
		}
	}
}
