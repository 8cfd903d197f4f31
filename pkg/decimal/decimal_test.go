package decimal

import "testing"

func TestParseFormatRoundTrip(t *testing.T) {
	cases := []string{"0", "0.0", "0.00", "1", "-1", "10.00", "50000", "0.1", "0.001", "-123.456000"}
	for _, s := range cases {
		d, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := d.String(); got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{"", "-", ".", "1.2.3", "abc", "1.2a", "+"}
	for _, s := range cases {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", s)
		}
	}
}

func TestParseRejectsOversizedScale(t *testing.T) {
	s := "0." + "00000000000000000000000000000" // 29 digits
	if _, err := Parse(s); err == nil {
		t.Errorf("Parse(%q) succeeded, want overflow error", s)
	}
}

func TestNormalizeStripsTrailingZeros(t *testing.T) {
	cases := map[string]string{
		"10.00":     "10",
		"10.0":      "10",
		"0.00":      "0",
		"0":         "0",
		"1.10":      "1.1",
		"-5.500":    "-5.5",
		"123":       "123",
		"100.00100": "100.001",
	}
	for in, want := range cases {
		d := MustParse(in)
		n := d.Normalize()
		if got := n.String(); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
		// re-parsing the normalized string reproduces the same value
		rp, err := Parse(n.String())
		if err != nil {
			t.Fatalf("Parse(normalize(%q)): %v", in, err)
		}
		if rp.Normalize().Cmp(n) != 0 {
			t.Errorf("parse(normalize(%q).format()) != normalize(%q)", in, in)
		}
	}
}

func TestAddAssociative(t *testing.T) {
	a := MustParse("1.5")
	b := MustParse("2.25")
	c := MustParse("0.001")
	ab, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	abc, err := ab.Add(c)
	if err != nil {
		t.Fatal(err)
	}
	bc, err := b.Add(c)
	if err != nil {
		t.Fatal(err)
	}
	abc2, err := a.Add(bc)
	if err != nil {
		t.Fatal(err)
	}
	if abc.Cmp(abc2) != 0 {
		t.Errorf("(a+b)+c = %s, a+(b+c) = %s", abc, abc2)
	}
}

func TestSubNegAndAdd(t *testing.T) {
	a := MustParse("10.5")
	b := MustParse("3.25")
	got, err := a.Sub(b)
	if err != nil {
		t.Fatal(err)
	}
	if want := MustParse("7.25"); got.Cmp(want) != 0 {
		t.Errorf("10.5 - 3.25 = %s, want %s", got, want)
	}
}

func TestMulAddsScale(t *testing.T) {
	a := MustParse("1.5")
	b := MustParse("2.00")
	got, err := a.Mul(b)
	if err != nil {
		t.Fatal(err)
	}
	if got.Scale() != 4 {
		t.Errorf("scale = %d, want 4", got.Scale())
	}
	if got.Normalize().Cmp(MustParse("3")) != 0 {
		t.Errorf("1.5 * 2.00 = %s, want 3", got)
	}
}

func TestDivScaleTruncates(t *testing.T) {
	a := MustParse("1")
	b := MustParse("3")
	got, err := a.DivScale(b, 4)
	if err != nil {
		t.Fatal(err)
	}
	if want := "0.3333"; got.String() != want {
		t.Errorf("1/3 @ scale 4 = %s, want %s", got, want)
	}
}

func TestRoundToScaleHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in    string
		scale uint8
		want  string
	}{
		{"1.005", 2, "1.01"},
		{"1.004", 2, "1.00"},
		{"-1.005", 2, "-1.01"},
		{"2.5", 0, "3"},
		{"-2.5", 0, "-3"},
	}
	for _, c := range cases {
		got := MustParse(c.in).RoundToScale(c.scale)
		if got.String() != c.want {
			t.Errorf("RoundToScale(%s, %d) = %s, want %s", c.in, c.scale, got, c.want)
		}
	}
}

func TestFloorLog10Abs(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1", 0}, {"9.9", 0}, {"10", 1}, {"99", 1}, {"100", 2}, {"0.5", -1}, {"0.05", -2},
	}
	for _, c := range cases {
		got, ok := MustParse(c.in).FloorLog10Abs()
		if !ok {
			t.Fatalf("FloorLog10Abs(%s): not ok", c.in)
		}
		if got != c.want {
			t.Errorf("FloorLog10Abs(%s) = %d, want %d", c.in, got, c.want)
		}
	}
	if _, ok := Zero.FloorLog10Abs(); ok {
		t.Errorf("FloorLog10Abs(0) should not be ok")
	}
}

func TestCmpIgnoresScale(t *testing.T) {
	if MustParse("1.0").Cmp(MustParse("1.00")) != 0 {
		t.Errorf("1.0 should equal 1.00")
	}
	if MustParse("1.1").Cmp(MustParse("1.01")) <= 0 {
		t.Errorf("1.1 should be greater than 1.01")
	}
}
