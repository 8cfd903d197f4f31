package codec

import "testing"

func TestWriteUintPrefixClasses(t *testing.T) {
	cases := []struct {
		v    uint64
		want byte
	}{
		{0, 0x00}, {127, 0x7f}, {128, mUint8}, {255, mUint8},
		{256, mUint16}, {65535, mUint16},
		{65536, mUint32}, {1<<32 - 1, mUint32},
		{1 << 32, mUint64},
	}
	for _, c := range cases {
		var buf [16]byte
		e := NewEncoder(buf[:])
		if err := e.WriteUint(c.v); err != nil {
			t.Fatalf("WriteUint(%d): %v", c.v, err)
		}
		if got := e.Bytes()[0]; got != c.want {
			t.Errorf("WriteUint(%d) prefix = 0x%02x, want 0x%02x", c.v, got, c.want)
		}
	}
}

func TestWriteIntNegativeClasses(t *testing.T) {
	cases := []struct {
		v    int64
		want byte
	}{
		{-1, 0xff}, {-32, 0xe0}, {-33, mInt8}, {-128, mInt8},
		{-129, mInt16}, {-32768, mInt16},
		{-32769, mInt32}, {-(1 << 31), mInt32},
		{-(1<<31) - 1, mInt64},
	}
	for _, c := range cases {
		var buf [16]byte
		e := NewEncoder(buf[:])
		if err := e.WriteInt(c.v); err != nil {
			t.Fatalf("WriteInt(%d): %v", c.v, err)
		}
		if got := e.Bytes()[0]; got != c.want {
			t.Errorf("WriteInt(%d) prefix = 0x%02x, want 0x%02x", c.v, got, c.want)
		}
	}
}

func TestWriteStringClasses(t *testing.T) {
	short := "hello"
	var buf [16]byte
	e := NewEncoder(buf[:])
	if err := e.WriteString(short); err != nil {
		t.Fatal(err)
	}
	if want := byte(fixstrTag) | byte(len(short)); e.Bytes()[0] != want {
		t.Errorf("fixstr prefix = 0x%02x, want 0x%02x", e.Bytes()[0], want)
	}

	long := make([]byte, 40)
	for i := range long {
		long[i] = 'a'
	}
	var buf2 [64]byte
	e2 := NewEncoder(buf2[:])
	if err := e2.WriteString(string(long)); err != nil {
		t.Fatal(err)
	}
	if e2.Bytes()[0] != mStr8 {
		t.Errorf("str8 prefix = 0x%02x, want 0x%02x", e2.Bytes()[0], mStr8)
	}
}

func TestBufferOverflow(t *testing.T) {
	var buf [2]byte
	e := NewEncoder(buf[:])
	if err := e.WriteUint(1 << 40); err == nil {
		t.Fatal("expected buffer overflow error")
	}
}

func TestNamedMapFieldOrder(t *testing.T) {
	// {"type":"order","asset":0}
	var buf [64]byte
	e := NewEncoder(buf[:])
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(e.WriteMapHeader(2))
	must(e.WriteString("type"))
	must(e.WriteString("order"))
	must(e.WriteString("asset"))
	must(e.WriteUint(0))

	out := e.Bytes()
	if out[0] != byte(fixmapTag)|2 {
		t.Fatalf("map header wrong: 0x%02x", out[0])
	}
}

func TestArrayHeaderClasses(t *testing.T) {
	var buf [8]byte
	e := NewEncoder(buf[:])
	if err := e.WriteArrayHeader(3); err != nil {
		t.Fatal(err)
	}
	if want := byte(fixarrTag) | 3; e.Bytes()[0] != want {
		t.Errorf("fixarray prefix = 0x%02x, want 0x%02x", e.Bytes()[0], want)
	}
}
