// Package codec implements the deterministic binary object encoder the
// signing core uses for the RMP path. Its output is byte-for-byte
// interoperable with the reference msgpack-family wire format: non-negative
// integers, signed integers, strings, binary blobs, arrays, and maps each
// pick the smallest prefix class that fits the value. The encoder writes
// into a caller-provided buffer and never allocates on the hot path;
// Actions hand-controls field order and key names on top of it (see
// pkg/actions), since byte-exactness is a wire contract, not something a
// reflection-based serializer can be trusted to preserve.
package codec

import (
	"fmt"
	"math"

	"github.com/uhyunpark/hyperwire/pkg/hlerrors"
)

const (
	mNil       = 0xc0
	mFalse     = 0xc2
	mTrue      = 0xc3
	mFloat32   = 0xca
	mFloat64   = 0xcb
	mUint8     = 0xcc
	mUint16    = 0xcd
	mUint32    = 0xce
	mUint64    = 0xcf
	mInt8      = 0xd0
	mInt16     = 0xd1
	mInt32     = 0xd2
	mInt64     = 0xd3
	mStr8      = 0xd9
	mStr16     = 0xda
	mStr32     = 0xdb
	mArray16   = 0xdc
	mArray32   = 0xdd
	mMap16     = 0xde
	mMap32     = 0xdf
	mBin8      = 0xc4
	mBin16     = 0xc5
	mBin32     = 0xc6
	fixintMax  = 0x7f
	fixmapTag  = 0x80
	fixarrTag  = 0x90
	fixstrTag  = 0xa0
	fixnegBase = 0xe0
)

// Encoder writes msgpack-family-encoded values into a fixed, caller-owned
// buffer, returning ErrBufferOverflow rather than growing it.
type Encoder struct {
	buf []byte
	n   int
}

// NewEncoder wraps buf. The encoder writes starting at offset 0.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

// Bytes returns the portion of the buffer written so far.
func (e *Encoder) Bytes() []byte { return e.buf[:e.n] }

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return e.n }

// Reset rewinds the encoder to the start of its buffer without reallocating.
func (e *Encoder) Reset() { e.n = 0 }

func (e *Encoder) reserve(n int) error {
	if e.n+n > len(e.buf) {
		return fmt.Errorf("codec: %w: need %d more bytes, have %d", hlerrors.ErrBufferOverflow, n, len(e.buf)-e.n)
	}
	return nil
}

func (e *Encoder) put1(b byte) error {
	if err := e.reserve(1); err != nil {
		return err
	}
	e.buf[e.n] = b
	e.n++
	return nil
}

func (e *Encoder) putBytes(b []byte) error {
	if err := e.reserve(len(b)); err != nil {
		return err
	}
	copy(e.buf[e.n:], b)
	e.n += len(b)
	return nil
}

func (e *Encoder) putBE(v uint64, width int) error {
	if err := e.reserve(width); err != nil {
		return err
	}
	for i := width - 1; i >= 0; i-- {
		e.buf[e.n+i] = byte(v)
		v >>= 8
	}
	e.n += width
	return nil
}

// WriteNil emits the 1-byte nil marker.
func (e *Encoder) WriteNil() error { return e.put1(mNil) }

// WriteBool emits a 1-byte marker per value.
func (e *Encoder) WriteBool(v bool) error {
	if v {
		return e.put1(mTrue)
	}
	return e.put1(mFalse)
}

// WriteUint emits u using the smallest non-negative integer class that
// fits it: fixint (0-127), u8, u16, u32, u64.
func (e *Encoder) WriteUint(u uint64) error {
	switch {
	case u <= fixintMax:
		return e.put1(byte(u))
	case u <= math.MaxUint8:
		if err := e.put1(mUint8); err != nil {
			return err
		}
		return e.putBE(u, 1)
	case u <= math.MaxUint16:
		if err := e.put1(mUint16); err != nil {
			return err
		}
		return e.putBE(u, 2)
	case u <= math.MaxUint32:
		if err := e.put1(mUint32); err != nil {
			return err
		}
		return e.putBE(u, 4)
	default:
		if err := e.put1(mUint64); err != nil {
			return err
		}
		return e.putBE(u, 8)
	}
}

// WriteInt emits i using non-negative encoding if i >= 0, otherwise the
// smallest signed class that fits it: fixnegint (-32..-1), i8, i16, i32, i64.
func (e *Encoder) WriteInt(i int64) error {
	if i >= 0 {
		return e.WriteUint(uint64(i))
	}
	switch {
	case i >= -32:
		return e.put1(byte(fixnegBase) | byte(int8(i)&0x1f))
	case i >= math.MinInt8:
		if err := e.put1(mInt8); err != nil {
			return err
		}
		return e.putBE(uint64(uint8(int8(i))), 1)
	case i >= math.MinInt16:
		if err := e.put1(mInt16); err != nil {
			return err
		}
		return e.putBE(uint64(uint16(int16(i))), 2)
	case i >= math.MinInt32:
		if err := e.put1(mInt32); err != nil {
			return err
		}
		return e.putBE(uint64(uint32(int32(i))), 4)
	default:
		if err := e.put1(mInt64); err != nil {
			return err
		}
		return e.putBE(uint64(i), 8)
	}
}

// WriteFloat32 emits the 5-byte float32 form.
func (e *Encoder) WriteFloat32(f float32) error {
	if err := e.put1(mFloat32); err != nil {
		return err
	}
	return e.putBE(uint64(math.Float32bits(f)), 4)
}

// WriteFloat64 emits the 9-byte float64 form.
func (e *Encoder) WriteFloat64(f float64) error {
	if err := e.put1(mFloat64); err != nil {
		return err
	}
	return e.putBE(math.Float64bits(f), 8)
}

// WriteString emits s as a text string: fixstr (len<32), str8, str16, str32.
func (e *Encoder) WriteString(s string) error {
	l := len(s)
	switch {
	case l < 32:
		if err := e.put1(byte(fixstrTag) | byte(l)); err != nil {
			return err
		}
	case l <= math.MaxUint8:
		if err := e.put1(mStr8); err != nil {
			return err
		}
		if err := e.putBE(uint64(l), 1); err != nil {
			return err
		}
	case l <= math.MaxUint16:
		if err := e.put1(mStr16); err != nil {
			return err
		}
		if err := e.putBE(uint64(l), 2); err != nil {
			return err
		}
	default:
		if err := e.put1(mStr32); err != nil {
			return err
		}
		if err := e.putBE(uint64(l), 4); err != nil {
			return err
		}
	}
	return e.putBytes([]byte(s))
}

// WriteBinary emits b as a binary blob: bin8, bin16, bin32.
func (e *Encoder) WriteBinary(b []byte) error {
	l := len(b)
	switch {
	case l <= math.MaxUint8:
		if err := e.put1(mBin8); err != nil {
			return err
		}
		if err := e.putBE(uint64(l), 1); err != nil {
			return err
		}
	case l <= math.MaxUint16:
		if err := e.put1(mBin16); err != nil {
			return err
		}
		if err := e.putBE(uint64(l), 2); err != nil {
			return err
		}
	default:
		if err := e.put1(mBin32); err != nil {
			return err
		}
		if err := e.putBE(uint64(l), 4); err != nil {
			return err
		}
	}
	return e.putBytes(b)
}

// WriteArrayHeader emits an array header for a sequence of length l;
// elements follow as separate encode calls in order.
func (e *Encoder) WriteArrayHeader(l int) error {
	switch {
	case l < 16:
		return e.put1(byte(fixarrTag) | byte(l))
	case l <= math.MaxUint16:
		if err := e.put1(mArray16); err != nil {
			return err
		}
		return e.putBE(uint64(l), 2)
	default:
		if err := e.put1(mArray32); err != nil {
			return err
		}
		return e.putBE(uint64(l), 4)
	}
}

// WriteMapHeader emits a map header for l key/value pairs; pairs follow as
// separate encode calls, key then value, in order.
func (e *Encoder) WriteMapHeader(l int) error {
	switch {
	case l < 16:
		return e.put1(byte(fixmapTag) | byte(l))
	case l <= math.MaxUint16:
		if err := e.put1(mMap16); err != nil {
			return err
		}
		return e.putBE(uint64(l), 2)
	default:
		if err := e.put1(mMap32); err != nil {
			return err
		}
		return e.putBE(uint64(l), 4)
	}
}
