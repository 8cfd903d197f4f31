// Package hlerrors enumerates the error kinds the signing core can raise.
// Every exported sentinel is comparable with errors.Is; callers add
// contextual detail by wrapping a sentinel with fmt.Errorf's %w verb, the
// same way the rest of this module wraps errors.
package hlerrors

import "errors"

var (
	// ErrInvalidInput covers malformed decimal strings, non-hex private
	// keys, and oversized scales.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBufferOverflow is returned when encoder output would exceed the
	// caller-provided buffer.
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrIdentityElement covers: a zero or out-of-range private key, an
	// ephemeral point with zero x, a zero s value, or a base-point
	// multiplication yielding the point at infinity.
	ErrIdentityElement = errors.New("identity element")

	// ErrNonCanonical is returned when a recovered scalar fails the
	// canonical range check.
	ErrNonCanonical = errors.New("non-canonical value")

	// ErrInvalidMessageHash is returned when a message hash reduces to
	// zero during recovery.
	ErrInvalidMessageHash = errors.New("invalid message hash")

	// ErrCurveDecodeFailure is returned for malformed public key bytes
	// encountered during recovery.
	ErrCurveDecodeFailure = errors.New("curve decode failure")
)
