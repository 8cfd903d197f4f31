package decimal

import (
	"fmt"

	"github.com/uhyunpark/hyperwire/pkg/hlerrors"
)

// ErrInvalidInput is returned for malformed decimal text.
var ErrInvalidInput = hlerrors.ErrInvalidInput

// ErrOverflow is returned when a significand would exceed the signed
// 128-bit range, or a scale exceeds MaxScale. It wraps ErrInvalidInput,
// so errors.Is reports it as that broader kind as well.
var ErrOverflow = fmt.Errorf("decimal: overflow: %w", hlerrors.ErrInvalidInput)
