// Package errs defines the sentinel errors returned by zkwire packages.
//
// Every failure is a terminal rejection of a single encoding attempt. Errors are
// wrapped with detail using fmt.Errorf("%w: ...") so callers should match them
// with errors.Is rather than comparing strings.
package errs

import "errors"

// Bit vector misuse.
var (
	ErrIndexOutOfRange      = errors.New("bit index out of range")
	ErrLengthNotByteAligned = errors.New("bit length is not a multiple of 8")
)

// Packed numeric codec.
var (
	ErrInvalidParams         = errors.New("invalid packing parameters")
	ErrIncorrectPackedLength = errors.New("incorrect packed length")
	ErrIntegerTooLarge       = errors.New("integer is too large")
	ErrNegativeInteger       = errors.New("integer is negative")
	ErrFeeNotPackable        = errors.New("fee is not packable")
	ErrAmountNotPackable     = errors.New("amount is not packable")
)

// Fixed-width fields.
var (
	ErrAccountNumberTooLarge = errors.New("account number is too large")
	ErrTokenIDTooBig         = errors.New("token id is too big")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidTimeRange      = errors.New("invalid validity time range")
)

// Display formatting.
var ErrInvalidAmount = errors.New("invalid amount")
