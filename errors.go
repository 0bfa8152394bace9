package asset

import "errors"

// Errors returned by the package.
// Callers should match them with [errors.Is], since they are usually wrapped
// with the operation and its operands.
var (
	// ErrInvalidInput is returned when a whole-unit amount has a non-zero
	// fractional part, or when the amount cannot be parsed at all.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPrecisionOverflow is returned when a decimal amount has more digits
	// after the decimal point than its token supports.
	ErrPrecisionOverflow = errors.New("precision overflow")

	// ErrUnderflow is returned by division when the quotient is not greater
	// than one raw unit.
	ErrUnderflow = errors.New("underflow")

	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidDecimals = errors.New("invalid decimals")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrTokenMismatch   = errors.New("token mismatch")
)
