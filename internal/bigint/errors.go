package bigint

import "fmt"

// DivisionByZeroError is returned by the fallible entry points (DivRem,
// ModPow) when the divisor or modulus is zero. The operator-style Div and
// Mod methods panic with this error instead.
type DivisionByZeroError struct {
	// Op is the name of the operation that received the zero divisor.
	Op string
}

// Error returns the error message for a DivisionByZeroError.
func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("bigint: division by zero in %s", e.Op)
}

// Is reports whether target is a DivisionByZeroError, ignoring the Op
// field, so callers can match with errors.Is(err, DivisionByZeroError{}).
func (e DivisionByZeroError) Is(target error) bool {
	_, ok := target.(DivisionByZeroError)
	return ok
}

// ParseError is returned by Parse when the input is not a valid decimal
// integer literal.
type ParseError struct {
	// Input is the rejected string.
	Input string
	// Reason explains why the input was rejected.
	Reason string
}

// Error returns the error message for a ParseError.
func (e ParseError) Error() string {
	return fmt.Sprintf("bigint: cannot parse %q: %s", e.Input, e.Reason)
}

// SizeLimitError is the panic payload raised by Mul when an operand exceeds
// the FFT multiplier's supported ceiling. This is a precondition violation,
// not a data-dependent failure: operands this large cannot be multiplied
// exactly with double-precision transforms.
type SizeLimitError struct {
	// Blocks is the offending operand size in digit blocks.
	Blocks int
	// Limit is the maximum supported block count.
	Limit int
}

// Error returns the error message for a SizeLimitError.
func (e SizeLimitError) Error() string {
	return fmt.Sprintf("bigint: operand of %d blocks exceeds the %d-block multiplication ceiling", e.Blocks, e.Limit)
}
