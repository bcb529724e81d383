package matrix

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes matrix literal parse errors.
type ErrorCode string

const (
	// ErrCodeMissingBracket indicates the literal does not open with '['.
	ErrCodeMissingBracket ErrorCode = "MISSING_BRACKET"

	// ErrCodeUnexpectedEnd indicates the literal ended before the
	// expected number of elements was read (truncated input).
	ErrCodeUnexpectedEnd ErrorCode = "UNEXPECTED_END"

	// ErrCodeBadNumber indicates an element could not be parsed as a
	// floating-point number.
	ErrCodeBadNumber ErrorCode = "BAD_NUMBER"

	// ErrCodeBadShape indicates a non-positive row or column count was
	// requested.
	ErrCodeBadShape ErrorCode = "BAD_SHAPE"
)

// ParseError reports a failed matrix literal parse with the byte offset
// at which the parse stopped. The parse is single-pass and fail-fast:
// the first error aborts the whole parse and no partial matrix is
// returned.
type ParseError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Pos is the byte offset in the input where the error was detected.
	Pos int

	// Err holds the underlying number parse error for ErrCodeBadNumber.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at offset %d: %v", e.Code, e.Pos, e.Err)
	}
	return fmt.Sprintf("%s at offset %d", e.Code, e.Pos)
}

// Unwrap returns the underlying number parse error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is a ParseError with the given code.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error, code ErrorCode) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}
