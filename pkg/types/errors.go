package types

import "fmt"

// ErrorCode identifies which structural rule a malformed pattern violated.
type ErrorCode string

// Parse error codes. Parsing is the only fallible stage: matching is total
// over the closed node set, so there are no match-time codes.
const (
	ErrUnterminatedEscape ErrorCode = "S0101" // backslash at end of pattern
	ErrMismatchedParen    ErrorCode = "S0201" // unmatched "(" or ")"
	ErrMisplacedOperator  ErrorCode = "S0202" // postfix operator with nothing to apply to
	ErrIncompletePattern  ErrorCode = "S0203" // pattern does not reduce to one expression
)

// Error represents a structured pattern-compilation error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new pattern error.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds the offending token text to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
