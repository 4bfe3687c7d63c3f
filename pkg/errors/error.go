// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown errors
//   - Validation errors (100-199): Invalid parameters, malformed candles, short series
//   - Indicator errors (300-399): Lookup, registration and calculation failures
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidPeriod, "period must be positive")
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeInvalidParameter, "failed to decode parameters", cause)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeIndicatorNotFound) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error is an error tagged with an ErrorCode. Cause is optional.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New returns an Error without a cause.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap tags cause with code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}

	return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is forwards to the standard errors.Is so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As forwards to the standard errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the outermost *Error in err's chain, or ErrCodeUnknown.
func GetCode(err error) ErrorCode {
	var coded *Error
	if !errors.As(err, &coded) {
		return ErrCodeUnknown
	}

	return coded.Code
}

// HasCode reports whether GetCode(err) equals code.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// InsufficientDataError reports a series shorter than the history an indicator needs
// before it can emit its first value. It is not a failure: callers treat it as
// "no output yet".
type InsufficientDataError struct {
	Required  int
	Actual    int
	Indicator string
	Message   string
}

// NewInsufficientDataError returns an InsufficientDataError. An empty message is
// replaced by one built from the counts.
func NewInsufficientDataError(required, actual int, indicator, message string) *InsufficientDataError {
	if message == "" {
		message = fmt.Sprintf("%s needs %d candles, got %d", indicator, required, actual)
	}

	return &InsufficientDataError{
		Required:  required,
		Actual:    actual,
		Indicator: indicator,
		Message:   message,
	}
}

// NewInsufficientDataErrorf is NewInsufficientDataError with a formatted message.
func NewInsufficientDataErrorf(required, actual int, indicator, format string, args ...any) *InsufficientDataError {
	return NewInsufficientDataError(required, actual, indicator, fmt.Sprintf(format, args...))
}

func (e *InsufficientDataError) Error() string {
	return e.Message
}

// Code returns ErrCodeInsufficientData.
func (e *InsufficientDataError) Code() ErrorCode {
	return ErrCodeInsufficientData
}

// Missing returns how many more candles are needed.
func (e *InsufficientDataError) Missing() int {
	return max(e.Required-e.Actual, 0)
}

// AsInsufficientData returns the first InsufficientDataError in err's chain.
func AsInsufficientData(err error) (*InsufficientDataError, bool) {
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		return nil, false
	}

	return insufficient, true
}

// IsInsufficientDataError reports whether err's chain holds an InsufficientDataError.
func IsInsufficientDataError(err error) bool {
	_, ok := AsInsufficientData(err)

	return ok
}
