// Package errors provides structured error types for the Rackplan application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - MISSING_* / NEGATIVE_* / DUPLICATE_* / OVERLAPPING_*: panel input failures
//   - *_CANTILEVER_EXCEEDED / SPAN_LIMIT_EXCEEDED / NO_RAFTER_IN_SPAN: structural checks
//   - INVALID_*: configuration and request validation failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicatePanel, "Duplicate panel detected at (%v, %v).", x, y)
//	if errors.Is(err, errors.ErrCodeDuplicatePanel) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "load settings %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Panel input errors
	ErrCodeMissingCoordinate  Code = "MISSING_COORDINATE"
	ErrCodeNegativeCoordinate Code = "NEGATIVE_COORDINATE"
	ErrCodeDuplicatePanel     Code = "DUPLICATE_PANEL"
	ErrCodeOverlappingPanels  Code = "OVERLAPPING_PANELS"
	ErrCodeNoPanels           Code = "NO_PANELS"

	// Structural check errors
	ErrCodeNoRafterInSpan  Code = "NO_RAFTER_IN_SPAN"
	ErrCodeLeftCantilever  Code = "LEFT_CANTILEVER_EXCEEDED"
	ErrCodeRightCantilever Code = "RIGHT_CANTILEVER_EXCEEDED"
	ErrCodeSpanExceeded    Code = "SPAN_LIMIT_EXCEEDED"
	ErrCodeInvalidExtent   Code = "INVALID_EXTENT"

	// Configuration and request errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"

	// Rendering errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
