// Package errors provides structured error types for gomresume.
//
// Every failure that crosses a package boundary carries a machine-readable
// Code so the CLI and API callers can tell a schema problem apart from an
// I/O problem without string matching.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "document is empty")
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // handle
//	}
//
//	err = errors.Wrap(errors.ErrCodeNetwork, cause, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeSchema          Code = "SCHEMA"
	ErrCodeUnsupportedFont Code = "UNSUPPORTED_FONT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeNetwork      Code = "NETWORK_ERROR"

	// Output errors
	ErrCodeRender   Code = "RENDER_ERROR"
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

// coder is implemented by the typed errors below so Is and GetCode can
// treat them the same way as *Error.
type coder interface {
	error
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error, *SchemaError or
// *UnsupportedFontError with a matching code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no coded error is found in the chain.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the cause when there is one. For other errors, returns the error
// string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// SchemaError reports a document that does not satisfy the input schema,
// e.g. a missing personal.name. Path uses dotted field names with [i]
// indices ("experience[2].title").
type SchemaError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "schema: " + e.Message
	}
	return fmt.Sprintf("schema: %s: %s", e.Path, e.Message)
}

// Code returns the error code for this error type.
func (e *SchemaError) Code() Code {
	return ErrCodeSchema
}

// NewSchemaError creates a SchemaError for the given field path.
func NewSchemaError(path, format string, args ...any) *SchemaError {
	return &SchemaError{Path: path, Message: fmt.Sprintf(format, args...)}
}

// UnsupportedFontError reports a font identifier outside the built-in set.
type UnsupportedFontError struct {
	Font  string
	Valid []string
}

// Error implements the error interface.
func (e *UnsupportedFontError) Error() string {
	return fmt.Sprintf("unsupported font %q (must be one of: %s)", e.Font, strings.Join(e.Valid, ", "))
}

// Code returns the error code for this error type.
func (e *UnsupportedFontError) Code() Code {
	return ErrCodeUnsupportedFont
}
