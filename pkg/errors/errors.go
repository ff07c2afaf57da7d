// Package errors provides structured error types for the parfait library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across parsing, validation, and serialization
//   - Machine-readable error codes for programmatic handling
//   - Positional messages tied to input lines and fields
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Syntax-level failures in a single line or field
//   - VERSION_*: Version declaration and dialect mismatches
//   - REFERENCE_*: Cross-record consistency failures
//   - CONVERSION_*: Serialization targets the record cannot express
//   - IO_*: Underlying reader/writer failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedConversion, "path %q has no GFA2 form", name)
//	if errors.Is(err, errors.ErrCodeUnsupportedConversion) {
//	    // Handle conversion error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "failed to read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Syntax errors in a single line or field
	ErrCodeUnrecognizedLine   Code = "INVALID_UNRECOGNIZED_LINE"
	ErrCodeInvalidLine        Code = "INVALID_LINE"
	ErrCodeInvalidName        Code = "INVALID_NAME"
	ErrCodeInvalidTag         Code = "INVALID_TAG"
	ErrCodeInvalidTagName     Code = "INVALID_TAG_NAME"
	ErrCodeInvalidTagType     Code = "INVALID_TAG_TYPE"
	ErrCodeInvalidInteger     Code = "INVALID_INTEGER"
	ErrCodeInvalidFloat       Code = "INVALID_FLOAT"
	ErrCodeInvalidHex         Code = "INVALID_HEX"
	ErrCodeInvalidChar        Code = "INVALID_CHAR"
	ErrCodeInvalidArray       Code = "INVALID_ARRAY"
	ErrCodeDuplicateTag       Code = "INVALID_DUPLICATE_TAG"
	ErrCodeInvalidOrientation Code = "INVALID_ORIENTATION"
	ErrCodeInvalidOverlap     Code = "INVALID_OVERLAP"
	ErrCodeInvalidPosition    Code = "INVALID_POSITION"
	ErrCodeInvalidStep        Code = "INVALID_STEP"

	// Version errors
	ErrCodeUnknownVersion  Code = "VERSION_UNKNOWN"
	ErrCodeMissingVersion  Code = "VERSION_MISSING"
	ErrCodeVersionMismatch Code = "VERSION_MISMATCH"
	ErrCodeDuplicateHeader Code = "VERSION_DUPLICATE_HEADER"

	// Reference errors found during validation
	ErrCodeDuplicateSegmentID    Code = "REFERENCE_DUPLICATE_SEGMENT"
	ErrCodeUnresolvedReference   Code = "REFERENCE_UNRESOLVED"
	ErrCodeCyclicGroupReference  Code = "REFERENCE_CYCLIC_GROUP"
	ErrCodeInvalidRange          Code = "REFERENCE_INVALID_RANGE"
	ErrCodePathOverlapMismatch   Code = "REFERENCE_PATH_OVERLAP_MISMATCH"
	ErrCodeSelfLink              Code = "REFERENCE_SELF_LINK"
	ErrCodeSelfContainment       Code = "REFERENCE_SELF_CONTAINMENT"
	ErrCodeIsolatedSegment       Code = "REFERENCE_ISOLATED_SEGMENT"
	ErrCodeDeadEnd               Code = "REFERENCE_DEAD_END"
	ErrCodeUnsupportedConversion Code = "CONVERSION_UNSUPPORTED"

	// I/O errors
	ErrCodeIO Code = "IO_ERROR"
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
