// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for tutorbook.

Every failure that can reach the user (a rejected command, an invalid value, a broken
data file) is expressed as an [AppError]. The message is always safe to print verbatim
in the command result box.

Architecture:

  - AppError: A struct containing a machine-readable Code and a user-facing Message.
  - Details: Per-field validation failures for VALIDATION_ERROR.
  - Mapping: Each code maps to an HTTP status for the local HTTP view.

Domain code never returns bare errors across package boundaries; it returns an
[AppError] so the command layer and the view can render it without inspection.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Codes

const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeInvalidCommandFormat = "INVALID_COMMAND_FORMAT"
	CodeUnknownCommand       = "UNKNOWN_COMMAND"
	CodeDuplicatePrefix      = "DUPLICATE_PREFIX"
	CodeConflict             = "CONFLICT"
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidIndex         = "INVALID_INDEX"
	CodeWrongCategory        = "WRONG_CATEGORY"
	CodeNoParentLinked       = "NO_PARENT_LINKED"
	CodeIntegrity            = "INTEGRITY_VIOLATION"
	CodeFileMissing          = "FILE_MISSING"
	CodeMalformedJSON        = "MALFORMED_JSON"
	CodeDataCorruption       = "DATA_CORRUPTION"
	CodeRateLimited          = "RATE_LIMITED"
	CodeInternal             = "INTERNAL_ERROR"
)

// AppError is the canonical error type for tutorbook.
//
// It carries a machine-readable code, a user-facing message, the HTTP status used
// by the local view, and an optional slice of field-level validation errors.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "CONFLICT").
	Code string `json:"code"`
	// Message is a human-readable description shown in the result box.
	Message string `json:"error"`
	// HTTPStatus is the status code used when the error is served over HTTP.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, kept for logging.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the name of the value that failed validation (e.g. "phone").
	Field string `json:"field"`
	// Message is the human-readable constraint that was violated.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the user-facing message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an [*AppError] with the same code, so that sentinel
// values such as [ErrFileMissing] can be matched with [errors.Is].
func (e *AppError) Is(target error) bool {
	sentinel, ok := target.(*AppError)
	if !ok || sentinel.Message != "" {
		return false
	}
	return sentinel.Code == e.Code
}

// WithCause returns a copy of e that wraps cause.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// # Input Errors

// ValidationError creates an [AppError] for a rejected value with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// InvalidInput is a shortcut for a single-field [ValidationError] whose message is the reason.
func InvalidInput(field, reason string) *AppError {
	return ValidationError(reason, FieldError{Field: field, Message: reason})
}

// InvalidCommandFormat reports a command whose arguments do not follow usage.
//
// Example:
//
//	apperr.InvalidCommandFormat(DeleteUsage) // "Invalid command format! \n<usage>"
func InvalidCommandFormat(usage string) *AppError {
	return &AppError{
		Code:       CodeInvalidCommandFormat,
		Message:    "Invalid command format! \n" + usage,
		HTTPStatus: http.StatusBadRequest,
	}
}

// UnknownCommand reports an unrecognised command word.
func UnknownCommand() *AppError {
	return &AppError{
		Code:       CodeUnknownCommand,
		Message:    "Unknown command",
		HTTPStatus: http.StatusBadRequest,
	}
}

// DuplicatePrefix reports single-valued prefixes that were given more than once.
func DuplicatePrefix(prefixes string) *AppError {
	return &AppError{
		Code:       CodeDuplicatePrefix,
		Message:    "Multiple values specified for the following single-valued field(s): " + prefixes,
		HTTPStatus: http.StatusBadRequest,
	}
}

// # Domain Errors

// Conflict creates an [AppError] for duplicate persons or classes.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// NotFound creates an [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Person") // "Person not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// NotFoundf creates a NOT_FOUND [AppError] with a formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusNotFound,
	}
}

// InvalidIndex reports a list index outside the currently displayed list.
func InvalidIndex() *AppError {
	return &AppError{
		Code:       CodeInvalidIndex,
		Message:    "The person index provided is invalid",
		HTTPStatus: http.StatusBadRequest,
	}
}

// WrongCategory reports an operation applied to a person of the wrong category.
func WrongCategory(msg string) *AppError {
	return &AppError{
		Code:       CodeWrongCategory,
		Message:    msg,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// NoParentLinked reports a student without a parent link.
func NoParentLinked(studentName string) *AppError {
	return &AppError{
		Code:       CodeNoParentLinked,
		Message:    "No parent linked for " + studentName,
		HTTPStatus: http.StatusNotFound,
	}
}

// IntegrityViolation reports a change that would break a link between entities.
func IntegrityViolation(msg string) *AppError {
	return &AppError{
		Code:       CodeIntegrity,
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// # Storage Errors

// ErrFileMissing matches any FILE_MISSING error via [errors.Is].
var ErrFileMissing = &AppError{Code: CodeFileMissing}

// FileMissing reports that the data file does not exist yet.
func FileMissing(path string) *AppError {
	return &AppError{
		Code:       CodeFileMissing,
		Message:    "Data file not found: " + path,
		HTTPStatus: http.StatusNotFound,
	}
}

// MalformedJSON reports a data file that is not valid JSON.
func MalformedJSON(path string, cause error) *AppError {
	return &AppError{
		Code:       CodeMalformedJSON,
		Message:    "Data file is not valid JSON: " + path,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// DataCorruption reports records that violate referential integrity.
func DataCorruption(detail string) *AppError {
	return &AppError{
		Code:       CodeDataCorruption,
		Message:    "Data file is corrupted: " + detail,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// # View Errors

// RateLimited reports a view client that exhausted its request budget.
func RateLimited() *AppError {
	return &AppError{
		Code:       CodeRateLimited,
		Message:    "Too many requests, slow down",
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// Internal wraps an unexpected error. The cause is kept for logging only.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsCode reports whether err carries an [*AppError] with the given code.
func IsCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
