// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// Value-type constructors in internal/core use it to enforce their constraints, and
// the storage layer reuses those constructors, so a value that survives validation
// here is valid everywhere.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

var (
	// digitsRegex matches a run of ASCII digits.
	digitsRegex = regexp.MustCompile(`^[0-9]+$`)
	// alnumRegex matches a run of Unicode letters and digits.
	alnumRegex = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
	// emailRegex matches local@domain where the last domain label has at least two characters.
	emailRegex = regexp.MustCompile(
		`^[\p{L}\p{N}]+(?:[+_.\-][\p{L}\p{N}]+)*@(?:[\p{L}\p{N}](?:[\p{L}\p{N}\-]*[\p{L}\p{N}])?\.)*[\p{L}\p{N}][\p{L}\p{N}\-]*[\p{L}\p{N}]$`,
	)
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every value being checked.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Email fails if the value is not of the form local@domain.
//
// # Format
//
// The local part is alphanumerics separated by single '+', '_', '.' or '-'.
// The domain is dot-separated labels of alphanumerics and inner hyphens; the
// last label is at least two characters long.
func (v *Validator) Email(field, value string) *Validator {
	if !IsEmail(value) {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// Digits fails if the value contains anything other than ASCII digits.
func (v *Validator) Digits(field, value string) *Validator {
	if !digitsRegex.MatchString(value) {
		v.add(field, "Must contain digits only")
	}
	return v
}

// Alnum fails if the value is not a non-empty run of letters and digits.
func (v *Validator) Alnum(field, value string) *Validator {
	if !alnumRegex.MatchString(value) {
		v.add(field, "Must be alphanumeric")
	}
	return v
}

// Matches fails with message if the value does not match pattern.
func (v *Validator) Matches(field, value string, pattern *regexp.Regexp, message string) *Validator {
	if !pattern.MatchString(value) {
		v.add(field, message)
	}
	return v
}

// Err returns a VALIDATION_ERROR [apperr.AppError] if any rules failed, or nil.
//
// A single failure becomes the error message itself, so constructors of value
// types surface their constraint text directly to the user.
func (v *Validator) Err() error {
	switch len(v.errs) {
	case 0:
		return nil
	case 1:
		return apperr.ValidationError(v.errs[0].Message, v.errs...)
	default:
		return apperr.ValidationError("Validation failed", v.errs...)
	}
}

// ErrAs collapses any failures into a single-field error carrying message.
//
// Value types use it so that a rejected value reports its full constraint rather
// than the first rule that tripped.
func (v *Validator) ErrAs(field, message string) error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.InvalidInput(field, message)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// IsEmail reports whether value passes the [Validator.Email] rule.
func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
