// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tuition

import (
	"regexp"
	"strings"

	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// TimeConstraints is reported for any rejected time.
const TimeConstraints = "Time should be in 24-hour HH:MM format, e.g. 09:30 or 17:00"

var timeRegex = regexp.MustCompile(`^(?:[01][0-9]|2[0-3]):[0-5][0-9]$`)

// Time is a 24-hour wall-clock start time, canonically "HH:MM".
type Time struct {
	value string
}

// ParseTime parses "HH:MM" after trimming surrounding space.
func ParseTime(s string) (Time, error) {
	trimmed := strings.TrimSpace(s)
	if !timeRegex.MatchString(trimmed) {
		return Time{}, apperr.InvalidInput(FieldTime, TimeConstraints)
	}
	return Time{value: trimmed}, nil
}

// IsValidTime reports whether s parses as a [Time].
func IsValidTime(s string) bool {
	return timeRegex.MatchString(strings.TrimSpace(s))
}

// Before reports whether t is earlier in the day than other.
func (t Time) Before(other Time) bool {
	return t.value < other.value
}

// IsZero reports whether t was never set.
func (t Time) IsZero() bool { return t.value == "" }

func (t Time) String() string { return t.value }
