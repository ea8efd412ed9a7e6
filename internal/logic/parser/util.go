// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"strconv"
	"strings"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// MessageInvalidIndex is reported for an index that is not a positive integer.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseIndex parses a 1-based list index.
func ParseIndex(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	index, err := strconv.ParseUint(trimmed, 10, 31)
	if err != nil || index == 0 {
		return 0, apperr.InvalidInput("index", MessageInvalidIndex)
	}
	return int(index), nil
}

// ParseName trims and validates a name.
func ParseName(s string) (person.Name, error) {
	return person.NewName(strings.TrimSpace(s))
}

// ParsePhone trims and validates a phone number.
func ParsePhone(s string) (person.Phone, error) {
	return person.NewPhone(strings.TrimSpace(s))
}

// ParseEmail trims and validates an email.
func ParseEmail(s string) (person.Email, error) {
	return person.NewEmail(strings.TrimSpace(s))
}

// ParseAddress trims and validates an address.
func ParseAddress(s string) (person.Address, error) {
	return person.NewAddress(strings.TrimSpace(s))
}

// ParseTag trims and validates a tag.
func ParseTag(s string) (person.Tag, error) {
	return person.NewTag(strings.TrimSpace(s))
}

// ParseTags validates every tag and returns them as a set.
func ParseTags(values []string) ([]person.Tag, error) {
	tags := make([]person.Tag, 0, len(values))
	for _, value := range values {
		tag, err := ParseTag(value)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return person.TagSet(tags...), nil
}

// ParseCategory trims and validates a category.
func ParseCategory(s string) (person.Category, error) {
	return person.ParseCategory(s)
}

// ParseDay trims and validates a weekday code.
func ParseDay(s string) (tuition.Day, error) {
	return tuition.ParseDay(s)
}

// ParseTime trims and validates an HH:MM time.
func ParseTime(s string) (tuition.Time, error) {
	return tuition.ParseTime(s)
}

// ParseClassID trims and validates a class id.
func ParseClassID(s string) (tuition.ClassID, error) {
	return tuition.ParseClassID(strings.TrimSpace(s))
}
