// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package person

import (
	"fmt"
	"strings"

	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// Category tags which variant of [Person] a record is.
type Category string

const (
	Student Category = "STUDENT"
	Parent  Category = "PARENT"
	Tutor   Category = "TUTOR"
)

// Categories lists every category in display order.
var Categories = []Category{Student, Parent, Tutor}

// MessageInvalidCategory is formatted with the rejected text.
const MessageInvalidCategory = "Invalid category: %s"

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	candidate := Category(strings.ToUpper(trimmed))
	for _, category := range Categories {
		if category == candidate {
			return category, nil
		}
	}
	return "", apperr.InvalidInput(FieldCategory, fmt.Sprintf(MessageInvalidCategory, trimmed))
}

// IsValidCategory reports whether s parses as a [Category].
func IsValidCategory(s string) bool {
	_, err := ParseCategory(s)
	return err == nil
}

// Label is the lowercase form used in feedback, e.g. "student".
func (c Category) Label() string {
	return strings.ToLower(string(c))
}

func (c Category) String() string { return string(c) }
