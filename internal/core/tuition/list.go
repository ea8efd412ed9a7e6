// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tuition

import (
	"github.com/taibuivan/tutorbook/internal/core/unique"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// MessageDuplicateClass is reported when a slot is already taken.
const MessageDuplicateClass = "This tuition class already exists"

// UniqueList is the duplicate-rejecting list of classes, keyed by (day, time).
type UniqueList = unique.List[Class]

// NewUniqueList returns an empty class list.
func NewUniqueList() *UniqueList {
	return unique.New(Class.IsSame, unique.Errors{
		Duplicate: func() error { return apperr.Conflict(MessageDuplicateClass) },
		NotFound:  func() error { return apperr.NotFound("Tuition class") },
	})
}
