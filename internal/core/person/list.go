// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package person

import (
	"github.com/taibuivan/tutorbook/internal/core/unique"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// MessageDuplicatePerson is reported when an input duplicates an existing person.
const MessageDuplicatePerson = "This person already exists"

// UniqueList is the duplicate-rejecting list of persons.
type UniqueList = unique.List[Person]

// NewUniqueList returns an empty person list.
func NewUniqueList() *UniqueList {
	return unique.New(Person.IsSame, unique.Errors{
		Duplicate: func() error { return apperr.Conflict(MessageDuplicatePerson) },
		NotFound:  func() error { return apperr.NotFound("Person") },
	})
}
