// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tuition models tuition classes: a weekly slot identified by day and time.

Two classes are the same slot when their day and time match, whatever their ids;
[UniqueList] uses that to refuse double-booking a slot.
*/
package tuition

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/pkg/uuidv7"
)

// Field names used in validation errors.
const (
	FieldClassID = "classId"
	FieldDay     = "day"
	FieldTime    = "time"
)

// ClassID is the opaque identity of a [Class].
type ClassID struct {
	value string
}

// NewClassID mints a fresh identifier.
func NewClassID() ClassID {
	return ClassID{value: uuidv7.New()}
}

// ParseClassID parses a previously minted identifier.
func ParseClassID(s string) (ClassID, error) {
	canonical, err := uuidv7.Canonical(s)
	if err != nil {
		return ClassID{}, apperr.InvalidInput(FieldClassID, "Class ID should be a UUID, e.g. as printed by addclass")
	}
	return ClassID{value: canonical}, nil
}

// IsZero reports whether id was never set.
func (id ClassID) IsZero() bool { return id.value == "" }

func (id ClassID) String() string { return id.value }

// Class is a weekly tuition slot.
type Class struct {
	ID   ClassID
	Day  Day
	Time Time
}

// NewClass mints a class for the given slot.
func NewClass(day Day, time Time) Class {
	return Class{ID: NewClassID(), Day: day, Time: time}
}

// IsSame reports whether both classes occupy the same slot.
func (c Class) IsSame(other Class) bool {
	return c.Day == other.Day && c.Time == other.Time
}

// Equal reports whether every field matches.
func (c Class) Equal(other Class) bool {
	return c == other
}

// Slot renders the day and time, e.g. "MON 17:00".
func (c Class) Slot() string {
	return fmt.Sprintf("%s %s", c.Day, c.Time)
}

// CompareSlots orders classes through the week: by day, then by start time.
func CompareSlots(a, b Class) int {
	switch {
	case a.Day != b.Day:
		return a.Day.Ordinal() - b.Day.Ordinal()
	case a.Time.Before(b.Time):
		return -1
	case b.Time.Before(a.Time):
		return 1
	default:
		return 0
	}
}

func (c Class) String() string {
	return fmt.Sprintf("Class %s [%s]", c.ID, c.Slot())
}
