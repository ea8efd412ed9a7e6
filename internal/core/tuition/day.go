// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tuition

import (
	"strings"

	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// Day is the weekday a class meets on. It serializes as an uppercase three-letter code.
type Day string

const (
	Monday    Day = "MON"
	Tuesday   Day = "TUE"
	Wednesday Day = "WED"
	Thursday  Day = "THU"
	Friday    Day = "FRI"
	Saturday  Day = "SAT"
	Sunday    Day = "SUN"
)

// Days lists every weekday in calendar order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayConstraints is reported for any rejected day.
const DayConstraints = "Day should be one of MON, TUE, WED, THU, FRI, SAT, SUN"

// ParseDay parses a three-letter day code, ignoring case and surrounding space.
func ParseDay(s string) (Day, error) {
	candidate := Day(strings.ToUpper(strings.TrimSpace(s)))
	for _, day := range Days {
		if day == candidate {
			return day, nil
		}
	}
	return "", apperr.InvalidInput(FieldDay, DayConstraints)
}

// Ordinal returns 0 for Monday through 6 for Sunday, or -1 for an invalid day.
func (d Day) Ordinal() int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

func (d Day) String() string { return string(d) }
