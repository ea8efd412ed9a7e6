// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tuition_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/internal/testutil"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input    string
		expected tuition.Day
		valid    bool
	}{
		{"MON", tuition.Monday, true},
		{"sun", tuition.Sunday, true},
		{"  Wed ", tuition.Wednesday, true},
		{"Monday", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			day, err := tuition.ParseDay(tt.input)
			if !tt.valid {
				require.Error(t, err)
				assert.Equal(t, tuition.DayConstraints, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, day)
		})
	}
}

func TestDay_Ordinal(t *testing.T) {
	assert.Equal(t, 0, tuition.Monday.Ordinal())
	assert.Equal(t, 6, tuition.Sunday.Ordinal())
	assert.Equal(t, -1, tuition.Day("XYZ").Ordinal())
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{" 17:00 ", true},
		{"24:00", false},
		{"9:30", false},
		{"12:60", false},
		{"noon", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := tuition.ParseTime(tt.input)
			assert.Equal(t, tt.valid, err == nil)
			assert.Equal(t, tt.valid, tuition.IsValidTime(tt.input))
		})
	}
}

func TestTime_Before(t *testing.T) {
	assert.True(t, testutil.Time(t, "09:00").Before(testutil.Time(t, "17:00")))
	assert.False(t, testutil.Time(t, "17:00").Before(testutil.Time(t, "09:00")))
	assert.False(t, testutil.Time(t, "17:00").Before(testutil.Time(t, "17:00")))
}

/*
TestCompareSlots orders classes by weekday first, then by start time.
*/
func TestCompareSlots(t *testing.T) {
	sundayMorning := testutil.Class(t, "SUN", "08:00")
	mondayEvening := testutil.Class(t, "MON", "17:00")
	mondayMorning := testutil.Class(t, "MON", "09:00")

	classes := []tuition.Class{sundayMorning, mondayEvening, mondayMorning}
	slices.SortFunc(classes, tuition.CompareSlots)

	assert.Equal(t, []tuition.Class{mondayMorning, mondayEvening, sundayMorning}, classes)
	assert.Zero(t, tuition.CompareSlots(mondayMorning, testutil.Class(t, "MON", "09:00")))
}

/*
TestClass_Identity verifies that slot sameness ignores ids while equality does not.
*/
func TestClass_Identity(t *testing.T) {
	first := tuition.NewClass(tuition.Monday, testutil.Time(t, "17:00"))
	second := tuition.NewClass(tuition.Monday, testutil.Time(t, "17:00"))

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, first.IsSame(second))
	assert.False(t, first.Equal(second))
	assert.Equal(t, "MON 17:00", first.Slot())
}

func TestParseClassID(t *testing.T) {
	class := tuition.NewClass(tuition.Friday, testutil.Time(t, "08:00"))

	parsed, err := tuition.ParseClassID(class.ID.String())
	require.NoError(t, err)
	assert.Equal(t, class.ID, parsed)

	_, err = tuition.ParseClassID("class-1")
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

/*
TestUniqueList_RefusesDoubleBooking verifies that a taken slot cannot be added twice.
*/
func TestUniqueList_RefusesDoubleBooking(t *testing.T) {
	list := tuition.NewUniqueList()
	require.NoError(t, list.Add(tuition.NewClass(tuition.Monday, testutil.Time(t, "17:00"))))

	err := list.Add(tuition.NewClass(tuition.Monday, testutil.Time(t, "17:00")))
	require.Error(t, err)
	assert.Equal(t, tuition.MessageDuplicateClass, err.Error())

	require.NoError(t, list.Add(tuition.NewClass(tuition.Tuesday, testutil.Time(t, "17:00"))))
	assert.Equal(t, 2, list.Len())
}
