// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package person_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/internal/testutil"
)

/*
TestValues_Validation checks every field constructor against accepted and rejected inputs.
*/
func TestValues_Validation(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		input string
		valid bool
	}{
		{"name_plain", person.IsValidName, "John Doe", true},
		{"name_accented", person.IsValidName, "Zoë Tan", true},
		{"name_digits", person.IsValidName, "Peter 2nd", true},
		{"name_blank", person.IsValidName, " ", false},
		{"name_symbol", person.IsValidName, "peter*", false},
		{"phone_ok", person.IsValidPhone, "911", true},
		{"phone_short", person.IsValidPhone, "91", false},
		{"phone_spaces", person.IsValidPhone, "9011p041", false},
		{"email_ok", person.IsValidEmail, "peterjack_1190@example.com", true},
		{"email_no_at", person.IsValidEmail, "peterjackexample.com", false},
		{"address_ok", person.IsValidAddress, "Blk 456, Den Road, #01-355", true},
		{"address_blank", person.IsValidAddress, " ", false},
		{"tag_ok", person.IsValidTag, "friends", true},
		{"tag_space", person.IsValidTag, "best friends", false},
		{"tag_empty", person.IsValidTag, "", false},
		{"category_lower", person.IsValidCategory, "tutor", true},
		{"category_unknown", person.IsValidCategory, "teacher", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.check(tt.input))
		})
	}
}

/*
TestNewName_ConstraintMessage verifies that a rejected value reports its single constraint.
*/
func TestNewName_ConstraintMessage(t *testing.T) {
	_, err := person.NewName("")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.Equal(t, person.NameConstraints, ae.Message)

	_, err = person.NewPhone("12")
	assert.EqualError(t, err, person.PhoneConstraints)
}

func TestParseCategory(t *testing.T) {
	category, err := person.ParseCategory(" Student ")
	require.NoError(t, err)
	assert.Equal(t, person.Student, category)
	assert.Equal(t, "student", category.Label())

	_, err = person.ParseCategory("teacher")
	assert.EqualError(t, err, "Invalid category: teacher")
}

/*
TestTagSet verifies that tags are sorted and deduplicated.
*/
func TestTagSet(t *testing.T) {
	p := testutil.NewPerson(t, person.Tutor, "Alex Yeoh", "87438807", "math", "friends", "math")

	assert.Equal(t, []string{"friends", "math"}, p.TagNames())
	assert.Contains(t, p.String(), "Tags: [friends][math]")
}

/*
TestPerson_IsSame covers the input-time duplicate rule: same id, or same name and phone.
*/
func TestPerson_IsSame(t *testing.T) {
	alice := testutil.Student(t, "Alice Pauline", "94351253")

	twin := testutil.Tutor(t, "Alice Pauline", "94351253")
	assert.True(t, alice.IsSame(twin))

	otherPhone := testutil.Student(t, "Alice Pauline", "11111111")
	assert.False(t, alice.IsSame(otherPhone))

	renamed := alice.Clone()
	renamed.Name, _ = person.NewName("Alicia")
	assert.True(t, alice.IsSame(renamed))
	assert.False(t, alice.Equal(renamed))
}

/*
TestPerson_CopyOnWrite verifies that With methods never touch the receiver.
*/
func TestPerson_CopyOnWrite(t *testing.T) {
	parent := testutil.Parent(t, "Reyna Bong", "91234567")
	student := testutil.Student(t, "John Doe", "98765432")
	class := tuition.NewClass(tuition.Monday, testutil.Time(t, "17:00"))

	linked := parent.WithChild(student.ID).WithChild(student.ID)
	assert.Empty(t, parent.ChildrenIDs)
	assert.Equal(t, []person.ID{student.ID}, linked.ChildrenIDs)
	assert.True(t, linked.HasChild(student.ID))
	assert.Empty(t, linked.WithoutChild(student.ID).ChildrenIDs)

	assigned := student.WithParent(parent.ID).WithClass(class)
	assert.False(t, student.HasParent())
	assert.False(t, student.HasClass())
	assert.Equal(t, parent.ID, assigned.ParentID)
	assert.True(t, assigned.Class.Matches(class))
	assert.Contains(t, assigned.String(), "Class: MON 17:00")

	cleared := assigned.WithoutParent().WithoutClass()
	assert.False(t, cleared.HasParent())
	assert.False(t, cleared.HasClass())
	assert.True(t, assigned.HasClass())

	remarked := student.WithRemark(person.NewRemark("  Likes to swim.  "))
	assert.Equal(t, "Likes to swim.", remarked.Remark.String())
	assert.True(t, student.Remark.IsEmpty())
}

/*
TestPerson_CheckVariant verifies that variant fields are refused on other categories.
*/
func TestPerson_CheckVariant(t *testing.T) {
	tutor := testutil.Tutor(t, "Bernice Yu", "99272758")
	student := testutil.Student(t, "Charlotte Oliveiro", "93210283")

	assert.NoError(t, tutor.CheckVariant())
	assert.NoError(t, student.WithParent(person.NewID()).CheckVariant())

	err := tutor.WithParent(person.NewID()).CheckVariant()
	assert.True(t, apperr.IsCode(err, apperr.CodeWrongCategory))

	err = student.WithChild(tutor.ID).CheckVariant()
	assert.EqualError(t, err, "Charlotte Oliveiro is not a parent")
}

func TestParseID(t *testing.T) {
	id := person.NewID()

	parsed, err := person.ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.False(t, parsed.IsZero())

	_, err = person.ParseID("42")
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
	assert.True(t, person.ID{}.IsZero())
}

/*
TestPerson_String checks the one-line rendering used in feedback.
*/
func TestPerson_String(t *testing.T) {
	p := testutil.Student(t, "John Doe", "98765432")

	assert.Equal(t,
		"John Doe; Category: student; Phone: 98765432; Email: johndoe@example.com; Address: 311, Clementi Ave 2",
		p.String())
}
