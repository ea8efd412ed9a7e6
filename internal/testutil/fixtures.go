// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package testutil builds valid persons, classes and books for tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tutorbook/internal/core/addressbook"
	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
)

// NewPerson builds a person with a derived email and a fixed address.
func NewPerson(t *testing.T, category person.Category, name, phone string, tags ...string) person.Person {
	t.Helper()

	parsedName, err := person.NewName(name)
	require.NoError(t, err)
	parsedPhone, err := person.NewPhone(phone)
	require.NoError(t, err)
	email, err := person.NewEmail(strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@example.com")
	require.NoError(t, err)
	address, err := person.NewAddress("311, Clementi Ave 2")
	require.NoError(t, err)

	parsedTags := make([]person.Tag, 0, len(tags))
	for _, tag := range tags {
		parsedTag, err := person.NewTag(tag)
		require.NoError(t, err)
		parsedTags = append(parsedTags, parsedTag)
	}
	return person.New(category, parsedName, parsedPhone, email, address, parsedTags)
}

// Student builds an unlinked student.
func Student(t *testing.T, name, phone string) person.Person {
	t.Helper()
	return NewPerson(t, person.Student, name, phone)
}

// Parent builds a parent without children.
func Parent(t *testing.T, name, phone string) person.Person {
	t.Helper()
	return NewPerson(t, person.Parent, name, phone)
}

// Tutor builds a tutor.
func Tutor(t *testing.T, name, phone string) person.Person {
	t.Helper()
	return NewPerson(t, person.Tutor, name, phone)
}

// Time parses a start time.
func Time(t *testing.T, start string) tuition.Time {
	t.Helper()

	parsed, err := tuition.ParseTime(start)
	require.NoError(t, err)
	return parsed
}

// Class builds a class in the given slot.
func Class(t *testing.T, day, start string) tuition.Class {
	t.Helper()

	parsedDay, err := tuition.ParseDay(day)
	require.NoError(t, err)
	parsedTime, err := tuition.ParseTime(start)
	require.NoError(t, err)
	return tuition.NewClass(parsedDay, parsedTime)
}

// Book adds persons and classes to a fresh address book.
func Book(t *testing.T, persons []person.Person, classes ...tuition.Class) *addressbook.AddressBook {
	t.Helper()

	book := addressbook.New()
	for _, c := range classes {
		require.NoError(t, book.AddClass(c))
	}
	for _, p := range persons {
		require.NoError(t, book.AddPerson(p))
	}
	return book
}

// Family is a parent with two linked children, one of them assigned to a class.
type Family struct {
	Parent   person.Person
	Assigned person.Person
	Sibling  person.Person
	Class    tuition.Class
	Book     *addressbook.AddressBook
}

// NewFamily builds and links a [Family].
func NewFamily(t *testing.T) Family {
	t.Helper()

	family := Family{
		Parent:   Parent(t, "Reyna Bong", "91234567"),
		Assigned: Student(t, "John Doe", "98765432"),
		Sibling:  Student(t, "Mary Jane", "87654321"),
		Class:    Class(t, "MON", "17:00"),
	}
	family.Book = Book(t, []person.Person{family.Parent, family.Assigned, family.Sibling}, family.Class)

	require.NoError(t, family.Book.LinkStudentParent(family.Assigned.ID, family.Parent.ID))
	require.NoError(t, family.Book.LinkStudentParent(family.Sibling.ID, family.Parent.ID))
	require.NoError(t, family.Book.AssignStudentClass(family.Assigned.ID, family.Class.ID))
	return family
}
