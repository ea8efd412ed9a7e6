// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package model is the façade commands execute against.

It holds the current [addressbook.AddressBook], the [UserPrefs] and a filtered
projection of the person list. The filtered projection is the only list a
front end renders; its 1-based positions are the INDEX arguments of commands.

Architecture:

  - Model: the interface commands depend on.
  - Manager: the single implementation, delegating every mutation to the book.
*/
package model

import (
	"github.com/taibuivan/tutorbook/internal/core/addressbook"
	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/pkg/observable"
)

// PredicateShowAll is the default filter: every person is visible.
func PredicateShowAll(person.Person) bool { return true }

// Model is the API commands use to read and change application state.
type Model interface {
	// # Preferences
	UserPrefs() UserPrefs
	SetUserPrefs(prefs UserPrefs)
	GuiSettings() GuiSettings
	SetGuiSettings(settings GuiSettings)
	AddressBookFilePath() string
	SetAddressBookFilePath(path string)

	// # Address book
	AddressBook() *addressbook.AddressBook
	SetAddressBook(book *addressbook.AddressBook) error

	// # Persons
	HasPerson(p person.Person) bool
	AddPerson(p person.Person) error
	SetPerson(target, edited person.Person) error
	DeletePerson(p person.Person) error
	PersonByID(id person.ID) (person.Person, bool)
	FindPersonByName(name string, want person.Category) (person.Person, bool)
	LinkStudentParent(studentID, parentID person.ID) error
	AssignStudentClass(studentID person.ID, classID tuition.ClassID) error

	// # Tuition classes
	HasTuitionClass(c tuition.Class) bool
	AddTuitionClass(c tuition.Class) error
	DeleteTuitionClass(c tuition.Class) (int, error)
	TuitionClassByID(id tuition.ClassID) (tuition.Class, bool)
	TuitionClassList() observable.View[tuition.Class]

	// # Filtered view
	FilteredPersonList() observable.View[person.Person]
	UpdateFilteredPersonList(predicate observable.Predicate[person.Person])
}

// Manager is the in-memory [Model].
type Manager struct {
	book     *addressbook.AddressBook
	prefs    UserPrefs
	filtered *observable.Filtered[person.Person]
}

// NewManager wraps a copy of book and prefs.
func NewManager(book *addressbook.AddressBook, prefs UserPrefs) *Manager {
	working := addressbook.New()
	if book != nil {
		working = book.Clone()
	}
	return &Manager{
		book:     working,
		prefs:    prefs,
		filtered: observable.NewFiltered(working.Persons()),
	}
}

// # Preferences

func (manager *Manager) UserPrefs() UserPrefs { return manager.prefs }

func (manager *Manager) SetUserPrefs(prefs UserPrefs) { manager.prefs = prefs }

func (manager *Manager) GuiSettings() GuiSettings { return manager.prefs.GuiSettings }

func (manager *Manager) SetGuiSettings(settings GuiSettings) { manager.prefs.GuiSettings = settings }

func (manager *Manager) AddressBookFilePath() string { return manager.prefs.AddressBookFilePath }

func (manager *Manager) SetAddressBookFilePath(path string) {
	manager.prefs.AddressBookFilePath = path
}

// # Address book

// AddressBook returns the live book. Callers must not mutate it outside commands.
func (manager *Manager) AddressBook() *addressbook.AddressBook { return manager.book }

// SetAddressBook replaces the contents in place, so subscribers of the filtered
// list keep receiving updates.
func (manager *Manager) SetAddressBook(book *addressbook.AddressBook) error {
	return manager.book.ResetData(book)
}

// # Persons

func (manager *Manager) HasPerson(p person.Person) bool { return manager.book.HasPerson(p) }

// AddPerson adds p and resets the filter so the new person is visible.
func (manager *Manager) AddPerson(p person.Person) error {
	if err := manager.book.AddPerson(p); err != nil {
		return err
	}
	manager.UpdateFilteredPersonList(PredicateShowAll)
	return nil
}

func (manager *Manager) SetPerson(target, edited person.Person) error {
	return manager.book.SetPerson(target, edited)
}

func (manager *Manager) DeletePerson(p person.Person) error {
	return manager.book.RemovePerson(p)
}

func (manager *Manager) PersonByID(id person.ID) (person.Person, bool) {
	return manager.book.PersonByID(id)
}

func (manager *Manager) FindPersonByName(name string, want person.Category) (person.Person, bool) {
	return manager.book.FindByName(name, want)
}

func (manager *Manager) LinkStudentParent(studentID, parentID person.ID) error {
	return manager.book.LinkStudentParent(studentID, parentID)
}

func (manager *Manager) AssignStudentClass(studentID person.ID, classID tuition.ClassID) error {
	return manager.book.AssignStudentClass(studentID, classID)
}

// # Tuition classes

func (manager *Manager) HasTuitionClass(c tuition.Class) bool { return manager.book.HasClass(c) }

func (manager *Manager) AddTuitionClass(c tuition.Class) error { return manager.book.AddClass(c) }


func (manager *Manager) DeleteTuitionClass(c tuition.Class) (int, error) {
	return manager.book.RemoveClass(c)
}

func (manager *Manager) TuitionClassByID(id tuition.ClassID) (tuition.Class, bool) {
	return manager.book.ClassByID(id)
}

func (manager *Manager) TuitionClassList() observable.View[tuition.Class] {
	return manager.book.Classes()
}

// # Filtered view

func (manager *Manager) FilteredPersonList() observable.View[person.Person] {
	return manager.filtered
}

func (manager *Manager) UpdateFilteredPersonList(predicate observable.Predicate[person.Person]) {
	manager.filtered.SetPredicate(predicate)
}
