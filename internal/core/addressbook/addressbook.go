// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package addressbook is the aggregate root of tutorbook's data.

It owns exactly one person list and one class list and is the only place that
keeps both sides of a link consistent:

 1. No two persons share an id, or a name and phone.
 2. No two classes share a day and time.
 3. A student's ParentID names an existing parent that lists the student as a child.
 4. Every id in a parent's ChildrenIDs names a student whose ParentID is that parent.
 5. A student's class reference names an existing class and agrees with its slot.

# Atomicity

Every mutation builds a candidate state, verifies all five rules against it, and
only then commits it to the lists. A failed mutation changes nothing and
notifies nobody.
*/
package addressbook

import (
	"fmt"
	"slices"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/pkg/observable"
	"github.com/taibuivan/tutorbook/pkg/textnorm"
)

// AddressBook holds every person and tuition class.
//
// # Concurrency
//
// AddressBook is not safe for concurrent use; callers run it on one application thread.
type AddressBook struct {
	persons *person.UniqueList
	classes *tuition.UniqueList
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{
		persons: person.NewUniqueList(),
		classes: tuition.NewUniqueList(),
	}
}

// # Views

// Persons returns the observable person list.
func (book *AddressBook) Persons() observable.View[person.Person] {
	return book.persons.View()
}

// Classes returns the observable class list.
func (book *AddressBook) Classes() observable.View[tuition.Class] {
	return book.classes.View()
}

// PersonList returns a snapshot of all persons in insertion order.
func (book *AddressBook) PersonList() []person.Person {
	return book.persons.Items()
}

// ClassList returns a snapshot of all classes in insertion order.
func (book *AddressBook) ClassList() []tuition.Class {
	return book.classes.Items()
}

// # Lookups

// HasPerson reports whether a person same-as p exists.
func (book *AddressBook) HasPerson(p person.Person) bool {
	return book.persons.Contains(p)
}

// PersonByID returns the person with id.
func (book *AddressBook) PersonByID(id person.ID) (person.Person, bool) {
	persons := book.persons.Items()
	if i := indexOfPerson(persons, id); i >= 0 {
		return persons[i], true
	}
	return person.Person{}, false
}

// FindByName returns the person whose name matches name, ignoring case and accents.
//
// When several persons share the name, one of the wanted category is preferred; if
// none has that category the first match of any category is returned so callers can
// report the mismatch.
func (book *AddressBook) FindByName(name string, want person.Category) (person.Person, bool) {
	var fallback *person.Person
	for _, candidate := range book.persons.Items() {
		if !textnorm.EqualFold(candidate.Name.String(), name) {
			continue
		}
		if candidate.Category == want {
			return candidate, true
		}
		if fallback == nil {
			found := candidate
			fallback = &found
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return person.Person{}, false
}

// HasClass reports whether a class occupying the same slot as c exists.
func (book *AddressBook) HasClass(c tuition.Class) bool {
	return book.classes.Contains(c)
}

// ClassByID returns the class with id.
func (book *AddressBook) ClassByID(id tuition.ClassID) (tuition.Class, bool) {
	classes := book.classes.Items()
	if i := indexOfClass(classes, id); i >= 0 {
		return classes[i], true
	}
	return tuition.Class{}, false
}

// StudentsIn returns the students assigned to the class with id.
func (book *AddressBook) StudentsIn(id tuition.ClassID) []person.Person {
	var students []person.Person
	for _, p := range book.persons.Items() {
		if p.HasClass() && p.Class.ID == id {
			students = append(students, p)
		}
	}
	return students
}

// # Person operations

// AddPerson adds p. Any links p carries must already be consistent with the book.
func (book *AddressBook) AddPerson(p person.Person) error {
	candidate := append(book.persons.Items(), p)
	if err := verify(book.persons, book.classes, candidate, book.classes.Items()); err != nil {
		return err
	}
	return book.persons.Add(p)
}

// SetPerson replaces target with edited, keeping its position.
func (book *AddressBook) SetPerson(target, edited person.Person) error {
	persons := book.persons.Items()
	position := indexOfPerson(persons, target.ID)
	if position < 0 {
		return apperr.NotFound("Person")
	}
	persons[position] = edited
	return book.replacePersons(persons)
}

// RemovePerson removes p and clears every link it took part in.
func (book *AddressBook) RemovePerson(p person.Person) error {
	persons := book.persons.Items()
	position := indexOfPerson(persons, p.ID)
	if position < 0 {
		return apperr.NotFound("Person")
	}
	removed := persons[position]
	persons = slices.Delete(persons, position, position+1)

	for i, other := range persons {
		switch {
		case removed.IsStudent() && removed.ParentID == other.ID:
			persons[i] = other.WithoutChild(removed.ID)
		case removed.IsParent() && other.ParentID == removed.ID:
			persons[i] = other.WithoutParent()
		}
	}
	return book.replacePersons(persons)
}

// # Links

// LinkStudentParent links the student to the parent on both sides.
//
// Linking an already linked pair is a no-op. A student linked to another parent
// is moved.
func (book *AddressBook) LinkStudentParent(studentID, parentID person.ID) error {
	persons := book.persons.Items()
	studentAt, parentAt := indexOfPerson(persons, studentID), indexOfPerson(persons, parentID)
	if studentAt < 0 {
		return apperr.NotFound("Student")
	}
	if parentAt < 0 {
		return apperr.NotFound("Parent")
	}

	student, parent := persons[studentAt], persons[parentAt]
	if !student.IsStudent() {
		return apperr.WrongCategory(fmt.Sprintf("%s is not a student", student.Name))
	}
	if !parent.IsParent() {
		return apperr.WrongCategory(fmt.Sprintf("%s is not a parent", parent.Name))
	}
	if student.ParentID == parentID && parent.HasChild(studentID) {
		return nil
	}

	if student.HasParent() && student.ParentID != parentID {
		if previousAt := indexOfPerson(persons, student.ParentID); previousAt >= 0 {
			persons[previousAt] = persons[previousAt].WithoutChild(studentID)
		}
	}
	persons[studentAt] = student.WithParent(parentID)
	persons[parentAt] = persons[parentAt].WithChild(studentID)
	return book.replacePersons(persons)
}

// UnlinkStudentParent removes the student's parent link on both sides. It is a
// no-op for an unlinked student.
func (book *AddressBook) UnlinkStudentParent(studentID person.ID) error {
	persons := book.persons.Items()
	studentAt := indexOfPerson(persons, studentID)
	if studentAt < 0 {
		return apperr.NotFound("Student")
	}
	student := persons[studentAt]
	if !student.HasParent() {
		return nil
	}
	if parentAt := indexOfPerson(persons, student.ParentID); parentAt >= 0 {
		persons[parentAt] = persons[parentAt].WithoutChild(studentID)
	}
	persons[studentAt] = student.WithoutParent()
	return book.replacePersons(persons)
}

// AssignStudentClass points the student at the class, copying its slot.
func (book *AddressBook) AssignStudentClass(studentID person.ID, classID tuition.ClassID) error {
	persons := book.persons.Items()
	studentAt := indexOfPerson(persons, studentID)
	if studentAt < 0 {
		return apperr.NotFound("Student")
	}
	class, ok := book.ClassByID(classID)
	if !ok {
		return apperr.NotFound("Tuition class")
	}
	student := persons[studentAt]
	if !student.IsStudent() {
		return apperr.WrongCategory(fmt.Sprintf("%s is not a student", student.Name))
	}
	if student.HasClass() && student.Class.Matches(class) {
		return nil
	}
	persons[studentAt] = student.WithClass(class)
	return book.replacePersons(persons)
}

// UnassignStudentClass clears the student's class. It is a no-op when unassigned.
func (book *AddressBook) UnassignStudentClass(studentID person.ID) error {
	persons := book.persons.Items()
	studentAt := indexOfPerson(persons, studentID)
	if studentAt < 0 {
		return apperr.NotFound("Student")
	}
	if !persons[studentAt].HasClass() {
		return nil
	}
	persons[studentAt] = persons[studentAt].WithoutClass()
	return book.replacePersons(persons)
}

// # Class operations

// AddClass adds c.
func (book *AddressBook) AddClass(c tuition.Class) error {
	return book.classes.Add(c)
}

// SetClass replaces target with edited and moves every assigned student along.
func (book *AddressBook) SetClass(target, edited tuition.Class) error {
	classes := book.classes.Items()
	position := indexOfClass(classes, target.ID)
	if position < 0 {
		return apperr.NotFound("Tuition class")
	}
	classes[position] = edited

	persons := book.persons.Items()
	for i, p := range persons {
		if p.HasClass() && p.Class.ID == target.ID {
			persons[i] = p.WithClass(edited)
		}
	}
	return book.replace(persons, classes)
}

// RemoveClass removes c and unassigns its students. It returns how many students
// were unassigned so callers can warn about it.
func (book *AddressBook) RemoveClass(c tuition.Class) (int, error) {
	classes := book.classes.Items()
	position := indexOfClass(classes, c.ID)
	if position < 0 {
		return 0, apperr.NotFound("Tuition class")
	}
	classes = slices.Delete(classes, position, position+1)

	unassigned := 0
	persons := book.persons.Items()
	for i, p := range persons {
		if p.HasClass() && p.Class.ID == c.ID {
			persons[i] = p.WithoutClass()
			unassigned++
		}
	}
	if err := book.replace(persons, classes); err != nil {
		return 0, err
	}
	return unassigned, nil
}

// # Whole-book operations

// Replace swaps in the given persons and classes after verifying every invariant.
func (book *AddressBook) Replace(persons []person.Person, classes []tuition.Class) error {
	return book.replace(persons, classes)
}

// ResetData replaces this book's contents with a copy of other's.
func (book *AddressBook) ResetData(other *AddressBook) error {
	return book.replace(clonePersons(other.PersonList()), other.ClassList())
}

// Verify re-checks every invariant against the current contents.
func (book *AddressBook) Verify() error {
	return verify(book.persons, book.classes, book.persons.Items(), book.classes.Items())
}

// Clone returns an independent deep copy. It panics if the book no longer verifies.
func (book *AddressBook) Clone() *AddressBook {
	clone := New()
	if err := clone.replace(clonePersons(book.persons.Items()), book.classes.Items()); err != nil {
		panic(fmt.Sprintf("addressbook: clone of an inconsistent book: %v", err))
	}
	return clone
}

// Equal reports whether both books hold equal persons and classes in the same order.
func (book *AddressBook) Equal(other *AddressBook) bool {
	return slices.EqualFunc(book.persons.Items(), other.persons.Items(), person.Person.Equal) &&
		slices.EqualFunc(book.classes.Items(), other.classes.Items(), tuition.Class.Equal)
}

func (book *AddressBook) replacePersons(persons []person.Person) error {
	if err := verify(book.persons, book.classes, persons, book.classes.Items()); err != nil {
		return err
	}
	return book.persons.SetAll(persons)
}

func (book *AddressBook) replace(persons []person.Person, classes []tuition.Class) error {
	if err := verify(book.persons, book.classes, persons, classes); err != nil {
		return err
	}
	// Persons first, so a class listener never sees a student pointing at a removed class.
	if !slices.EqualFunc(book.persons.Items(), persons, person.Person.Equal) {
		if err := book.persons.SetAll(persons); err != nil {
			return err
		}
	}
	if !slices.Equal(book.classes.Items(), classes) {
		if err := book.classes.SetAll(classes); err != nil {
			return err
		}
	}
	return nil
}

func indexOfPerson(persons []person.Person, id person.ID) int {
	return slices.IndexFunc(persons, func(p person.Person) bool { return p.ID == id })
}

func indexOfClass(classes []tuition.Class, id tuition.ClassID) int {
	return slices.IndexFunc(classes, func(c tuition.Class) bool { return c.ID == id })
}

func clonePersons(persons []person.Person) []person.Person {
	clones := make([]person.Person, len(persons))
	for i, p := range persons {
		clones[i] = p.Clone()
	}
	return clones
}
