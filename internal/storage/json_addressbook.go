// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/addressbook"
	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/internal/platform/ctxutil"
)

// jsonAddressBookStorage implements [AddressBookStorage] on a single JSON file.
type jsonAddressBookStorage struct {
	path string
}

// NewJSONAddressBookStorage constructs a store reading and writing path.
func NewJSONAddressBookStorage(path string) AddressBookStorage {
	return &jsonAddressBookStorage{path: path}
}

func (storage *jsonAddressBookStorage) AddressBookFilePath() string {
	return storage.path
}

/*
ReadAddressBook loads the book in two passes.

Description: The first pass converts every record into a typed value without
touching links. The second pass resolves links by id:

  - A student's parent must exist and be a parent; the parent gains the student
    as a child if its own list omitted it.
  - A parent's child must exist and be a student; an unlinked child gains the
    parent. A child linked to someone else is corruption.
  - A student's class must exist; the student's day and time are taken from it.

The resolved state is then verified as a whole before it is returned.
*/
func (storage *jsonAddressBookStorage) ReadAddressBook(context context.Context) (*addressbook.AddressBook, error) {
	logger := ctxutil.GetLogger(context)

	var record addressBookRecord
	if err := readJSONFile(storage.path, &record); err != nil {
		return nil, err
	}

	// Pass one: values
	classes := make([]tuition.Class, 0, len(record.TuitionClasses))
	for _, classRecord := range record.TuitionClasses {
		class, err := classRecord.toClass()
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	persons := make([]person.Person, 0, len(record.Persons))
	for _, personRecord := range record.Persons {
		p, err := personRecord.toPerson()
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}

	// Pass two: links
	if err := resolveLinks(record.Persons, persons, classes); err != nil {
		return nil, err
	}

	book := addressbook.New()
	if err := book.Replace(persons, classes); err != nil {
		if apperr.IsCode(err, apperr.CodeConflict) {
			return nil, apperr.DataCorruption("duplicate entries: " + err.Error())
		}
		return nil, apperr.DataCorruption(err.Error())
	}

	logger.Info("addressbook_loaded",
		"path", storage.path,
		"persons", len(persons),
		"classes", len(classes),
	)
	return book, nil
}

func (storage *jsonAddressBookStorage) SaveAddressBook(context context.Context, book *addressbook.AddressBook) error {
	record := newAddressBookRecord(book)
	if err := writeJSONFile(storage.path, record); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Info("addressbook_saved",
		"path", storage.path,
		"persons", len(record.Persons),
		"classes", len(record.TuitionClasses),
	)
	return nil
}

// resolveLinks fills the variant fields of persons from their records. persons[i]
// was decoded from records[i].
func resolveLinks(records []personRecord, persons []person.Person, classes []tuition.Class) error {
	index := make(map[person.ID]int, len(persons))
	for i, p := range persons {
		index[p.ID] = i
	}
	classByID := make(map[tuition.ClassID]tuition.Class, len(classes))
	for _, c := range classes {
		classByID[c.ID] = c
	}

	// Parents first, so each keeps the child order it was saved with.
	for i, record := range records {
		if !persons[i].IsParent() {
			continue
		}
		for _, childText := range record.ChildrenIDs {
			if err := resolveChild(persons, index, i, childText); err != nil {
				return err
			}
		}
	}

	for i, record := range records {
		if !persons[i].IsStudent() {
			continue
		}
		if record.LinkedParentID != nil && *record.LinkedParentID != "" {
			if err := resolveParent(persons, index, i, *record.LinkedParentID); err != nil {
				return err
			}
		}
		if record.ClassID != nil && *record.ClassID != "" {
			if err := resolveClass(persons, classByID, i, *record.ClassID); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveParent(persons []person.Person, index map[person.ID]int, studentAt int, parentText string) error {
	student := persons[studentAt]
	parentID, err := person.ParseID(parentText)
	if err != nil {
		return err
	}
	parentAt, ok := index[parentID]
	if !ok {
		return apperr.DataCorruption(fmt.Sprintf("parent %s of %s does not exist", parentID, student.Name))
	}
	if !persons[parentAt].IsParent() {
		return apperr.DataCorruption(fmt.Sprintf("%s is linked to %s, who is not a parent", student.Name, persons[parentAt].Name))
	}
	if student.HasParent() && student.ParentID != parentID {
		return apperr.DataCorruption(fmt.Sprintf("%s is linked to one parent but listed as a child of another", student.Name))
	}
	persons[studentAt] = student.WithParent(parentID)
	persons[parentAt] = persons[parentAt].WithChild(student.ID)
	return nil
}

func resolveChild(persons []person.Person, index map[person.ID]int, parentAt int, childText string) error {
	parent := persons[parentAt]
	childID, err := person.ParseID(childText)
	if err != nil {
		return err
	}
	childAt, ok := index[childID]
	if !ok {
		return apperr.DataCorruption(fmt.Sprintf("child %s of %s does not exist", childID, parent.Name))
	}
	child := persons[childAt]
	if !child.IsStudent() {
		return apperr.DataCorruption(fmt.Sprintf("child %s of %s is not a student", child.Name, parent.Name))
	}

	if child.HasParent() && child.ParentID != parent.ID {
		return apperr.DataCorruption(fmt.Sprintf("%s is listed as a child of %s but linked to another parent", child.Name, parent.Name))
	}
	persons[childAt] = child.WithParent(parent.ID)
	persons[parentAt] = parent.WithChild(childID)
	return nil
}

func resolveClass(persons []person.Person, classByID map[tuition.ClassID]tuition.Class, studentAt int, classText string) error {
	student := persons[studentAt]
	classID, err := tuition.ParseClassID(classText)
	if err != nil {
		return err
	}
	class, ok := classByID[classID]
	if !ok {
		return apperr.DataCorruption(fmt.Sprintf("class %s assigned to %s does not exist", classID, student.Name))
	}
	persons[studentAt] = student.WithClass(class)
	return nil
}
