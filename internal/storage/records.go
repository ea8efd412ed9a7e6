// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/addressbook"
	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/pkg/slice"
)

// MessageMissingField is formatted with the name of an absent required field.
const MessageMissingField = "Person's %s field is missing!"

// addressBookRecord is the top-level shape of addressbook.json.
type addressBookRecord struct {
	Persons        []personRecord `json:"persons"`
	TuitionClasses []classRecord  `json:"tuitionClasses"`
}

// personRecord stores a person with its links as raw ids.
//
// Variant fields that do not apply to the record's category are omitted on save
// and ignored on load.
type personRecord struct {
	ID             *string  `json:"id"`
	Category       *string  `json:"category"`
	Name           *string  `json:"name"`
	Phone          *string  `json:"phone"`
	Email          *string  `json:"email"`
	Address        *string  `json:"address"`
	Tags           []string `json:"tags"`
	LinkedParentID *string  `json:"linkedParentId,omitempty"`
	ChildrenIDs    []string `json:"childrenIds,omitempty"`
	ClassID        *string  `json:"classId,omitempty"`
	Remark         *string  `json:"remark,omitempty"`
}

type classRecord struct {
	ClassID string `json:"classId"`
	Day     string `json:"day"`
	Time    string `json:"time"`
}

// # Encoding

// newAddressBookRecord converts book. Empty lists are written as [] rather than null.
func newAddressBookRecord(book *addressbook.AddressBook) addressBookRecord {
	record := addressBookRecord{
		Persons:        slice.Map(book.PersonList(), newPersonRecord),
		TuitionClasses: slice.Map(book.ClassList(), newClassRecord),
	}
	if record.Persons == nil {
		record.Persons = []personRecord{}
	}
	if record.TuitionClasses == nil {
		record.TuitionClasses = []classRecord{}
	}
	return record
}

func newPersonRecord(p person.Person) personRecord {
	record := personRecord{
		ID:       text(p.ID.String()),
		Category: text(p.Category.String()),
		Name:     text(p.Name.String()),
		Phone:    text(p.Phone.String()),
		Email:    text(p.Email.String()),
		Address:  text(p.Address.String()),
		Tags:     p.TagNames(),
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}
	if !p.Remark.IsEmpty() {
		record.Remark = text(p.Remark.String())
	}

	switch p.Category {
	case person.Student:
		if p.HasParent() {
			record.LinkedParentID = text(p.ParentID.String())
		}
		if p.HasClass() {
			record.ClassID = text(p.Class.ID.String())
		}
	case person.Parent:
		record.ChildrenIDs = slice.Map(p.ChildrenIDs, person.ID.String)
	}
	return record
}

func newClassRecord(c tuition.Class) classRecord {
	return classRecord{ClassID: c.ID.String(), Day: c.Day.String(), Time: c.Time.String()}
}

func text(s string) *string { return &s }

// # Decoding

// toClass converts a record into a class.
func (record classRecord) toClass() (tuition.Class, error) {
	id, err := tuition.ParseClassID(record.ClassID)
	if err != nil {
		return tuition.Class{}, err
	}
	day, err := tuition.ParseDay(record.Day)
	if err != nil {
		return tuition.Class{}, err
	}
	start, err := tuition.ParseTime(record.Time)
	if err != nil {
		return tuition.Class{}, err
	}
	return tuition.Class{ID: id, Day: day, Time: start}, nil
}

// toPerson converts a record into a person without its links.
func (record personRecord) toPerson() (person.Person, error) {
	idText, err := required(record.ID, "PersonId")
	if err != nil {
		return person.Person{}, err
	}
	id, err := person.ParseID(idText)
	if err != nil {
		return person.Person{}, err
	}

	nameText, err := required(record.Name, "Name")
	if err != nil {
		return person.Person{}, err
	}
	name, err := person.NewName(nameText)
	if err != nil {
		return person.Person{}, err
	}

	phoneText, err := required(record.Phone, "Phone")
	if err != nil {
		return person.Person{}, err
	}
	phone, err := person.NewPhone(phoneText)
	if err != nil {
		return person.Person{}, err
	}

	emailText, err := required(record.Email, "Email")
	if err != nil {
		return person.Person{}, err
	}
	email, err := person.NewEmail(emailText)
	if err != nil {
		return person.Person{}, err
	}

	addressText, err := required(record.Address, "Address")
	if err != nil {
		return person.Person{}, err
	}
	address, err := person.NewAddress(addressText)
	if err != nil {
		return person.Person{}, err
	}

	tags := make([]person.Tag, 0, len(record.Tags))
	for _, tagText := range record.Tags {
		tag, err := person.NewTag(tagText)
		if err != nil {
			return person.Person{}, err
		}
		tags = append(tags, tag)
	}

	categoryText, err := required(record.Category, "Category")
	if err != nil {
		return person.Person{}, err
	}
	category, err := person.ParseCategory(categoryText)
	if err != nil {
		return person.Person{}, err
	}

	restored := person.Restore(id, category, name, phone, email, address, tags)
	if record.Remark != nil {
		restored = restored.WithRemark(person.NewRemark(*record.Remark))
	}
	return restored, nil
}

func required(value *string, field string) (string, error) {
	if value == nil {
		return "", apperr.InvalidInput(field, fmt.Sprintf(MessageMissingField, field))
	}
	return *value, nil
}
