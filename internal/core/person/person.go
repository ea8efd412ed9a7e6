// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package person models the people in the contact book.

A [Person] is a tagged variant: one record of common fields plus a [Category]
that decides which of the variant fields are meaningful.

  - STUDENT: ParentID (link to a parent) and Class (tuition class reference).
  - PARENT: ChildrenIDs (ordered, unique student ids).
  - TUTOR: no extra fields.

Persons are values. Every "With" method returns a modified copy and never touches
the receiver, so a Person taken from a list can be edited freely and handed back to
the address book, which is the only place links are enforced.

# Identity

[Person.IsSame] (same id, or same name and phone) blocks duplicates at input time;
[Person.Equal] (every attribute) is used by storage diffing and tests.
*/
package person

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/pkg/slice"
)

// ClassRef is a student's pointer to a tuition class with the slot denormalized
// for display.
type ClassRef struct {
	ID   tuition.ClassID
	Day  tuition.Day
	Time tuition.Time
}

// RefTo builds the reference for class.
func RefTo(class tuition.Class) ClassRef {
	return ClassRef{ID: class.ID, Day: class.Day, Time: class.Time}
}

// Matches reports whether the reference agrees with class on id, day and time.
func (ref ClassRef) Matches(class tuition.Class) bool {
	return ref.ID == class.ID && ref.Day == class.Day && ref.Time == class.Time
}

// Person is a student, parent or tutor.
type Person struct {
	ID       ID
	Category Category
	Name     Name
	Phone    Phone
	Email    Email
	Address  Address
	Tags     []Tag
	Remark   Remark

	// ParentID links a student to its parent; zero when unlinked.
	ParentID ID
	// Class is the student's tuition class; nil when unassigned.
	Class *ClassRef
	// ChildrenIDs lists a parent's linked students in link order.
	ChildrenIDs []ID
}

// New creates a person of the given category with a freshly minted id.
func New(category Category, name Name, phone Phone, email Email, address Address, tags []Tag) Person {
	return Restore(NewID(), category, name, phone, email, address, tags)
}

// Restore creates a person with a known id, as when reading it back from storage.
func Restore(id ID, category Category, name Name, phone Phone, email Email, address Address, tags []Tag) Person {
	return Person{
		ID:       id,
		Category: category,
		Name:     name,
		Phone:    phone,
		Email:    email,
		Address:  address,
		Tags:     TagSet(tags...),
	}
}

// # Variant checks

// IsStudent reports whether p is a student.
func (p Person) IsStudent() bool { return p.Category == Student }

// IsParent reports whether p is a parent.
func (p Person) IsParent() bool { return p.Category == Parent }

// IsTutor reports whether p is a tutor.
func (p Person) IsTutor() bool { return p.Category == Tutor }

// HasParent reports whether a student is linked to a parent.
func (p Person) HasParent() bool { return !p.ParentID.IsZero() }

// HasClass reports whether a student is assigned to a class.
func (p Person) HasClass() bool { return p.Class != nil }

// HasChild reports whether a parent lists childID among its children.
func (p Person) HasChild(childID ID) bool {
	return slices.Contains(p.ChildrenIDs, childID)
}

// CheckVariant rejects variant fields set on the wrong category.
func (p Person) CheckVariant() error {
	if !p.IsStudent() && (p.HasParent() || p.HasClass()) {
		return apperr.WrongCategory(fmt.Sprintf("%s is not a student", p.Name))
	}
	if !p.IsParent() && len(p.ChildrenIDs) > 0 {
		return apperr.WrongCategory(fmt.Sprintf("%s is not a parent", p.Name))
	}
	return nil
}

// # Identity

// IsSame reports whether p and other are the same person: same id, or same name and phone.
func (p Person) IsSame(other Person) bool {
	if !p.ID.IsZero() && p.ID == other.ID {
		return true
	}
	return p.Name == other.Name && p.Phone == other.Phone
}

// Equal reports whether every attribute of p and other matches.
func (p Person) Equal(other Person) bool {
	return p.ID == other.ID &&
		p.Category == other.Category &&
		p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.Address == other.Address &&
		slices.Equal(TagSet(p.Tags...), TagSet(other.Tags...)) &&
		p.Remark == other.Remark &&
		p.ParentID == other.ParentID &&
		equalRef(p.Class, other.Class) &&
		slices.Equal(p.ChildrenIDs, other.ChildrenIDs)
}

func equalRef(a, b *ClassRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Clone returns a deep copy of p.
func (p Person) Clone() Person {
	clone := p
	clone.Tags = slices.Clone(p.Tags)
	clone.ChildrenIDs = slices.Clone(p.ChildrenIDs)
	if p.Class != nil {
		ref := *p.Class
		clone.Class = &ref
	}
	return clone
}

// # Copy-on-write updates

// WithRemark returns a copy of p carrying remark.
func (p Person) WithRemark(remark Remark) Person {
	clone := p.Clone()
	clone.Remark = remark
	return clone
}

// WithParent returns a copy of the student p linked to parentID.
func (p Person) WithParent(parentID ID) Person {
	clone := p.Clone()
	clone.ParentID = parentID
	return clone
}

// WithoutParent returns a copy of p with no parent link.
func (p Person) WithoutParent() Person {
	return p.WithParent(ID{})
}

// WithChild returns a copy of the parent p with childID appended, if absent.
func (p Person) WithChild(childID ID) Person {
	clone := p.Clone()
	if !clone.HasChild(childID) {
		clone.ChildrenIDs = append(clone.ChildrenIDs, childID)
	}
	return clone
}

// WithoutChild returns a copy of p with childID removed.
func (p Person) WithoutChild(childID ID) Person {
	clone := p.Clone()
	clone.ChildrenIDs = slices.DeleteFunc(clone.ChildrenIDs, func(id ID) bool { return id == childID })
	return clone
}

// WithClass returns a copy of the student p assigned to class.
func (p Person) WithClass(class tuition.Class) Person {
	clone := p.Clone()
	ref := RefTo(class)
	clone.Class = &ref
	return clone
}

// WithoutClass returns a copy of p with no class.
func (p Person) WithoutClass() Person {
	clone := p.Clone()
	clone.Class = nil
	return clone
}

// TagNames returns the bare tag names in canonical order.
func (p Person) TagNames() []string {
	return slice.Map(TagSet(p.Tags...), Tag.Name)
}

func (p Person) String() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s; Category: %s; Phone: %s; Email: %s; Address: %s",
		p.Name, p.Category.Label(), p.Phone, p.Email, p.Address)

	if len(p.Tags) > 0 {
		builder.WriteString("; Tags: ")
		for _, tag := range TagSet(p.Tags...) {
			builder.WriteString(tag.String())
		}
	}
	if p.HasClass() {
		fmt.Fprintf(&builder, "; Class: %s %s", p.Class.Day, p.Class.Time)
	}
	if !p.Remark.IsEmpty() {
		fmt.Fprintf(&builder, "; Remark: %s", p.Remark)
	}
	return builder.String()
}
