// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"fmt"
	"slices"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/pkg/pointer"
)

// EditDescriptor holds the fields an edit overwrites. A nil field is left as is.
// A non-nil, empty Tags clears every tag.
type EditDescriptor struct {
	Name    *person.Name
	Phone   *person.Phone
	Email   *person.Email
	Address *person.Address
	Tags    *[]person.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

// Apply returns a copy of p with the descriptor's fields overwritten.
//
// Identity, category, remark and links are never touched.
func (d EditDescriptor) Apply(p person.Person) person.Person {
	edited := p.Clone()
	edited.Name = pointer.Fallback(d.Name, edited.Name)
	edited.Phone = pointer.Fallback(d.Phone, edited.Phone)
	edited.Email = pointer.Fallback(d.Email, edited.Email)
	edited.Address = pointer.Fallback(d.Address, edited.Address)
	if d.Tags != nil {
		edited.Tags = person.TagSet(slices.Clone(*d.Tags)...)
	}
	return edited
}

// Edit overwrites fields of the person at a filtered-list index.
type Edit struct {
	Index      int
	Descriptor EditDescriptor
}

func (c Edit) Word() string { return WordEdit }

func (c Edit) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	edited := c.Descriptor.Apply(target)
	if err := m.SetPerson(target, edited); err != nil {
		if apperr.IsCode(err, apperr.CodeConflict) {
			return Result{}, apperr.Conflict(person.MessageDuplicatePerson)
		}
		return Result{}, err
	}

	m.UpdateFilteredPersonList(model.PredicateShowAll)
	return Feedback(fmt.Sprintf(MessageEditSuccess, edited)), nil
}
