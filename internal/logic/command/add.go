// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// Add creates a person of the given category. The id is minted on execution.
type Add struct {
	Category person.Category
	Name     person.Name
	Phone    person.Phone
	Email    person.Email
	Address  person.Address
	Tags     []person.Tag
}

func (c Add) Word() string { return WordAdd }

func (c Add) Execute(m model.Model) (Result, error) {
	toAdd := person.New(c.Category, c.Name, c.Phone, c.Email, c.Address, c.Tags)
	if m.HasPerson(toAdd) {
		return Result{}, apperr.Conflict(person.MessageDuplicatePerson)
	}
	if err := m.AddPerson(toAdd); err != nil {
		return Result{}, err
	}
	return Feedback(fmt.Sprintf(MessageAddSuccess, toAdd)), nil
}
