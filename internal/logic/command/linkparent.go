// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// LinkParent links a student to a parent, both looked up by name.
type LinkParent struct {
	StudentName person.Name
	ParentName  person.Name
}

func (c LinkParent) Word() string { return WordLinkParent }

func (c LinkParent) Execute(m model.Model) (Result, error) {
	student, err := findStudent(m, c.StudentName)
	if err != nil {
		return Result{}, err
	}

	parent, ok := m.FindPersonByName(c.ParentName.String(), person.Parent)
	if !ok {
		return Result{}, apperr.NotFoundf(MessageParentNotFound, c.ParentName)
	}
	if !parent.IsParent() {
		return Result{}, apperr.WrongCategory(fmt.Sprintf(MessageNotParent, parent.Name))
	}

	if err := m.LinkStudentParent(student.ID, parent.ID); err != nil {
		return Result{}, err
	}
	return Feedback(fmt.Sprintf(MessageLinkSuccess, student.Name, parent.Name)), nil
}

// findStudent looks a student up by name across the whole book, ignoring the filter.
func findStudent(m model.Model, name person.Name) (person.Person, error) {
	student, ok := m.FindPersonByName(name.String(), person.Student)
	if !ok {
		return person.Person{}, apperr.NotFoundf(MessageStudentNotFound, name)
	}
	if !student.IsStudent() {
		return person.Person{}, apperr.WrongCategory(fmt.Sprintf(MessageNotStudent, student.Name))
	}
	return student, nil
}
