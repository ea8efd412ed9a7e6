// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// GetParent narrows the filtered list to the parent linked to a student.
type GetParent struct {
	StudentName person.Name
}

func (c GetParent) Word() string { return WordGetParent }

func (c GetParent) Execute(m model.Model) (Result, error) {
	student, err := findStudent(m, c.StudentName)
	if err != nil {
		return Result{}, err
	}
	if !student.HasParent() {
		return Result{}, apperr.NoParentLinked(student.Name.String())
	}

	parent, ok := m.PersonByID(student.ParentID)
	if !ok {
		return Result{}, apperr.NoParentLinked(student.Name.String())
	}

	parentID := parent.ID
	m.UpdateFilteredPersonList(func(p person.Person) bool { return p.ID == parentID })
	return Feedback(fmt.Sprintf(MessageGetParentSuccess, student.Name, parent.Name)), nil
}
