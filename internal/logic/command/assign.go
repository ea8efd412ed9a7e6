// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// Assign attaches the student at a filtered-list index to a class.
type Assign struct {
	Index   int
	ClassID tuition.ClassID
}

func (c Assign) Word() string { return WordAssign }

func (c Assign) Execute(m model.Model) (Result, error) {
	student, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if !student.IsStudent() {
		return Result{}, apperr.WrongCategory(fmt.Sprintf(MessageNotStudent, student.Name))
	}

	class, ok := m.TuitionClassByID(c.ClassID)
	if !ok {
		return Result{}, apperr.NotFoundf("Tuition class not found: %s", c.ClassID)
	}
	if err := m.AssignStudentClass(student.ID, class.ID); err != nil {
		return Result{}, err
	}
	return Feedback(fmt.Sprintf(MessageAssignSuccess, student.Name, class.Slot())), nil
}
