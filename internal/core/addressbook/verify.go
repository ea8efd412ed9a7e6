// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package addressbook

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// verify checks a candidate state against every invariant of the package.
func verify(personList *person.UniqueList, classList *tuition.UniqueList, persons []person.Person, classes []tuition.Class) error {
	if err := personList.CheckUnique(persons); err != nil {
		return err
	}
	if err := classList.CheckUnique(classes); err != nil {
		return err
	}

	byID := make(map[person.ID]person.Person, len(persons))
	for _, p := range persons {
		if err := p.CheckVariant(); err != nil {
			return err
		}
		if _, taken := byID[p.ID]; taken {
			return apperr.IntegrityViolation(fmt.Sprintf("Person id %s is used more than once", p.ID))
		}
		byID[p.ID] = p
	}

	classByID := make(map[tuition.ClassID]tuition.Class, len(classes))
	for _, c := range classes {
		if _, taken := classByID[c.ID]; taken {
			return apperr.IntegrityViolation(fmt.Sprintf("Class id %s is used more than once", c.ID))
		}
		classByID[c.ID] = c
	}

	for _, p := range persons {
		switch p.Category {
		case person.Student:
			if err := verifyStudent(p, byID, classByID); err != nil {
				return err
			}
		case person.Parent:
			if err := verifyParent(p, byID); err != nil {
				return err
			}
		}
	}
	return nil
}

func verifyStudent(student person.Person, byID map[person.ID]person.Person, classByID map[tuition.ClassID]tuition.Class) error {
	if student.HasParent() {
		parent, ok := byID[student.ParentID]
		switch {
		case !ok:
			return apperr.IntegrityViolation(fmt.Sprintf("Parent %s linked to %s does not exist", student.ParentID, student.Name))
		case !parent.IsParent():
			return apperr.IntegrityViolation(fmt.Sprintf("%s is linked to %s, who is not a parent", student.Name, parent.Name))
		case !parent.HasChild(student.ID):
			return apperr.IntegrityViolation(fmt.Sprintf("%s does not list %s as a child", parent.Name, student.Name))
		}
	}

	if student.HasClass() {
		class, ok := classByID[student.Class.ID]
		switch {
		case !ok:
			return apperr.IntegrityViolation(fmt.Sprintf("Class %s assigned to %s does not exist", student.Class.ID, student.Name))
		case !student.Class.Matches(class):
			return apperr.IntegrityViolation(fmt.Sprintf("Class slot recorded for %s does not match %s", student.Name, class.Slot()))
		}
	}
	return nil
}

func verifyParent(parent person.Person, byID map[person.ID]person.Person) error {
	seen := make(map[person.ID]bool, len(parent.ChildrenIDs))
	for _, childID := range parent.ChildrenIDs {
		if seen[childID] {
			return apperr.IntegrityViolation(fmt.Sprintf("%s lists child %s twice", parent.Name, childID))
		}
		seen[childID] = true

		child, ok := byID[childID]
		switch {
		case !ok:
			return apperr.IntegrityViolation(fmt.Sprintf("Child %s of %s does not exist", childID, parent.Name))
		case !child.IsStudent():
			return apperr.IntegrityViolation(fmt.Sprintf("Child %s of %s is not a student", child.Name, parent.Name))
		case child.ParentID != parent.ID:
			return apperr.IntegrityViolation(fmt.Sprintf("%s lists %s as a child, but the link is one-sided", parent.Name, child.Name))
		}
	}
	return nil
}
