// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/model"
)

// Remark sets, or with an empty remark clears, the remark of the person at an index.
type Remark struct {
	Index  int
	Remark person.Remark
}

func (c Remark) Word() string { return WordRemark }

func (c Remark) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	edited := target.WithRemark(c.Remark)
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, err
	}

	m.UpdateFilteredPersonList(model.PredicateShowAll)
	if c.Remark.IsEmpty() {
		return Feedback(fmt.Sprintf(MessageDeleteRemarkSuccess, edited.Name)), nil
	}
	return Feedback(fmt.Sprintf(MessageAddRemarkSuccess, edited.Name)), nil
}
