// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/model"
)

// Delete removes the person at a filtered-list index and repairs its links.
type Delete struct {
	Index int
}

func (c Delete) Word() string { return WordDelete }

func (c Delete) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, err
	}
	return Feedback(fmt.Sprintf(MessageDeleteSuccess, target)), nil
}
