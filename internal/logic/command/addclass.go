// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// AddClass creates a tuition class in a free slot. The id is minted on execution.
type AddClass struct {
	Day  tuition.Day
	Time tuition.Time
}

func (c AddClass) Word() string { return WordAddClass }

func (c AddClass) Execute(m model.Model) (Result, error) {
	class := tuition.NewClass(c.Day, c.Time)
	if m.HasTuitionClass(class) {
		return Result{}, apperr.Conflict(tuition.MessageDuplicateClass)
	}
	if err := m.AddTuitionClass(class); err != nil {
		return Result{}, err
	}
	return Feedback(fmt.Sprintf(MessageAddClassSuccess, class.Slot(), class.ID)), nil
}
