// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/model"
)

// List shows every person, or only those of Category when it is set.
type List struct {
	Category *person.Category
}

func (c List) Word() string { return WordList }

func (c List) Execute(m model.Model) (Result, error) {
	if c.Category == nil {
		m.UpdateFilteredPersonList(model.PredicateShowAll)
		return Feedback(MessageListAll), nil
	}

	category := *c.Category
	m.UpdateFilteredPersonList(func(p person.Person) bool { return p.Category == category })
	return Feedback(fmt.Sprintf(MessageListCategory, category.Label())), nil
}
