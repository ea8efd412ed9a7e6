// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"fmt"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/pkg/textnorm"
)

// Find shows the persons whose name contains any keyword as a whole word,
// ignoring case and accents.
type Find struct {
	Keywords []string
}

func (c Find) Word() string { return WordFind }

// Matches reports whether p is shown by this find.
func (c Find) Matches(p person.Person) bool {
	for _, keyword := range c.Keywords {
		if textnorm.ContainsWord(p.Name.String(), keyword) {
			return true
		}
	}
	return false
}

func (c Find) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredPersonList(c.Matches)
	return Feedback(fmt.Sprintf(MessagePersonsListed, m.FilteredPersonList().Len())), nil
}
