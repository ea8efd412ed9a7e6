// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"github.com/taibuivan/tutorbook/internal/core/addressbook"
	"github.com/taibuivan/tutorbook/internal/model"
)

// Clear empties the address book.
type Clear struct{}

func (c Clear) Word() string { return WordClear }

func (c Clear) Execute(m model.Model) (Result, error) {
	if err := m.SetAddressBook(addressbook.New()); err != nil {
		return Result{}, err
	}
	return Feedback(MessageClearSuccess), nil
}
