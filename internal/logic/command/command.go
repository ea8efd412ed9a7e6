// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package command holds the closed set of commands a user can run.

A command is a fully parsed, immutable value. Executing it against a
[model.Model] is the only way state changes; a command either returns a [Result]
or an [*apperr.AppError] whose message is shown verbatim, and in the latter case
the model is left exactly as it was.
*/
package command

import (
	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// Command is an executable user instruction.
type Command interface {
	// Word is the command word that selects this command, e.g. "add".
	Word() string
	// Execute applies the command to m.
	Execute(m model.Model) (Result, error)
}

// Result is what a successful command hands back to the front end.
type Result struct {
	// Feedback is the text shown in the result box.
	Feedback string `json:"feedback"`
	// ShowHelp asks the front end to display help.
	ShowHelp bool `json:"showHelp,omitempty"`
	// Exit asks the front end to shut down.
	Exit bool `json:"exit,omitempty"`
}

// Feedback builds a plain Result.
func Feedback(text string) Result {
	return Result{Feedback: text}
}

// personAt resolves a 1-based index against the filtered list.
func personAt(m model.Model, index int) (person.Person, error) {
	p, ok := m.FilteredPersonList().At(index - 1)
	if !ok {
		return person.Person{}, apperr.InvalidIndex()
	}
	return p, nil
}
