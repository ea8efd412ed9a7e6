// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import "github.com/taibuivan/tutorbook/internal/model"

// Help returns the usage of every command.
type Help struct{}

func (c Help) Word() string { return WordHelp }

func (c Help) Execute(model.Model) (Result, error) {
	return Result{Feedback: HelpText, ShowHelp: true}, nil
}

// Exit asks the front end to shut down.
type Exit struct{}

func (c Exit) Word() string { return WordExit }

func (c Exit) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}
