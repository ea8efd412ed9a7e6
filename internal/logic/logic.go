// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package logic runs user input against the model and persists the outcome.

[Manager] is tutorbook's application thread. Every command and every read made
by a front end (the terminal shell or the HTTP view) goes through its mutex, so
commands run to completion one at a time and observers see mutations in the
order the commands executed.

Pipeline:

 1. Parse the line into a [command.Command].
 2. Execute it against the [model.Model].
 3. Save the address book.
*/
package logic

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/logic/command"
	"github.com/taibuivan/tutorbook/internal/logic/parser"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/internal/platform/ctxutil"
	"github.com/taibuivan/tutorbook/internal/storage"
	"github.com/taibuivan/tutorbook/pkg/observable"
)

// MessageSaveFailed is shown when a command succeeded but the file could not be written.
const MessageSaveFailed = "Could not save data to file: "

// Manager serializes commands and view reads on one logical thread.
type Manager struct {
	mutex   sync.Mutex
	model   model.Model
	storage storage.AddressBookStorage
	parser  *parser.AddressBookParser
}

// NewManager constructs a [Manager] over m, saving through store.
func NewManager(m model.Model, store storage.AddressBookStorage) *Manager {
	return &Manager{
		model:   m,
		storage: store,
		parser:  parser.New(),
	}
}

/*
Execute parses and runs one line of user input.

Description: A parse or execution failure leaves the model untouched and is
returned as is. After a successful command the address book is saved; a save
failure is reported even though the in-memory change stands.

Parameters:
  - context: context.Context (carries the logger)
  - line: string (raw user input)

Returns:
  - command.Result: Feedback for the result box
  - error: *apperr.AppError with a user-visible message
*/
func (manager *Manager) Execute(context context.Context, line string) (command.Result, error) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	logger := ctxutil.CommandLogger(context)

	// Parsing
	cmd, err := manager.parser.Parse(line)
	if err != nil {
		logger.Info("command_failed", slog.String("stage", "parse"), slog.String("error", err.Error()))
		return command.Result{}, err
	}
	logger = logger.With(slog.String("command", cmd.Word()))

	// Execution
	result, err := cmd.Execute(manager.model)
	if err != nil {
		logger.Info("command_failed", slog.String("stage", "execute"), slog.String("error", err.Error()))
		return command.Result{}, err
	}

	// Persistence
	if err := manager.storage.SaveAddressBook(context, manager.model.AddressBook()); err != nil {
		logger.Error("command_save_failed", slog.Any("error", err))
		cause := err
		if appError := apperr.As(err); appError != nil && appError.Cause != nil {
			cause = appError.Cause
		}
		failure := apperr.Internal(err)
		failure.Message = MessageSaveFailed + cause.Error()
		return command.Result{}, failure
	}

	logger.Info("command_executed")
	return result, nil
}

// # Views

// FilteredPersons returns a snapshot of the filtered person list.
func (manager *Manager) FilteredPersons() []person.Person {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()
	return manager.model.FilteredPersonList().Snapshot()
}

// TuitionClasses returns a snapshot of every class.
func (manager *Manager) TuitionClasses() []tuition.Class {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()
	return manager.model.TuitionClassList().Snapshot()
}

// PersonByID looks a person up in the whole book.
func (manager *Manager) PersonByID(id person.ID) (person.Person, bool) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()
	return manager.model.PersonByID(id)
}

// SubscribeFiltered registers listener on the filtered person list. The listener
// runs on the thread executing the command, while the manager's lock is held, so it
// must not call back into the manager.
func (manager *Manager) SubscribeFiltered(listener observable.Listener[person.Person]) func() {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()
	cancel := manager.model.FilteredPersonList().Subscribe(listener)
	return func() {
		manager.mutex.Lock()
		defer manager.mutex.Unlock()
		cancel()
	}
}

// UserPrefs returns the current preferences.
func (manager *Manager) UserPrefs() model.UserPrefs {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()
	return manager.model.UserPrefs()
}

// SetGuiSettings records the front end's window geometry.
func (manager *Manager) SetGuiSettings(settings model.GuiSettings) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()
	manager.model.SetGuiSettings(settings)
}
