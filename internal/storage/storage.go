// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage persists the address book and the user preferences as JSON files.

Both files are read whole and written whole. A write goes to a temporary file in
the same directory which is synced and then renamed over the target, so a crash
leaves either the old file or the new one.

Load errors:

  - FILE_MISSING: the file does not exist yet; callers start with an empty book.
  - MALFORMED_JSON: the file is not valid JSON.
  - VALIDATION_ERROR: a record holds a value its type rejects.
  - DATA_CORRUPTION: records reference persons or classes that do not resolve.
*/
package storage

import (
	"context"

	"github.com/taibuivan/tutorbook/internal/core/addressbook"
	"github.com/taibuivan/tutorbook/internal/model"
)

// # Storage Contracts

// AddressBookStorage defines the persistence contract for the address book.
type AddressBookStorage interface {

	/*
		AddressBookFilePath returns the file the book is read from and written to.
	*/
	AddressBookFilePath() string

	/*
		ReadAddressBook loads the book from its file.

		Parameters:
		  - context: context.Context (carries the logger)

		Returns:
		  - *addressbook.AddressBook: The resolved book with every link verified
		  - error: FILE_MISSING, MALFORMED_JSON, VALIDATION_ERROR or DATA_CORRUPTION
	*/
	ReadAddressBook(context context.Context) (*addressbook.AddressBook, error)

	/*
		SaveAddressBook replaces the file with the book's current contents.

		Parameters:
		  - context: context.Context
		  - book: *addressbook.AddressBook

		Returns:
		  - error: INTERNAL_ERROR wrapping the I/O failure
	*/
	SaveAddressBook(context context.Context, book *addressbook.AddressBook) error
}

// UserPrefsStorage defines the persistence contract for preferences.
type UserPrefsStorage interface {

	/*
		UserPrefsFilePath returns the preferences file path.
	*/
	UserPrefsFilePath() string

	/*
		ReadUserPrefs loads preferences. A missing file yields FILE_MISSING.
	*/
	ReadUserPrefs(context context.Context) (model.UserPrefs, error)

	/*
		SaveUserPrefs replaces the preferences file.
	*/
	SaveUserPrefs(context context.Context, prefs model.UserPrefs) error
}

// Storage combines both contracts.
type Storage interface {
	AddressBookStorage
	UserPrefsStorage
}

// # Composite Storage

// Manager routes address book and preference calls to their own stores.
type Manager struct {
	addressBook AddressBookStorage
	prefs       UserPrefsStorage
}

// NewManager constructs a [Manager] over the two stores.
func NewManager(addressBook AddressBookStorage, prefs UserPrefsStorage) *Manager {
	return &Manager{addressBook: addressBook, prefs: prefs}
}

func (manager *Manager) AddressBookFilePath() string {
	return manager.addressBook.AddressBookFilePath()
}

func (manager *Manager) ReadAddressBook(context context.Context) (*addressbook.AddressBook, error) {
	return manager.addressBook.ReadAddressBook(context)
}

func (manager *Manager) SaveAddressBook(context context.Context, book *addressbook.AddressBook) error {
	return manager.addressBook.SaveAddressBook(context, book)
}

func (manager *Manager) UserPrefsFilePath() string {
	return manager.prefs.UserPrefsFilePath()
}

func (manager *Manager) ReadUserPrefs(context context.Context) (model.UserPrefs, error) {
	return manager.prefs.ReadUserPrefs(context)
}

func (manager *Manager) SaveUserPrefs(context context.Context, prefs model.UserPrefs) error {
	return manager.prefs.SaveUserPrefs(context, prefs)
}
