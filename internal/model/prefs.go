// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package model

import (
	"path/filepath"

	"github.com/taibuivan/tutorbook/internal/platform/constants"
)

// GuiSettings remembers the front end's window geometry between sessions.
type GuiSettings struct {
	WindowWidth  float64 `json:"windowWidth"`
	WindowHeight float64 `json:"windowHeight"`
	WindowX      *int    `json:"windowX,omitempty"`
	WindowY      *int    `json:"windowY,omitempty"`
}

// DefaultGuiSettings returns the geometry used on first launch.
func DefaultGuiSettings() GuiSettings {
	return GuiSettings{
		WindowWidth:  constants.DefaultWindowWidth,
		WindowHeight: constants.DefaultWindowHeight,
	}
}

// UserPrefs is the content of preferences.json.
type UserPrefs struct {
	AddressBookFilePath string      `json:"addressBookFilePath"`
	GuiSettings         GuiSettings `json:"guiSettings"`
}

// DefaultUserPrefs places the address book inside dataDir.
func DefaultUserPrefs(dataDir string) UserPrefs {
	return UserPrefs{
		AddressBookFilePath: filepath.Join(dataDir, constants.AddressBookFileName),
		GuiSettings:         DefaultGuiSettings(),
	}
}

// WithDefaults fills every zero field from [DefaultUserPrefs].
func (prefs UserPrefs) WithDefaults(dataDir string) UserPrefs {
	defaults := DefaultUserPrefs(dataDir)
	if prefs.AddressBookFilePath == "" {
		prefs.AddressBookFilePath = defaults.AddressBookFilePath
	}
	if prefs.GuiSettings.WindowWidth <= 0 {
		prefs.GuiSettings.WindowWidth = defaults.GuiSettings.WindowWidth
	}
	if prefs.GuiSettings.WindowHeight <= 0 {
		prefs.GuiSettings.WindowHeight = defaults.GuiSettings.WindowHeight
	}
	return prefs
}
