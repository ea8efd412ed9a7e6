// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"

	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/ctxutil"
)

// jsonUserPrefsStorage implements [UserPrefsStorage] on preferences.json.
type jsonUserPrefsStorage struct {
	path string
}

// NewJSONUserPrefsStorage constructs a preferences store reading and writing path.
func NewJSONUserPrefsStorage(path string) UserPrefsStorage {
	return &jsonUserPrefsStorage{path: path}
}

func (storage *jsonUserPrefsStorage) UserPrefsFilePath() string {
	return storage.path
}

// ReadUserPrefs decodes the file over zero values; missing keys stay zero and are
// filled in by [model.UserPrefs.WithDefaults].
func (storage *jsonUserPrefsStorage) ReadUserPrefs(context context.Context) (model.UserPrefs, error) {
	var prefs model.UserPrefs
	if err := readJSONFile(storage.path, &prefs); err != nil {
		return model.UserPrefs{}, err
	}
	ctxutil.GetLogger(context).Debug("preferences_loaded", "path", storage.path)
	return prefs, nil
}

func (storage *jsonUserPrefsStorage) SaveUserPrefs(context context.Context, prefs model.UserPrefs) error {
	if err := writeJSONFile(storage.path, prefs); err != nil {
		return err
	}
	ctxutil.GetLogger(context).Debug("preferences_saved", "path", storage.path)
	return nil
}
