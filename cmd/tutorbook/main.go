// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command tutorbook is the entry point for the tutoring contact book.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and an optional .env).
//  3. Load preferences, falling back to defaults.
//  4. Load the address book; a missing file starts an empty book.
//  5. Wire model, logic and storage.
//  6. Start the optional HTTP view.
//  7. Run the terminal shell until exit, then save preferences.
//
// # Exit Codes
//
//   - 0: normal exit
//   - 1: startup failure
//   - 2: the data file is malformed or corrupted
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/taibuivan/tutorbook/internal/api"
	"github.com/taibuivan/tutorbook/internal/core/addressbook"
	"github.com/taibuivan/tutorbook/internal/logic"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/internal/platform/config"
	"github.com/taibuivan/tutorbook/internal/platform/constants"
	"github.com/taibuivan/tutorbook/internal/platform/ctxutil"
	"github.com/taibuivan/tutorbook/internal/repl"
	"github.com/taibuivan/tutorbook/internal/storage"
)

const (
	exitStartupFailure = 1
	exitCorruptData    = 2
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Logs go to stderr; stdout belongs to the shell.
	log := newLogger("json", slog.LevelInfo)
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log = newLogger(cfg.LogFormat, level)
	slog.SetDefault(log)

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("data_dir", cfg.DataDir),
		slog.Bool("view_enabled", cfg.ViewEnabled()),
	)

	// Root context: cancelled on SIGINT/SIGTERM, carries the logger into storage.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	rootCtx = ctxutil.WithLogger(rootCtx, log)

	// ── 3. Preferences ────────────────────────────────────────────────────
	prefsStorage := storage.NewJSONUserPrefsStorage(cfg.PreferencesPath())
	prefs, err := prefsStorage.ReadUserPrefs(rootCtx)
	if err != nil {
		if !errors.Is(err, apperr.ErrFileMissing) {
			log.Warn("preferences_unreadable_using_defaults", slog.Any("error", err))
		}
		prefs = model.UserPrefs{}
	}
	prefs = prefs.WithDefaults(cfg.DataDir)

	// ── 4. Address Book ───────────────────────────────────────────────────
	bookStorage := storage.NewJSONAddressBookStorage(prefs.AddressBookFilePath)
	book, err := bookStorage.ReadAddressBook(rootCtx)
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrFileMissing):
		log.Info("addressbook_missing_starting_empty", slog.String("path", bookStorage.AddressBookFilePath()))
		book = addressbook.New()
	case isCorruption(err):
		log.Error("addressbook_corrupted",
			slog.String("path", bookStorage.AddressBookFilePath()),
			slog.Any("error", err),
		)
		os.Exit(exitCorruptData)
	default:
		must(log, err, "load address book")
	}

	// ── 5. Wiring ─────────────────────────────────────────────────────────
	store := storage.NewManager(bookStorage, prefsStorage)
	state := model.NewManager(book, prefs)
	manager := logic.NewManager(state, store)

	// ── 6. HTTP View ──────────────────────────────────────────────────────
	var server *api.Server
	if cfg.ViewEnabled() {
		liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
			CheckStorage: func() error { return checkWritable(filepath.Dir(store.AddressBookFilePath())) },
		}, log)

		server = api.NewServer(rootCtx, cfg, log, api.Handlers{
			Liveness:  liveness,
			Readiness: readiness,
			View:      api.NewHandler(manager),
		})
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("view_server_failed", slog.Any("error", err))
			}
		}()
	}

	// ── 7. Shell ──────────────────────────────────────────────────────────
	log.Info("tutorbook_started", slog.String("version", constants.AppVersion))
	shellDone := make(chan error, 1)
	go func() {
		shellDone <- repl.New(manager, os.Stdin, os.Stdout).Run(rootCtx)
	}()

	// Block until the user exits or an OS signal arrives.
	select {
	case err := <-shellDone:
		if err != nil {
			log.Error("shell_input_failed", slog.Any("error", err))
		}
	case <-rootCtx.Done():
		log.Info("shutdown signal received")
	}

	// ── 8. Shutdown ───────────────────────────────────────────────────────
	if server != nil {
		if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
			log.Error("view_shutdown_failed", slog.Any("error", err))
		}
	}

	// The signal context may already be cancelled; saving must still happen.
	saveCtx := ctxutil.WithLogger(context.Background(), log)
	if err := store.SaveUserPrefs(saveCtx, manager.UserPrefs()); err != nil {
		log.Error("preferences_save_failed", slog.Any("error", err))
	}

	log.Info("tutorbook_stopped")
}

// newLogger builds the process logger with the global app attribute.
func newLogger(format string, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, options)
	if format == "text" {
		handler = slog.NewTextHandler(os.Stderr, options)
	}
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// isCorruption reports whether err means the data file exists but cannot be trusted.
func isCorruption(err error) bool {
	return apperr.IsCode(err, apperr.CodeMalformedJSON) ||
		apperr.IsCode(err, apperr.CodeDataCorruption) ||
		apperr.IsCode(err, apperr.CodeValidation)
}

// checkWritable verifies dir exists (creating it if needed) and accepts new files.
func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, constants.DataDirPerm); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".ready.*")
	if err != nil {
		return err
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(name)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(exitStartupFailure)
	}
}
