// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. An optional '.env' file
in the working directory is loaded first with 'joho/godotenv'; variables already
present in the environment win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to the storage and view components via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for tutorbook.
type Config struct {

	// Runtime settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`
	LogFormat   string `env:"LOG_FORMAT"  envDefault:"json"`

	// DataDir holds addressbook.json and preferences.json.
	DataDir string `env:"TUTORBOOK_DATA_DIR" envDefault:"data"`

	// PreferencesFile is the preferences file name, resolved inside DataDir.
	PreferencesFile string `env:"TUTORBOOK_PREFERENCES_FILE" envDefault:"preferences.json"`

	// ViewAddr enables the local HTTP view when non-empty (e.g. "127.0.0.1:8080").
	ViewAddr string `env:"TUTORBOOK_VIEW_ADDR"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config].
func Load() (*Config, error) {

	// A missing .env is the normal case outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("config: LOG_FORMAT must be json or text, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// PreferencesPath returns the full path of the preferences file.
func (c *Config) PreferencesPath() string {
	if filepath.IsAbs(c.PreferencesFile) {
		return c.PreferencesFile
	}
	return filepath.Join(c.DataDir, c.PreferencesFile)
}

// IsDevelopment reports whether the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ViewEnabled reports whether the HTTP view should be started.
func (c *Config) ViewEnabled() bool {
	return c.ViewAddr != ""
}
