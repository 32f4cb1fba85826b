// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Global exposes the application configuration.
var Global AppConfig

// AppConfig holds the application configuration.
type AppConfig struct {
	Build buildInfo `yaml:"-"`

	Scan struct {
		// LocaleDir is the installed locale tree scanned by default.
		LocaleDir string `env:"GTCOV_LOCALE_DIR,overwrite" yaml:"localeDir"`

		// Workers bounds concurrent catalog parsing.
		Workers int `env:"GTCOV_WORKERS,overwrite" yaml:"workers"`

		// Strings enables string-level coverage during tree scans.
		Strings bool `env:"GTCOV_STRINGS" yaml:"strings"`
	} `yaml:"scan"`

	Report struct {
		// Format is the default output format: table, csv or json.
		Format string `env:"GTCOV_FORMAT,overwrite" yaml:"format"`

		// Sort orders scan results: coverage or name.
		Sort string `env:"GTCOV_SORT,overwrite" yaml:"sort"`

		// Color controls styled output: auto, always or never.
		Color string `env:"GTCOV_COLOR,overwrite" yaml:"color"`
	} `yaml:"report"`

	Log struct {
		Level   string   `env:"GTCOV_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"GTCOV_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"GTCOV_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`
}

// LoadConfig loads the configuration from various sources.
//
// Precedence, lowest to highest: built-in defaults, the YAML config file,
// .env, then real environment variables. configFilePath comes from the
// --config flag; when empty the GTCOV_CONFIGFILE variable and finally the
// per-user default path are consulted.
func (cfg *AppConfig) LoadConfig(configFilePath string) error {
	if configFilePath == "" {
		if envVar := os.Getenv("GTCOV_CONFIGFILE"); envVar != "" {
			configFilePath = envVar
		} else {
			configFilePath = DefaultConfigPath()
		}
	}

	cfg.SetDefaults()

	cfg.Build.load()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	useDotEnv()

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}

// DefaultConfigPath returns the per-user config file location,
// $XDG_CONFIG_HOME/gettext-coverage/config.yaml on Linux.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "./config.yaml"
	}

	return filepath.Join(dir, "gettext-coverage", "config.yaml")
}

// useDotEnv loads environment variables from a .env file in the working
// directory. Existing variables are never overridden, so the precedence of
// the real environment is preserved. Soft fails when no .env exists.
func useDotEnv() {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			return
		}

		log.Warn().Err(err).Msg("Could not load .env file")

		return
	}

	log.Info().Msg("Loaded configuration from .env file")
}
