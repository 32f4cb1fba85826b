// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package config

const (
	// Default bound on concurrent catalog parsing.
	defaultScanWorkers = 8
)

// SetDefaults populates the configuration with default values.
func (cfg *AppConfig) SetDefaults() {
	cfg.Scan.LocaleDir = "/usr/share/locale"
	cfg.Scan.Workers = defaultScanWorkers
	cfg.Scan.Strings = false

	cfg.Report.Format = "table"
	cfg.Report.Sort = "coverage"
	cfg.Report.Color = "auto"

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
