// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig verifies the main load paths: defaults, environment
// overrides and validation failures. Exhaustive per-field scenarios are
// deliberately not covered.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *AppConfig)
	}{
		{
			name: "defaults only",
			check: func(t *testing.T, cfg *AppConfig) {
				t.Helper()
				assert.Equal(t, "/usr/share/locale", cfg.Scan.LocaleDir)
				assert.Equal(t, defaultScanWorkers, cfg.Scan.Workers)
				assert.Equal(t, "table", cfg.Report.Format)
				assert.Equal(t, "coverage", cfg.Report.Sort)
			},
		},
		{
			name: "environment overrides",
			env: map[string]string{
				"GTCOV_LOCALE_DIR": "/opt/locale",
				"GTCOV_WORKERS":    "3",
				"GTCOV_FORMAT":     "csv",
				"GTCOV_SORT":       "name",
			},
			check: func(t *testing.T, cfg *AppConfig) {
				t.Helper()
				assert.Equal(t, "/opt/locale", cfg.Scan.LocaleDir)
				assert.Equal(t, 3, cfg.Scan.Workers)
				assert.Equal(t, "csv", cfg.Report.Format)
				assert.Equal(t, "name", cfg.Report.Sort)
			},
		},
		{
			name:    "invalid report format",
			env:     map[string]string{"GTCOV_FORMAT": "xml"},
			wantErr: true,
		},
		{
			name:    "invalid sort key",
			env:     map[string]string{"GTCOV_SORT": "size"},
			wantErr: true,
		},
		{
			name:    "invalid worker count",
			env:     map[string]string{"GTCOV_WORKERS": "-1"},
			wantErr: true,
		},
		{
			name:    "unparseable worker count",
			env:     map[string]string{"GTCOV_WORKERS": "many"},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			env:     map[string]string{"GTCOV_LOG_LEVEL": "verbose"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			// Point at a nonexistent config file so a developer's real
			// ~/.config never leaks into the test.
			t.Setenv("GTCOV_CONFIGFILE", filepath.Join(t.TempDir(), "config.yaml"))

			cfg := &AppConfig{}

			err := cfg.LoadConfig("")
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadConfigYAML(t *testing.T) {
	yamlPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "scan:\n  localeDir: /srv/locale\n  workers: 2\nreport:\n  format: json\n"
	require.NoError(t, os.WriteFile(yamlPath, []byte(content), 0o600))

	cfg := &AppConfig{}
	require.NoError(t, cfg.LoadConfig(yamlPath))

	assert.Equal(t, "/srv/locale", cfg.Scan.LocaleDir)
	assert.Equal(t, 2, cfg.Scan.Workers)
	assert.Equal(t, "json", cfg.Report.Format)

	// Unset sections keep their defaults.
	assert.Equal(t, "coverage", cfg.Report.Sort)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverridesYAML(t *testing.T) {
	yamlPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("report:\n  format: csv\n"), 0o600))

	t.Setenv("GTCOV_FORMAT", "json")

	cfg := &AppConfig{}
	require.NoError(t, cfg.LoadConfig(yamlPath))

	assert.Equal(t, "json", cfg.Report.Format)
}
