// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package statsfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func writeStats(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadArrayExport(t *testing.T) {
	t.Parallel()

	path := writeStats(t, "myapp.json", `[
		{"code": "sv", "total": 200, "translated": 150},
		{"code": "pt_BR", "total": 200, "translated": 50},
		{"code": "de", "translated_percent": 42.6},
		{"code": "??"},
		{"total": 200, "translated": 10}
	]`)

	report, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "myapp", report.Package)
	require.Len(t, report.Locales, 3)

	// Sorted by tag: de, pt-BR, sv.
	de := report.Locales[0]
	assert.Equal(t, language.MustParse("de"), de.Tag)
	assert.Equal(t, 100, de.Total)
	assert.Equal(t, 43, de.Translated)

	assert.Equal(t, language.MustParse("pt-BR"), report.Locales[1].Tag)
	assert.InDelta(t, 0.25, report.Locales[1].Ratio(), 1e-9)

	assert.Equal(t, language.MustParse("sv"), report.Locales[2].Tag)
	assert.InDelta(t, 0.75, report.Locales[2].Ratio(), 1e-9)
}

func TestLoadResultsObject(t *testing.T) {
	t.Parallel()

	path := writeStats(t, "dump.json", `{
		"project": "gettext-coverage",
		"results": [
			{"language_code": "sv", "total_strings": 10, "translated_strings": 10}
		]
	}`)

	report, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gettext-coverage", report.Package)
	require.Len(t, report.Locales, 1)
	assert.InDelta(t, 1.0, report.Locales[0].Ratio(), 1e-9)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = Load(writeStats(t, "bad.json", "{not json"))
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Load(writeStats(t, "empty.json", "[]"))
	require.ErrorIs(t, err, ErrNoLanguages)

	_, err = Load(writeStats(t, "scalar.json", `"hello"`))
	require.ErrorIs(t, err, ErrNoLanguages)
}
