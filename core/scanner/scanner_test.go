// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const poHeader = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

`

func write(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// buildLocaleTree lays out a miniature /usr/share/locale.
func buildLocaleTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	// foo is translated in sv and de, bar only in sv; nn ships nothing.
	write(t, filepath.Join(root, "sv", "LC_MESSAGES", "foo.po"),
		poHeader+"msgid \"Hello\"\nmsgstr \"Hej\"\n\nmsgid \"Quit\"\nmsgstr \"Avsluta\"\n")
	write(t, filepath.Join(root, "sv", "LC_MESSAGES", "bar.po"),
		poHeader+"msgid \"Save\"\nmsgstr \"Spara\"\n")
	write(t, filepath.Join(root, "de", "LC_MESSAGES", "foo.po"),
		poHeader+"msgid \"Hello\"\nmsgstr \"Hallo\"\n\nmsgid \"Quit\"\nmsgstr \"\"\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nn", "LC_MESSAGES"), 0o755))

	// Noise that must be ignored.
	write(t, filepath.Join(root, "README"), "not a locale")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "stray-dir"), 0o755))
	write(t, filepath.Join(root, "sv", "LC_MESSAGES", "notes.txt"), "ignored")

	return root
}

func TestScanLocaleTreePresence(t *testing.T) {
	t.Parallel()

	stats, err := ScanLocaleTree(context.Background(), buildLocaleTree(t), Options{})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ascending by coverage: bar (1/3) before foo (2/3).
	assert.Equal(t, "bar", stats[0].Package)
	assert.Equal(t, 1, stats[0].Languages)
	assert.Equal(t, 3, stats[0].TotalLocales)
	assert.InDelta(t, 1.0/3.0, stats[0].Ratio(), 1e-9)
	assert.Nil(t, stats[0].Strings)

	assert.Equal(t, "foo", stats[1].Package)
	assert.Equal(t, 2, stats[1].Languages)
	assert.InDelta(t, 2.0/3.0, stats[1].Ratio(), 1e-9)
}

func TestScanLocaleTreeStrings(t *testing.T) {
	t.Parallel()

	stats, err := ScanLocaleTree(context.Background(), buildLocaleTree(t), Options{Strings: true, Workers: 2})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	var foo PackageStat

	for _, s := range stats {
		if s.Package == "foo" {
			foo = s
		}
	}

	require.NotNil(t, foo.Strings)
	assert.Equal(t, 2, foo.Strings.Total)
	require.Len(t, foo.Strings.Locales, 2)

	// de 1/2, sv 2/2, sorted by tag.
	assert.Equal(t, language.MustParse("de"), foo.Strings.Locales[0].Tag)
	assert.Equal(t, 1, foo.Strings.Locales[0].Translated)
	assert.Equal(t, language.MustParse("sv"), foo.Strings.Locales[1].Tag)
	assert.Equal(t, 2, foo.Strings.Locales[1].Translated)
}

func TestScanLocaleTreeMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := ScanLocaleTree(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	require.Error(t, err)
}

func TestSortStats(t *testing.T) {
	t.Parallel()

	stats := []PackageStat{
		{Package: "zzz", Languages: 1, TotalLocales: 4},
		{Package: "aaa", Languages: 3, TotalLocales: 4},
		{Package: "mmm", Languages: 1, TotalLocales: 4},
	}

	SortStats(stats, SortByCoverage)
	assert.Equal(t, []string{"mmm", "zzz", "aaa"}, names(stats))

	SortStats(stats, SortByName)
	assert.Equal(t, []string{"aaa", "mmm", "zzz"}, names(stats))
}

func names(stats []PackageStat) []string {
	out := make([]string, len(stats))
	for i, s := range stats {
		out[i] = s.Package
	}

	return out
}

// buildProject lays out a po/ directory with a template.
func buildProject(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "myapp", "po")

	write(t, filepath.Join(dir, "myapp.pot"),
		poHeader+"msgid \"Hello\"\nmsgstr \"\"\n\nmsgid \"Quit\"\nmsgstr \"\"\n\nmsgid \"Save\"\nmsgstr \"\"\n")
	write(t, filepath.Join(dir, "sv.po"),
		poHeader+"msgid \"Hello\"\nmsgstr \"Hej\"\n\nmsgid \"Quit\"\nmsgstr \"Avsluta\"\n\nmsgid \"Stale\"\nmsgstr \"Gammal\"\n")
	write(t, filepath.Join(dir, "de.po"),
		poHeader+"msgid \"Hello\"\nmsgstr \"\"\n")

	return dir
}

func TestScanProject(t *testing.T) {
	t.Parallel()

	report, err := ScanProject(context.Background(), buildProject(t), "", 0)
	require.NoError(t, err)

	assert.Equal(t, "myapp", report.Package)
	assert.Equal(t, 3, report.Total)
	require.Len(t, report.Locales, 2)

	de, sv := report.Locales[0], report.Locales[1]

	assert.Equal(t, language.MustParse("de"), de.Tag)
	assert.Equal(t, 0, de.Translated)

	// The stale "Stale" entry in sv.po must not count.
	assert.Equal(t, language.MustParse("sv"), sv.Tag)
	assert.Equal(t, 2, sv.Translated)
	assert.InDelta(t, 2.0/3.0, sv.Ratio(), 1e-9)
}

func TestScanProjectWithoutTemplate(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "po")
	write(t, filepath.Join(dir, "sv.po"),
		poHeader+"msgid \"Hello\"\nmsgstr \"Hej\"\n")
	write(t, filepath.Join(dir, "de.po"),
		poHeader+"msgid \"Hello\"\nmsgstr \"\"\n\nmsgid \"Quit\"\nmsgstr \"Beenden\"\n")

	report, err := ScanProject(context.Background(), dir, "", 0)
	require.NoError(t, err)

	// Catalog is the union of both files.
	assert.Equal(t, 2, report.Total)
	require.Len(t, report.Locales, 2)
	assert.Equal(t, 1, report.Locales[0].Translated) // de
	assert.Equal(t, 1, report.Locales[1].Translated) // sv
}

func TestScanProjectEmptyDir(t *testing.T) {
	t.Parallel()

	_, err := ScanProject(context.Background(), t.TempDir(), "", 0)
	require.ErrorIs(t, err, ErrNoCatalogs)
}

func TestProjectLocale(t *testing.T) {
	t.Parallel()

	dir := buildProject(t)

	set, err := ProjectLocale(dir, language.MustParse("sv"))
	require.NoError(t, err)
	assert.Len(t, set, 3) // includes the stale entry; filtering is the calculator's job

	_, err = ProjectLocale(dir, language.MustParse("fi"))
	require.ErrorIs(t, err, ErrUnknownLocale)
}

func TestProjectLocaleUnderscoreFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "po")
	write(t, filepath.Join(dir, "pt_BR.po"),
		poHeader+"msgid \"Hello\"\nmsgstr \"Olá\"\n")

	set, err := ProjectLocale(dir, language.MustParse("pt-BR"))
	require.NoError(t, err)
	assert.Len(t, set, 1)
}
