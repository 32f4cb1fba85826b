// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

/*
Package statsfile imports translation statistics exported by a translation
platform as JSON, for example a Weblate per-language statistics download.

Only local files are read; talking to a platform API is out of scope.
*/
package statsfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/yeager/gettext-coverage/core/catalog"
	"github.com/yeager/gettext-coverage/core/coverage"
)

var (
	// ErrMalformed is returned for files that are not valid JSON.
	ErrMalformed = errors.New("statsfile: not valid JSON")

	// ErrNoLanguages is returned when no per-language entry could be mapped.
	ErrNoLanguages = errors.New("statsfile: no language statistics found")
)

// Alternate key spellings seen across platform exports.
var (
	codeKeys       = []string{"code", "language_code", "language.code"}
	totalKeys      = []string{"total", "total_strings", "strings"}
	translatedKeys = []string{"translated", "translated_strings"}
)

// Load parses a statistics export and maps it onto a coverage report.
//
// Accepted shapes are a top-level array of per-language objects, or an
// object with a "results" array as produced by paginated API dumps. Each
// entry needs a language code plus translated/total counts; entries that
// only carry "translated_percent" are mapped onto a synthetic total of 100.
func Load(path string) (*coverage.Report, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- CLI argument
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, path)
	}

	root := gjson.ParseBytes(data)

	entries := root
	if root.IsObject() {
		if results := root.Get("results"); results.IsArray() {
			entries = results
		}
	}

	if !entries.IsArray() {
		return nil, fmt.Errorf("%w: %s", ErrNoLanguages, path)
	}

	report := &coverage.Report{Package: packageName(root, path)}

	entries.ForEach(func(_, entry gjson.Result) bool {
		lc, ok := mapEntry(entry)
		if !ok {
			return true
		}

		report.Locales = append(report.Locales, lc)

		if lc.Total > report.Total {
			report.Total = lc.Total
		}

		return true
	})

	if len(report.Locales) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLanguages, path)
	}

	sort.Slice(report.Locales, func(i, j int) bool {
		return report.Locales[i].Tag.String() < report.Locales[j].Tag.String()
	})

	return report, nil
}

// mapEntry converts one per-language object to a LocaleCoverage.
func mapEntry(entry gjson.Result) (coverage.LocaleCoverage, bool) {
	code := first(entry, codeKeys)
	if !code.Exists() {
		return coverage.LocaleCoverage{}, false
	}

	tag, err := catalog.ParseLocale(code.String())
	if err != nil {
		log.Warn().
			Str("sys", "statsfile").
			Str("code", code.String()).
			Msg("Skipping entry with unparseable language code")

		return coverage.LocaleCoverage{}, false
	}

	lc := coverage.LocaleCoverage{Tag: tag}

	total := first(entry, totalKeys)
	translated := first(entry, translatedKeys)

	switch {
	case total.Exists() && translated.Exists():
		lc.Total = int(total.Int())
		lc.Translated = int(translated.Int())
	case entry.Get("translated_percent").Exists():
		// Percent-only exports lose the absolute counts.
		lc.Total = 100
		lc.Translated = int(entry.Get("translated_percent").Float() + 0.5)
	default:
		return coverage.LocaleCoverage{}, false
	}

	if lc.Total <= 0 || lc.Translated < 0 || lc.Translated > lc.Total {
		return coverage.LocaleCoverage{}, false
	}

	return lc, true
}

// first returns the first existing key from keys.
func first(entry gjson.Result, keys []string) gjson.Result {
	for _, key := range keys {
		if r := entry.Get(key); r.Exists() {
			return r
		}
	}

	return gjson.Result{}
}

// packageName prefers an explicit project name in the export, falling back
// to the file name.
func packageName(root gjson.Result, path string) string {
	for _, key := range []string{"project", "project.name", "component", "name"} {
		if r := root.Get(key); r.Exists() && r.Type == gjson.String {
			return r.String()
		}
	}

	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
