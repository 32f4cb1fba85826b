// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/yeager/gettext-coverage/core/audit"
	"github.com/yeager/gettext-coverage/core/catalog"
	"github.com/yeager/gettext-coverage/core/coverage"
)

var (
	// ErrNoCatalogs is returned when a project directory contains no .po or
	// .pot files at all.
	ErrNoCatalogs = errors.New("scanner: no gettext catalogs in directory")

	// ErrUnknownLocale is returned by [ProjectLocale] when the project has no
	// catalog for the requested locale. This is distinct from a locale with
	// zero translated strings, which is reported as ratio 0.0.
	ErrUnknownLocale = errors.New("scanner: locale not present for package")
)

// ScanProject computes string-level coverage for one project po directory.
//
// The message catalog is taken from <domain>.pot (any .pot file when domain
// is empty); if no template exists, the union of identifiers across all .po
// files serves as the catalog. Every <locale>.po becomes one locale entry.
func ScanProject(ctx context.Context, dir, domain string, workers int) (*coverage.Report, error) {
	span := audit.Span{Operation: "project", Path: dir}
	span.Begin(ctx)
	defer span.End()

	if workers <= 0 {
		workers = defaultWorkers
	}

	template, poFiles, err := findProjectFiles(dir, domain)
	if err != nil {
		return nil, err
	}

	var ids coverage.Catalog

	if template != "" {
		if ids, err = catalog.LoadCatalog(template); err != nil {
			return nil, err
		}
	} else {
		ids = coverage.NewCatalog()
	}

	var mu sync.Mutex

	byLocale := make(map[language.Tag]coverage.TranslationSet, len(poFiles))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for tag, path := range poFiles {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fileIDs, set, err := catalog.Load(path)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()

			byLocale[tag] = set

			// Without a template the catalog is the union of all po files.
			if template == "" {
				for id := range fileIDs {
					ids[id] = struct{}{}
				}
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	report, err := coverage.Compute(projectName(dir, domain, template), ids, byLocale)
	if err != nil {
		return nil, err
	}

	span.Packages = 1
	span.End()
	span.Log()

	return report, nil
}

// ProjectLocale loads the translation set for a single locale of a project
// po directory. It returns [ErrUnknownLocale] when no catalog file exists
// for the locale, so callers can tell "unknown here" from "zero progress".
func ProjectLocale(dir string, tag language.Tag) (coverage.TranslationSet, error) {
	for _, name := range localeFileNames(tag) {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		return catalog.LoadTranslations(path)
	}

	return nil, fmt.Errorf("%w: %s in %s", ErrUnknownLocale, tag, dir)
}

// findProjectFiles enumerates dir and splits it into an optional template
// and a locale -> path map of po files.
func findProjectFiles(dir, domain string) (string, map[language.Tag]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", nil, err
	}

	var template string

	poFiles := map[language.Tag]string{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()

		switch {
		case strings.HasSuffix(name, ".pot"):
			if domain != "" && name != domain+".pot" {
				continue
			}

			if template == "" {
				template = filepath.Join(dir, name)
			}
		case strings.HasSuffix(name, ".po"), strings.HasSuffix(name, ".po.gz"):
			locale := strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".po")

			tag, err := catalog.ParseLocale(locale)
			if err != nil {
				continue // not a locale-named file
			}

			poFiles[tag] = filepath.Join(dir, name)
		}
	}

	if template == "" && len(poFiles) == 0 {
		return "", nil, fmt.Errorf("%w: %s", ErrNoCatalogs, dir)
	}

	return template, poFiles, nil
}

// projectName derives the package name for a report: the explicit domain,
// then the template base name, then the directory name (its parent when the
// directory itself is just "po").
func projectName(dir, domain, template string) string {
	if domain != "" {
		return domain
	}

	if template != "" {
		return strings.TrimSuffix(filepath.Base(template), ".pot")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	if base := filepath.Base(abs); base != "po" {
		return base
	}

	return filepath.Base(filepath.Dir(abs))
}

// localeFileNames returns the candidate file names for a locale, restoring
// gettext spellings from the canonical tag: hyphen and underscore separators,
// plus the "@modifier" form for private-use subtags.
func localeFileNames(tag language.Tag) []string {
	s := tag.String()

	var modifier string
	if i := strings.Index(s, "-x-"); i >= 0 {
		modifier = "@" + s[i+3:]
		s = s[:i]
	}

	hyphen := s + modifier
	underscore := strings.ReplaceAll(s, "-", "_") + modifier

	names := []string{hyphen + ".po", hyphen + ".po.gz"}
	if underscore != hyphen {
		names = append(names, underscore+".po", underscore+".po.gz")
	}

	return names
}
