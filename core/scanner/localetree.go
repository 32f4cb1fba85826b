// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

/*
Package scanner discovers gettext catalogs on disk and feeds them to the
coverage calculator.

Two layouts are understood: an installed locale tree
(<root>/<locale>/LC_MESSAGES/<package>.mo, the /usr/share/locale layout) and
a project po directory (<dir>/<domain>.pot plus <dir>/<locale>.po).
*/
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/yeager/gettext-coverage/core/audit"
	"github.com/yeager/gettext-coverage/core/catalog"
	"github.com/yeager/gettext-coverage/core/coverage"
)

// defaultWorkers bounds catalog parsing concurrency when Options.Workers
// is unset.
const defaultWorkers = 8

// catalogSuffixes are the file endings recognised inside LC_MESSAGES
// directories, in strip order.
var catalogSuffixes = []string{".mo.gz", ".po.gz", ".mo", ".po"}

// PackageStat is the locale-level coverage of one package across an
// installed locale tree.
type PackageStat struct {
	// Package is the gettext domain, taken from the catalog file name.
	Package string

	// Languages is the number of locales that ship a catalog for the package.
	Languages int

	// TotalLocales is the number of locale directories in the tree.
	TotalLocales int

	// Strings holds per-locale string-level coverage when the scan was run
	// with Options.Strings; nil otherwise.
	Strings *coverage.Report
}

// Ratio returns the fraction of locales that ship a catalog for the package.
func (s PackageStat) Ratio() float64 {
	if s.TotalLocales == 0 {
		return 0
	}

	return float64(s.Languages) / float64(s.TotalLocales)
}

// Percent returns the ratio scaled to [0, 100].
func (s PackageStat) Percent() float64 {
	return s.Ratio() * 100
}

// Options controls a locale-tree scan.
type Options struct {
	// Strings enables string-level coverage: every catalog is parsed and a
	// per-locale message report is attached to each PackageStat. Without it
	// only file presence is inspected and no catalog is ever opened.
	Strings bool

	// Workers bounds concurrent catalog parsing. Zero means defaultWorkers.
	Workers int
}

// localeDir is one <root>/<locale>/LC_MESSAGES directory.
type localeDir struct {
	name string
	tag  language.Tag
	ok   bool // tag parsed
}

// ScanLocaleTree walks an installed locale tree and computes coverage for
// every package found in it.
//
// A locale counts towards the total when it has an LC_MESSAGES directory,
// whether or not any package ships a catalog there. Results are returned
// sorted ascending by coverage; see [SortStats] for other orders.
func ScanLocaleTree(ctx context.Context, root string, opts Options) ([]PackageStat, error) {
	span := audit.Span{Operation: "locale-tree", Path: root}
	span.Begin(ctx)
	defer span.End()

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var locales []localeDir

	// package -> locale dir name -> catalog path
	files := map[string]map[string]string{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		lcDir := filepath.Join(root, entry.Name(), "LC_MESSAGES")

		catalogs, err := os.ReadDir(lcDir)
		if err != nil {
			continue // not a locale directory
		}

		ld := localeDir{name: entry.Name()}
		if tag, err := catalog.ParseLocale(entry.Name()); err == nil {
			ld.tag, ld.ok = tag, true
		} else {
			log.Warn().
				Str("sys", "scan").
				Str("dir", entry.Name()).
				Msg("Locale directory name is not a valid locale")
		}

		locales = append(locales, ld)

		for _, c := range catalogs {
			if c.IsDir() {
				continue
			}

			pkg, ok := packageName(c.Name())
			if !ok {
				continue
			}

			if files[pkg] == nil {
				files[pkg] = map[string]string{}
			}

			files[pkg][entry.Name()] = filepath.Join(lcDir, c.Name())
		}
	}

	stats := make([]PackageStat, 0, len(files))
	for pkg, byLocale := range files {
		stats = append(stats, PackageStat{
			Package:      pkg,
			Languages:    len(byLocale),
			TotalLocales: len(locales),
		})
	}

	if opts.Strings {
		if err := attachStringReports(ctx, stats, files, locales, opts.Workers); err != nil {
			return nil, err
		}
	}

	SortStats(stats, SortByCoverage)

	span.Packages = len(stats)
	span.End()
	span.Log()

	return stats, nil
}

// attachStringReports parses every catalog of every package and fills in
// PackageStat.Strings. Packages are processed concurrently with a bounded
// worker count; files within a package are parsed serially.
func attachStringReports(
	ctx context.Context,
	stats []PackageStat,
	files map[string]map[string]string,
	locales []localeDir,
	workers int,
) error {
	if workers <= 0 {
		workers = defaultWorkers
	}

	tagByDir := make(map[string]language.Tag, len(locales))

	for _, ld := range locales {
		if ld.ok {
			tagByDir[ld.name] = ld.tag
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i := range stats {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			report, err := packageStrings(stats[i].Package, files[stats[i].Package], tagByDir)
			if err != nil {
				return err
			}

			stats[i].Strings = report

			return nil
		})
	}

	return group.Wait()
}

// packageStrings computes the string-level report for one package from its
// per-locale catalog files. The message catalog is the union of identifiers
// across all locales, since installed trees carry no .pot template.
func packageStrings(
	pkg string,
	byDir map[string]string,
	tagByDir map[string]language.Tag,
) (*coverage.Report, error) {
	union := coverage.NewCatalog()
	byLocale := map[language.Tag]coverage.TranslationSet{}

	for dir, path := range byDir {
		tag, ok := tagByDir[dir]
		if !ok {
			continue // unparseable locale dir, presence-counted only
		}

		ids, set, err := catalog.Load(path)
		if err != nil {
			return nil, err
		}

		for id := range ids {
			union[id] = struct{}{}
		}

		byLocale[tag] = set
	}

	report, err := coverage.Compute(pkg, union, byLocale)
	if err != nil {
		// A package whose catalogs parse to nothing has no defined
		// string-level coverage; presence stats still stand.
		log.Debug().
			Str("sys", "scan").
			Str("package", pkg).
			Msg("No translatable strings in any catalog")

		return nil, nil //nolint:nilerr // deliberate downgrade
	}

	return report, nil
}

// packageName strips a recognised catalog suffix from a file name.
func packageName(file string) (string, bool) {
	for _, suffix := range catalogSuffixes {
		if strings.HasSuffix(file, suffix) {
			return strings.TrimSuffix(file, suffix), true
		}
	}

	return "", false
}

// SortKey selects the ordering of scan results.
type SortKey string

// Possible values for SortKey.
const (
	// SortByCoverage orders ascending by coverage so the least translated
	// packages surface first, ties broken by name.
	SortByCoverage SortKey = "coverage"

	// SortByName orders alphabetically by package name.
	SortByName SortKey = "name"
)

// SortStats sorts stats in place by the given key.
func SortStats(stats []PackageStat, key SortKey) {
	switch key {
	case SortByName:
		sort.Slice(stats, func(i, j int) bool { return stats[i].Package < stats[j].Package })
	default:
		sort.Slice(stats, func(i, j int) bool {
			if stats[i].Ratio() != stats[j].Ratio() {
				return stats[i].Ratio() < stats[j].Ratio()
			}

			return stats[i].Package < stats[j].Package
		})
	}
}
