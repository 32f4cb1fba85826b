// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"errors"
	"sort"

	"golang.org/x/text/language"
)

// ErrNoTranslatableStrings is returned by [Compute] when the catalog is empty.
//
// An empty catalog has no defined coverage; callers must not interpret this
// as a ratio of 0.0.
var ErrNoTranslatableStrings = errors.New("coverage: package has no translatable strings")

// Catalog is the complete set of translatable message identifiers for one
// package. Identifiers with a msgctxt are qualified by their context so that
// "Open" in a menu and "Open" in a dialog count as distinct messages.
//
// A Catalog is an immutable snapshot once handed to [Compute].
type Catalog map[string]struct{}

// NewCatalog builds a Catalog from message identifiers. Duplicates collapse.
func NewCatalog(ids ...string) Catalog {
	c := make(Catalog, len(ids))
	for _, id := range ids {
		c[id] = struct{}{}
	}

	return c
}

// Has reports whether id is part of the catalog.
func (c Catalog) Has(id string) bool {
	_, ok := c[id]

	return ok
}

// Size returns the number of unique identifiers in the catalog.
func (c Catalog) Size() int {
	return len(c)
}

// TranslationSet is the set of identifiers that carry a non-empty translation
// for one (package, locale) pair. It need not be a subset of the catalog;
// stale entries are ignored during computation.
type TranslationSet map[string]struct{}

// NewTranslationSet builds a TranslationSet from message identifiers.
func NewTranslationSet(ids ...string) TranslationSet {
	t := make(TranslationSet, len(ids))
	for _, id := range ids {
		t[id] = struct{}{}
	}

	return t
}

// LocaleCoverage is the coverage of one locale against one package catalog.
type LocaleCoverage struct {
	// Tag is the canonical BCP 47 tag of the locale, for example "pt-BR".
	Tag language.Tag

	// Translated is the number of catalog identifiers with a translation.
	Translated int

	// Total is the catalog size. Always > 0 for results produced by Compute.
	Total int
}

// Ratio returns Translated / Total in [0.0, 1.0].
// A zero Total yields 0.0 rather than NaN; Compute never produces one.
func (lc LocaleCoverage) Ratio() float64 {
	if lc.Total == 0 {
		return 0
	}

	return float64(lc.Translated) / float64(lc.Total)
}

// Percent returns the ratio scaled to [0, 100].
func (lc LocaleCoverage) Percent() float64 {
	return lc.Ratio() * 100
}

// Report is the computed coverage of one package across a set of locales.
type Report struct {
	// Package is the gettext domain the report describes.
	Package string

	// Total is the catalog size shared by every locale entry.
	Total int

	// Locales holds one entry per requested locale, in the order fixed
	// at computation time.
	Locales []LocaleCoverage
}

// Aggregate returns the package-level coverage: the fraction of all
// (locale, identifier) pairs that are translated. With no locales the
// aggregate is zero.
func (r *Report) Aggregate() float64 {
	if len(r.Locales) == 0 || r.Total == 0 {
		return 0
	}

	translated := 0
	for _, lc := range r.Locales {
		translated += lc.Translated
	}

	return float64(translated) / float64(r.Total*len(r.Locales))
}

// Locale computes the coverage of a single translation set against catalog.
// Only identifiers present in both sets count as translated, so stale
// translations never inflate the ratio. A nil translations map counts as
// zero progress.
//
// The catalog must be non-empty; Compute enforces this for whole reports.
func Locale(tag language.Tag, catalog Catalog, translations TranslationSet) LocaleCoverage {
	translated := 0

	// Iterate the smaller set.
	if len(translations) <= len(catalog) {
		for id := range translations {
			if catalog.Has(id) {
				translated++
			}
		}
	} else {
		for id := range catalog {
			if _, ok := translations[id]; ok {
				translated++
			}
		}
	}

	return LocaleCoverage{Tag: tag, Translated: translated, Total: len(catalog)}
}

// Compute builds a coverage report for one package.
//
// Locales are reported sorted by their canonical tag string so presentation
// layers render consistently; use [ComputeOrdered] to fix a different order.
// A locale present in byLocale with a nil set counts as zero translated.
//
// Compute returns [ErrNoTranslatableStrings] when the catalog is empty.
// It performs no I/O and is safe to call concurrently with independent inputs.
func Compute(pkg string, catalog Catalog, byLocale map[language.Tag]TranslationSet) (*Report, error) {
	order := make([]language.Tag, 0, len(byLocale))
	for tag := range byLocale {
		order = append(order, tag)
	}

	sort.Slice(order, func(i, j int) bool { return order[i].String() < order[j].String() })

	return ComputeOrdered(pkg, catalog, order, byLocale)
}

// ComputeOrdered is [Compute] with a caller-specified locale order.
// Locales listed in order but absent from byLocale count as zero translated;
// distinguishing "unknown locale" from "zero progress" is the loader's job.
func ComputeOrdered(
	pkg string,
	catalog Catalog,
	order []language.Tag,
	byLocale map[language.Tag]TranslationSet,
) (*Report, error) {
	if len(catalog) == 0 {
		return nil, ErrNoTranslatableStrings
	}

	report := &Report{
		Package: pkg,
		Total:   len(catalog),
		Locales: make([]LocaleCoverage, 0, len(order)),
	}

	for _, tag := range order {
		report.Locales = append(report.Locales, Locale(tag, catalog, byLocale[tag]))
	}

	return report, nil
}
