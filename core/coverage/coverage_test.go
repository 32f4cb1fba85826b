// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var (
	sv = language.MustParse("sv")
	de = language.MustParse("de")
	pt = language.MustParse("pt-BR")
)

func TestLocale(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog("a", "b", "c", "d")

	tests := []struct {
		name         string
		translations TranslationSet
		translated   int
		ratio        float64
	}{
		{
			name:         "half translated",
			translations: NewTranslationSet("a", "c"),
			translated:   2,
			ratio:        0.5,
		},
		{
			name:         "fully translated",
			translations: NewTranslationSet("a", "b", "c", "d"),
			translated:   4,
			ratio:        1.0,
		},
		{
			name:         "nothing translated",
			translations: NewTranslationSet(),
			translated:   0,
			ratio:        0.0,
		},
		{
			name:         "nil set counts as zero progress",
			translations: nil,
			translated:   0,
			ratio:        0.0,
		},
		{
			name:         "stale identifiers are ignored",
			translations: NewTranslationSet("a", "c", "removed", "also-removed"),
			translated:   2,
			ratio:        0.5,
		},
		{
			name:         "only stale identifiers",
			translations: NewTranslationSet("x", "y", "z", "w", "v"),
			translated:   0,
			ratio:        0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lc := Locale(sv, catalog, tt.translations)

			assert.Equal(t, tt.translated, lc.Translated)
			assert.Equal(t, catalog.Size(), lc.Total)
			assert.InDelta(t, tt.ratio, lc.Ratio(), 1e-9)
			assert.LessOrEqual(t, lc.Translated, lc.Total)
			assert.GreaterOrEqual(t, lc.Ratio(), 0.0)
			assert.LessOrEqual(t, lc.Ratio(), 1.0)
		})
	}
}

func TestLocaleIntersectionOnly(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog("a", "b", "c", "d")
	withStale := NewTranslationSet("a", "c", "gone")

	// coverage(C, T) == coverage(C, T ∩ C)
	intersection := NewTranslationSet()

	for id := range withStale {
		if catalog.Has(id) {
			intersection[id] = struct{}{}
		}
	}

	assert.Equal(t, Locale(sv, catalog, intersection), Locale(sv, catalog, withStale))
}

func TestComputeEmptyCatalog(t *testing.T) {
	t.Parallel()

	report, err := Compute("empty-pkg", NewCatalog(), map[language.Tag]TranslationSet{
		sv: NewTranslationSet("stale"),
	})

	require.ErrorIs(t, err, ErrNoTranslatableStrings)
	assert.Nil(t, report)
}

func TestComputeSingleString(t *testing.T) {
	t.Parallel()

	report, err := Compute("tiny", NewCatalog("x"), map[language.Tag]TranslationSet{
		sv: NewTranslationSet(),
	})

	require.NoError(t, err)
	require.Len(t, report.Locales, 1)
	assert.InDelta(t, 0.0, report.Locales[0].Ratio(), 1e-9)
}

func TestComputeLocaleOrdering(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog("a", "b")
	byLocale := map[language.Tag]TranslationSet{
		sv: NewTranslationSet("a"),
		de: NewTranslationSet("a", "b"),
		pt: NewTranslationSet(),
	}

	report, err := Compute("pkg", catalog, byLocale)
	require.NoError(t, err)

	// Sorted by canonical tag string: de < pt-BR < sv.
	require.Len(t, report.Locales, 3)
	assert.Equal(t, de, report.Locales[0].Tag)
	assert.Equal(t, pt, report.Locales[1].Tag)
	assert.Equal(t, sv, report.Locales[2].Tag)

	// Caller-specified order is preserved as given.
	ordered, err := ComputeOrdered("pkg", catalog, []language.Tag{sv, de}, byLocale)
	require.NoError(t, err)
	require.Len(t, ordered.Locales, 2)
	assert.Equal(t, sv, ordered.Locales[0].Tag)
	assert.Equal(t, de, ordered.Locales[1].Tag)
}

func TestComputeOrderedMissingLocale(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog("a", "b")

	// de was requested but the loader supplied no data for it.
	report, err := ComputeOrdered("pkg", catalog, []language.Tag{de}, map[language.Tag]TranslationSet{
		sv: NewTranslationSet("a"),
	})

	require.NoError(t, err)
	require.Len(t, report.Locales, 1)
	assert.Equal(t, 0, report.Locales[0].Translated)
	assert.InDelta(t, 0.0, report.Locales[0].Ratio(), 1e-9)
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog("a", "b", "c", "d")

	report, err := Compute("pkg", catalog, map[language.Tag]TranslationSet{
		sv: NewTranslationSet("a", "b", "c", "d"), // 4/4
		de: NewTranslationSet("a", "c"),           // 2/4
	})

	require.NoError(t, err)
	// 6 translated pairs of 8 possible.
	assert.InDelta(t, 0.75, report.Aggregate(), 1e-9)

	empty := &Report{Package: "pkg", Total: 4}
	assert.InDelta(t, 0.0, empty.Aggregate(), 1e-9)
}
