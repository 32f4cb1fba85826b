// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package report

import (
	"encoding/json"
	"io"

	"github.com/yeager/gettext-coverage/core/coverage"
	"github.com/yeager/gettext-coverage/core/scanner"
)

// JSON DTOs. language.Tag has no JSON representation of its own, so locale
// tags are flattened to their canonical strings here rather than in core.

type localeJSON struct {
	Locale     string  `json:"locale"`
	Translated int     `json:"translated"`
	Total      int     `json:"total"`
	Coverage   float64 `json:"coverage"`
}

type reportJSON struct {
	Package   string       `json:"package"`
	Total     int          `json:"total"`
	Aggregate float64      `json:"aggregate"`
	Locales   []localeJSON `json:"locales"`
}

type statJSON struct {
	Package      string      `json:"package"`
	Languages    int         `json:"languages"`
	TotalLocales int         `json:"total_locales"`
	Coverage     float64     `json:"coverage"`
	Strings      *reportJSON `json:"strings,omitempty"`
}

// StatsJSON writes the locale-tree scan as indented JSON.
func StatsJSON(w io.Writer, stats []scanner.PackageStat) error {
	out := make([]statJSON, 0, len(stats))

	for _, s := range stats {
		entry := statJSON{
			Package:      s.Package,
			Languages:    s.Languages,
			TotalLocales: s.TotalLocales,
			Coverage:     s.Ratio(),
		}
		if s.Strings != nil {
			converted := convertReport(s.Strings)
			entry.Strings = &converted
		}

		out = append(out, entry)
	}

	return writeJSON(w, out)
}

// ReportJSON writes a per-locale report as indented JSON.
func ReportJSON(w io.Writer, rep *coverage.Report) error {
	return writeJSON(w, convertReport(rep))
}

func convertReport(rep *coverage.Report) reportJSON {
	out := reportJSON{
		Package:   rep.Package,
		Total:     rep.Total,
		Aggregate: rep.Aggregate(),
		Locales:   make([]localeJSON, 0, len(rep.Locales)),
	}

	for _, lc := range rep.Locales {
		out.Locales = append(out.Locales, localeJSON{
			Locale:     lc.Tag.String(),
			Translated: lc.Translated,
			Total:      lc.Total,
			Coverage:   lc.Ratio(),
		})
	}

	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
