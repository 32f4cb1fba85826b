// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/yeager/gettext-coverage/core/coverage"
	"github.com/yeager/gettext-coverage/core/scanner"
)

// StatsCSV writes the locale-tree scan as CSV, one row per package.
// The column layout matches the desktop application's export.
func StatsCSV(w io.Writer, stats []scanner.PackageStat) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Package", "Languages", "Total Locales", "Coverage %"}); err != nil {
		return err
	}

	for _, s := range stats {
		row := []string{
			s.Package,
			strconv.Itoa(s.Languages),
			strconv.Itoa(s.TotalLocales),
			strconv.FormatFloat(s.Percent(), 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// ReportCSV writes a per-locale report as CSV, one row per locale.
func ReportCSV(w io.Writer, rep *coverage.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Package", "Locale", "Translated", "Total", "Coverage %"}); err != nil {
		return err
	}

	for _, lc := range rep.Locales {
		row := []string{
			rep.Package,
			lc.Tag.String(),
			strconv.Itoa(lc.Translated),
			strconv.Itoa(lc.Total),
			strconv.FormatFloat(lc.Percent(), 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
