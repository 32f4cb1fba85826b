// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package cli

import (
	"fmt"
	"os"

	"github.com/yeager/gettext-coverage/core/coverage"
	"github.com/yeager/gettext-coverage/core/report"
	"github.com/yeager/gettext-coverage/core/scanner"

	config "github.com/yeager/gettext-coverage/configs"
)

// openOutput resolves the -o flag. An empty path means stdout, which the
// caller must not close.
func openOutput(path string) (*os.File, bool, error) {
	if path == "" || path == "-" {
		return os.Stdout, false, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, true, nil
}

func writeStats(stats []scanner.PackageStat, format, outPath string) error {
	f, needsClose, err := openOutput(outPath)
	if err != nil {
		return err
	}
	if needsClose {
		defer f.Close()
	}

	switch format {
	case config.FormatCSV:
		return report.StatsCSV(f, stats)
	case config.FormatJSON:
		return report.StatsJSON(f, stats)
	default:
		return report.NewTable(f, config.Global.UseColor(f)).Stats(stats)
	}
}

func writeReport(rep *coverage.Report, format, outPath string) error {
	f, needsClose, err := openOutput(outPath)
	if err != nil {
		return err
	}
	if needsClose {
		defer f.Close()
	}

	switch format {
	case config.FormatCSV:
		return report.ReportCSV(f, rep)
	case config.FormatJSON:
		return report.ReportJSON(f, rep)
	default:
		return report.NewTable(f, config.Global.UseColor(f)).Report(rep)
	}
}
