// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/yeager/gettext-coverage/core/catalog"
	"github.com/yeager/gettext-coverage/core/coverage"
	"github.com/yeager/gettext-coverage/core/scanner"

	config "github.com/yeager/gettext-coverage/configs"
)

func newReportCmd() *cobra.Command {
	var (
		domain  string
		locale  string
		format  string
		outPath string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "report <po-dir>",
		Short: "Report per-locale string completion for a project po directory",
		Long: `Report parses a project's po directory, takes the translatable strings
from the .pot template (or the union of all .po files when no template is
present) and shows how many of them each locale has translated. With
--locale the report is limited to a single locale; asking for a locale
the project has no catalog for is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			if !cmd.Flags().Changed("workers") {
				workers = config.Global.Scan.Workers
			}
			if !cmd.Flags().Changed("format") {
				format = config.Global.Report.Format
			}

			rep, err := scanner.ScanProject(cmd.Context(), dir, domain, workers)
			if err != nil {
				return err
			}

			if locale != "" {
				if rep, err = singleLocale(rep, dir, locale); err != nil {
					return err
				}
			}

			return writeReport(rep, format, outPath)
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "",
		"gettext domain, used to pick the template among several .pot files")
	cmd.Flags().StringVarP(&locale, "locale", "l", "",
		"limit the report to one locale (e.g. sv, pt_BR, sr@latin)")
	cmd.Flags().StringVarP(&format, "format", "f", "table",
		"output format: table, csv or json")
	cmd.Flags().StringVarP(&outPath, "output", "o", "",
		"write output to a file instead of stdout")
	cmd.Flags().IntVar(&workers, "workers", 0,
		"bound on concurrent catalog parsing")

	return cmd
}

// singleLocale narrows a project report to one locale. The locale must have
// a catalog in the po directory; zero translated strings is a valid result,
// a missing catalog is scanner.ErrUnknownLocale.
func singleLocale(rep *coverage.Report, dir, locale string) (*coverage.Report, error) {
	tag, err := catalog.ParseLocale(locale)
	if err != nil {
		return nil, err
	}

	for _, lc := range rep.Locales {
		if lc.Tag == tag {
			rep.Locales = []coverage.LocaleCoverage{lc}

			return rep, nil
		}
	}

	// Not in the report, so there was no catalog. ProjectLocale produces
	// the right error, including for a vanished directory.
	if _, err := scanner.ProjectLocale(dir, tag); err != nil {
		return nil, err
	}

	rep.Locales = []coverage.LocaleCoverage{{Tag: tag, Total: rep.Total}}

	return rep, nil
}
