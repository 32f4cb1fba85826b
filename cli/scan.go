// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/yeager/gettext-coverage/core/scanner"

	config "github.com/yeager/gettext-coverage/configs"
)

func newScanCmd() *cobra.Command {
	var (
		withStrings bool
		sortKey     string
		format      string
		outPath     string
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "scan [locale-dir]",
		Short: "Scan an installed locale tree for per-package coverage",
		Long: `Scan walks a locale tree (/usr/share/locale by default), counts the
locales each package ships a catalog for and reports the ratio against the
locales present in the tree. With --strings the catalogs are also parsed
and per-string completion is shown alongside the presence ratio.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := config.Global.Scan.LocaleDir
			if len(args) == 1 {
				root = args[0]
			}

			// Flags override the merged configuration only when set.
			if !cmd.Flags().Changed("strings") {
				withStrings = config.Global.Scan.Strings
			}
			if !cmd.Flags().Changed("workers") {
				workers = config.Global.Scan.Workers
			}
			if !cmd.Flags().Changed("sort") {
				sortKey = config.Global.Report.Sort
			}
			if !cmd.Flags().Changed("format") {
				format = config.Global.Report.Format
			}

			stats, err := scanner.ScanLocaleTree(cmd.Context(), root, scanner.Options{
				Strings: withStrings,
				Workers: workers,
			})
			if err != nil {
				return err
			}

			scanner.SortStats(stats, scanner.SortKey(sortKey))

			return writeStats(stats, format, outPath)
		},
	}

	cmd.Flags().BoolVar(&withStrings, "strings", false,
		"parse catalogs and report per-string completion")
	cmd.Flags().StringVar(&sortKey, "sort", "coverage",
		"sort order: coverage or name")
	cmd.Flags().StringVarP(&format, "format", "f", "table",
		"output format: table, csv or json")
	cmd.Flags().StringVarP(&outPath, "output", "o", "",
		"write output to a file instead of stdout")
	cmd.Flags().IntVar(&workers, "workers", 0,
		"bound on concurrent catalog parsing")

	return cmd
}
