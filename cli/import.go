// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/yeager/gettext-coverage/core/statsfile"

	config "github.com/yeager/gettext-coverage/configs"
)

func newImportCmd() *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "import <stats.json>",
		Short: "Render a coverage report from an exported statistics file",
		Long: `Import reads per-language statistics exported by a translation platform
(a JSON array of language entries, or an object with a "results" array)
and renders them with the same formatters as the scan and report
commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = config.Global.Report.Format
			}

			rep, err := statsfile.Load(args[0])
			if err != nil {
				return err
			}

			return writeReport(rep, format, outPath)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table",
		"output format: table, csv or json")
	cmd.Flags().StringVarP(&outPath, "output", "o", "",
		"write output to a file instead of stdout")

	return cmd
}
