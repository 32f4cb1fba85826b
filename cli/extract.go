// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yeager/gettext-coverage/core/extract"

	config "github.com/yeager/gettext-coverage/configs"
)

func newExtractCmd() *cobra.Command {
	var (
		dir      string
		outPath  string
		project  string
		keywords []string
	)

	cmd := &cobra.Command{
		Use:   "extract [patterns...]",
		Short: "Extract translatable strings from Go sources into a POT template",
		Long: `Extract loads the Go packages matching the given patterns (./... by
default), finds gotext translation calls with constant string arguments
and writes a gettext template. Wrapper functions can be matched with
--keyword; their first argument is taken as the msgid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := extract.Packages(dir, args, keywords)
			if err != nil {
				return err
			}

			if project == "" {
				project = moduleBase(dir)
			}

			if outPath == "" || outPath == "-" {
				return set.WritePOT(cmd.OutOrStdout(), project, config.BuildVersion)
			}

			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()

			return set.WritePOT(f, project, config.BuildVersion)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".",
		"directory to load packages from")
	cmd.Flags().StringVarP(&outPath, "output", "o", "",
		"template file to write, stdout when omitted")
	cmd.Flags().StringVar(&project, "project", "",
		"project name for the Project-Id-Version header")
	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil,
		"additional function names whose first argument is a msgid")

	return cmd
}

// moduleBase derives a project name from the scanned directory.
func moduleBase(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}

	return filepath.Base(abs)
}
