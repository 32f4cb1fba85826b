// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

/*
Package cli defines the gettext-coverage command surface.

Configuration is loaded once in the root command's persistent pre-run, so
every subcommand sees the merged defaults/YAML/environment settings; flags
that mirror a config field win when explicitly set.
*/
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	config "github.com/yeager/gettext-coverage/configs"
)

// NewRootCmd builds the gettext-coverage root command with all subcommands
// attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "gettext-coverage",
		Short: "Translation coverage viewer for distribution packages",
		Long: `gettext-coverage computes translation-completion statistics from GNU
gettext catalogs: per-package locale coverage across an installed locale
tree, and per-locale string coverage for a project po directory.`,
		Version:       config.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// No config needed to print help or the version.
			if cmd.Name() == "help" || cmd.Name() == cobra.ShellCompRequestCmd {
				return nil
			}

			return config.Global.LoadConfig(cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "",
		"path to a configuration file in YAML format")

	root.AddCommand(
		newScanCmd(),
		newReportCmd(),
		newImportCmd(),
		newExtractCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gettext-coverage %s (%s)\n",
				config.BuildVersion, config.Global.Build.Revision())
		},
	}
}
