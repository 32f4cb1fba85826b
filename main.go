// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

/*
Gettext Coverage is a translation statistics tool for GNU gettext catalogs.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yeager/gettext-coverage/cli"
	"github.com/yeager/gettext-coverage/core/audit"
)

// main is the entry point of the application.
func main() {
	audit.SetDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		// Configuration may not have loaded yet, so write plainly rather
		// than through the logger.
		os.Stderr.WriteString("gettext-coverage: " + err.Error() + "\n")
		os.Exit(1)
	}
}
