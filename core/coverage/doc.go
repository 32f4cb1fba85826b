// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

/*
Package coverage computes translation-completion ratios for gettext packages.

The calculator is pure: it consumes an immutable [Catalog] of translatable
message identifiers plus one [TranslationSet] per locale, and produces a
[Report] with one ratio per locale. All I/O, including catalog parsing and
package discovery, lives in core/catalog and core/scanner.

Identifiers in a translation set that are not part of the catalog (stale
translations left behind after a string was removed upstream) are ignored;
only the intersection counts. An empty catalog yields
[ErrNoTranslatableStrings] instead of a division by zero.

Each computation is independent, performs no blocking operations, and may be
invoked concurrently for different packages without coordination.
*/
package coverage
