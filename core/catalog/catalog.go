// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

/*
Package catalog loads gettext message catalogs into the in-memory sets
consumed by core/coverage.

Supported inputs are .pot templates, .po files and compiled .mo files,
optionally gzip-compressed (.po.gz, .mo.gz) as shipped by distributions.
Parsing is delegated to the gotext runtime; this package only turns parsed
domains into identifier sets and never hands partially-parsed data to the
calculator.
*/
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"

	"github.com/yeager/gettext-coverage/core/coverage"
)

// ErrUnsupportedFormat is returned for files that are not .po, .pot or .mo,
// compressed or not.
var ErrUnsupportedFormat = errors.New("catalog: unsupported file format")

// LoadCatalog reads every message identifier from a catalog file, regardless
// of translation state. Use this on a .pot template, or on a .po/.mo file
// when no template is available.
//
// Identifiers with a msgctxt are qualified as "ctx\x04msgid", matching the
// key gettext itself hashes, so contexts never collide with plain msgids.
func LoadCatalog(path string) (coverage.Catalog, error) {
	dom, err := parseDomain(path)
	if err != nil {
		return nil, err
	}

	ids := coverage.NewCatalog()

	for id := range dom.GetTranslations() {
		if id == "" { // .po header entry
			continue
		}

		ids[id] = struct{}{}
	}

	for ctx, entries := range dom.GetCtxTranslations() {
		for id := range entries {
			if id == "" {
				continue
			}

			ids[ctx+gotext.EotSeparator+id] = struct{}{}
		}
	}

	return ids, nil
}

// LoadTranslations reads the identifiers that carry a non-empty translation
// from a .po or .mo file. Entries with plural forms count as translated when
// their base form is translated, following gotext's own notion of state.
func LoadTranslations(path string) (coverage.TranslationSet, error) {
	dom, err := parseDomain(path)
	if err != nil {
		return nil, err
	}

	set := coverage.NewTranslationSet()

	for id, tr := range dom.GetTranslations() {
		if id == "" || !tr.IsTranslated() {
			continue
		}

		set[id] = struct{}{}
	}

	for ctx, entries := range dom.GetCtxTranslations() {
		for id, tr := range entries {
			if id == "" || !tr.IsTranslated() {
				continue
			}

			set[ctx+gotext.EotSeparator+id] = struct{}{}
		}
	}

	return set, nil
}

// Load reads a catalog file once and returns both the full identifier set
// and the translated subset. Scanners prefer this over calling [LoadCatalog]
// and [LoadTranslations] separately to avoid parsing the file twice.
func Load(path string) (coverage.Catalog, coverage.TranslationSet, error) {
	dom, err := parseDomain(path)
	if err != nil {
		return nil, nil, err
	}

	ids := coverage.NewCatalog()
	set := coverage.NewTranslationSet()

	for id, tr := range dom.GetTranslations() {
		if id == "" {
			continue
		}

		ids[id] = struct{}{}
		if tr.IsTranslated() {
			set[id] = struct{}{}
		}
	}

	for ctx, entries := range dom.GetCtxTranslations() {
		for id, tr := range entries {
			if id == "" {
				continue
			}

			qualified := ctx + gotext.EotSeparator + id

			ids[qualified] = struct{}{}
			if tr.IsTranslated() {
				set[qualified] = struct{}{}
			}
		}
	}

	return ids, set, nil
}

// parseDomain reads path, transparently decompresses it, and parses it with
// the gotext parser matching its extension.
func parseDomain(path string) (*gotext.Domain, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var translator gotext.Translator

	switch filepath.Ext(strings.TrimSuffix(path, ".gz")) {
	case ".po", ".pot":
		po := gotext.NewPo()
		po.Parse(data)

		translator = po
	case ".mo":
		mo := gotext.NewMo()
		mo.Parse(data)

		translator = mo
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	log.Debug().
		Str("sys", "catalog").
		Str("path", path).
		Int("bytes", len(data)).
		Msg("Parsed catalog")

	return translator.GetDomain(), nil
}

// readFile reads path into memory, gunzipping when the name ends in .gz.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- paths come from directory scans and CLI arguments
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ".gz") {
		return data, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("bad gzip stream: %w", err)
	}
	defer zr.Close()

	plain, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("bad gzip stream: %w", err)
	}

	return plain, nil
}
