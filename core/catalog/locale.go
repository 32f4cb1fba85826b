// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ParseLocale normalises a gettext locale directory or file name, for example
// "sv", "pt_BR", "sr@latin" or "en_GB.UTF-8", to a canonical BCP 47 tag.
//
// Underscores and hyphens are both accepted. A trailing codeset (".UTF-8")
// is dropped. A gettext modifier ("@latin", "@valencia") is preserved as a
// private-use subtag so that "sr" and "sr@latin" remain distinct locales.
func ParseLocale(name string) (language.Tag, error) {
	s := name

	// Strip the codeset, keep the modifier.
	var modifier string
	if at := strings.IndexByte(s, '@'); at >= 0 {
		modifier = strings.ToLower(s[at+1:])
		s = s[:at]
	}

	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}

	s = strings.ReplaceAll(s, "_", "-")
	if modifier != "" {
		s += "-x-" + modifier
	}

	tag, err := language.Parse(s)
	if err != nil {
		return language.Tag{}, fmt.Errorf("invalid locale %q: %w", name, err)
	}

	return tag, nil
}
