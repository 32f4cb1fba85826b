// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package extract

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// WritePOT emits the set as a gettext template. project and version fill
// the Project-Id-Version header field; entries are ordered by context,
// msgid and plural so the output is stable across runs.
func (s Set) WritePOT(w io.Writer, project, version string) error {
	entries := make([]Entry, 0, len(s))
	for e := range s {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Ctx != entries[j].Ctx {
			return entries[i].Ctx < entries[j].Ctx
		}

		if entries[i].ID != entries[j].ID {
			return entries[i].ID < entries[j].ID
		}

		return entries[i].Plural < entries[j].Plural
	})

	var b strings.Builder

	writeHeader(&b, project, version)

	for i, e := range entries {
		refs := s[e]
		sort.Slice(refs, func(i, j int) bool {
			if refs[i].File != refs[j].File {
				return refs[i].File < refs[j].File
			}

			return refs[i].Line < refs[j].Line
		})

		// Sorted refs put duplicates next to each other.
		fmt.Fprint(&b, "#:")

		var (
			lastFile string
			lastLine int
		)

		for _, r := range refs {
			if r.File != lastFile || r.Line != lastLine {
				fmt.Fprintf(&b, " %s:%d", r.File, r.Line)

				lastFile = r.File
				lastLine = r.Line
			}
		}

		fmt.Fprintln(&b)

		if e.Ctx != "" {
			fmt.Fprintf(&b, "msgctxt %q\n", e.Ctx)
		}

		if e.Plural != "" {
			fmt.Fprintf(&b, "msgid %q\n", e.ID)
			fmt.Fprintf(&b, "msgid_plural %q\n", e.Plural)
			fmt.Fprintf(&b, "msgstr[0] \"\"\n")
			fmt.Fprintf(&b, "msgstr[1] \"\"\n")
		} else {
			fmt.Fprintf(&b, "msgid %q\n", e.ID)
			fmt.Fprintf(&b, "msgstr \"\"\n")
		}

		if i < len(entries)-1 {
			fmt.Fprintln(&b)
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func writeHeader(b *strings.Builder, project, version string) {
	fmt.Fprintln(b, `msgid ""`)
	fmt.Fprintln(b, `msgstr ""`)
	fmt.Fprintf(b, "\"Project-Id-Version: %s %s\\n\"\n", project, version)
	fmt.Fprintf(b, "\"POT-Creation-Date: %s\\n\"\n", time.Now().UTC().Format("2006-01-02 15:04+0000"))
	fmt.Fprintln(b, `"Language: en\n"`)
	fmt.Fprintln(b, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(b, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(b, `"Content-Transfer-Encoding: 8bit\n"`)
	fmt.Fprintln(b, `"Plural-Forms: nplurals=2; plural=(n != 1);\n"`)
	fmt.Fprintln(b)
}
