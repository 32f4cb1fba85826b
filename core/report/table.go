// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

/*
Package report renders coverage results for the terminal and for export.

It is a pure presentation layer: everything it prints comes from the
structures produced by core/coverage, core/scanner and core/statsfile.
*/
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/yeager/gettext-coverage/core/coverage"
	"github.com/yeager/gettext-coverage/core/scanner"
)

const (
	barWidth = 20

	// maxNameWidth caps the package column so one long domain name does not
	// blow up the whole table.
	maxNameWidth = 32
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)

	lowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	midStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	highStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Table writes coverage tables to a terminal or file.
type Table struct {
	w io.Writer

	// Color enables lipgloss styling; leave false when w is not a TTY.
	Color bool
}

// NewTable returns a table renderer writing to w.
func NewTable(w io.Writer, color bool) *Table {
	return &Table{w: w, Color: color}
}

// Stats renders the locale-tree scan table, one row per package.
func (t *Table) Stats(stats []scanner.PackageStat) error {
	nameWidth := len("Package")
	for _, s := range stats {
		if w := runewidth.StringWidth(s.Package); w > nameWidth && w <= maxNameWidth {
			nameWidth = w
		}
	}

	header := fmt.Sprintf("%s  %-9s  %-*s  %s",
		pad("Package", nameWidth), "Languages", barWidth, "Coverage", "     %")
	fmt.Fprintln(t.w, t.style(headerStyle, header))

	for _, s := range stats {
		ratio := s.Ratio()
		langs := fmt.Sprintf("%3d / %-3d", s.Languages, s.TotalLocales)

		line := fmt.Sprintf("%s  %s  %s  %5.1f%%",
			pad(s.Package, nameWidth), langs, t.bar(ratio), s.Percent())

		if s.Strings != nil {
			line += t.style(dimStyle, fmt.Sprintf("  (%d msgs, %.1f%% translated)",
				s.Strings.Total, s.Strings.Aggregate()*100))
		}

		fmt.Fprintln(t.w, line)
	}

	fmt.Fprintln(t.w, t.style(dimStyle, fmt.Sprintf("%d packages", len(stats))))

	return nil
}

// Report renders a per-locale table for one package.
func (t *Table) Report(rep *coverage.Report) error {
	fmt.Fprintln(t.w, t.style(headerStyle,
		fmt.Sprintf("%s — %d translatable strings", rep.Package, rep.Total)))

	nameWidth := len("Locale")

	names := make([]string, len(rep.Locales))
	for i, lc := range rep.Locales {
		names[i] = localeLabel(lc.Tag)
		if w := runewidth.StringWidth(names[i]); w > nameWidth && w <= maxNameWidth {
			nameWidth = w
		}
	}

	for i, lc := range rep.Locales {
		counts := fmt.Sprintf("%4d / %-4d", lc.Translated, lc.Total)

		fmt.Fprintf(t.w, "%s  %s  %s  %5.1f%%\n",
			pad(names[i], nameWidth), counts, t.bar(lc.Ratio()), lc.Percent())
	}

	fmt.Fprintln(t.w, t.style(dimStyle,
		fmt.Sprintf("aggregate %.1f%% across %d locales", rep.Aggregate()*100, len(rep.Locales))))

	return nil
}

// bar renders a textual progress bar for ratio.
func (t *Table) bar(ratio float64) string {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio*barWidth + 0.5)
	s := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	switch {
	case ratio >= 0.8:
		return t.style(highStyle, s)
	case ratio >= 0.4:
		return t.style(midStyle, s)
	default:
		return t.style(lowStyle, s)
	}
}

func (t *Table) style(style lipgloss.Style, s string) string {
	if !t.Color {
		return s
	}

	return style.Render(s)
}

// localeLabel combines the BCP 47 tag with the locale's own display name,
// for example "sv (svenska)". Falls back to the bare tag when no display
// name is known.
func localeLabel(tag language.Tag) string {
	name := display.Self.Name(tag)
	if name == "" || strings.EqualFold(name, tag.String()) {
		return tag.String()
	}

	return fmt.Sprintf("%s (%s)", tag, name)
}

// pad right-pads s to width terminal cells, truncating over-long names.
func pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}

	return runewidth.FillRight(s, width)
}
