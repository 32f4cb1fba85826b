// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

/*
Package extract pulls translatable strings out of Go source trees.

It works the way xgettext does: calls to a known set of keyword functions
(the gotext call surface by default) are matched by name, and the msgid,
plural and context arguments are folded to constant strings through the
type checker. Non-constant arguments are skipped; gettext cannot key on
them anyway.
*/
package extract

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// Entry identifies a gettext message by context, singular msgid and
// optional plural. Non-plural entries leave Plural empty.
type Entry struct {
	Ctx    string
	ID     string
	Plural string
}

// Ref is one source position an entry was extracted from, with the file
// path relative to the scanned directory.
type Ref struct {
	File string
	Line int
}

// Set accumulates extracted entries with their source references.
type Set map[Entry][]Ref

// keyword describes the argument positions of a translation call.
// Indexes are zero-based, -1 means the call has no such argument.
type keyword struct {
	id     int
	plural int
	ctx    int
}

// The gotext call surface. Both the package-level helpers and the
// Po/Mo/Locale methods share these names and shapes.
var gotextKeywords = map[string]keyword{
	"Get":    {id: 0, plural: -1, ctx: -1},
	"GetN":   {id: 0, plural: 1, ctx: -1},
	"GetC":   {id: 0, plural: -1, ctx: 1},
	"GetNC":  {id: 0, plural: 1, ctx: 3},
	"GetD":   {id: 1, plural: -1, ctx: -1},
	"GetND":  {id: 1, plural: 2, ctx: -1},
	"GetDC":  {id: 1, plural: -1, ctx: 2},
	"GetNDC": {id: 1, plural: 2, ctx: 4},
}

// Packages loads the Go packages matching patterns under dir and extracts
// translation entries from their sources. extraKeywords names additional
// functions whose first argument is a msgid, for projects that wrap the
// translation calls.
func Packages(dir string, patterns, extraKeywords []string) (Set, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Mode:  packages.LoadAllSyntax,
		Dir:   dir,
		Tests: false,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("failed to load packages in %s due to errors", dir)
	}

	kw := make(map[string]keyword, len(gotextKeywords)+len(extraKeywords))
	for name, k := range gotextKeywords {
		kw[name] = k
	}

	for _, name := range extraKeywords {
		kw[name] = keyword{id: 0, plural: -1, ctx: -1}
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		root = dir
	}

	set := Set{}

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		w := &walker{
			set:      set,
			root:     root,
			fset:     p.Fset,
			info:     p.TypesInfo,
			keywords: kw,
		}

		for _, f := range p.Syntax {
			ast.Inspect(f, func(n ast.Node) bool {
				if call, ok := n.(*ast.CallExpr); ok {
					w.call(call)
				}

				return true
			})
		}
	}

	return set, nil
}

// walker holds the shared state for AST analysis within one package.
type walker struct {
	set      Set
	root     string
	fset     *token.FileSet
	info     *types.Info
	keywords map[string]keyword
}

func (w *walker) call(x *ast.CallExpr) {
	// Type conversions also parse as calls. Skip them.
	if tv, ok := w.info.Types[x.Fun]; ok && tv.IsType() {
		return
	}

	name, ok := callName(x)
	if !ok {
		return
	}

	k, ok := w.keywords[name]
	if !ok {
		return
	}

	if k.id >= len(x.Args) {
		return
	}

	id, ok := w.constString(x.Args[k.id])
	if !ok {
		return
	}

	var plural, ctx string

	if k.plural >= 0 {
		if k.plural >= len(x.Args) {
			return
		}

		if plural, ok = w.constString(x.Args[k.plural]); !ok {
			return
		}
	}

	if k.ctx >= 0 {
		if k.ctx >= len(x.Args) {
			return
		}

		if ctx, ok = w.constString(x.Args[k.ctx]); !ok {
			return
		}
	}

	w.add(x.Args[k.id].Pos(), Entry{Ctx: ctx, ID: id, Plural: plural})
}

// callName resolves the bare function or method name of a call, for both
// qualified (gotext.Get, po.Get) and unqualified (Get) forms.
func callName(x *ast.CallExpr) (string, bool) {
	switch fn := x.Fun.(type) {
	case *ast.SelectorExpr:
		return fn.Sel.Name, true
	case *ast.Ident:
		return fn.Name, true
	default:
		return "", false
	}
}

// constString folds expr to a constant string through the type checker,
// covering literals, const identifiers and constant concatenations.
func (w *walker) constString(expr ast.Expr) (string, bool) {
	tv, ok := w.info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

func (w *walker) add(pos token.Pos, entry Entry) {
	p := w.fset.Position(pos)

	file := p.Filename
	if rel, err := filepath.Rel(w.root, file); err == nil {
		file = rel
	}

	file = filepath.ToSlash(file)

	w.set[entry] = append(w.set[entry], Ref{File: file, Line: p.Line})
}
