//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The Expando Authors
//
// This file is part of Expando.
//
// Expando is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package expando provides the compiled expando format string.
//
// A format string is parsed once against a table of definitions and then
// rendered many times against caller-supplied data. A compiled Expando is
// immutable and may be shared by concurrent renderers as long as each one
// uses its own output buffer.
package expando

import (
	"strings"

	"expando.dev/x/ast"
	"expando.dev/x/parser"
	"expando.dev/x/render"
)

// Expando is a fully-parsed format string. Source is retained for
// equality and diagnostics; Root is the parsed tree.
type Expando struct {
	Source string
	Root   *ast.Node
}

// Parse compiles a format string against the given definition table.
func Parse(src string, defs []ast.Definition) (*Expando, *ast.ParseError) {
	root, err := parser.Parse(src, defs)
	if err != nil {
		return nil, err
	}
	return &Expando{Source: src, Root: root}, nil
}

// Render expands the compiled format against the host callbacks and
// appends at most maxCols columns to out, returning the columns written.
// A maxCols of -1 means a whole command line, 8192 columns.
func (e *Expando) Render(tbl render.Table, data any, flags render.Flags, maxCols int, out *strings.Builder) int {
	if e == nil || e.Root == nil {
		return 0
	}
	return render.Render(e.Root, tbl, data, flags, maxCols, out)
}

// Equal compares two compiled expandos. They are equal iff their source
// strings are byte-identical; two nil expandos are equal too.
func Equal(a, b *Expando) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Source == b.Source
}
