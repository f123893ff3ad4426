//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The Expando Authors
//
// This file is part of Expando.
//
// Expando is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package parser

import (
	"expando.dev/x/ast"
	"expando.dev/x/input"
)

// TermFlags is the set of special characters that end a text run. The set
// depends on where the run occurs: empty at the top level, '&' and '>'
// inside a modern true-branch, '>' inside a modern false-branch, '?'
// inside a legacy branch.
type TermFlags uint8

// Constants for TermFlags.
const (
	TermNone      TermFlags = 0      // No terminators
	TermAmpersand TermFlags = 1 << 0 // '&' Ampersand
	TermGreater   TermFlags = 1 << 1 // '>' Greater than
	TermQuestion  TermFlags = 1 << 2 // '?' Question mark
)

func (t TermFlags) stops(ch rune) bool {
	switch ch {
	case '&':
		return t&TermAmpersand != 0
	case '>':
		return t&TermGreater != 0
	case '?':
		return t&TermQuestion != 0
	}
	return false
}

// parseText consumes a literal run up to the next '%', terminator or end
// bound. The cursor stops at (not past) the terminating character. The
// returned node owns a copy of the text.
func (p *expParser) parseText(end int, term TermFlags) *ast.Node {
	inp := p.inp
	posT := inp.Pos
	for inp.Ch != input.EOS && inp.Pos < end && inp.Ch != '%' && !term.stops(inp.Ch) {
		inp.Next()
	}
	return ast.NewText(string(inp.Src[posT:inp.Pos]))
}
