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

// parseExpando parses "[flags][width][.precision]CODE" after the '%' was
// consumed. In the test slot of a conditional the node becomes a CondBool.
func (p *expParser) parseExpando(conditional bool) (*ast.Node, *ast.ParseError) {
	inp := p.inp

	// The padding codes are part of the grammar, not of the definition table.
	switch inp.Ch {
	case '>':
		return p.parsePadding(ast.PadSoft), nil
	case '|':
		return p.parsePadding(ast.PadHard), nil
	case '*':
		return p.parsePadding(ast.PadEOL), nil
	}

	format, err := p.parseFormatSpec()
	if err != nil {
		return nil, err
	}

	codePos := inp.Pos
	def := p.matchDef()
	if def == nil {
		return nil, &ast.ParseError{Pos: codePos, Msg: "unknown expando"}
	}
	if def.Parse != nil {
		return def.Parse(inp, def, format, conditional)
	}
	if conditional {
		return ast.NewCondBool(def, "", format), nil
	}
	return ast.NewExpando(def, "", format), nil
}

// parseFormatSpec reads the optional width/precision/justification prefix.
// It returns nil if the expando carries no format at all.
func (p *expParser) parseFormatSpec() (*ast.FormatSpec, *ast.ParseError) {
	inp := p.inp
	format := ast.NewFormatSpec()
	hasSpec := false

	switch inp.Ch {
	case '-':
		format.Justify = ast.JustifyLeft
		hasSpec = true
		inp.Next()
	case '=':
		format.Justify = ast.JustifyCenter
		hasSpec = true
		inp.Next()
	}
	if inp.Ch == '0' {
		format.Leader = '0'
	}
	if width, ok := inp.ScanDigits(); ok {
		format.MinWidth = width
		hasSpec = true
	}
	if inp.Ch == '.' {
		inp.Next()
		width, ok := inp.ScanDigits()
		if !ok {
			return nil, &ast.ParseError{Pos: inp.Pos, Msg: "expando format has a malformed precision"}
		}
		format.MaxWidth = width
		hasSpec = true
	}
	if !hasSpec {
		return nil, nil
	}
	return format, nil
}

// matchDef finds the definition whose short name is the upcoming code.
// Two-byte codes win over one-byte codes. On a match the cursor is
// advanced past the code.
func (p *expParser) matchDef() *ast.Definition {
	inp := p.inp
	if inp.Ch == input.EOS {
		return nil
	}
	rest := inp.Src[inp.Pos:]
	var best *ast.Definition
	for i := range p.defs {
		d := &p.defs[i]
		if d.Short == "" || len(d.Short) > len(rest) {
			continue
		}
		if string(rest[:len(d.Short)]) != d.Short {
			continue
		}
		if best == nil || len(d.Short) > len(best.Short) {
			best = d
		}
	}
	if best != nil {
		inp.SetPos(inp.Pos + len(best.Short))
	}
	return best
}
