//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The Expando Authors
//
// This file is part of Expando.
//
// Expando is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package parser turns an expando format string into a node tree.
package parser

import (
	"fmt"

	"expando.dev/x/ast"
	"expando.dev/x/input"
)

// Parse compiles a format string against the given definition table and
// returns the root container of the tree. The first error aborts parsing.
func Parse(src string, defs []ast.Definition) (*ast.Node, *ast.ParseError) {
	root := ast.NewContainer(nil)
	if src == "" {
		ast.Append(&root.Children, ast.NewEmpty())
		return root, nil
	}
	p := &expParser{inp: input.NewInput([]byte(src)), defs: defs}
	for p.inp.Ch != input.EOS {
		n, err := p.parseElement(false, len(src), TermNone)
		if err != nil {
			return nil, err
		}
		ast.Append(&root.Children, n)
	}
	Repad(root)
	return root, nil
}

type expParser struct {
	inp  *input.Input // Input stream
	defs []ast.Definition
}

// parseElement parses one element: a text run, an escape, a conditional or
// an expando. Inside the test slot of a conditional the leading '%' is
// implicit, so a bare '<' or '?' introduces a nested conditional there.
// end bounds text runs; term holds the terminators of the current branch.
func (p *expParser) parseElement(conditional bool, end int, term TermFlags) (*ast.Node, *ast.ParseError) {
	inp := p.inp
	if inp.Ch == '%' || (conditional && (inp.Ch == '<' || inp.Ch == '?')) {
		inp.Next()
		switch {
		case inp.Ch == '%':
			inp.Next()
			return ast.NewText("%"), nil
		case inp.Ch == '<' || inp.Ch == '?':
			return p.parseConditional()
		default:
			return p.parseExpando(conditional)
		}
	}
	return p.parseText(end, term), nil
}

// parseConditional parses "%<TEST?TRUE&FALSE>" or the legacy, non-nestable
// "%?TEST?TRUE&FALSE?". It is entered with the cursor on the opening '<'
// or '?', which the test parse consumes as an implicit '%'.
func (p *expParser) parseConditional() (*ast.Node, *ast.ParseError) {
	inp := p.inp
	oldStyle := inp.Ch == '?'
	endTerm := byte('>')
	trueTerm := TermAmpersand | TermGreater
	falseTerm := TermGreater
	if oldStyle {
		endTerm = '?'
		trueTerm = TermQuestion
		falseTerm = TermQuestion
	}

	condEnd := skipUntil(inp.Src, inp.Pos, '?')
	nodeCond, err := p.parseElement(true, condEnd, TermNone)
	if err != nil {
		return nil, err
	}
	if inp.Ch != '?' {
		return nil, &ast.ParseError{Pos: inp.Pos, Msg: "conditional expando is missing '?'"}
	}
	inp.Next()

	startTrue := inp.Pos
	endTrue := skipUntilIfTrueEnd(inp.Src, startTrue, endTerm)
	onlyTrue := endTrue < len(inp.Src) && inp.Src[endTrue] == endTerm
	if !onlyTrue && (endTrue >= len(inp.Src) || inp.Src[endTrue] != '&') {
		msg := fmt.Sprintf("conditional expando is missing '&' or '%c'", endTerm)
		return nil, &ast.ParseError{Pos: endTrue, Msg: msg}
	}

	var listTrue []*ast.Node
	for inp.Pos < endTrue {
		n, err := p.parseElement(false, endTrue, trueTerm)
		if err != nil {
			return nil, err
		}
		ast.Append(&listTrue, n)
	}
	nodeTrue := branchNode(listTrue)

	if onlyTrue {
		inp.SetPos(endTrue + 1)
		return ast.NewCondition(nodeCond, nodeTrue, nil), nil
	}

	startFalse := endTrue + 1
	inp.SetPos(startFalse)
	endFalse := skipUntilIfFalseEnd(inp.Src, startFalse, endTerm)
	if endFalse >= len(inp.Src) || inp.Src[endFalse] != endTerm {
		msg := fmt.Sprintf("conditional expando is missing '%c'", endTerm)
		return nil, &ast.ParseError{Pos: startFalse, Msg: msg}
	}

	var listFalse []*ast.Node
	for inp.Pos < endFalse {
		n, err := p.parseElement(false, endFalse, falseTerm)
		if err != nil {
			return nil, err
		}
		ast.Append(&listFalse, n)
	}
	nodeFalse := branchNode(listFalse)

	inp.SetPos(endFalse + 1)
	return ast.NewCondition(nodeCond, nodeTrue, nodeFalse), nil
}

// branchNode turns a parsed branch into its single tree slot: no element
// becomes an Empty node, several elements are grouped in a container.
func branchNode(list []*ast.Node) *ast.Node {
	switch len(list) {
	case 0:
		return ast.NewEmpty()
	case 1:
		return list[0]
	}
	return ast.NewContainer(list)
}

// skipUntil returns the offset of the next ch, or the end of the source.
func skipUntil(src []byte, pos int, ch byte) int {
	for i := pos; i < len(src); i++ {
		if src[i] == ch {
			return i
		}
	}
	return len(src)
}

// skipUntilIfTrueEnd searches for the end of an 'if true' branch: an
// un-escaped terminator or a '&' at nesting depth zero. "%<" opens a
// nesting level, an un-escaped '>' closes one; this holds in the legacy
// form too, so a legacy branch may carry a modern conditional as content.
func skipUntilIfTrueEnd(src []byte, pos int, endTerm byte) int {
	ctr := 0
	prev := byte(0)
	for i := pos; i < len(src); i++ {
		b := src[i]
		if ctr == 0 && ((b == endTerm && prev != '%') || b == '&') {
			return i
		}
		if prev == '%' && b == '<' {
			ctr++
		}
		if b == '>' && prev != '%' {
			ctr--
		}
		prev = b
	}
	return len(src)
}

// skipUntilIfFalseEnd searches for the end of an 'if false' branch: an
// un-escaped terminator at nesting depth zero.
func skipUntilIfFalseEnd(src []byte, pos int, endTerm byte) int {
	ctr := 0
	prev := byte(0)
	for i := pos; i < len(src); i++ {
		b := src[i]
		if ctr == 0 && b == endTerm && prev != '%' {
			return i
		}
		if prev == '%' && b == '<' {
			ctr++
		}
		if b == '>' && prev != '%' {
			ctr--
		}
		prev = b
	}
	return len(src)
}
