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

// parsePadding reads the fill glyph of "%>X", "%|X" or "%*X". A missing
// glyph at the end of the source defaults to a space.
func (p *expParser) parsePadding(pad ast.PadKind) *ast.Node {
	inp := p.inp
	inp.Next()
	fill := ' '
	if inp.Ch != input.EOS {
		fill = inp.Ch
		inp.Next()
	}
	return ast.NewPadding(pad, fill)
}

// Repad restructures the root sibling list around the first padding marker
// into the three groups [LEFT, PADDING, RIGHT], so that the renderer's
// width accounting stays local. Markers after the first stay inside the
// right group and share the leftover columns at render time. Without any
// padding marker the list is left untouched. The pass is idempotent: an
// already re-padded list is recognised and not wrapped again.
func Repad(root *ast.Node) {
	children := root.Children
	if isRepadded(children) {
		return
	}
	for i, child := range children {
		if child.Kind == ast.KindPadding {
			left := ast.NewContainer(children[:i:i])
			right := ast.NewContainer(children[i+1:])
			root.Children = []*ast.Node{left, child, right}
			return
		}
	}
}

func isRepadded(children []*ast.Node) bool {
	return len(children) == 3 &&
		children[0].Kind == ast.KindContainer &&
		children[1].Kind == ast.KindPadding &&
		children[2].Kind == ast.KindContainer
}
