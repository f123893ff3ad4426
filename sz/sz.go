//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The Expando Authors
//
// This file is part of Expando.
//
// Expando is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package sz encodes a parsed expando tree into a s-expr for diagnostics.
package sz

import (
	"io"

	"codeberg.org/t73fde/sxpf"

	"expando.dev/x/ast"
)

// NewTransformer returns a new transformer to create s-expressions from
// parsed expando trees.
func NewTransformer() *Transformer {
	sf := sxpf.MakeMappedFactory()
	t := &Transformer{sf: sf}
	t.mapKindS = map[ast.NodeKind]*sxpf.Symbol{
		ast.KindEmpty:     sf.MustMake("EMPTY"),
		ast.KindText:      sf.MustMake("TEXT"),
		ast.KindExpando:   sf.MustMake("EXPANDO"),
		ast.KindCondBool:  sf.MustMake("COND-BOOL"),
		ast.KindCondition: sf.MustMake("CONDITION"),
		ast.KindContainer: sf.MustMake("CONTAINER"),
	}
	t.mapPadS = map[ast.PadKind]*sxpf.Symbol{
		ast.PadSoft: sf.MustMake("PAD-SOFT"),
		ast.PadHard: sf.MustMake("PAD-HARD"),
		ast.PadEOL:  sf.MustMake("PAD-EOL"),
	}
	t.symFormat = sf.MustMake("FORMAT")
	return t
}

// Transformer maps node kinds to their symbols.
type Transformer struct {
	sf        sxpf.SymbolFactory
	mapKindS  map[ast.NodeKind]*sxpf.Symbol
	mapPadS   map[ast.PadKind]*sxpf.Symbol
	symFormat *sxpf.Symbol
}

// GetSz returns the node as a s-expression list.
func (t *Transformer) GetSz(node *ast.Node) *sxpf.List {
	switch node.Kind {
	case ast.KindText:
		return sxpf.MakeList(t.mapKindS[node.Kind], sxpf.MakeString(node.Text))
	case ast.KindExpando, ast.KindCondBool:
		objs := []sxpf.Object{t.mapKindS[node.Kind], sxpf.MakeString(shortName(node))}
		if node.Text != "" {
			objs = append(objs, sxpf.MakeString(node.Text))
		}
		if node.Format != nil {
			objs = append(objs, t.getFormat(node.Format))
		}
		return sxpf.MakeList(objs...)
	case ast.KindCondition, ast.KindContainer:
		objs := make([]sxpf.Object, len(node.Children)+1)
		objs[0] = t.mapKindS[node.Kind]
		for i, child := range node.Children {
			objs[i+1] = t.GetSz(child)
		}
		return sxpf.MakeList(objs...)
	case ast.KindPadding:
		return sxpf.MakeList(t.mapPadS[node.Pad], sxpf.MakeString(node.Text))
	}
	return sxpf.MakeList(t.mapKindS[ast.KindEmpty])
}

func (t *Transformer) getFormat(f *ast.FormatSpec) *sxpf.List {
	return sxpf.MakeList(
		t.symFormat,
		sxpf.Int64(int64(f.MinWidth)),
		sxpf.Int64(int64(f.MaxWidth)),
		sxpf.Int64(int64(f.Justify)),
		sxpf.MakeString(string(f.Leader)),
	)
}

func shortName(node *ast.Node) string {
	if node.Def != nil {
		return node.Def.Short
	}
	return ""
}

// WriteTree writes the encoded tree to the writer.
func (t *Transformer) WriteTree(w io.Writer, node *ast.Node) (int, error) {
	return t.GetSz(node).Print(w)
}
