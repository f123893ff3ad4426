//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The Expando Authors
//
// This file is part of Expando.
//
// Expando is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package ast provides the node tree for parsed expando format strings.
package ast

// NodeKind classifies a node of the tree.
type NodeKind uint8

// Constants for NodeKind.
const (
	KindEmpty     NodeKind = iota // Placeholder where the grammar requires a subtree
	KindText                      // Literal text run
	KindExpando                   // Reference to a host-defined data field
	KindCondBool                  // Expando used as a truth test
	KindCondition                 // Ternary: condition, if-true, if-false
	KindContainer                 // Ordered sibling list without own rendering
	KindPadding                   // Structural padding between sibling groups
)

// PadKind is the padding variant of a KindPadding node.
type PadKind uint8

// Constants for PadKind.
const (
	PadSoft PadKind = iota // '%>X': fill, but never clip siblings
	PadHard                // '%|X': fill, may truncate the left siblings
	PadEOL                 // '%*X': fill to the end of the row
)

// Child slots of a KindCondition node.
const (
	SlotCondition = 0 // The boolean test
	SlotTrue      = 1 // Rendered if the test is true
	SlotFalse     = 2 // Rendered if the test is false; may be absent
)

// Node is a single node of a parsed format string.
// The meaning of Text depends on Kind: the literal run for KindText, the
// code-specific argument for KindExpando/KindCondBool (e.g. a strftime
// pattern), and the fill glyph for KindPadding.
type Node struct {
	Kind     NodeKind
	Text     string
	Children []*Node
	Def      *Definition // Matched definition (expando and condbool nodes)
	Format   *FormatSpec // Width/justification (expando nodes), nil if none
	Pad      PadKind     // Padding variant (padding nodes)
}

// NewEmpty creates a placeholder node.
func NewEmpty() *Node { return &Node{Kind: KindEmpty} }

// NewText creates a literal text node. The text is owned by the node.
func NewText(text string) *Node { return &Node{Kind: KindText, Text: text} }

// NewExpando creates an expando reference node.
func NewExpando(def *Definition, arg string, format *FormatSpec) *Node {
	return &Node{Kind: KindExpando, Text: arg, Def: def, Format: format}
}

// NewCondBool creates an expando node that is evaluated as a truth test.
func NewCondBool(def *Definition, arg string, format *FormatSpec) *Node {
	return &Node{Kind: KindCondBool, Text: arg, Def: def, Format: format}
}

// NewCondition creates a ternary node. condFalse may be nil if the format
// string has no false branch.
func NewCondition(cond, condTrue, condFalse *Node) *Node {
	n := &Node{Kind: KindCondition, Children: []*Node{cond, condTrue}}
	if condFalse != nil {
		n.Children = append(n.Children, condFalse)
	}
	return n
}

// NewContainer creates a grouping node over the given sibling list.
func NewContainer(children []*Node) *Node {
	return &Node{Kind: KindContainer, Children: children}
}

// NewPadding creates a padding node with the given fill glyph.
func NewPadding(pad PadKind, fill rune) *Node {
	return &Node{Kind: KindPadding, Text: string(fill), Pad: pad}
}

// Append adds a node as the last sibling of the list.
func Append(list *[]*Node, n *Node) {
	if n != nil {
		*list = append(*list, n)
	}
}

// GetChild returns the child in the given slot, or nil if there is none.
// For condition nodes the slot is one of SlotCondition, SlotTrue, SlotFalse;
// everywhere else it is a plain index.
func (n *Node) GetChild(slot int) *Node {
	if n == nil || slot < 0 || slot >= len(n.Children) {
		return nil
	}
	return n.Children[slot]
}
