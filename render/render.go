//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The Expando Authors
//
// This file is part of Expando.
//
// Expando is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package render expands a parsed node tree into a bounded-width string.
package render

import (
	"strconv"
	"strings"

	"expando.dev/x/ast"
	"expando.dev/x/strfun"
)

// Flags is an opaque word handed through to every host callback.
type Flags uint32

// NoFlags is the empty flags word.
const NoFlags Flags = 0

// unlimitedCols replaces a maxCols of -1: enough space for a long command line.
const unlimitedCols = 8192

// StringFunc yields the value of a string-kind expando. The node gives
// access to the code-specific argument, e.g. a strftime pattern.
type StringFunc func(node *ast.Node, data any, flags Flags) string

// NumberFunc yields the value of a number-kind expando or of a truth test.
type NumberFunc func(node *ast.Node, data any, flags Flags) int64

// Callback connects a definition to the host functions producing its
// value. Either function may be nil if the value kind never needs it.
type Callback struct {
	NS     int
	Field  int
	String StringFunc
	Number NumberFunc
}

// Table is the render-callback table a host supplies for one render call.
// It is never mutated.
type Table []Callback

func (t Table) lookup(def *ast.Definition) *Callback {
	if def == nil {
		return nil
	}
	for i := range t {
		if t[i].NS == def.NS && t[i].Field == def.Field {
			return &t[i]
		}
	}
	return nil
}

// Render walks the tree and appends at most maxCols columns to out,
// returning the number of columns written. A maxCols of -1 is treated as
// unlimited (8192 columns); a maxCols of 0 writes nothing. A failing or
// missing callback yields empty output for its node, never an error.
func Render(root *ast.Node, tbl Table, data any, flags Flags, maxCols int, out *strings.Builder) int {
	if root == nil {
		return 0
	}
	if maxCols == -1 {
		maxCols = unlimitedCols
	}
	if maxCols <= 0 {
		return 0
	}
	r := renderer{tbl: tbl, data: data, flags: flags}
	return r.node(root, maxCols, out)
}

type renderer struct {
	tbl   Table
	data  any
	flags Flags
}

// node renders a single node within the given column budget and returns
// the columns it used.
func (r *renderer) node(n *ast.Node, budget int, out *strings.Builder) int {
	if n == nil || budget <= 0 {
		return 0
	}
	switch n.Kind {
	case ast.KindText:
		s := strfun.TruncWidth(n.Text, budget)
		out.WriteString(s)
		return strfun.Width(s)
	case ast.KindExpando:
		s := applyFormat(r.value(n), n.Format)
		s = strfun.TruncWidth(s, budget)
		out.WriteString(s)
		return strfun.Width(s)
	case ast.KindCondition:
		branch := n.GetChild(ast.SlotTrue)
		if !r.truth(n.GetChild(ast.SlotCondition)) {
			branch = n.GetChild(ast.SlotFalse)
		}
		return r.node(branch, budget, out)
	case ast.KindContainer:
		return r.list(n.Children, budget, out)
	}
	// Empty nodes, truth tests and stray padding render nothing.
	return 0
}

// list renders a sibling list. Padding members redistribute the leftover
// columns of the whole row; without them the children simply share the
// budget left to right.
func (r *renderer) list(children []*ast.Node, budget int, out *strings.Builder) int {
	items := rowItems(children)
	var pads []int
	for i, item := range items {
		if item.Kind == ast.KindPadding {
			pads = append(pads, i)
		}
	}
	if len(pads) == 0 {
		w := 0
		for _, item := range items {
			if w >= budget {
				break
			}
			w += r.node(item, budget-w, out)
		}
		return w
	}
	return r.padded(items, pads, budget, out)
}

// rowItems splices re-pad groups that carry further padding markers into
// the row, so that every padding node of the row shares one remainder.
// Groups without padding stay intact.
func rowItems(children []*ast.Node) []*ast.Node {
	items := make([]*ast.Node, 0, len(children))
	for _, child := range children {
		if child.Kind == ast.KindContainer && hasPadding(child.Children) {
			items = append(items, child.Children...)
			continue
		}
		items = append(items, child)
	}
	return items
}

func hasPadding(children []*ast.Node) bool {
	for _, child := range children {
		if child.Kind == ast.KindPadding {
			return true
		}
	}
	return false
}

// padded renders a sibling list containing padding nodes. All non-padding
// members render at their natural width first; the leftover columns are
// split over the padding nodes, any remainder going to the rightmost. A
// hard fill may truncate the members left of it to keep the right ones
// intact; soft and end-of-row fills emit nothing once the row is full.
func (r *renderer) padded(children []*ast.Node, pads []int, budget int, out *strings.Builder) int {
	rendered := make([]string, len(children))
	total := 0
	for i, child := range children {
		if child.Kind == ast.KindPadding {
			continue
		}
		var sb strings.Builder
		r.node(child, budget, &sb)
		rendered[i] = sb.String()
		total += strfun.Width(rendered[i])
	}

	fills := make([]int, len(children))
	remainder := budget - total
	if remainder > 0 {
		share := remainder / len(pads)
		for _, i := range pads {
			fills[i] = share
		}
		fills[pads[len(pads)-1]] += remainder % len(pads)
	} else if remainder < 0 {
		if hard := firstHard(children); hard >= 0 {
			r.truncateLeft(children, rendered, hard, budget)
		}
	}

	w := 0
	for i, child := range children {
		if w >= budget {
			break
		}
		var s string
		if child.Kind == ast.KindPadding {
			cols := fills[i]
			if left := budget - w; cols > left {
				cols = left
			}
			s = strfun.Repeat(fillGlyph(child), cols)
		} else {
			s = strfun.TruncWidth(rendered[i], budget-w)
		}
		out.WriteString(s)
		w += strfun.Width(s)
	}
	return w
}

// truncateLeft cuts the members before the hard fill so that the members
// after it keep their natural width inside the budget.
func (r *renderer) truncateLeft(children []*ast.Node, rendered []string, hard, budget int) {
	rightWidth := 0
	for i := hard + 1; i < len(children); i++ {
		rightWidth += strfun.Width(rendered[i])
	}
	if rightWidth > budget {
		rightWidth = budget
	}
	leftBudget := budget - rightWidth
	for i := 0; i < hard; i++ {
		if children[i].Kind == ast.KindPadding {
			continue
		}
		w := strfun.Width(rendered[i])
		if w <= leftBudget {
			leftBudget -= w
			continue
		}
		rendered[i] = strfun.TruncWidth(rendered[i], leftBudget)
		leftBudget = 0
	}
}

func firstHard(children []*ast.Node) int {
	for i, child := range children {
		if child.Kind == ast.KindPadding && child.Pad == ast.PadHard {
			return i
		}
	}
	return -1
}

func fillGlyph(n *ast.Node) rune {
	for _, r := range n.Text {
		return r
	}
	return ' '
}

// truth evaluates the test of a conditional. A truth-test expando asks the
// host for a number (non-zero is true) or, without a number callback, for a
// string (non-empty is true); any other subtree is true when it renders
// non-empty.
// The unselected branch of the conditional is never evaluated.
func (r *renderer) truth(n *ast.Node) bool {
	if n == nil {
		return false
	}
	if n.Kind == ast.KindCondBool {
		cb := r.tbl.lookup(n.Def)
		if cb == nil {
			return false
		}
		if cb.Number != nil {
			return cb.Number(n, r.data, r.flags) != 0
		}
		if cb.String != nil {
			return cb.String(n, r.data, r.flags) != ""
		}
		return false
	}
	var sb strings.Builder
	r.node(n, unlimitedCols, &sb)
	return sb.Len() > 0
}

// value asks the host for the value of an expando. Numbers are formatted
// as decimal before the format spec is applied.
func (r *renderer) value(n *ast.Node) string {
	cb := r.tbl.lookup(n.Def)
	if cb == nil {
		return ""
	}
	if n.Def.Kind == ast.ValueNumber {
		if cb.Number == nil {
			return ""
		}
		return strconv.FormatInt(cb.Number(n, r.data, r.flags), 10)
	}
	if cb.String == nil {
		return ""
	}
	return cb.String(n, r.data, r.flags)
}

// applyFormat truncates to the maximum width, then pads to the minimum
// width with the leader glyph according to the justification.
func applyFormat(s string, f *ast.FormatSpec) string {
	if f == nil {
		return s
	}
	if f.MaxWidth >= 0 {
		s = strfun.TruncWidth(s, f.MaxWidth)
	}
	lead := f.Leader
	if lead == 0 {
		lead = ' '
	}
	if strfun.Width(s) < f.MinWidth {
		switch f.Justify {
		case ast.JustifyLeft:
			s = strfun.JustifyLeft(s, f.MinWidth, lead)
		case ast.JustifyCenter:
			s = strfun.JustifyCenter(s, f.MinWidth, lead)
		default:
			s = strfun.JustifyRight(s, f.MinWidth, lead)
		}
	}
	return s
}
