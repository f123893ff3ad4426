//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The Expando Authors
//
// This file is part of Expando.
//
// Expando is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package strfun provides string functions over terminal cells, not bytes.
package strfun

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells the string occupies. East
// Asian wide characters count as two cells, combining marks as zero.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// TruncWidth cuts s at a cell boundary so that it occupies at most maxCols
// cells. A grapheme cluster is never split and a wide character never
// leaves a half cell behind. No ellipsis is added.
func TruncWidth(s string, maxCols int) string {
	if maxCols <= 0 {
		return ""
	}
	if Width(s) <= maxCols {
		return s
	}
	var sb strings.Builder
	w := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		cw := runewidth.StringWidth(cluster)
		if w+cw > maxCols {
			break
		}
		sb.WriteString(cluster)
		w += cw
	}
	return sb.String()
}

// Repeat returns fill glyphs covering at most cols cells. A glyph wider
// than the leftover is not emitted.
func Repeat(fill rune, cols int) string {
	fw := runewidth.RuneWidth(fill)
	if fw <= 0 || cols < fw {
		return ""
	}
	var sb strings.Builder
	for w := 0; w+fw <= cols; w += fw {
		sb.WriteRune(fill)
	}
	return sb.String()
}

// JustifyLeft pads the string on the right to at least minWidth cells.
func JustifyLeft(s string, minWidth int, pad rune) string {
	return s + Repeat(pad, minWidth-Width(s))
}

// JustifyRight pads the string on the left to at least minWidth cells.
func JustifyRight(s string, minWidth int, pad rune) string {
	return Repeat(pad, minWidth-Width(s)) + s
}

// JustifyCenter splits the leftover cells around the string; an odd glyph
// goes to the right.
func JustifyCenter(s string, minWidth int, pad rune) string {
	leftover := minWidth - Width(s)
	if leftover <= 0 {
		return s
	}
	left := leftover / 2
	return Repeat(pad, left) + s + Repeat(pad, leftover-left)
}
