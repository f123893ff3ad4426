//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The Expando Authors
//
// This file is part of Expando.
//
// Expando is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

import (
	"fmt"

	"expando.dev/x/input"
)

// ValueKind tells whether a definition yields a string or a number.
type ValueKind uint8

// Constants for ValueKind.
const (
	ValueString ValueKind = iota
	ValueNumber
)

// CustomParser consumes the argument of a code whose argument is not a
// simple letter, e.g. the strftime pattern of "%[fmt]". It is called with
// the cursor placed directly after the code and must build the node itself.
// If conditional is set, the node is the test of a conditional and should
// be evaluated through its number callback.
type CustomParser func(inp *input.Input, def *Definition, format *FormatSpec, conditional bool) (*Node, *ParseError)

// Definition describes one recognised expando code. The host identifies
// the field by the (NS, Field) pair, never by string compares.
type Definition struct {
	Short string       // Code after '%', e.g. "c" or "["
	Long  string       // Optional long name for diagnostics
	NS    int          // Namespace identifier
	Field int          // Field identifier within the namespace
	Kind  ValueKind    // What the render callback yields
	Parse CustomParser // Optional argument parser
}

// ParseError is a located parse error: Pos is the byte offset of the
// offending character in the source format string.
type ParseError struct {
	Pos int
	Msg string
}

// Error returns the message together with its position.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at %d)", e.Msg, e.Pos)
}
