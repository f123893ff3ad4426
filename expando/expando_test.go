//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The Expando Authors
//
// This file is part of Expando.
//
// Expando is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package expando_test

import (
	"strings"
	"testing"

	"expando.dev/x/ast"
	"expando.dev/x/expando"
	"expando.dev/x/render"
)

var testDefs = []ast.Definition{
	{Short: "c", Long: "cherry", NS: 1, Field: 1, Kind: ast.ValueString},
	{Short: "t", Long: "tangerine", NS: 1, Field: 2, Kind: ast.ValueString},
}

var testTable = render.Table{
	{NS: 1, Field: 1, String: func(_ *ast.Node, data any, _ render.Flags) string {
		return data.(map[string]string)["c"]
	}},
	{NS: 1, Field: 2, String: func(_ *ast.Node, data any, _ render.Flags) string {
		return data.(map[string]string)["t"]
	}},
}

func TestParseAndRender(t *testing.T) {
	t.Parallel()
	exp, err := expando.Parse("c=%c t=%t", testDefs)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if exp.Source != "c=%c t=%t" {
		t.Errorf("source not retained: %q", exp.Source)
	}

	data := map[string]string{"c": "one", "t": "two"}
	var sb strings.Builder
	cols := exp.Render(testTable, data, render.NoFlags, -1, &sb)
	if got := sb.String(); got != "c=one t=two" {
		t.Errorf("want %q, got %q", "c=one t=two", got)
	}
	if cols != 11 {
		t.Errorf("want 11 columns, got %d", cols)
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	exp, err := expando.Parse("%<c?xxx", testDefs)
	if exp != nil || err == nil {
		t.Fatalf("expected an error, got expando %v", exp)
	}
	if err.Pos != 7 {
		t.Errorf("error position: want 7, got %d", err.Pos)
	}
	if !strings.Contains(err.Msg, "'&' or '>'") {
		t.Errorf("error message does not name the missing terminator: %q", err.Msg)
	}
}

func TestRenderBudget(t *testing.T) {
	t.Parallel()
	exp, err := expando.Parse("%c", testDefs)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	data := map[string]string{"c": "abcdef"}

	var sb strings.Builder
	if cols := exp.Render(testTable, data, render.NoFlags, 0, &sb); cols != 0 || sb.Len() != 0 {
		t.Errorf("budget 0 rendered %d columns %q", cols, sb.String())
	}
	sb.Reset()
	if cols := exp.Render(testTable, data, render.NoFlags, 4, &sb); cols != 4 || sb.String() != "abcd" {
		t.Errorf("budget 4 rendered %d columns %q", cols, sb.String())
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	one, err1 := expando.Parse("%c", testDefs)
	two, err2 := expando.Parse("%c", testDefs)
	other, err3 := expando.Parse("%t", testDefs)
	if err1 != nil || err2 != nil || err3 != nil {
		t.Fatalf("unexpected parse errors: %v / %v / %v", err1, err2, err3)
	}
	if !expando.Equal(one, two) {
		t.Error("equal sources must compare equal")
	}
	if expando.Equal(one, other) {
		t.Error("different sources must compare unequal")
	}
	if !expando.Equal(nil, nil) {
		t.Error("two empty expandos are equal")
	}
	if expando.Equal(one, nil) {
		t.Error("an expando never equals an empty one")
	}
}

func TestNilRender(t *testing.T) {
	t.Parallel()
	var exp *expando.Expando
	var sb strings.Builder
	if cols := exp.Render(testTable, nil, render.NoFlags, -1, &sb); cols != 0 || sb.Len() != 0 {
		t.Errorf("nil expando rendered %d columns %q", cols, sb.String())
	}
}
