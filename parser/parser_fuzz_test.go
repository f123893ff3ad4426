//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The Expando Authors
//
// This file is part of Expando.
//
// Expando is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package parser_test

import (
	"testing"

	"expando.dev/x/ast"
	"expando.dev/x/parser"
)

func FuzzParse(f *testing.F) {
	f.Add("%%")
	f.Add("%<c?>")
	f.Add("%<a?%<b?x&y>&z>")
	f.Add("%?a?%<b?x&y>&z?")
	f.Add("A%>.B")
	f.Add("%|A %>B %*C")
	f.Add("%-12.10a")
	f.Add("%<[1m?a&banana>")
	f.Fuzz(func(t *testing.T, src string) {
		t.Parallel()
		root, err := parser.Parse(src, testDefs)
		if err != nil {
			return
		}
		again, err := parser.Parse(src, testDefs)
		if err != nil {
			t.Fatalf("%q: second parse failed: %v", src, err)
		}
		var tv1, tv2 TestVisitor
		ast.Walk(&tv1, root)
		ast.Walk(&tv2, again)
		if tv1.String() != tv2.String() {
			t.Errorf("%q: parses differ:\n one=%q\n two=%q", src, tv1.String(), tv2.String())
		}
	})
}
