// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package exprfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brite-lang/brite-sub000/ast"
	"github.com/brite-lang/brite-sub000/types"
)

const example = `
scope:
  add1: {fun: [number, number]}
  id: {forall: [{name: a}], body: {fun: [{var: a}, {var: a}]}}
  auto:
    forall:
      - name: i
        rigid: true
        bound: {forall: [{name: a}], body: {fun: [{var: a}, {var: a}]}}
    body: {fun: [{var: i}, {var: i}]}
expr:
  let: f
  value: {fun: x, body: {call: {var: add1}, args: [{var: x}]}}
  body:
    annotate: {call: {var: id}, args: [{var: f}, {number: 2}]}
    type: number
`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(example))
	require.NoError(t, err)

	assert.Equal(t, []string{"add1", "id", "auto"}, doc.Names)
	assert.Equal(t, "Number → Number", types.TypeString(doc.Scope.Lookup("add1")))
	assert.Equal(t, "∀A. A → A", types.TypeString(doc.Scope.Lookup("id")))
	assert.Equal(t, "∀(A = ∀B. B → B). A → A", types.TypeString(doc.Scope.Lookup("auto")))
	assert.Equal(t, "let f = fun x -> add1(x) in (id(f)(2) : Number)", ast.ExprString(doc.Expr))
}

func TestDecodeExpressions(t *testing.T) {
	cases := []struct {
		yaml     string
		expected string
	}{
		{`expr: {bool: true}`, "true"},
		{`expr: {string: hello}`, `"hello"`},
		{`expr: {fun: x, body: {var: x}}`, "fun x -> x"},
		{`expr: {error: y}`, "error"},
		{`expr: {error: y, expr: {number: 1}}`, "error(1)"},
		{`expr: {annotate: {var: x}, type: {fun: [{var: a}, boolean, string]}}`, "(x : a → Boolean → String)"},
	}
	for _, c := range cases {
		doc, err := Decode(strings.NewReader(c.yaml))
		require.NoError(t, err, c.yaml)
		assert.Equal(t, c.expected, ast.ExprString(doc.Expr))
		assert.Equal(t, 0, doc.Scope.Len())
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []string{
		``,
		`scope: {}`,
		`expr: 1`,
		`expr: {}`,
		`expr: {call: {var: f}}`,
		`expr: {let: x, value: {number: 1}}`,
		`expr: {annotate: {number: 1}}`,
		`expr: {annotate: {number: 1}, type: integer}`,
		`expr: {annotate: {number: 1}, type: {fun: [number]}}`,
		`expr: {annotate: {number: 1}, type: {forall: [{name: a}]}}`,
		`expr: {annotate: {number: 1}, type: {fun: [bottom, number]}}`,
		`scope: [a, b]
expr: {number: 1}`,
		`other: 1
expr: {number: 1}`,
	}
	for _, c := range cases {
		_, err := Decode(strings.NewReader(c))
		assert.Error(t, err, c)
	}
}
