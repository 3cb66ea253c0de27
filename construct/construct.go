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

package construct

import (
	"github.com/brite-lang/brite-sub000/ast"
	"github.com/brite-lang/brite-sub000/diagnostics"
	"github.com/brite-lang/brite-sub000/types"
)

// Types

// Type-variable: `a`
func TVar(name string) *types.Variable {
	return types.NewVariable(name)
}

// Boolean type
func TBoolean() *types.Constant { return types.Boolean }

// Number type
func TNumber() *types.Constant { return types.Number }

// String type
func TString() *types.Constant { return types.String }

// Bottom type: `⊥`
func TBottom() *types.BottomType { return types.Bottom }

// Function type: `a → b`
func TFunc(param, body types.Monotype) *types.Function {
	return types.NewFunction(param, body)
}

// Curried function type: `a → b → c`
func TFunc2(param1, param2, body types.Monotype) *types.Function {
	return types.NewFunction(param1, types.NewFunction(param2, body))
}

// Quantified type in normal form: `∀a, (b ≥ σ). body`
func TQuantify(body types.Polytype, bindings ...types.Binding) types.Polytype {
	return types.QuantifyAll(bindings, body)
}

// Quantified type without normalization: `∀a. body`
func TForall(name string, body types.Polytype) *types.Quantify {
	return types.NewQuantify(name, types.Unbounded, body)
}

// Binding without a bound: `a`
func Unbound(name string) types.Binding {
	return types.Binding{Name: name, Bound: types.Unbounded}
}

// Flexible binding: `a ≥ σ`
func Flex(name string, bound types.Polytype) types.Binding {
	return types.Binding{Name: name, Bound: types.Bound{Kind: types.Flexible, Type: bound}}
}

// Rigid binding: `a = σ`
func Rigid(name string, bound types.Polytype) types.Binding {
	return types.Binding{Name: name, Bound: types.Bound{Kind: types.Rigid, Type: bound}}
}

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Boolean constant: `true`
func Bool(value bool) *ast.Constant {
	return &ast.Constant{Value: ast.Boolean(value)}
}

// Number constant: `1`
func Num(value float64) *ast.Constant {
	return &ast.Constant{Value: ast.Number(value)}
}

// String constant: `"s"`
func Str(value string) *ast.Constant {
	return &ast.Constant{Value: ast.String(value)}
}

// Abstraction: `fun x -> x`
func Func(param string, body ast.Expr) *ast.Func {
	return &ast.Func{Param: param, Body: body}
}

// Abstraction over several parameters, curried: `fun x -> fun y -> x`
func FuncN(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Func{Param: params[i], Body: body}
	}
	return body
}

// Application, curried over args: `f(x)(y)`
func Call(callee ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		callee = &ast.Call{Callee: callee, Arg: arg}
	}
	return callee
}

// Let-binding: `let a = 1 in e`
func Let(name string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Name: name, Value: value, Body: body}
}

// Type annotation: `(e : T)`
func Annotate(expr ast.Expr, declared types.Polytype) *ast.Annotation {
	return &ast.Annotation{Expr: expr, Declared: declared}
}

// Error expression, optionally wrapping a recovered expression.
func ErrorExpr(d diagnostics.Diagnostic, recovered ast.Expr) *ast.Error {
	return &ast.Error{Diagnostic: d, Expr: recovered}
}
