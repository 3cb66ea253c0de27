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

package ast

import (
	"strconv"

	"github.com/brite-lang/brite-sub000/diagnostics"
	"github.com/brite-lang/brite-sub000/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns an inferred type of an expression. Expression types are only available after type-inference.
	Type() types.Polytype
}

// Typed is an expression which may be assigned a type.
type Typed interface {
	Expr
	SetType(t types.Polytype)
}

var (
	_ Typed = (*Var)(nil)
	_ Typed = (*Constant)(nil)
	_ Typed = (*Func)(nil)
	_ Typed = (*Call)(nil)
	_ Typed = (*Let)(nil)
	_ Typed = (*Annotation)(nil)
	_ Typed = (*Error)(nil)
)

// Variable
type Var struct {
	Name     string
	inferred types.Polytype
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Get the inferred (or assigned) type of e.
func (e *Var) Type() types.Polytype { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Var) SetType(t types.Polytype) { e.inferred = t }

// Value of a constant expression: Boolean, Number or String.
type Value interface {
	Kind() types.ConstantKind
	String() string
}

type (
	Boolean bool
	Number  float64
	String  string
)

func (v Boolean) Kind() types.ConstantKind { return types.BooleanKind }
func (v Number) Kind() types.ConstantKind  { return types.NumberKind }
func (v String) Kind() types.ConstantKind  { return types.StringKind }

func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }
func (v Number) String() string  { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v String) String() string  { return strconv.Quote(string(v)) }

// Constant: `true`, `1`, `"s"`
type Constant struct {
	Value    Value
	inferred types.Polytype
}

// "Constant"
func (e *Constant) ExprName() string { return "Constant" }

// Get the inferred (or assigned) type of e.
func (e *Constant) Type() types.Polytype { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Constant) SetType(t types.Polytype) { e.inferred = t }

// Abstraction: `fun x -> x`
type Func struct {
	Param    string
	Body     Expr
	inferred types.Polytype
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Get the inferred (or assigned) type of e.
func (e *Func) Type() types.Polytype { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Func) SetType(t types.Polytype) { e.inferred = t }

// Application: `f(x)`
type Call struct {
	Callee   Expr
	Arg      Expr
	inferred types.Polytype
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Get the inferred (or assigned) type of e.
func (e *Call) Type() types.Polytype { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Call) SetType(t types.Polytype) { e.inferred = t }

// Let-binding: `let a = 1 in e`
type Let struct {
	Name     string
	Value    Expr
	Body     Expr
	inferred types.Polytype
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Get the inferred (or assigned) type of e.
func (e *Let) Type() types.Polytype { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Let) SetType(t types.Polytype) { e.inferred = t }

// Type annotation: `(e : T)`
//
// Free type-variables of Declared which are not otherwise in scope are inferred.
type Annotation struct {
	Expr     Expr
	Declared types.Polytype
	inferred types.Polytype
}

// "Annotation"
func (e *Annotation) ExprName() string { return "Annotation" }

// Get the inferred (or assigned) type of e.
func (e *Annotation) Type() types.Polytype { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Annotation) SetType(t types.Polytype) { e.inferred = t }

// Error stands in for an expression which could not be built or checked. It is never evaluated.
//
// Errors built before inference have the bottom type. Inference may assign a more useful type
// to the errors it creates, such as the declared type of a failed annotation.
type Error struct {
	Diagnostic diagnostics.Diagnostic
	// Expr is a best-effort recovery of the erroneous expression, or nil.
	Expr     Expr
	inferred types.Polytype
}

// "Error"
func (e *Error) ExprName() string { return "Error" }

// Get the assigned type of e, or bottom.
func (e *Error) Type() types.Polytype {
	if e.inferred == nil {
		return types.Bottom
	}
	return e.inferred
}

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Error) SetType(t types.Polytype) { e.inferred = t }
