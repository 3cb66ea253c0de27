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

package types

import (
	"sync"
)

// Polytype is the base interface for all types: a monotype, a quantified type, or bottom.
type Polytype interface {
	// TypeName returns the name of the variant of the type.
	TypeName() string
	freeVariables() VarSet
}

// Monotype is a type which contains no quantifiers.
type Monotype interface {
	Polytype
	monotype()
}

var (
	_ Monotype = (*Variable)(nil)
	_ Monotype = (*Constant)(nil)
	_ Monotype = (*Function)(nil)
	_ Polytype = (*Quantify)(nil)
	_ Polytype = (*BottomType)(nil)
)

func (t *Variable) TypeName() string   { return "Variable" }
func (t *Constant) TypeName() string   { return "Constant" }
func (t *Function) TypeName() string   { return "Function" }
func (t *Quantify) TypeName() string   { return "Quantify" }
func (t *BottomType) TypeName() string { return "Bottom" }

func (t *Variable) monotype() {}
func (t *Constant) monotype() {}
func (t *Function) monotype() {}

func (t *Variable) String() string   { return TypeString(t) }
func (t *Constant) String() string   { return TypeString(t) }
func (t *Function) String() string   { return TypeString(t) }
func (t *Quantify) String() string   { return TypeString(t) }
func (t *BottomType) String() string { return TypeString(t) }

// Type-variable: a reference to a binding in a prefix, or to an enclosing quantifier.
type Variable struct {
	Name string
}

// Create a reference to the type-variable name.
func NewVariable(name string) *Variable { return &Variable{Name: name} }

// ConstantKind identifies a primitive type constructor.
type ConstantKind int

const (
	BooleanKind ConstantKind = iota
	NumberKind
	StringKind
)

func (k ConstantKind) String() string {
	switch k {
	case BooleanKind:
		return "Boolean"
	case NumberKind:
		return "Number"
	case StringKind:
		return "String"
	}
	return "Unknown"
}

// Primitive type constant: `Boolean`, `Number` or `String`
type Constant struct {
	Kind ConstantKind
}

// Shared primitive types. Types are immutable, so the same pointer may be used everywhere.
var (
	Boolean = &Constant{Kind: BooleanKind}
	Number  = &Constant{Kind: NumberKind}
	String  = &Constant{Kind: StringKind}
)

// Function type: `A → B`
type Function struct {
	Param Monotype
	Body  Monotype
	free  lazyVarSet
}

// Create a function type.
func NewFunction(param, body Monotype) *Function { return &Function{Param: param, Body: body} }

// BoundKind is the flexibility of a bound.
type BoundKind int

const (
	// A flexible bound may be narrowed to any instance of its type.
	Flexible BoundKind = iota
	// A rigid bound is fixed.
	Rigid
)

func (k BoundKind) String() string {
	if k == Rigid {
		return "rigid"
	}
	return "flexible"
}

// Bound limits what a quantified or unknown type-variable may resolve to.
type Bound struct {
	Kind BoundKind
	Type Polytype
}

// Unbounded is the bound of a quantifier written without one: flexible bottom.
var Unbounded = Bound{Kind: Flexible, Type: Bottom}

// Binding pairs a quantified name with its bound.
type Binding struct {
	Name  string
	Bound Bound
}

// Quantified type: `∀(name ⋄ bound). body`
//
// Quantifiers nest through Body to form a chain. Use QuantifyAll to construct types in normal form.
type Quantify struct {
	Name  string
	Bound Bound
	Body  Polytype
	free  lazyVarSet
}

// Create a single quantifier without normalizing.
func NewQuantify(name string, bound Bound, body Polytype) *Quantify {
	if bound.Type == nil {
		bound.Type = Bottom
	}
	return &Quantify{Name: name, Bound: bound, Body: body}
}

// Bottom type: the type with no values
type BottomType struct{}

// Bottom is the least type, used for error recovery and as the default bound.
var Bottom = &BottomType{}

// IsBottom reports whether t is the bottom type.
func IsBottom(t Polytype) bool {
	_, ok := t.(*BottomType)
	return ok || t == nil
}

// ToPolytype widens a monotype.
func ToPolytype(t Monotype) Polytype { return t }

// Split a chain of quantifiers into its bindings (outermost first) and its body.
// The body is a monotype or bottom.
func Split(t Polytype) ([]Binding, Polytype) {
	var bindings []Binding
	for {
		q, ok := t.(*Quantify)
		if !ok {
			return bindings, t
		}
		bindings = append(bindings, Binding{Name: q.Name, Bound: q.Bound})
		t = q.Body
	}
}

// Build a chain of quantifiers without normalizing.
func chain(bindings []Binding, body Polytype) Polytype {
	for i := len(bindings) - 1; i >= 0; i-- {
		body = NewQuantify(bindings[i].Name, bindings[i].Bound, body)
	}
	return body
}

// lazyVarSet caches the free variables of a composite type. Types may be shared by concurrent
// inference passes, so the cache is filled at most once.
type lazyVarSet struct {
	once sync.Once
	set  VarSet
}

func (l *lazyVarSet) get(compute func() VarSet) VarSet {
	l.once.Do(func() { l.set = compute() })
	return l.set
}
