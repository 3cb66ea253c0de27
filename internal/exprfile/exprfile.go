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

// Package exprfile decodes YAML documents holding a scope and an expression to check.
//
//	scope:
//	  add1: {fun: [number, number]}
//	  id: {forall: [{name: a}], body: {fun: [{var: a}, {var: a}]}}
//	expr:
//	  let: f
//	  value: {fun: x, body: {call: {var: add1}, args: [{var: x}]}}
//	  body: {call: {var: id}, args: [{var: f}]}
//
// Types are one of the scalars boolean, number, string and bottom, or a mapping with one of the
// keys var, fun (parameter types followed by the result type) or forall (with body). Bindings
// of forall are {name, bound, rigid}; a binding without a bound is unbounded.
//
// Expressions are mappings with one of the keys var, bool, number, string, fun (with body),
// call (with args), let (with value and body), annotate (with type) or error (with an optional
// recovered expr). An error names an identifier which could not be resolved.
package exprfile

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	brite "github.com/brite-lang/brite-sub000"
	"github.com/brite-lang/brite-sub000/ast"
	"github.com/brite-lang/brite-sub000/construct"
	"github.com/brite-lang/brite-sub000/diagnostics"
	"github.com/brite-lang/brite-sub000/types"
)

// Document is a decoded expression and the scope it is checked in.
type Document struct {
	Scope *brite.Scope
	Expr  ast.Expr
	// Names declared by the scope, in document order.
	Names []string
}

type document struct {
	Scope yaml.Node `yaml:"scope"`
	Expr  *exprNode `yaml:"expr"`
}

// Decode reads a single document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var raw document
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decoding document")
	}
	if raw.Expr == nil {
		return nil, errors.New("document has no expr")
	}

	doc := &Document{Scope: brite.NewScope()}
	if raw.Scope.Kind != 0 {
		if raw.Scope.Kind != yaml.MappingNode {
			return nil, errors.Errorf("line %d: scope must be a mapping", raw.Scope.Line)
		}
		for i := 0; i+1 < len(raw.Scope.Content); i += 2 {
			key, value := raw.Scope.Content[i], raw.Scope.Content[i+1]
			var tn typeNode
			if err := value.Decode(&tn); err != nil {
				return nil, errors.Wrapf(err, "decoding type of %s", key.Value)
			}
			t, err := tn.polytype()
			if err != nil {
				return nil, errors.Wrapf(err, "type of %s", key.Value)
			}
			doc.Scope.Declare(key.Value, t)
			doc.Names = append(doc.Names, key.Value)
		}
	}

	expr, err := raw.Expr.expr()
	if err != nil {
		return nil, errors.Wrap(err, "expr")
	}
	doc.Expr = expr
	return doc, nil
}

type bindingNode struct {
	Name  string    `yaml:"name"`
	Bound *typeNode `yaml:"bound"`
	Rigid bool      `yaml:"rigid"`
}

type typeNode struct {
	Constant string        `yaml:"-"`
	Var      string        `yaml:"var"`
	Fun      []typeNode    `yaml:"fun"`
	Forall   []bindingNode `yaml:"forall"`
	Body     *typeNode     `yaml:"body"`
	line     int
}

func (n *typeNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		n.Constant = value.Value
	} else {
		type plain typeNode
		if err := value.Decode((*plain)(n)); err != nil {
			return err
		}
	}
	n.line = value.Line
	return nil
}

func (n *typeNode) polytype() (types.Polytype, error) {
	switch {
	case n.Constant != "":
		switch n.Constant {
		case "boolean":
			return types.Boolean, nil
		case "number":
			return types.Number, nil
		case "string":
			return types.String, nil
		case "bottom":
			return types.Bottom, nil
		}
		return nil, errors.Errorf("line %d: unknown type %q", n.line, n.Constant)

	case n.Forall != nil:
		if n.Body == nil {
			return nil, errors.Errorf("line %d: forall without body", n.line)
		}
		bindings := make([]types.Binding, 0, len(n.Forall))
		for _, b := range n.Forall {
			if b.Name == "" {
				return nil, errors.Errorf("line %d: binding without name", n.line)
			}
			binding := construct.Unbound(b.Name)
			if b.Rigid {
				binding.Bound.Kind = types.Rigid
			}
			if b.Bound != nil {
				bound, err := b.Bound.polytype()
				if err != nil {
					return nil, err
				}
				binding.Bound.Type = bound
			}
			bindings = append(bindings, binding)
		}
		body, err := n.Body.polytype()
		if err != nil {
			return nil, err
		}
		return construct.TQuantify(body, bindings...), nil
	}
	return n.monotype()
}

func (n *typeNode) monotype() (types.Monotype, error) {
	switch {
	case n.Var != "":
		return construct.TVar(n.Var), nil

	case n.Fun != nil:
		if len(n.Fun) < 2 {
			return nil, errors.Errorf("line %d: function type needs a parameter and a result", n.line)
		}
		result, err := n.Fun[len(n.Fun)-1].monotype()
		if err != nil {
			return nil, err
		}
		for i := len(n.Fun) - 2; i >= 0; i-- {
			param, err := n.Fun[i].monotype()
			if err != nil {
				return nil, err
			}
			result = construct.TFunc(param, result)
		}
		return result, nil

	case n.Constant == "" && n.Forall == nil:
		return nil, errors.Errorf("line %d: empty type", n.line)
	}

	t, err := n.polytype()
	if err != nil {
		return nil, err
	}
	if m, ok := t.(types.Monotype); ok {
		return m, nil
	}
	return nil, errors.Errorf("line %d: expected a monotype", n.line)
}

type exprNode struct {
	Var      *string    `yaml:"var"`
	Bool     *bool      `yaml:"bool"`
	Number   *float64   `yaml:"number"`
	String   *string    `yaml:"string"`
	Fun      *string    `yaml:"fun"`
	Body     *exprNode  `yaml:"body"`
	Call     *exprNode  `yaml:"call"`
	Args     []exprNode `yaml:"args"`
	Let      *string    `yaml:"let"`
	Value    *exprNode  `yaml:"value"`
	Annotate *exprNode  `yaml:"annotate"`
	Type     *typeNode  `yaml:"type"`
	Error    *string    `yaml:"error"`
	Expr     *exprNode  `yaml:"expr"`
	line     int
}

func (n *exprNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: expression must be a mapping", value.Line)
	}
	type plain exprNode
	if err := value.Decode((*plain)(n)); err != nil {
		return err
	}
	n.line = value.Line
	return nil
}

func (n *exprNode) expr() (ast.Expr, error) {
	switch {
	case n.Var != nil:
		return construct.Var(*n.Var), nil
	case n.Bool != nil:
		return construct.Bool(*n.Bool), nil
	case n.Number != nil:
		return construct.Num(*n.Number), nil
	case n.String != nil:
		return construct.Str(*n.String), nil

	case n.Fun != nil:
		body, err := n.child("body", n.Body)
		if err != nil {
			return nil, err
		}
		return construct.Func(*n.Fun, body), nil

	case n.Call != nil:
		callee, err := n.Call.expr()
		if err != nil {
			return nil, err
		}
		if len(n.Args) == 0 {
			return nil, errors.Errorf("line %d: call without args", n.line)
		}
		args := make([]ast.Expr, len(n.Args))
		for i := range n.Args {
			if args[i], err = n.Args[i].expr(); err != nil {
				return nil, err
			}
		}
		return construct.Call(callee, args...), nil

	case n.Let != nil:
		value, err := n.child("value", n.Value)
		if err != nil {
			return nil, err
		}
		body, err := n.child("body", n.Body)
		if err != nil {
			return nil, err
		}
		return construct.Let(*n.Let, value, body), nil

	case n.Annotate != nil:
		value, err := n.Annotate.expr()
		if err != nil {
			return nil, err
		}
		if n.Type == nil {
			return nil, errors.Errorf("line %d: annotation without type", n.line)
		}
		declared, err := n.Type.polytype()
		if err != nil {
			return nil, err
		}
		return construct.Annotate(value, declared), nil

	case n.Error != nil:
		var recovered ast.Expr
		if n.Expr != nil {
			var err error
			if recovered, err = n.Expr.expr(); err != nil {
				return nil, err
			}
		}
		return construct.ErrorExpr(diagnostics.UnboundVariable{Identifier: *n.Error}, recovered), nil
	}
	return nil, errors.Errorf("line %d: unknown expression", n.line)
}

func (n *exprNode) child(key string, child *exprNode) (ast.Expr, error) {
	if child == nil {
		return nil, errors.Errorf("line %d: missing %s", n.line, key)
	}
	return child.expr()
}
