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

package brite

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/brite-lang/brite-sub000/ast"
	"github.com/brite-lang/brite-sub000/diagnostics"
	"github.com/brite-lang/brite-sub000/internal/typeutil"
	"github.com/brite-lang/brite-sub000/types"
)

// pass is the state of a single call to Infer.
type pass struct {
	debug  bool
	sink   *diagnostics.Sink
	prefix *typeutil.Prefix
	logger *slog.Logger
	// typed nodes whose types mention type-variables of each level, resolved when the level is popped
	pending [][]ast.Typed
}

func (p *pass) inferRoot(scope *Scope, root ast.Expr) ast.Expr {
	if root == nil {
		p.internal(errors.New("cannot infer the type of an empty expression"))
		return nil
	}
	root = ast.CopyExpr(root)

	// The root level owns the free type-variables of the scope.
	p.enter()
	for _, name := range scope.FreeVariables().Sorted() {
		p.prefix.Add(name, types.Unbounded)
	}
	root, _ = p.infer(scope, root)
	p.leave()

	for _, err := range p.prefix.Failures() {
		p.internal(err)
	}
	if p.prefix.Len() != 0 || p.prefix.Level() != 0 {
		p.internal(errors.Errorf("prefix is not empty after inference: %v", p.prefix.Names()))
	}
	p.logger.Debug("inferred", "section", "infer", "type", types.LogValue(root.Type()), "diagnostics", p.sink)
	return root
}

func (p *pass) internal(err error) {
	if p.debug {
		panic(err)
	}
	p.sink.Report(diagnostics.Internal{Err: err})
}

func (p *pass) enter() {
	p.prefix.IncrementLevel()
	p.pending = append(p.pending, nil)
}

// leave resolves the types of the nodes stamped in the current level, then pops it. Nodes whose
// types still mention older type-variables are resolved again when the parent level is popped.
func (p *pass) leave() {
	top := len(p.pending) - 1
	nodes := p.pending[top]
	p.pending = p.pending[:top]
	level := p.prefix.Level()
	for _, node := range nodes {
		t := p.prefix.Resolve(node.Type())
		node.SetType(t)
		if top > 0 && p.mentionsOlder(t, level) {
			p.pending[top-1] = append(p.pending[top-1], node)
		}
	}
	p.prefix.DecrementLevel()
}

func (p *pass) mentionsOlder(t types.Polytype, level int) bool {
	older := false
	types.FreeVariables(t).Range(func(name string) bool {
		b, ok := p.prefix.Lookup(name)
		older = ok && b.Level < level
		return !older
	})
	return older
}

// stamp assigns t to node. Nodes are stamped after the level of their sub-expressions is popped.
func (p *pass) stamp(node ast.Typed, t types.Polytype) {
	node.SetType(t)
	if types.FreeVariables(t).Len() > 0 && len(p.pending) > 0 {
		top := len(p.pending) - 1
		p.pending[top] = append(p.pending[top], node)
	}
}

// monomorphize returns t when it is a monotype, and otherwise a fresh type-variable bounded by t.
func (p *pass) monomorphize(t types.Polytype, kind types.BoundKind) types.Monotype {
	t = types.Normal(t)
	if m, ok := t.(types.Monotype); ok {
		return m
	}
	return types.NewVariable(p.prefix.NewType(types.Bound{Kind: kind, Type: t}))
}

func constantType(v ast.Value) *types.Constant {
	switch v.Kind() {
	case types.BooleanKind:
		return types.Boolean
	case types.NumberKind:
		return types.Number
	default:
		return types.String
	}
}

// infer returns the typed expression which replaces e, and its type.
func (p *pass) infer(scope *Scope, e ast.Expr) (ast.Expr, types.Polytype) {
	switch e := e.(type) {
	case *ast.Var:
		t := scope.Lookup(e.Name)
		if t == nil {
			d := diagnostics.UnboundVariable{Identifier: e.Name}
			p.sink.Report(d)
			e.SetType(types.Bottom)
			invalid := &ast.Error{Diagnostic: d, Expr: e}
			invalid.SetType(types.Bottom)
			return invalid, types.Bottom
		}
		p.stamp(e, t)
		return e, t

	case *ast.Constant:
		t := constantType(e.Value)
		e.SetType(t)
		return e, t

	case *ast.Func:
		p.enter()
		param := types.NewVariable(p.prefix.NewType(types.Unbounded))
		body, bodyType := p.infer(scope.With(e.Param, param), e.Body)
		e.Body = body
		t := p.prefix.Generalize(types.NewFunction(param, p.monomorphize(bodyType, types.Flexible)))
		p.leave()
		p.stamp(e, t)
		p.logger.Debug("func", "section", "infer", "param", e.Param, "type", types.LogValue(t))
		return e, t

	case *ast.Call:
		p.enter()
		callee, calleeType := p.infer(scope, e.Callee)
		arg, argType := p.infer(scope, e.Arg)
		e.Callee, e.Arg = callee, arg
		calleeMono := p.monomorphize(calleeType, types.Flexible)
		argMono := p.monomorphize(argType, types.Flexible)
		result := types.NewVariable(p.prefix.NewType(types.Unbounded))
		err := typeutil.UnifyCall(p.prefix, p.sink, calleeMono, types.NewFunction(argMono, result))
		t := p.prefix.Generalize(result)
		p.leave()
		p.stamp(e, t)
		p.logger.Debug("call", "section", "infer", "type", types.LogValue(t), "failed", err != nil)
		if err != nil {
			return p.invalid(err, e, t), t
		}
		return e, t

	case *ast.Let:
		return p.inferLet(scope, e)

	case *ast.Annotation:
		p.enter()
		// Free type-variables of the declared type which are not already known are inferred.
		for _, name := range types.FreeVariables(e.Declared).Sorted() {
			if _, ok := p.prefix.Lookup(name); !ok {
				p.prefix.Add(name, types.Unbounded)
			}
		}
		value, valueType := p.infer(scope, e.Expr)
		e.Expr = value
		valueMono := p.monomorphize(valueType, types.Flexible)
		declared := p.monomorphize(e.Declared, types.Rigid)
		err := typeutil.Unify(p.prefix, p.sink, valueMono, declared)
		// The node has the declared type itself rather than the rigid variable, which may have
		// been merged into an older one, so that each use can instantiate it.
		t := types.Normal(p.prefix.Generalize(e.Declared))
		p.leave()
		p.stamp(e, t)
		if err != nil {
			return p.invalid(err, e, t), t
		}
		return e, t

	case *ast.Error:
		// The diagnostic was reported when the error was built.
		if e.Expr != nil {
			p.enter()
			e.Expr, _ = p.infer(scope, e.Expr)
			p.leave()
		}
		e.SetType(types.Bottom)
		return e, types.Bottom

	case nil:
		p.internal(errors.New("cannot infer the type of an empty expression"))
		return nil, types.Bottom

	default:
		err := errors.Errorf("cannot infer the type of unknown expression %s", e.ExprName())
		p.internal(err)
		return &ast.Error{Diagnostic: diagnostics.Internal{Err: err}, Expr: e}, types.Bottom
	}
}

// inferLet checks a chain of let-bindings in a loop. Bound values keep their polymorphic types and
// are instantiated at each use.
func (p *pass) inferLet(scope *Scope, e *ast.Let) (ast.Expr, types.Polytype) {
	root := e
	var chain []*ast.Let
	for {
		value, valueType := p.infer(scope, e.Value)
		e.Value = value
		scope = scope.With(e.Name, valueType)
		chain = append(chain, e)
		next, ok := e.Body.(*ast.Let)
		if !ok {
			break
		}
		e = next
	}
	body, t := p.infer(scope, e.Body)
	e.Body = body
	for _, l := range chain {
		p.stamp(l, t)
	}
	return root, t
}

// invalid wraps a node whose check failed in an error carrying the first reported diagnostic.
func (p *pass) invalid(err error, e ast.Expr, t types.Polytype) ast.Expr {
	d, ok := diagnostics.FromError(err)
	if !ok {
		d = diagnostics.Internal{Err: err}
	}
	invalid := &ast.Error{Diagnostic: d, Expr: e}
	p.stamp(invalid, t)
	return invalid
}
