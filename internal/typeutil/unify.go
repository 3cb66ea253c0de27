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

package typeutil

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/brite-lang/brite-sub000/diagnostics"
	"github.com/brite-lang/brite-sub000/types"
)

type unifier struct {
	prefix *Prefix
	sink   *diagnostics.Sink
}

// Unify makes actual and expected equal by narrowing type-variables in the prefix. Every problem
// found is reported to sink, and the first one is returned as the error. On failure the prefix is
// left consistent but possibly partially narrowed.
func Unify(p *Prefix, sink *diagnostics.Sink, actual, expected types.Monotype) error {
	u := unifier{prefix: p, sink: sink}
	return u.unify(actual, expected, false)
}

// UnifyCall is Unify where actual is the type of a callee and expected is the function type
// implied by its call. The parameter types are reported the other way around: the argument is
// what was found, and the callee's parameter is what was expected.
func UnifyCall(p *Prefix, sink *diagnostics.Sink, actual, expected types.Monotype) error {
	u := unifier{prefix: p, sink: sink}
	return u.unify(actual, expected, true)
}

func (u *unifier) report(d diagnostics.Diagnostic) error {
	u.sink.Report(d)
	return d
}

func (u *unifier) incompatible(actual, expected types.Polytype) error {
	ts := displayed(u.prefix.Resolve(actual), u.prefix.Resolve(expected))
	return u.report(diagnostics.IncompatibleTypes{Actual: ts[0], Expected: ts[1]})
}

func (u *unifier) infinite(name string, t types.Polytype) error {
	ts := displayed(types.NewVariable(name), u.prefix.Resolve(t))
	return u.report(diagnostics.InfiniteType{Name: ts[0].(*types.Variable).Name, Type: ts[1]})
}

// displayed renames the type-variables allocated by a prefix in ts to a, b, c and so on, in order
// of appearance, skipping names which are already free in ts. The same variable gets the same
// name in every type.
func displayed(ts ...types.Polytype) []types.Polytype {
	taken := types.EmptyVarSet
	for _, t := range ts {
		taken = taken.Union(types.FreeVariables(t))
	}
	var subst types.Substitution
	next := 0
	for _, t := range ts {
		types.ForEachFreeVariable(t, func(name string) {
			if !strings.HasPrefix(name, "$") {
				return
			}
			if _, ok := subst[name]; ok {
				return
			}
			display := displayName(next)
			for next++; taken.Has(display); next++ {
				display = displayName(next)
			}
			if subst == nil {
				subst = make(types.Substitution)
			}
			subst[name] = types.NewVariable(display)
		})
	}
	out := make([]types.Polytype, len(ts))
	for i, t := range ts {
		out[i] = types.Substitute(t, subst)
	}
	return out
}

func displayName(i int) string {
	name := string(rune('a' + i%26))
	if i >= 26 {
		name += strconv.Itoa(i / 26)
	}
	return name
}

func (u *unifier) internal(err error) error {
	u.prefix.logger.Warn("unify failure", "section", "unify", "err", err)
	return u.report(diagnostics.Internal{Err: err})
}

func (u *unifier) unify(actual, expected types.Monotype, call bool) error {
	actual, expected = u.prefix.resolveVariable(actual), u.prefix.resolveVariable(expected)
	u.prefix.logger.Debug("unify", "section", "unify", "actual", types.LogValue(actual), "expected", types.LogValue(expected))
	if actual == expected {
		return nil
	}

	av, actualIsVar := actual.(*types.Variable)
	ev, expectedIsVar := expected.(*types.Variable)
	switch {
	case actualIsVar && expectedIsVar:
		if av.Name == ev.Name {
			return nil
		}
		return u.merge(av.Name, ev.Name, call)
	case actualIsVar:
		return u.solve(av.Name, expected, false, call)
	case expectedIsVar:
		return u.solve(ev.Name, actual, true, call)
	}

	switch a := actual.(type) {
	case *types.Constant:
		if e, ok := expected.(*types.Constant); ok && e.Kind == a.Kind {
			return nil
		}
		return u.incompatible(actual, expected)

	case *types.Function:
		e, ok := expected.(*types.Function)
		if !ok {
			return u.incompatible(actual, expected)
		}
		// Both sides are checked so that each mismatch is reported.
		var paramErr error
		if call {
			paramErr = u.unify(e.Param, a.Param, false)
		} else {
			paramErr = u.unify(a.Param, e.Param, false)
		}
		bodyErr := u.unify(a.Body, e.Body, false)
		if paramErr != nil {
			return paramErr
		}
		return bodyErr
	}
	return u.internal(errors.Errorf("cannot unify unexpected type %s", actual.TypeName()))
}

// merge unifies two distinct type-variables whose bounds are not monotypes.
func (u *unifier) merge(a, b string, call bool) error {
	ba, ok := u.prefix.Lookup(a)
	if !ok {
		return u.internal(errors.Errorf("type variable %s is not bound in the prefix", a))
	}
	bb, ok := u.prefix.Lookup(b)
	if !ok {
		return u.internal(errors.Errorf("type variable %s is not bound in the prefix", b))
	}
	aRigid, bRigid := ba.Bound.Kind == types.Rigid, bb.Bound.Kind == types.Rigid
	if aRigid && bRigid && types.IsBottom(ba.Bound.Type) && types.IsBottom(bb.Bound.Type) {
		return u.incompatible(types.NewVariable(a), types.NewVariable(b))
	}
	if u.prefix.Occurs(a, bb.Bound.Type) {
		return u.infinite(a, bb.Bound.Type)
	}
	if u.prefix.Occurs(b, ba.Bound.Type) {
		return u.infinite(b, ba.Bound.Type)
	}

	bound, err := u.polyUnify(ba.Bound.Type, bb.Bound.Type, call)
	if err != nil {
		return err
	}
	if (aRigid && !u.equivalent(bound, ba.Bound.Type)) || (bRigid && !u.equivalent(bound, bb.Bound.Type)) {
		return u.incompatible(ba.Bound.Type, bb.Bound.Type)
	}
	if u.prefix.Occurs(a, bound) {
		return u.infinite(a, bound)
	}
	if u.prefix.Occurs(b, bound) {
		return u.infinite(b, bound)
	}

	kind := types.Flexible
	if aRigid || bRigid {
		kind = types.Rigid
	}
	u.prefix.MergeUpdate(a, b, kind, bound)
	return nil
}

// solve narrows the type-variable name to t, which is not a type-variable. When swapped, name was
// found on the expected side.
func (u *unifier) solve(name string, t types.Monotype, swapped, call bool) error {
	b, ok := u.prefix.Lookup(name)
	if !ok {
		return u.internal(errors.Errorf("type variable %s is not bound in the prefix", name))
	}
	if u.prefix.Occurs(name, t) {
		return u.infinite(name, t)
	}

	var err error
	if swapped {
		_, err = u.polyUnify(t, b.Bound.Type, call)
	} else {
		_, err = u.polyUnify(b.Bound.Type, t, call)
	}
	if err != nil {
		return err
	}
	if b.Bound.Kind == types.Rigid && !u.equivalent(t, b.Bound.Type) {
		if swapped {
			return u.incompatible(t, b.Bound.Type)
		}
		return u.incompatible(b.Bound.Type, t)
	}
	// narrowing the bound may have tied t back to name
	if u.prefix.Occurs(name, t) {
		return u.infinite(name, t)
	}

	u.prefix.Update(name, types.Bound{Kind: b.Bound.Kind, Type: t})
	return nil
}

// polyUnify unifies two polytypes and returns their common instance. Bottom is an instance of
// every type. Quantified types are instantiated in a new level, and the result is generalized
// before the level is popped.
func (u *unifier) polyUnify(actual, expected types.Polytype, call bool) (types.Polytype, error) {
	if types.IsBottom(actual) {
		return expected, nil
	}
	if types.IsBottom(expected) {
		return actual, nil
	}
	am, actualIsMono := actual.(types.Monotype)
	em, expectedIsMono := expected.(types.Monotype)
	if actualIsMono && expectedIsMono {
		return actual, u.unify(am, em, call)
	}

	var err error
	result := WithLevel(u.prefix, func() types.Polytype {
		a, e := u.instantiate(actual), u.instantiate(expected)
		err = u.unify(a, e, call)
		return u.prefix.Generalize(a)
	})
	return result, err
}

// instantiate returns a monotype for t in the current level.
func (u *unifier) instantiate(t types.Polytype) types.Monotype {
	t = types.Normal(t)
	if m, ok := t.(types.Monotype); ok {
		return m
	}
	bindings, body := types.Split(t)
	if m, ok := body.(types.Monotype); ok {
		return u.prefix.Instantiate(bindings, m)
	}
	return types.NewVariable(u.prefix.NewType(types.Unbounded))
}

func (u *unifier) equivalent(a, b types.Polytype) bool {
	return types.Equivalent(u.prefix.Resolve(a), u.prefix.Resolve(b))
}
