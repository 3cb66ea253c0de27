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

// FreeVariables returns the names which occur free in t. The set is computed once per node.
func FreeVariables(t Polytype) VarSet {
	if t == nil {
		return EmptyVarSet
	}
	return t.freeVariables()
}

func (t *Variable) freeVariables() VarSet   { return NewVarSet(t.Name) }
func (t *Constant) freeVariables() VarSet   { return EmptyVarSet }
func (t *BottomType) freeVariables() VarSet { return EmptyVarSet }

func (t *Function) freeVariables() VarSet {
	return t.free.get(func() VarSet {
		return FreeVariables(t.Param).Union(FreeVariables(t.Body))
	})
}

func (t *Quantify) freeVariables() VarSet {
	return t.free.get(func() VarSet {
		return FreeVariables(t.Body).Remove(t.Name).Union(FreeVariables(t.Bound.Type))
	})
}

// ForEachFreeVariable calls f for every free occurrence of a type-variable in t, from left to
// right. Bounds are visited before the body of their quantifier, and names rebound by an
// enclosing quantifier are skipped. A name which occurs more than once is visited more than once.
func ForEachFreeVariable(t Polytype, f func(name string)) {
	if FreeVariables(t).Len() == 0 {
		return
	}
	forEachFreeVariable(t, nil, f)
}

func forEachFreeVariable(t Polytype, scope map[string]int, f func(string)) {
	switch t := t.(type) {
	case *Variable:
		if scope[t.Name] == 0 {
			f(t.Name)
		}

	case *Constant, *BottomType, nil:

	case *Function:
		forEachFreeVariable(t.Param, scope, f)
		forEachFreeVariable(t.Body, scope, f)

	case *Quantify:
		forEachFreeVariable(t.Bound.Type, scope, f)
		if scope == nil {
			scope = make(map[string]int)
		}
		scope[t.Name]++
		forEachFreeVariable(t.Body, scope, f)
		scope[t.Name]--

	default:
		panic("unexpected type " + t.TypeName())
	}
}
