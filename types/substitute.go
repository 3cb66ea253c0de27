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
	"strconv"
)

// Substitution maps type-variable names to replacement monotypes.
type Substitution map[string]Monotype

func (s Substitution) without(name string) Substitution {
	if _, ok := s[name]; !ok {
		return s
	}
	next := make(Substitution, len(s)-1)
	for k, v := range s {
		if k != name {
			next[k] = v
		}
	}
	return next
}

// Substitute replaces free type-variables in t. Quantifiers which rebind a name hide it from the
// substitution, and quantifiers which would capture a free name of a replacement are renamed.
//
// When nothing is replaced, t itself is returned.
func Substitute(t Polytype, s Substitution) Polytype {
	if !FreeVariables(t).Intersects(s) {
		return t
	}
	switch t := t.(type) {
	case Monotype:
		return SubstituteMonotype(t, s)

	case *Quantify:
		bound := Substitute(t.Bound.Type, s)
		name, inner := t.Name, s.without(t.Name)
		if captures(inner, FreeVariables(t.Body), name) {
			taken := FreeVariables(t.Body).Union(FreeVariables(bound))
			for _, r := range inner {
				taken = taken.Union(FreeVariables(r))
			}
			name = FreshName(t.Name, taken)
			renamed := make(Substitution, len(inner)+1)
			for k, v := range inner {
				renamed[k] = v
			}
			renamed[t.Name] = NewVariable(name)
			inner = renamed
		}
		body := Substitute(t.Body, inner)
		if bound == t.Bound.Type && body == t.Body && name == t.Name {
			return t
		}
		return NewQuantify(name, Bound{Kind: t.Bound.Kind, Type: bound}, body)
	}
	return t
}

// SubstituteMonotype replaces free type-variables in t. When nothing is replaced, t itself is
// returned.
func SubstituteMonotype(t Monotype, s Substitution) Monotype {
	if !FreeVariables(t).Intersects(s) {
		return t
	}
	switch t := t.(type) {
	case *Variable:
		if r, ok := s[t.Name]; ok {
			return r
		}
		return t

	case *Function:
		param, body := SubstituteMonotype(t.Param, s), SubstituteMonotype(t.Body, s)
		if param == t.Param && body == t.Body {
			return t
		}
		return NewFunction(param, body)
	}
	return t
}

// captures reports whether binding name over a body with the given free variables would capture
// a free name of a replacement applied inside the body.
func captures(s Substitution, free VarSet, name string) bool {
	for k, r := range s {
		if free.Has(k) && FreeVariables(r).Has(name) {
			return true
		}
	}
	return false
}

// FreshName derives a name from base which is not in taken.
func FreshName(base string, taken VarSet) string {
	for i := 1; ; i++ {
		name := base + "'" + strconv.Itoa(i)
		if !taken.Has(name) {
			return name
		}
	}
}
