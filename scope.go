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
	"github.com/benbjohnson/immutable"

	"github.com/brite-lang/brite-sub000/types"
)

// Scope maps identifiers to their declared types.
//
// Scopes are persistent: With returns a new scope and leaves the receiver unchanged, so inner
// scopes are cheap to create and never need to be restored.
type Scope struct {
	m *immutable.Map
}

// Create an empty scope.
func NewScope() *Scope {
	return &Scope{m: immutable.NewMap(nil)}
}

// Declare binds name to t in s, replacing any prior binding.
func (s *Scope) Declare(name string, t types.Polytype) {
	s.m = s.m.Set(name, t)
}

// With returns a scope where name is bound to t.
func (s *Scope) With(name string, t types.Polytype) *Scope {
	if s == nil {
		s = NewScope()
	}
	return &Scope{m: s.m.Set(name, t)}
}

// Lookup returns the type bound to name, or nil.
func (s *Scope) Lookup(name string) types.Polytype {
	if s == nil {
		return nil
	}
	t, ok := s.m.Get(name)
	if !ok {
		return nil
	}
	return t.(types.Polytype)
}

// Len returns the number of names in the scope.
func (s *Scope) Len() int {
	if s == nil {
		return 0
	}
	return s.m.Len()
}

// Iterate over names in the scope, in no particular order.
// If f returns false, iteration will be stopped.
func (s *Scope) Range(f func(name string, t types.Polytype) bool) {
	if s == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(types.Polytype)) {
			return
		}
	}
}

// FreeVariables returns the type-variables which occur free in the declared types.
func (s *Scope) FreeVariables() types.VarSet {
	free := types.EmptyVarSet
	s.Range(func(name string, t types.Polytype) bool {
		free = free.Union(types.FreeVariables(t))
		return true
	})
	return free
}
