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
	"sort"

	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewMap(nil)

// EmptyVarSet contains no names.
var EmptyVarSet = VarSet{emptyMap}

// VarSet is an immutable set of type-variable names. Sets share structure, so the free variables
// of a type can be cached on every node without copying.
type VarSet struct {
	m *immutable.Map
}

// Create a set containing the given names.
func NewVarSet(names ...string) VarSet {
	s := EmptyVarSet
	for _, name := range names {
		s = s.Add(name)
	}
	return s
}

// Get the number of names in the set.
func (s VarSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Has reports whether name is in the set.
func (s VarSet) Has(name string) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m.Get(name)
	return ok
}

// Add returns a set which also contains name.
func (s VarSet) Add(name string) VarSet {
	if s.Has(name) {
		return s
	}
	m := s.m
	if m == nil {
		m = emptyMap
	}
	return VarSet{m.Set(name, true)}
}

// Remove returns a set which does not contain name.
func (s VarSet) Remove(name string) VarSet {
	if !s.Has(name) {
		return s
	}
	return VarSet{s.m.Delete(name)}
}

// Union returns a set containing the names of both sets. The larger set is reused.
func (s VarSet) Union(other VarSet) VarSet {
	if other.Len() == 0 {
		return s
	}
	if s.Len() == 0 {
		return other
	}
	large, small := s, other
	if small.Len() > large.Len() {
		large, small = small, large
	}
	m := large.m
	small.Range(func(name string) bool {
		if _, ok := m.Get(name); !ok {
			m = m.Set(name, true)
		}
		return true
	})
	return VarSet{m}
}

// Iterate over names in the set, in no particular order.
// If f returns false, iteration will be stopped.
func (s VarSet) Range(f func(name string) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		if !f(k.(string)) {
			return
		}
	}
}

// Sorted returns the names in the set in lexical order.
func (s VarSet) Sorted() []string {
	names := make([]string, 0, s.Len())
	s.Range(func(name string) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Intersects reports whether any name in the set is a key of subst.
func (s VarSet) Intersects(subst Substitution) bool {
	if len(subst) == 0 || s.Len() == 0 {
		return false
	}
	if len(subst) < s.Len() {
		for name := range subst {
			if s.Has(name) {
				return true
			}
		}
		return false
	}
	found := false
	s.Range(func(name string) bool {
		_, found = subst[name]
		return !found
	})
	return found
}
