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

// QuantifyAll builds `∀(bindings). body` in normal form. The first binding is the outermost.
// With no bindings, body is returned as-is.
func QuantifyAll(bindings []Binding, body Polytype) Polytype {
	if len(bindings) == 0 {
		return body
	}
	if q, ok := body.(*Quantify); ok {
		inner, innerBody := Split(q)
		all := make([]Binding, 0, len(bindings)+len(inner))
		all = append(append(all, bindings...), inner...)
		bindings, body = all, innerBody
	}
	t, _ := normal(bindings, body)
	return t
}

// Normal converts t to normal form:
//
//   * bounds which are monotypes are inlined and their quantifiers removed
//   * quantifiers which would capture a name introduced by inlining are renamed
//   * quantifiers whose names are unused are removed
//   * `∀(a ⋄ σ). a` is replaced with σ
//
// The order of the remaining quantifiers is preserved. Normal is idempotent, and returns t itself
// when t is already in normal form.
func Normal(t Polytype) Polytype {
	q, ok := t.(*Quantify)
	if !ok {
		return t
	}
	bindings, body := Split(q)
	n, changed := normal(bindings, body)
	if !changed {
		return t
	}
	return n
}

func normal(bindings []Binding, body Polytype) (Polytype, bool) {
	changed := false

	taken := FreeVariables(body)
	for _, b := range bindings {
		taken = taken.Add(b.Name).Union(FreeVariables(b.Bound.Type))
	}

	// Inline monotype bounds, outermost first:
	subst := make(Substitution)
	kept := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		boundType := b.Bound.Type
		if boundType == nil {
			boundType = Bottom
		}
		boundType = Normal(Substitute(boundType, subst))
		if mono, ok := boundType.(Monotype); ok {
			subst[b.Name] = mono
			changed = true
			continue
		}
		name := b.Name
		delete(subst, name)
		if captures(subst, taken, name) {
			name = FreshName(b.Name, taken)
			taken = taken.Add(name)
			subst[b.Name] = NewVariable(name)
			changed = true
		}
		if boundType != b.Bound.Type {
			changed = true
		}
		kept = append(kept, Binding{Name: name, Bound: Bound{Kind: b.Bound.Kind, Type: boundType}})
	}
	if len(subst) > 0 {
		next := Substitute(body, subst)
		if next != body {
			body, changed = next, true
		}
	}

	// Remove unused quantifiers, innermost first:
	needed := FreeVariables(body)
	used := make([]Binding, 0, len(kept))
	for i := len(kept) - 1; i >= 0; i-- {
		b := kept[i]
		if !needed.Has(b.Name) {
			changed = true
			continue
		}
		needed = needed.Remove(b.Name).Union(FreeVariables(b.Bound.Type))
		used = append(used, b)
	}
	for i, j := 0, len(used)-1; i < j; i, j = i+1, j-1 {
		used[i], used[j] = used[j], used[i]
	}

	// `∀(a ⋄ σ). a` is σ:
	if v, ok := body.(*Variable); ok && len(used) > 0 && used[len(used)-1].Name == v.Name {
		last := used[len(used)-1]
		used = used[:len(used)-1]
		inner, innerBody := Split(last.Bound.Type)
		t, _ := normal(append(used, inner...), innerBody)
		return t, true
	}

	if !changed {
		return chain(bindings, body), false
	}
	return chain(used, body), true
}
