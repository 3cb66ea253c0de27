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

// Equivalent reports whether a and b are equal after conversion to normal form, up to the names
// of their quantifiers. Free type-variables must have the same names.
func Equivalent(a, b Polytype) bool {
	return equivalent(Normal(a), Normal(b), nil)
}

// renaming pairs quantifier names which are bound together, innermost first.
type renaming struct {
	a, b string
	next *renaming
}

func (r *renaming) same(a, b string) bool {
	for ; r != nil; r = r.next {
		if r.a == a || r.b == b {
			return r.a == a && r.b == b
		}
	}
	return a == b
}

func equivalent(a, b Polytype, r *renaming) bool {
	if a == nil {
		a = Bottom
	}
	if b == nil {
		b = Bottom
	}
	switch a := a.(type) {
	case *Variable:
		b, ok := b.(*Variable)
		return ok && r.same(a.Name, b.Name)

	case *Constant:
		b, ok := b.(*Constant)
		return ok && a.Kind == b.Kind

	case *Function:
		b, ok := b.(*Function)
		return ok && equivalent(a.Param, b.Param, r) && equivalent(a.Body, b.Body, r)

	case *BottomType:
		_, ok := b.(*BottomType)
		return ok

	case *Quantify:
		b, ok := b.(*Quantify)
		if !ok || a.Bound.Kind != b.Bound.Kind {
			return false
		}
		if !equivalent(a.Bound.Type, b.Bound.Type, r) {
			return false
		}
		return equivalent(a.Body, b.Body, &renaming{a: a.Name, b: b.Name, next: r})
	}
	return false
}
