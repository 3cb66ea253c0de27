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

package ast

// CopyExpr returns a deep copy of e, including any types assigned to it. Expressions of types
// defined outside this package are not copied.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case *Var:
		return &Var{e.Name, e.inferred}

	case *Constant:
		return &Constant{e.Value, e.inferred}

	case *Call:
		return &Call{CopyExpr(e.Callee), CopyExpr(e.Arg), e.inferred}

	case *Func:
		return &Func{e.Param, CopyExpr(e.Body), e.inferred}

	case *Let:
		root := &Let{e.Name, CopyExpr(e.Value), nil, e.inferred}
		last := root
		for {
			next, ok := e.Body.(*Let)
			if !ok {
				break
			}
			e = next
			copied := &Let{e.Name, CopyExpr(e.Value), nil, e.inferred}
			last.Body, last = copied, copied
		}
		last.Body = CopyExpr(e.Body)
		return root

	case *Annotation:
		return &Annotation{CopyExpr(e.Expr), e.Declared, e.inferred}

	case *Error:
		return &Error{e.Diagnostic, CopyExpr(e.Expr), e.inferred}

	case nil:
		return nil
	}
	return e
}
