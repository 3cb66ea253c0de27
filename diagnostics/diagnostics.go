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

// Package diagnostics defines the problems reported while checking expressions, and a sink which
// collects them.
package diagnostics

import (
	"errors"
	"fmt"

	"github.com/brite-lang/brite-sub000/types"
)

// FromError returns the diagnostic carried by err. Unification returns the diagnostic it reported
// first as its error.
func FromError(err error) (Diagnostic, bool) {
	var d Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

type Code int

const (
	None Code = iota
	UnboundVariableCode
	IncompatibleTypesCode
	InfiniteTypeCode
	InternalCode
)

// Diagnostic is a problem reported to a Sink. Hosts may add their own kinds by implementing it.
type Diagnostic interface {
	Error() string
	Code() Code
}

var (
	_ Diagnostic = UnboundVariable{}
	_ Diagnostic = IncompatibleTypes{}
	_ Diagnostic = InfiniteType{}
	_ Diagnostic = Internal{}
)

// Format returns the message of d prefixed with its code.
func Format(d Diagnostic) string {
	return fmt.Sprintf("(E%03d) %s", d.Code(), d.Error())
}

// UnboundVariable is reported for a reference to a name which is not in scope.
type UnboundVariable struct {
	Identifier string
}

func (e UnboundVariable) Code() Code { return UnboundVariableCode }
func (e UnboundVariable) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Identifier)
}

// IncompatibleTypes is reported when the type of an expression does not match the type its
// context expects.
type IncompatibleTypes struct {
	Actual   types.Polytype
	Expected types.Polytype
}

func (e IncompatibleTypes) Code() Code { return IncompatibleTypesCode }
func (e IncompatibleTypes) Error() string {
	return fmt.Sprintf("type mismatch: expected '%s', but found '%s'", typeString(e.Expected), typeString(e.Actual))
}

// InfiniteType is reported when solving the type-variable Name would require it to contain
// itself.
type InfiniteType struct {
	Name string
	Type types.Polytype
}

func (e InfiniteType) Code() Code { return InfiniteTypeCode }
func (e InfiniteType) Error() string {
	return fmt.Sprintf("infinite type: '%s' occurs in '%s'", e.Name, typeString(e.Type))
}

// Internal is reported when the checker finds its own state inconsistent.
type Internal struct {
	Err error
}

func (e Internal) Code() Code    { return InternalCode }
func (e Internal) Unwrap() error { return e.Err }
func (e Internal) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func typeString(t types.Polytype) string {
	if t == nil {
		return types.TypeString(types.Bottom)
	}
	return types.TypeString(t)
}
