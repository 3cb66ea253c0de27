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

	"github.com/brite-lang/brite-sub000/ast"
	"github.com/brite-lang/brite-sub000/diagnostics"
	"github.com/brite-lang/brite-sub000/internal/log"
	"github.com/brite-lang/brite-sub000/internal/typeutil"
)

// InferenceContext holds options for type inference.
//
// A context is not modified by inference, so it may be shared by concurrent calls to Infer.
// Each call allocates its own prefix.
type InferenceContext struct {
	debug  bool
	logger *slog.Logger
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext { return &InferenceContext{logger: log.DefaultLogger} }

// With debug assertions enabled, inference panics when it finds its own state inconsistent,
// rather than reporting an internal diagnostic.
//
// By default, debug assertions are disabled.
func (ti *InferenceContext) EnableDebugAssertions(enabled bool) { ti.debug = enabled }

// SetLogger replaces the logger used for debug output. Records are written with the sections
// "infer", "unify" and "prefix".
func (ti *InferenceContext) SetLogger(logger *slog.Logger) {
	if logger != nil {
		ti.logger = logger
	}
}

// Infer the types of expr and its sub-expressions within scope. A typed copy of expr is returned;
// expr itself is not modified. Problems are reported to sink, which may be nil.
//
// Free type-variables of the types declared in scope are treated as unknown types shared by the
// whole expression.
func (ti *InferenceContext) Infer(sink *diagnostics.Sink, scope *Scope, expr ast.Expr) ast.Expr {
	p := &pass{
		debug:  ti.debug,
		sink:   sink,
		prefix: typeutil.NewPrefix(),
		logger: ti.logger,
	}
	p.prefix.SetLogger(ti.logger)
	return p.inferRoot(scope, expr)
}

// Infer the types of expr within scope using the default context.
func Infer(sink *diagnostics.Sink, scope *Scope, expr ast.Expr) ast.Expr {
	return NewContext().Infer(sink, scope, expr)
}
