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

// brite provides type inference for a language with first-class polymorphism.
//
// The type-system is MLF: Hindley-Milner extended with quantifiers whose type-variables carry
// flexible (≥) or rigid (=) bounds. Polymorphic values may be passed to functions and returned
// from them without annotations, and let-bound values are instantiated independently at each use.
//
// Inference never fails: problems are reported to a diagnostics sink, and the typed expression
// which is returned carries error nodes where checking could not proceed.
//
//
// Supported Features:
//
//   * Most general types for unannotated terms (`fun x -> x : ∀A. A → A`)
//   * Flexible and rigid bounds on quantified type-variables
//   * Annotations with partially-known types (free type-variables are inferred)
//   * Occurs check against infinite types
//   * Error recovery with typed error nodes
//
//
// Links:
//
// MLF: Raising ML to the Power of System F (Le Botlan, Rémy, 2003): http://gallium.inria.fr/~remy/work/mlf/icfp.pdf
//
// Efficient Generalization with Levels (Oleg Kiselyov): http://okmij.org/ftp/ML/generalization.html#levels
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package brite
