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
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{names: make(map[string][]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.names {
		delete(p.names, k)
	}
	p.free = EmptyVarSet
	p.next = 0
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a type. Quantified names are printed as
// A, B, ..., Z, A1, B1, ... skipping names which occur free in the type.
func TypeString(t Polytype) string {
	p := newTypePrinter()
	p.free = FreeVariables(t)
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// LogValue returns a structured logging value which formats t lazily.
func LogValue(t Polytype) slog.LogValuer { return typeValue{t} }

type typeValue struct{ t Polytype }

func (v typeValue) LogValue() slog.Value {
	if v.t == nil {
		return slog.StringValue("<nil>")
	}
	return slog.StringValue(TypeString(v.t))
}

type typePrinter struct {
	// display names of quantified variables in scope, innermost last
	names map[string][]string
	free  VarSet
	next  int
	sb    strings.Builder
}

func getVarName(i int) string {
	name := string(rune('A' + i%26))
	if i >= 26 {
		name += strconv.Itoa(i / 26)
	}
	return name
}

func (p *typePrinter) fresh() string {
	for {
		display := getVarName(p.next)
		p.next++
		if !p.free.Has(display) {
			return display
		}
	}
}

func (p *typePrinter) bind(name, display string) {
	p.names[name] = append(p.names[name], display)
}

func (p *typePrinter) unbind(name string) {
	stack := p.names[name]
	if len(stack) == 1 {
		delete(p.names, name)
		return
	}
	p.names[name] = stack[:len(stack)-1]
}

func typeString(p *typePrinter, simple bool, t Polytype) {
	switch t := t.(type) {
	case nil, *BottomType:
		p.sb.WriteString("⊥")

	case *Constant:
		p.sb.WriteString(t.Kind.String())

	case *Variable:
		if stack := p.names[t.Name]; len(stack) > 0 {
			p.sb.WriteString(stack[len(stack)-1])
			return
		}
		p.sb.WriteString(t.Name)

	case *Function:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Param)
		p.sb.WriteString(" → ")
		typeString(p, false, t.Body)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Quantify:
		if simple {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString("∀")
		var bound []string
		var q Polytype = t
		for i := 0; ; i++ {
			next, ok := q.(*Quantify)
			if !ok {
				break
			}
			if i > 0 {
				p.sb.WriteString(", ")
			}
			display := p.fresh()
			if next.Bound.Kind == Flexible && IsBottom(next.Bound.Type) {
				p.sb.WriteString(display)
			} else {
				p.sb.WriteByte('(')
				p.sb.WriteString(display)
				if next.Bound.Kind == Rigid {
					p.sb.WriteString(" = ")
				} else {
					p.sb.WriteString(" ≥ ")
				}
				// the bound is outside the scope of its own name
				typeString(p, false, next.Bound.Type)
				p.sb.WriteByte(')')
			}
			p.bind(next.Name, display)
			bound = append(bound, next.Name)
			q = next.Body
		}
		p.sb.WriteString(". ")
		typeString(p, false, q)
		for i := len(bound) - 1; i >= 0; i-- {
			p.unbind(bound[i])
		}
		if simple {
			p.sb.WriteByte(')')
		}
	}
}
