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

package typeutil

import (
	"log/slog"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/xtgo/set"

	"github.com/brite-lang/brite-sub000/internal/log"
	"github.com/brite-lang/brite-sub000/types"
)

// Binding is the entry of a type-variable in a prefix.
type Binding struct {
	// Level is the level which owns the type-variable. Levels are numbered from 1.
	Level int
	Bound types.Bound
}

// Prefix holds the type-variables which are unknown while checking an expression, with their bounds.
//
// Type-variables are allocated at the current level and removed when that level is popped. A bound
// never mentions a type-variable from a younger level: updates which would make it so move the
// mentioned type-variables to the older level first.
// See "Efficient Generalization with Levels" (Oleg Kiselyov) -- http://okmij.org/ftp/ML/generalization.html#levels
//
// A prefix must not be shared between concurrent inference passes.
type Prefix struct {
	counter  int
	entries  map[string]Binding
	levels   []map[string]struct{}
	failures []error
	logger   *slog.Logger
}

// Create an empty prefix with no levels.
func NewPrefix() *Prefix {
	return &Prefix{
		entries: make(map[string]Binding, 16),
		logger:  log.DefaultLogger,
	}
}

// SetLogger replaces the logger used for debug output and failures.
func (p *Prefix) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// Level returns the number of levels which have been pushed and not popped.
func (p *Prefix) Level() int { return len(p.levels) }

// Len returns the number of type-variables in the prefix.
func (p *Prefix) Len() int { return len(p.entries) }

// Failures returns the internal-consistency failures recorded by the prefix, oldest first.
func (p *Prefix) Failures() []error { return p.failures }

func (p *Prefix) fail(err error) {
	p.logger.Warn("prefix failure", "section", "prefix", "err", err)
	p.failures = append(p.failures, err)
}

// IncrementLevel pushes a new level.
func (p *Prefix) IncrementLevel() {
	p.levels = append(p.levels, make(map[string]struct{}))
}

// DecrementLevel pops the current level, removing every type-variable it owns.
func (p *Prefix) DecrementLevel() {
	if len(p.levels) == 0 {
		p.fail(errors.New("cannot pop a level from an empty prefix"))
		return
	}
	top := p.levels[len(p.levels)-1]
	for name := range top {
		delete(p.entries, name)
	}
	p.levels = p.levels[:len(p.levels)-1]
}

// WithLevel runs f in a new level. Types which must outlive the level should be generalized by f.
func WithLevel[T any](p *Prefix, f func() T) T {
	p.IncrementLevel()
	defer p.DecrementLevel()
	return f()
}

// Add binds name at the current level. If name was already bound, the prior binding is replaced
// and returned.
func (p *Prefix) Add(name string, bound types.Bound) (Binding, bool) {
	level := len(p.levels)
	if level == 0 {
		p.fail(errors.Errorf("cannot add type variable %s outside of a level", name))
		return Binding{}, false
	}
	if bound.Type == nil {
		bound.Type = types.Bottom
	}
	prior, exists := p.entries[name]
	if exists {
		delete(p.levels[prior.Level-1], name)
	}
	p.entries[name] = Binding{Level: level, Bound: bound}
	p.levels[level-1][name] = struct{}{}
	return prior, exists
}

// Lookup returns the binding of name.
func (p *Prefix) Lookup(name string) (Binding, bool) {
	b, ok := p.entries[name]
	return b, ok
}

// NewType allocates a fresh type-variable at the current level and returns its name.
func (p *Prefix) NewType(bound types.Bound) string {
	var name string
	for {
		p.counter++
		name = "$" + strconv.Itoa(p.counter)
		if _, ok := p.entries[name]; !ok {
			break
		}
	}
	p.Add(name, bound)
	p.logger.Debug("new type", "section", "prefix", "name", name, "level", len(p.levels), "bound", types.LogValue(bound.Type))
	return name
}

// Update replaces the bound of name. The level of name is unchanged.
func (p *Prefix) Update(name string, bound types.Bound) {
	b, ok := p.entries[name]
	if !ok {
		p.fail(errors.Errorf("cannot update unknown type variable %s", name))
		return
	}
	if bound.Type == nil {
		bound.Type = types.Bottom
	}
	b.Bound = bound
	p.entries[name] = b
	p.adjustLevels(b.Level, bound.Type)
	p.logger.Debug("update", "section", "prefix", "name", name, "kind", bound.Kind, "bound", types.LogValue(bound.Type))
}

// MergeUpdate makes a and b the same type-variable with the given bound. The older of the two
// survives (a, when both have the same level) and the other is bound to it. The name of the
// survivor is returned.
func (p *Prefix) MergeUpdate(a, b string, kind types.BoundKind, bound types.Polytype) string {
	ba, okA := p.entries[a]
	bb, okB := p.entries[b]
	if !okA || !okB {
		p.fail(errors.Errorf("cannot merge unknown type variables %s and %s", a, b))
		return a
	}
	survivor, other := a, b
	if bb.Level < ba.Level {
		survivor, other = b, a
	}
	p.Update(survivor, types.Bound{Kind: kind, Type: bound})
	p.Update(other, types.Bound{Kind: types.Flexible, Type: types.NewVariable(survivor)})
	return survivor
}

// adjustLevels moves every type-variable mentioned by t, and by the bounds of those type-variables,
// to level when it is younger.
func (p *Prefix) adjustLevels(level int, t types.Polytype) {
	types.FreeVariables(t).Range(func(name string) bool {
		p.move(name, level)
		return true
	})
}

func (p *Prefix) move(name string, level int) {
	b, ok := p.entries[name]
	if !ok || b.Level <= level {
		return
	}
	delete(p.levels[b.Level-1], name)
	b.Level = level
	p.entries[name] = b
	p.levels[level-1][name] = struct{}{}
	p.adjustLevels(level, b.Bound.Type)
}

// Occurs reports whether name occurs free in t, or in the bound of any type-variable which occurs
// in t, transitively.
func (p *Prefix) Occurs(name string, t types.Polytype) bool {
	visited := make(map[string]struct{})
	var occurs func(t types.Polytype) bool
	occurs = func(t types.Polytype) bool {
		found := false
		types.FreeVariables(t).Range(func(v string) bool {
			if v == name {
				found = true
				return false
			}
			if _, ok := visited[v]; ok {
				return true
			}
			visited[v] = struct{}{}
			if b, ok := p.entries[v]; ok && occurs(b.Bound.Type) {
				found = true
			}
			return !found
		})
		return found
	}
	return occurs(t)
}

// Instantiate allocates a fresh type-variable at the current level for each binding, outermost
// first, and returns body with the bound names replaced by the fresh ones.
func (p *Prefix) Instantiate(bindings []types.Binding, body types.Monotype) types.Monotype {
	subst := make(types.Substitution, len(bindings))
	for _, b := range bindings {
		bound := types.Substitute(b.Bound.Type, subst)
		name := p.NewType(types.Bound{Kind: b.Bound.Kind, Type: bound})
		subst[b.Name] = types.NewVariable(name)
	}
	return types.SubstituteMonotype(body, subst)
}

// Generalize quantifies t over the type-variables owned by the current level. A type-variable is
// quantified outside of every type-variable mentioned by its bound.
func (p *Prefix) Generalize(t types.Polytype) types.Polytype {
	level := len(p.levels)
	visited := make(map[string]struct{})
	var bindings []types.Binding
	var visit func(t types.Polytype)
	visit = func(t types.Polytype) {
		types.ForEachFreeVariable(t, func(name string) {
			if _, ok := visited[name]; ok {
				return
			}
			visited[name] = struct{}{}
			b, ok := p.entries[name]
			if !ok {
				p.fail(errors.Errorf("cannot generalize unknown type variable %s", name))
				return
			}
			if b.Level < level {
				return
			}
			visit(b.Bound.Type)
			bindings = append(bindings, types.Binding{Name: name, Bound: b.Bound})
		})
	}
	visit(t)
	return types.QuantifyAll(bindings, t)
}

// Resolve replaces type-variables which are bound to monotypes by those monotypes, transitively.
// Names which are not in the prefix are left alone.
func (p *Prefix) Resolve(t types.Polytype) types.Polytype {
	if m, ok := t.(types.Monotype); ok {
		return p.resolveMonotype(m, nil)
	}
	subst := p.resolution(t, nil)
	if len(subst) == 0 {
		return t
	}
	return types.Substitute(t, subst)
}

// ResolveMonotype is Resolve for monotypes.
func (p *Prefix) ResolveMonotype(t types.Monotype) types.Monotype {
	return p.resolveMonotype(t, nil)
}

func (p *Prefix) resolveMonotype(t types.Monotype, seen map[string]struct{}) types.Monotype {
	subst := p.resolution(t, seen)
	if len(subst) == 0 {
		return t
	}
	return types.SubstituteMonotype(t, subst)
}

func (p *Prefix) resolution(t types.Polytype, seen map[string]struct{}) types.Substitution {
	var subst types.Substitution
	types.FreeVariables(t).Range(func(name string) bool {
		b, ok := p.entries[name]
		if !ok {
			return true
		}
		m, ok := b.Bound.Type.(types.Monotype)
		if !ok {
			return true
		}
		if _, ok := seen[name]; ok {
			p.fail(errors.Errorf("type variable %s is bound to itself", name))
			return true
		}
		if seen == nil {
			seen = make(map[string]struct{})
		}
		seen[name] = struct{}{}
		if subst == nil {
			subst = make(types.Substitution)
		}
		subst[name] = p.resolveMonotype(m, seen)
		delete(seen, name)
		return true
	})
	return subst
}

// resolveVariable follows type-variables bound to monotypes until it finds another type.
func (p *Prefix) resolveVariable(t types.Monotype) types.Monotype {
	for i := 0; i <= len(p.entries); i++ {
		v, ok := t.(*types.Variable)
		if !ok {
			return t
		}
		b, ok := p.entries[v.Name]
		if !ok {
			return t
		}
		m, ok := b.Bound.Type.(types.Monotype)
		if !ok {
			return t
		}
		t = m
	}
	p.fail(errors.Errorf("type variable %s is bound to itself", types.TypeString(t)))
	return t
}

// Names returns the names of every type-variable in the prefix, sorted.
func (p *Prefix) Names() []string {
	names := make([]string, 0, len(p.entries))
	for name := range p.entries {
		names = append(names, name)
	}
	for _, level := range p.levels {
		for name := range level {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	n := set.Uniq(sort.StringSlice(names))
	return names[:n]
}
