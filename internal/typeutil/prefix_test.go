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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brite-lang/brite-sub000/types"
)

func v(name string) *types.Variable { return types.NewVariable(name) }

func fn(param, body types.Monotype) *types.Function { return types.NewFunction(param, body) }

func flexible(t types.Polytype) types.Bound { return types.Bound{Kind: types.Flexible, Type: t} }

func identity(name string) *types.Quantify {
	return types.NewQuantify(name, types.Unbounded, fn(v(name), v(name)))
}

func TestAddReturnsPriorBinding(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()

	_, exists := p.Add("a", types.Unbounded)
	assert.False(t, exists)

	prior, exists := p.Add("a", flexible(types.Number))
	require.True(t, exists)
	assert.Equal(t, 1, prior.Level)
	assert.True(t, types.IsBottom(prior.Bound.Type))

	b, ok := p.Lookup("a")
	require.True(t, ok)
	assert.Same(t, types.Number, b.Bound.Type)
	assert.Equal(t, 1, p.Len())
}

func TestAddOutsideLevelFails(t *testing.T) {
	p := NewPrefix()
	p.Add("a", types.Unbounded)
	assert.Equal(t, 0, p.Len())
	assert.Len(t, p.Failures(), 1)
}

func TestLevelsOwnTheirTypes(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()
	a := p.NewType(types.Unbounded)
	p.IncrementLevel()
	b := p.NewType(types.Unbounded)
	assert.Equal(t, 2, p.Level())
	assert.Equal(t, 2, p.Len())

	p.DecrementLevel()
	_, ok := p.Lookup(b)
	assert.False(t, ok)
	_, ok = p.Lookup(a)
	assert.True(t, ok)

	p.DecrementLevel()
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.Failures())

	p.DecrementLevel()
	assert.Len(t, p.Failures(), 1)
}

func TestNewTypeIsUnique(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()
	p.Add("$2", types.Unbounded)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := p.NewType(types.Unbounded)
		assert.False(t, seen[name], name)
		seen[name] = true
	}
	assert.False(t, seen["$2"])
	assert.Equal(t, 101, p.Len())
}

func TestWithLevelIsBalanced(t *testing.T) {
	p := NewPrefix()
	level := WithLevel(p, func() int {
		p.NewType(types.Unbounded)
		return p.Level()
	})
	assert.Equal(t, 1, level)
	assert.Equal(t, 0, p.Level())
	assert.Equal(t, 0, p.Len())
}

func TestMergeUpdateKeepsOlder(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()
	a := p.NewType(types.Unbounded)
	p.IncrementLevel()
	b := p.NewType(types.Unbounded)

	survivor := p.MergeUpdate(b, a, types.Rigid, identity("x"))
	assert.Equal(t, a, survivor)

	link, ok := p.Lookup(b)
	require.True(t, ok)
	assert.Equal(t, v(a), link.Bound.Type)

	p.DecrementLevel()
	merged, ok := p.Lookup(a)
	require.True(t, ok)
	assert.Equal(t, types.Rigid, merged.Bound.Kind)
	assert.Equal(t, "∀A. A → A", types.TypeString(merged.Bound.Type))

	c := p.NewType(types.Unbounded)
	assert.Equal(t, c, p.MergeUpdate(c, a, types.Flexible, types.Bottom))
}

func TestUpdateMovesDependenciesToOlderLevel(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()
	a := p.NewType(types.Unbounded)
	p.IncrementLevel()
	c := p.NewType(types.Unbounded)

	p.Update(a, flexible(fn(v(c), v(c))))
	b, ok := p.Lookup(c)
	require.True(t, ok)
	assert.Equal(t, 1, b.Level)

	p.DecrementLevel()
	_, ok = p.Lookup(c)
	assert.True(t, ok)
	assert.Equal(t, "$2 → $2", types.TypeString(p.Resolve(v(a))))
}

func TestInstantiateGeneralizeRoundTrip(t *testing.T) {
	typ := types.QuantifyAll([]types.Binding{
		{Name: "a", Bound: types.Unbounded},
		{Name: "b", Bound: flexible(identity("c"))},
	}, fn(v("a"), v("b")))

	p := NewPrefix()
	p.IncrementLevel()
	bindings, body := types.Split(typ)
	m := p.Instantiate(bindings, body.(types.Monotype))
	assert.Equal(t, 2, p.Len())
	g := p.Generalize(m)
	p.DecrementLevel()

	assert.True(t, types.Equivalent(typ, g), types.TypeString(g))
	assert.Equal(t, 0, p.Len())
}

func TestGeneralizeQuantifiesDependenciesFirst(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()
	b := p.NewType(types.Unbounded)
	a := p.NewType(types.Unbounded)
	p.Update(b, flexible(types.NewQuantify("c", types.Unbounded, fn(v("c"), v(a)))))

	g := p.Generalize(fn(v(b), v(a)))
	bindings, _ := types.Split(g)
	require.Len(t, bindings, 2)
	assert.Equal(t, a, bindings[0].Name)
	assert.Equal(t, b, bindings[1].Name)
	assert.Equal(t, "∀A, (B ≥ ∀C. C → A). B → A", types.TypeString(g))
}

func TestGeneralizeSkipsOlderLevels(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()
	a := p.NewType(types.Unbounded)
	p.IncrementLevel()
	b := p.NewType(types.Unbounded)

	g := p.Generalize(fn(v(a), v(b)))
	assert.Equal(t, "∀A. $1 → A", types.TypeString(g))
	assert.Empty(t, p.Failures())
}

func TestGeneralizeInlinesSolvedTypes(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()
	a := p.NewType(types.Unbounded)
	b := p.NewType(flexible(types.Number))
	p.Update(a, flexible(v(b)))

	assert.Equal(t, "Number → Number", types.TypeString(p.Generalize(fn(v(a), v(b)))))
}

func TestResolveFollowsBounds(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()
	a := p.NewType(types.Unbounded)
	b := p.NewType(types.Unbounded)
	p.Update(b, flexible(fn(v(a), types.Number)))
	p.Update(a, flexible(types.String))

	assert.Equal(t, "String → Number", types.TypeString(p.Resolve(v(b))))
	assert.Equal(t, "∀A. A → String", types.TypeString(p.Resolve(types.NewQuantify("x", types.Unbounded, fn(v("x"), v(a))))))
	assert.Equal(t, "unknown", types.TypeString(p.Resolve(v("unknown"))))
}

func TestOccursThroughBounds(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()
	a := p.NewType(types.Unbounded)
	b := p.NewType(types.Unbounded)
	p.Update(b, flexible(types.NewQuantify("c", types.Unbounded, fn(v("c"), v(a)))))

	assert.True(t, p.Occurs(a, v(b)))
	assert.True(t, p.Occurs(a, fn(types.Number, v(a))))
	assert.False(t, p.Occurs(b, v(a)))
	assert.False(t, p.Occurs(a, types.Boolean))
}

func TestNamesAreSorted(t *testing.T) {
	p := NewPrefix()
	p.IncrementLevel()
	for i := 0; i < 12; i++ {
		p.NewType(types.Unbounded)
	}
	names := p.Names()
	assert.Len(t, names, 12)
	assert.True(t, sort.StringsAreSorted(names))
}
