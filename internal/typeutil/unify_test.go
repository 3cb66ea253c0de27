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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brite-lang/brite-sub000/diagnostics"
	"github.com/brite-lang/brite-sub000/types"
)

func newUnifyState() (*Prefix, *diagnostics.Sink) {
	p := NewPrefix()
	p.IncrementLevel()
	return p, diagnostics.NewSink()
}

func TestUnifyIsReflexive(t *testing.T) {
	p, sink := newUnifyState()
	a := p.NewType(types.Unbounded)
	f := p.NewType(flexible(identity("x")))

	cases := []func() types.Monotype{
		func() types.Monotype { return types.Boolean },
		func() types.Monotype { return v(a) },
		func() types.Monotype { return v(f) },
		func() types.Monotype { return fn(v(a), fn(types.Number, v(a))) },
		func() types.Monotype { return fn(fn(v(f), types.String), v(a)) },
	}
	for _, c := range cases {
		require.NoError(t, Unify(p, sink, c(), c()))
	}
	assert.Equal(t, 0, sink.Len())
	assert.Equal(t, 1, p.Level())
}

func TestUnifySolvesStructurally(t *testing.T) {
	p, sink := newUnifyState()
	a := p.NewType(types.Unbounded)
	b := p.NewType(types.Unbounded)

	err := Unify(p, sink, fn(v(a), types.Number), fn(types.Boolean, v(b)))
	require.NoError(t, err)
	assert.Same(t, types.Boolean, p.Resolve(v(a)))
	assert.Same(t, types.Number, p.Resolve(v(b)))
	assert.Equal(t, 0, sink.Len())
}

func TestUnifyMergesVariables(t *testing.T) {
	p, sink := newUnifyState()
	a := p.NewType(types.Unbounded)
	b := p.NewType(types.Unbounded)

	require.NoError(t, Unify(p, sink, v(a), v(b)))
	require.NoError(t, Unify(p, sink, v(b), types.String))
	assert.Same(t, types.String, p.Resolve(v(a)))
	assert.Same(t, types.String, p.Resolve(v(b)))
}

func TestUnifyOccursCheck(t *testing.T) {
	p, sink := newUnifyState()
	a := p.NewType(types.Unbounded)

	err := Unify(p, sink, v(a), fn(v(a), types.Number))
	require.Error(t, err)
	require.Equal(t, 1, sink.Len())
	d, ok := sink.Diagnostics()[0].(diagnostics.InfiniteType)
	require.True(t, ok)
	assert.Equal(t, "a", d.Name)
	assert.Equal(t, "a → Number", types.TypeString(d.Type))

	b, ok := p.Lookup(a)
	require.True(t, ok)
	assert.True(t, types.IsBottom(b.Bound.Type))
}

func TestUnifyOccursCheckLeavesPrefixUsable(t *testing.T) {
	p, sink := newUnifyState()
	a := p.NewType(types.Unbounded)

	err := Unify(p, sink, v(a), fn(v(a), v(a)))
	require.Error(t, err)
	require.Equal(t, 1, sink.Len())
	assert.Equal(t, "(E003) infinite type: 'a' occurs in 'a → a'", diagnostics.Format(sink.Diagnostics()[0]))

	b := p.NewType(types.Unbounded)
	c := p.NewType(types.Unbounded)
	require.NoError(t, Unify(p, sink, fn(v(b), types.String), fn(types.Number, v(c))))
	assert.Same(t, types.Number, p.Resolve(v(b)))
	assert.Same(t, types.String, p.Resolve(v(c)))
	require.NoError(t, Unify(p, sink, v(a), types.Boolean))
	assert.Same(t, types.Boolean, p.Resolve(v(a)))
	assert.Equal(t, 1, sink.Len())
	assert.Empty(t, p.Failures())
}

func TestDiagnosticsUseDisplayNames(t *testing.T) {
	p, sink := newUnifyState()
	p.Add("a", types.Unbounded)
	x := p.NewType(types.Unbounded)
	y := p.NewType(types.Unbounded)

	err := Unify(p, sink, v(x), fn(v("a"), v(x)))
	require.Error(t, err)
	d, ok := sink.Diagnostics()[0].(diagnostics.InfiniteType)
	require.True(t, ok)
	assert.Equal(t, "b", d.Name)
	assert.Equal(t, "a → b", types.TypeString(d.Type))

	err = Unify(p, sink, types.Boolean, fn(v(y), types.Number))
	require.Error(t, err)
	mismatch, ok := sink.Diagnostics()[1].(diagnostics.IncompatibleTypes)
	require.True(t, ok)
	assert.Same(t, types.Boolean, mismatch.Actual)
	assert.Equal(t, "a → Number", types.TypeString(mismatch.Expected))
}
