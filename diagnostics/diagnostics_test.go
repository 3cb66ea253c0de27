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

package diagnostics

import (
	"fmt"
	"testing"

	"github.com/brite-lang/brite-sub000/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkKeepsReportOrder(t *testing.T) {
	sink := NewSink()
	assert.False(t, sink.HasError())

	first := sink.Report(UnboundVariable{Identifier: "x"})
	second := sink.Report(IncompatibleTypes{Actual: types.Boolean, Expected: types.Number})
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 1, second.Index)

	require.Equal(t, 2, sink.Len())
	assert.True(t, sink.HasError())
	assert.Equal(t, UnboundVariable{Identifier: "x"}, sink.Diagnostics()[0])
	assert.Equal(t, 1, sink.Count(IncompatibleTypesCode))
	assert.Equal(t, 0, sink.Count(InfiniteTypeCode))
}

func TestNilSinkDiscards(t *testing.T) {
	var sink *Sink
	r := sink.Report(UnboundVariable{Identifier: "x"})
	assert.Equal(t, -1, r.Index)
	assert.Equal(t, 0, sink.Len())
	assert.Nil(t, sink.Diagnostics())
}

func TestFormat(t *testing.T) {
	cases := []struct {
		d        Diagnostic
		expected string
	}{
		{UnboundVariable{Identifier: "x"}, "(E001) variable 'x' is not defined"},
		{IncompatibleTypes{Actual: types.Boolean, Expected: types.Number}, "(E002) type mismatch: expected 'Number', but found 'Boolean'"},
		{InfiniteType{Name: "a", Type: types.NewFunction(types.NewVariable("a"), types.String)}, "(E003) infinite type: 'a' occurs in 'a → String'"},
		{Internal{Err: fmt.Errorf("oops")}, "(E004) internal error: oops"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, Format(c.d))
	}
}

func TestInternalUnwraps(t *testing.T) {
	err := fmt.Errorf("missing")
	assert.ErrorIs(t, Internal{Err: err}, err)
}

func TestFromError(t *testing.T) {
	var err error = UnboundVariable{Identifier: "x"}
	d, ok := FromError(fmt.Errorf("checking: %w", err))
	require.True(t, ok)
	assert.Equal(t, UnboundVariableCode, d.Code())

	_, ok = FromError(fmt.Errorf("plain"))
	assert.False(t, ok)
}
