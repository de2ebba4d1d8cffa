// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reloadkit/exprkey/expr"
)

// sample builds a tree that exercises every child kind and both type
// annotation states: f(x, 1) inside a typed block with markers.
func sample() *expr.Raw {
	inner := raw("call", leaf("f"), mark(3), leaf("x"), leaf(1))
	inner.Type = &expr.TypeInfo{Value: nil} // present but null
	body := raw("block", mark(1), inner, mark(5), leaf(true))
	body.Type = &expr.TypeInfo{Value: "Int"}
	return body
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	want := sample()
	got := expr.FromRaw(want.Clone()).ToRaw()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRawReusesStorage(t *testing.T) {
	t.Parallel()

	inner := raw("call", leaf("f"))
	outer := raw("block", mark(1), inner, leaf("x"))
	args := outer.Args

	e := expr.FromRaw(outer)

	// The input is consumed: its argument list is gone, and the nested raw
	// node was rewritten in place inside the original backing array.
	assert.Nil(t, outer.Args)
	wrapped, ok := args[1].(*expr.Expr)
	require.True(t, ok, "nested raw child was not rewritten in place")
	assert.Equal(t, expr.Head("call"), wrapped.Head())

	// And the returned node serves its children out of that same storage.
	all := slices.Collect(e.AllArgs())
	require.Len(t, all, 3)
	assert.Same(t, wrapped, all[1])
}

func TestToRawIsIndependent(t *testing.T) {
	t.Parallel()

	e := expr.FromRaw(sample())
	before := e.Hash()

	out := e.ToRaw()
	out.Args[0] = leaf("clobbered")
	out.Args[1].(*expr.Raw).Args[0] = leaf("clobbered")
	out.Type.Value = "clobbered"

	assert.Equal(t, before, e.Hash())
	assert.True(t, e.Equal(expr.FromRaw(sample())))
}

func TestClone(t *testing.T) {
	t.Parallel()

	orig := sample()
	clone := orig.Clone()
	orig.Args[1].(*expr.Raw).Args[0] = leaf("clobbered")
	orig.Type.Value = "clobbered"

	if diff := cmp.Diff(sample(), clone); diff != "" {
		t.Errorf("clone shares storage with original (-want +got):\n%s", diff)
	}
}

func TestTypeAnnotationStates(t *testing.T) {
	t.Parallel()

	absent := conv("call", leaf("f"))
	_, ok := absent.Type()
	assert.False(t, ok)

	null := raw("call", leaf("f"))
	null.Type = &expr.TypeInfo{Value: nil}
	v, ok := expr.FromRaw(null).Type()
	assert.True(t, ok, "present-but-null must be distinguishable from absent")
	assert.Nil(t, v)

	typed := raw("call", leaf("f"))
	typed.Type = &expr.TypeInfo{Value: "Int"}
	v, ok = expr.FromRaw(typed).Type()
	assert.True(t, ok)
	assert.Equal(t, "Int", v)
}

func TestConversionContractViolations(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { expr.FromRaw(nil) })

	// A raw child smuggled past FromRaw via the direct constructor.
	aliased := expr.New("block", raw("call", leaf("f")))
	assert.Panics(t, func() { aliased.ToRaw() })
}

func TestString(t *testing.T) {
	t.Parallel()

	e := conv("call", leaf("f"), mark(3), conv("block", leaf(1)))
	assert.Equal(t, "(call f test.src:3 (block 1))", e.String())
}
