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

package expr

import "fmt"

// FromRaw converts a raw tree into a wrapped node.
//
// The conversion is destructive: it reuses raw's argument storage, rewriting
// each nested *Raw child in place with its wrapped form rather than
// allocating new argument lists. This makes conversion O(nodes) with no
// duplicated child storage, which matters because every reload converts
// every redefined body.
//
// FromRaw takes ownership of raw and everything under it. The caller must
// not touch raw afterward; its argument list is cleared so that accidental
// reuse fails loudly rather than aliasing the returned node's storage.
func FromRaw(raw *Raw) *Expr {
	if raw == nil {
		panic("expr: FromRaw on a nil tree")
	}
	args := raw.Args
	for i, c := range args {
		if sub, ok := c.(*Raw); ok {
			args[i] = FromRaw(sub)
		}
	}
	e := &Expr{head: raw.Head, args: args, typ: raw.Type}
	raw.Args = nil
	raw.Type = nil
	return e
}

// ToRaw converts the node back into a raw tree for execution.
//
// The result is a deep copy sharing no storage with e: evaluators are free
// to mutate the returned tree's argument lists, and the cached node is
// unaffected. Children that are not nested nodes (markers, leaves) are
// carried over as-is.
func (e *Expr) ToRaw() *Raw {
	args := make([]Child, len(e.args))
	for i, c := range e.args {
		switch c := c.(type) {
		case *Expr:
			args[i] = c.ToRaw()
		case *Raw:
			// FromRaw wraps every nested raw node; one surviving here means
			// the node was built by hand from an aliased tree.
			panic(fmt.Sprintf("expr: raw child %q inside a wrapped node", c.Head))
		default:
			args[i] = c
		}
	}
	var typ *TypeInfo
	if e.typ != nil {
		t := *e.typ
		typ = &t
	}
	return &Raw{Head: e.head, Args: args, Type: typ}
}

// Clone deep-copies a raw tree.
//
// [FromRaw] consumes its input, so a caller that needs to both convert a
// tree and keep the original (a parser test, a speculative diff) converts a
// clone instead.
func (r *Raw) Clone() *Raw {
	if r == nil {
		return nil
	}
	args := make([]Child, len(r.Args))
	for i, c := range r.Args {
		if sub, ok := c.(*Raw); ok {
			args[i] = sub.Clone()
		} else {
			args[i] = c
		}
	}
	var typ *TypeInfo
	if r.Type != nil {
		t := *r.Type
		typ = &t
	}
	return &Raw{Head: r.Head, Args: args, Type: typ}
}
