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

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Head is the atomic tag identifying a node's syntactic kind, such as a
// call, a block, or an assignment.
type Head string

// HeadLine is the head of nodes that carry only source-position information.
//
// Both bare [LineMarker] leaves and nodes whose head is HeadLine are treated
// as markers: parsers emit either shape depending on where in the tree the
// position lands, and the conversions in this package rewrite neither.
const HeadLine Head = "line"

// Child is a single element of a node's argument list.
//
// Implemented by exactly [*Expr], [*Raw], [LineMarker], and [Leaf]. User
// code should not attempt to add implementations; equality and hashing
// dispatch exhaustively over these four.
type Child interface {
	isChild()
}

// LineMarker is a position-only leaf. It has no semantic content and is
// skipped by [Expr.Equal] and [Expr.Hash], but survives both conversions so
// that backtrace formatting downstream can recover accurate positions.
type LineMarker struct {
	File string
	Line int32
}

// String implements [fmt.Stringer].
func (m LineMarker) String() string {
	return fmt.Sprintf("%s:%d", m.File, m.Line)
}

// Leaf is an opaque non-node child: a literal, a symbol, or any other value
// the parser chose not to represent as a tree.
//
// Leaves are compared with ordinary ==. A Leaf holding an uncomparable value
// (a slice, say) is a contract violation by the parser and panics when first
// compared or hashed.
type Leaf struct {
	Value any
}

// TypeInfo is a type annotation attached to a node.
//
// A nil *TypeInfo on a node means no annotation; a non-nil *TypeInfo with a
// nil Value means the annotation is present but carries no type. The two
// states are distinct and both round-trip through conversion, though neither
// participates in equality or hashing.
type TypeInfo struct {
	Value any
}

// Raw is the host syntax tree as a parser produces it: a head, an ordered
// argument list, and an optional type annotation.
//
// This package is indifferent to what the heads and leaf values mean; it
// only requires this shape.
type Raw struct {
	Head Head
	Args []Child
	Type *TypeInfo
}

// Expr is a wrapped tree node, built from a [Raw] tree by [FromRaw].
//
// An Expr owns its argument list and every nested Expr transitively. It is
// immutable after construction: [Expr.Equal], [Expr.Hash], and [Expr.ToRaw]
// may run concurrently on the same node without synchronization.
type Expr struct {
	head Head
	args []Child
	typ  *TypeInfo
}

func (*Expr) isChild()      {}
func (*Raw) isChild()       {}
func (LineMarker) isChild() {}
func (Leaf) isChild()       {}

// New constructs a node directly, without going through a [Raw] tree.
//
// This is primarily useful in tests and in callers that synthesize trees;
// parsed trees should arrive via [FromRaw]. New takes ownership of args.
func New(head Head, args ...Child) *Expr {
	return &Expr{head: head, args: args}
}

// NewTyped is [New] with a type annotation attached.
func NewTyped(head Head, typ *TypeInfo, args ...Child) *Expr {
	return &Expr{head: head, args: args, typ: typ}
}

// Head returns the node's syntactic kind.
func (e *Expr) Head() Head {
	return e.head
}

// Type returns the node's type annotation.
//
// Returns false if no annotation is attached. Note that (nil, true) is a
// valid result: the annotation exists but carries no type.
func (e *Expr) Type() (any, bool) {
	if e.typ == nil {
		return nil, false
	}
	return e.typ.Value, true
}

// Args returns the node's children with line markers skipped, in order.
//
// This is the view that [Expr.Equal] and [Expr.Hash] see. The sequence is
// restartable: ranging over it twice yields the same elements.
func (e *Expr) Args() iter.Seq[Child] {
	return skipLines(e.args)
}

// AllArgs returns every child, line markers included, in order.
func (e *Expr) AllArgs() iter.Seq[Child] {
	return slices.Values(e.args)
}

// String implements [fmt.Stringer], rendering the node as an s-expression.
// Markers render as file:line; this is for debugging, not a serialization.
func (e *Expr) String() string {
	var sb strings.Builder
	e.format(&sb)
	return sb.String()
}

func (e *Expr) format(sb *strings.Builder) {
	sb.WriteByte('(')
	sb.WriteString(string(e.head))
	for _, c := range e.args {
		sb.WriteByte(' ')
		switch c := c.(type) {
		case *Expr:
			c.format(sb)
		case Leaf:
			fmt.Fprintf(sb, "%v", c.Value)
		default:
			fmt.Fprintf(sb, "%v", c)
		}
	}
	sb.WriteByte(')')
}
