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
	"iter"
	"slices"

	"github.com/reloadkit/exprkey/internal/ext/iterx"
)

// isMarker reports whether c carries only source-position information.
//
// Both representations of a position are recognized: a bare [LineMarker]
// leaf, and a node whose head is [HeadLine]. This is the single predicate
// behind the skipping views, so equality and hashing cannot disagree about
// what a marker is.
func isMarker(c Child) bool {
	switch c := c.(type) {
	case LineMarker:
		return true
	case *Expr:
		return c.head == HeadLine
	case *Raw:
		return c.Head == HeadLine
	}
	return false
}

// skipLines is the line-skipping view over an argument list: the same
// elements in the same order, minus markers. Every equality and hash
// traversal goes through here.
func skipLines(args []Child) iter.Seq[Child] {
	return iterx.Filter(slices.Values(args), func(c Child) bool {
		return !isMarker(c)
	})
}

// Lines returns the node's direct line markers, in order.
func (e *Expr) Lines() iter.Seq[LineMarker] {
	return iterx.FilterMap(slices.Values(e.args), func(c Child) (LineMarker, bool) {
		m, ok := c.(LineMarker)
		return m, ok
	})
}

// FirstLine returns the first line marker in the subtree, in document order.
//
// For a function body this is the marker a backtrace or editor jump should
// anchor on. Returns false if the subtree contains no markers at all.
func FirstLine(e *Expr) (LineMarker, bool) {
	return firstLine(e.args)
}

func firstLine(args []Child) (LineMarker, bool) {
	for _, c := range args {
		switch c := c.(type) {
		case LineMarker:
			return c, true
		case *Expr:
			if m, ok := firstLine(c.args); ok {
				return m, true
			}
		}
	}
	return LineMarker{}, false
}

// Preorder returns a lazy preorder walk over e and every nested node,
// markers' own nodes included.
func Preorder(e *Expr) iter.Seq[*Expr] {
	return func(yield func(*Expr) bool) {
		preorder(e, yield)
	}
}

func preorder(e *Expr, yield func(*Expr) bool) bool {
	if !yield(e) {
		return false
	}
	for _, c := range e.args {
		if sub, ok := c.(*Expr); ok && !preorder(sub, yield) {
			return false
		}
	}
	return true
}
